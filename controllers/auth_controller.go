// file: controllers/auth_controller.go
package controllers

import (
	"log"
	"os"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/dto"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const sessionMaxAge = 60 * 60 * 24 // 1 day

func credentialEnv(role models.SessionRole) (string, string) {
	if role == models.RoleAdmin {
		return os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD_HASH")
	}
	return os.Getenv("EVALUATOR_USERNAME"), os.Getenv("EVALUATOR_PASSWORD_HASH")
}

// login 共享口令登录：比对 env 中的 bcrypt 哈希，发会话 cookie
func login(c *gin.Context, role models.SessionRole) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Username and password are required")
		return
	}

	validUsername, passwordHash := credentialEnv(role)
	if validUsername == "" || passwordHash == "" {
		log.Printf("%s credentials not configured in environment variables", role)
		utils.Error(c, utils.CodeDownstream, "Authentication service misconfigured")
		return
	}

	if req.Username != validUsername ||
		bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil {
		utils.Error(c, utils.CodeUnauthenticated, "Invalid username or password")
		return
	}

	token, err := utils.GenerateSessionToken(role)
	if err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to create session")
		return
	}

	secure := os.Getenv("GIN_MODE") == "release"
	c.SetCookie(models.SessionCookieName(role), token, sessionMaxAge, "/", "", secure, true)
	utils.Success(c, "Login successful", gin.H{"role": role})
}

func AdminLogin(c *gin.Context) {
	login(c, models.RoleAdmin)
}

func EvaluatorLogin(c *gin.Context) {
	login(c, models.RoleEvaluator)
}

func AdminLogout(c *gin.Context) {
	c.SetCookie(models.SessionCookieName(models.RoleAdmin), "", -1, "/", "", false, true)
	utils.Success(c, "Logged out successfully", nil)
}

func EvaluatorLogout(c *gin.Context) {
	c.SetCookie(models.SessionCookieName(models.RoleEvaluator), "", -1, "/", "", false, true)
	utils.Success(c, "Logged out successfully", nil)
}
