// file: controllers/problem_controller.go
package controllers

import (
	"errors"
	"strconv"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/database"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProblemList 公开接口，按赛道过滤
func GetProblemList(c *gin.Context) {
	db := database.DB.Model(&models.Problem{})
	if track := c.Query("track"); track != "" {
		db = db.Where("track = ?", track)
	}

	var problems []models.Problem
	if err := db.Order("problem_key asc").Find(&problems).Error; err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to fetch problem statements")
		return
	}
	utils.Success(c, "success", gin.H{"problem_statements": problems})
}

// --- 管理员接口 ---

func CreateProblem(c *gin.Context) {
	var req struct {
		ProblemKey  string `json:"problem_key" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Track       string `json:"track" binding:"required,oneof=btech mca"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid request: "+err.Error())
		return
	}

	problem := models.Problem{
		ProblemKey:  req.ProblemKey,
		Title:       req.Title,
		Description: req.Description,
		Track:       models.TeamTrack(req.Track),
	}
	if err := database.DB.Create(&problem).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.Error(c, utils.CodeInvalidRequest, "Problem key already exists")
			return
		}
		utils.Error(c, utils.CodeDownstream, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Problem created successfully", problem)
}

func UpdateProblem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var problem models.Problem
	if err := database.DB.First(&problem, id).Error; err != nil {
		utils.Error(c, utils.CodeNotFound, "Problem not found")
		return
	}

	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid request: "+err.Error())
		return
	}

	problem.Title = req.Title
	problem.Description = req.Description
	if err := database.DB.Model(&problem).Updates(map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
	}).Error; err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to update problem")
		return
	}
	utils.Success(c, "Problem updated successfully", problem)
}

func DeleteProblem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := database.DB.Delete(&models.Problem{}, id).Error; err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to delete problem")
		return
	}
	utils.Success(c, "Problem deleted successfully", nil)
}
