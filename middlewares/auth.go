// file: middlewares/auth.go
package middlewares

import (
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
	"github.com/gin-gonic/gin"
)

// sessionFromCookies tries the role cookies in order and returns the first
// one holding a valid token.
func sessionFromCookies(c *gin.Context) (*utils.SessionClaims, bool) {
	for _, role := range []models.SessionRole{models.RoleAdmin, models.RoleEvaluator} {
		token, err := c.Cookie(models.SessionCookieName(role))
		if err != nil || token == "" {
			continue
		}
		claims, err := utils.ParseSessionToken(token)
		if err != nil {
			continue
		}
		return claims, true
	}
	return nil, false
}

// SessionAuthMiddleware admits only requests carrying a valid session cookie
// for one of the required roles. Admin passes every gate.
func SessionAuthMiddleware(requiredRoles ...models.SessionRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessionFromCookies(c)
		if !ok {
			utils.Error(c, utils.CodeUnauthenticated, "Not logged in")
			c.Abort()
			return
		}

		hasPermission := claims.Role == models.RoleAdmin
		for _, role := range requiredRoles {
			if claims.Role == role {
				hasPermission = true
				break
			}
		}

		if !hasPermission {
			utils.Error(c, utils.CodeForbidden, "Insufficient permissions")
			c.Abort()
			return
		}

		c.Set("session_role", claims.Role)
		c.Next()
	}
}

// SessionTryAuthMiddleware parses a session if one is present but never
// rejects; the toggle gate downstream decides whether anonymous student
// traffic is allowed through.
func SessionTryAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := sessionFromCookies(c); ok {
			c.Set("session_role", claims.Role)
		}
		c.Next()
	}
}
