// file: middlewares/feature_gate.go
package middlewares

import (
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/services"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
	"github.com/gin-gonic/gin"
)

// FeatureGateMiddleware rejects the request unless the admin toggle for the
// given (actor, round) is on. Admin sessions bypass the gate so the dashboard
// keeps working while rounds are closed.
func FeatureGateMiddleware(kind services.SnapshotKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if roleAny, exists := c.Get("session_role"); exists {
			if roleAny.(models.SessionRole) == models.RoleAdmin {
				c.Next()
				return
			}
		}

		settings, err := services.GetSettings()
		if err != nil {
			utils.Error(c, utils.CodeDownstream, "Failed to load event settings")
			c.Abort()
			return
		}

		if !services.ToggleEnabled(settings, kind) {
			utils.Error(c, utils.CodeForbidden, "This round is currently closed")
			c.Abort()
			return
		}

		c.Next()
	}
}
