// file: controllers/changelog_controller.go
package controllers

import (
	"encoding/json"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/services"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
	"github.com/gin-gonic/gin"
)

// GetTeamChanges returns a team's member change log, oldest entry first.
// The log is append-only; this endpoint is the read side of that audit trail.
func GetTeamChanges(c *gin.Context) {
	team, ok := loadTeam(c)
	if !ok {
		return
	}

	entries := []services.ChangeEntry{}
	if len(team.ChangeLog) > 0 {
		if err := json.Unmarshal(team.ChangeLog, &entries); err != nil {
			utils.Error(c, utils.CodeDownstream, "Corrupt change log")
			return
		}
	}

	utils.Success(c, "success", gin.H{
		"team_id": team.TeamID,
		"changes": entries,
	})
}
