// file: controllers/registration_controller.go
package controllers

import (
	"errors"
	"log"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/database"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/dto"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/mappers"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/services"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
	"github.com/gin-gonic/gin"
)

// RegisterTeam allocates the next team ID for the track and creates the
// record with all sub-records zero-valued. The confirmation mail is best
// effort; its outcome only shows up as the email_sent flag.
func RegisterTeam(c *gin.Context) {
	var req dto.RegisterTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid registration: "+err.Error())
		return
	}

	team := mappers.MapRegistration(req)
	if err := services.RegisterTeam(database.DB, &team); err != nil {
		if errors.Is(err, services.ErrAllocationFailed) {
			utils.Error(c, utils.CodeAllocationFailed, "Could not allocate a team ID, please retry")
			return
		}
		utils.Error(c, utils.CodeDownstream, "Database error: "+err.Error())
		return
	}

	emails := []string{}
	for _, e := range []string{req.LeaderEmail, req.Member2Email, req.Member3Email, req.Member4Email} {
		if e != "" {
			emails = append(emails, e)
		}
	}

	emailSent := false
	if len(emails) > 0 {
		memberNames := []string{req.LeaderName, req.Member2Name, req.Member3Name, req.Member4Name}
		if err := services.SendTeamConfirmation(emails, team.TeamID, req.LeaderName, memberNames); err != nil {
			log.Println("Failed to send confirmation email:", err)
		} else {
			emailSent = true
		}
	}

	utils.Success(c, "Team registered successfully", gin.H{
		"team_id":    team.TeamID,
		"track":      team.Track,
		"email_sent": emailSent,
	})
}
