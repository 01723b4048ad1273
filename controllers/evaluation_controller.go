// file: controllers/evaluation_controller.go
package controllers

import (
	"time"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/database"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/dto"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/services"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
	"github.com/gin-gonic/gin"
)

// SaveEvaluation writes one round's marks and feedback. Out-of-range marks
// are clamped to the round's bounds, not rejected; a non-numeric marks value
// never gets past binding.
func SaveEvaluation(c *gin.Context) {
	var req dto.EvaluationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Round and marks are required")
		return
	}

	if !roundToggleAllowed(c, true, req.Round) {
		return
	}

	team, ok := loadTeam(c)
	if !ok {
		return
	}

	cols, err := services.RecordEvaluation(team, req.Round, req.Marks, req.Feedback, time.Now())
	if err != nil {
		utils.Error(c, utils.CodeInvalidRequest, err.Error())
		return
	}

	if err := database.DB.Model(&models.Team{}).
		Where("team_id = ?", team.TeamID).
		Updates(cols).Error; err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to save evaluation")
		return
	}

	utils.Success(c, "Evaluation saved successfully", team)
}
