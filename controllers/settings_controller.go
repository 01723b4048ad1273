// file: controllers/settings_controller.go
package controllers

import (
	"encoding/json"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/dto"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/services"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
	"github.com/gin-gonic/gin"
)

func GetSettings(c *gin.Context) {
	settings, err := services.GetSettings()
	if err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to load settings")
		return
	}
	utils.Success(c, "success", settings)
}

// UpdateSettings replaces all four round toggles and mirrors the new state
// into a non-httpOnly cookie the dashboards read without an extra request.
func UpdateSettings(c *gin.Context) {
	var req dto.SettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "All four toggles are required")
		return
	}

	settings, err := services.GetSettings()
	if err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to load settings")
		return
	}

	settings.StudentRound1 = *req.StudentRound1
	settings.EvaluatorRound1 = *req.EvaluatorRound1
	settings.StudentRound2 = *req.StudentRound2
	settings.EvaluatorRound2 = *req.EvaluatorRound2

	if err := services.SaveSettings(&settings); err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to save settings")
		return
	}

	state, _ := json.Marshal(gin.H{
		"studentRound1":   settings.StudentRound1,
		"evaluatorRound1": settings.EvaluatorRound1,
		"studentRound2":   settings.StudentRound2,
		"evaluatorRound2": settings.EvaluatorRound2,
	})
	c.SetCookie("admin_toggle_state", string(state), 60*60*24, "/", "", false, false)

	utils.Success(c, "Settings updated successfully", settings)
}
