// file: controllers/team_controller.go
package controllers

import (
	"errors"
	"time"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/database"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/dto"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/mappers"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/services"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// loadTeam 按 teamId 取记录，statusful 错误直接回给客户端
func loadTeam(c *gin.Context) (*models.Team, bool) {
	teamID := c.Param("teamId")
	if teamID == "" {
		utils.Error(c, utils.CodeInvalidRequest, "Team ID is required")
		return nil, false
	}

	var team models.Team
	if err := database.DB.Where("team_id = ?", teamID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, utils.CodeNotFound, "Team not found")
		} else {
			utils.Error(c, utils.CodeDownstream, "Failed to fetch team data")
		}
		return nil, false
	}
	return &team, true
}

// roundToggleAllowed enforces the (actor, round) feature toggle for routes
// whose round is only known from the payload. Admin sessions bypass the gate.
func roundToggleAllowed(c *gin.Context, evaluator bool, round int) bool {
	if roleAny, exists := c.Get("session_role"); exists {
		if roleAny.(models.SessionRole) == models.RoleAdmin {
			return true
		}
	}

	kind, err := services.SnapshotFor(evaluator, round)
	if err != nil {
		utils.Error(c, utils.CodeInvalidRequest, err.Error())
		return false
	}
	settings, err := services.GetSettings()
	if err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to load event settings")
		return false
	}
	if !services.ToggleEnabled(settings, kind) {
		utils.Error(c, utils.CodeForbidden, "This round is currently closed")
		return false
	}
	return true
}

func GetTeam(c *gin.Context) {
	team, ok := loadTeam(c)
	if !ok {
		return
	}
	utils.Success(c, "success", team)
}

func GetAllTeams(c *gin.Context) {
	db := database.DB.Model(&models.Team{})
	if track := c.Query("track"); track != "" {
		db = db.Where("track = ?", track)
	}

	var teams []models.Team
	if err := db.Order("team_id asc").Find(&teams).Error; err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to fetch teams")
		return
	}
	utils.Success(c, "success", teams)
}

// applyUpdate merges the normalized update into the loaded record and
// persists only the columns the merge produced. Never a whole-row save: a
// student submitting while an evaluator marks attendance must not wipe each
// other out.
func applyUpdate(c *gin.Context, team *models.Team, up *services.TeamUpdate) {
	cols, err := services.MergeTeamUpdate(team, up, time.Now())
	if err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to merge team update")
		return
	}

	if err := database.DB.Model(&models.Team{}).
		Where("team_id = ?", team.TeamID).
		Updates(cols).Error; err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to update team")
		return
	}

	utils.Success(c, "Team updated successfully", team)
}

// StudentUpdateTeam is the student-side save: member scalars, problem
// selection, the submission lock and the student-owned attendance snapshots.
func StudentUpdateTeam(c *gin.Context) {
	var req dto.StudentUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid update: "+err.Error())
		return
	}

	round := 1
	if req.Attendance != nil {
		round = req.Attendance.Round
	}
	if !roundToggleAllowed(c, false, round) {
		return
	}

	team, ok := loadTeam(c)
	if !ok {
		return
	}

	// 已提交锁定后学生端只读；评委端不受此限制
	if team.Submitted && (req.Submitted == nil || *req.Submitted) {
		utils.Error(c, utils.CodeForbidden, "Team is locked after submission")
		return
	}

	up, err := mappers.MapStudentUpdate(req)
	if err != nil {
		utils.Error(c, utils.CodeInvalidRequest, err.Error())
		return
	}

	// MCA 提交时至少选 3 道题；请求没带选题时按库里已存的算
	if team.Track == models.TrackMCA && req.Submitted != nil && *req.Submitted {
		if services.SelectionCount(team, up.SelectedProblems) < 3 {
			utils.Error(c, utils.CodeInvalidRequest, "At least 3 problem selections are required to submit")
			return
		}
	}

	applyUpdate(c, team, up)
}

// EvaluatorUpdateTeam is the evaluator-side save: evaluator-owned attendance
// snapshots plus marks. It can correct member scalars but can never flip the
// submission lock.
func EvaluatorUpdateTeam(c *gin.Context) {
	var req dto.EvaluatorUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid update: "+err.Error())
		return
	}

	round := 1
	if req.Attendance != nil {
		round = req.Attendance.Round
	} else if req.Round2Marks != nil {
		round = 2
	}
	if !roundToggleAllowed(c, true, round) {
		return
	}

	team, ok := loadTeam(c)
	if !ok {
		return
	}

	up, err := mappers.MapEvaluatorUpdate(req)
	if err != nil {
		utils.Error(c, utils.CodeInvalidRequest, err.Error())
		return
	}
	applyUpdate(c, team, up)
}
