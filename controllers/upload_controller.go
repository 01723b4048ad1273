// file: controllers/upload_controller.go
package controllers

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/database"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/dto"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/services"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadFile stores one file under the team's upload directory. A short uuid
// prefix keeps two uploads of the same filename from overwriting each other.
func UploadFile(c *gin.Context) {
	team, ok := loadTeam(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "File is required")
		return
	}

	teamDir := services.TeamUploadDir(team.TeamID)
	if err := os.MkdirAll(teamDir, 0o755); err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to create upload directory")
		return
	}

	storedName := uuid.New().String()[:8] + "_" + filepath.Base(file.Filename)
	dst := filepath.Join(teamDir, storedName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to save file")
		return
	}

	log.Printf("File uploaded to: %s", dst)
	utils.Success(c, "File uploaded successfully", gin.H{
		"file_name": storedName,
		"file_path": "/uploads_teams/" + utils.SafeTeamDir(team.TeamID) + "/" + storedName,
	})
}

// ListTeamFiles is the evaluator-side file browser: names and sizes of
// everything a team uploaded.
func ListTeamFiles(c *gin.Context) {
	team, ok := loadTeam(c)
	if !ok {
		return
	}

	files, err := services.ListTeamFiles(team.TeamID)
	if err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to list team files")
		return
	}

	utils.Success(c, "success", gin.H{
		"team_id": team.TeamID,
		"files":   files,
	})
}

// DownloadTeamFile streams one stored upload, as an attachment by default or
// inline with ?inline=true.
func DownloadTeamFile(c *gin.Context) {
	team, ok := loadTeam(c)
	if !ok {
		return
	}

	fileName := c.Param("fileName")
	path, err := services.ResolveTeamFile(team.TeamID, fileName)
	if err != nil {
		utils.Error(c, utils.CodeNotFound, "File not found")
		return
	}

	if c.Query("inline") == "true" {
		c.File(path)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// SubmitProject records the submission receipt (filenames and timestamp
// only, never bytes) and replaces the round-2 student attendance snapshot in
// the same request.
func SubmitProject(c *gin.Context) {
	var req dto.SubmitProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "No files have been uploaded")
		return
	}

	team, ok := loadTeam(c)
	if !ok {
		return
	}

	now := time.Now()

	if req.Attendance != nil {
		if req.Attendance.Round != 2 {
			utils.Error(c, utils.CodeInvalidRequest, "Project submission attendance is round 2 only")
			return
		}
		kind, _ := services.SnapshotFor(false, 2)
		presence := services.Presence{
			Leader:  req.Attendance.Leader != nil && *req.Attendance.Leader,
			Member2: req.Attendance.Member2 != nil && *req.Attendance.Member2,
			Member3: req.Attendance.Member3 != nil && *req.Attendance.Member3,
			Member4: req.Attendance.Member4 != nil && *req.Attendance.Member4,
		}
		cols := services.ReplaceSnapshot(team, kind, presence, req.Attendance.MarkedBy, now)
		if err := database.DB.Model(&models.Team{}).
			Where("team_id = ?", team.TeamID).
			Updates(cols).Error; err != nil {
			utils.Error(c, utils.CodeDownstream, "Failed to update attendance")
			return
		}
	}

	files, err := json.Marshal(req.Files)
	if err != nil {
		utils.Error(c, utils.CodeInvalidRequest, "Invalid file list")
		return
	}

	submission := models.Submission{
		ReceiptID:   uuid.New().String(),
		TeamID:      team.TeamID,
		Files:       files,
		SubmittedAt: now,
	}
	if err := database.DB.Create(&submission).Error; err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to record submission")
		return
	}

	utils.Success(c, "Project submitted successfully", gin.H{
		"receipt_id":      submission.ReceiptID,
		"submission_date": submission.SubmittedAt,
	})
}
