// file: controllers/admin_team_controller.go
package controllers

import (
	"strconv"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/database"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminGetTeams 分页列出队伍，支持按 teamId/队长搜索
func AdminGetTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	var teams []models.Team
	var total int64

	db := database.DB.Model(&models.Team{})
	if search != "" {
		db = db.Where("team_id LIKE ? OR leader_name LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if track := c.Query("track"); track != "" {
		db = db.Where("track = ?", track)
	}

	db.Count(&total)
	if err := db.Order("team_id asc").Offset((page - 1) * limit).Limit(limit).Find(&teams).Error; err != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to fetch teams")
		return
	}

	utils.Success(c, "success", gin.H{
		"total": total,
		"page":  page,
		"teams": teams,
	})
}

// AdminDeleteAllTeams is the maintenance bulk delete. Not part of any normal
// flow; records are never deleted otherwise.
func AdminDeleteAllTeams(c *gin.Context) {
	result := database.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Team{})
	if result.Error != nil {
		utils.Error(c, utils.CodeDownstream, "Failed to delete teams")
		return
	}
	utils.Success(c, "All teams deleted", gin.H{"deleted": result.RowsAffected})
}
