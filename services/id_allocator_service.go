// file: services/id_allocator_service.go
package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"gorm.io/gorm"
)

var ErrAllocationFailed = errors.New("could not allocate a team id")

const allocationRetries = 3

// NextTeamID computes the successor of the highest existing ID carrying the
// prefix: max numeric suffix + 1, zero-padded. Gaps are never refilled, so
// {P001, P002, P004} yields P005.
func NextTeamID(ids []string, prefix string, width int) string {
	pattern := regexp.MustCompile(fmt.Sprintf(`^%s\d{%d}$`, regexp.QuoteMeta(prefix), width))

	maxID := 0
	for _, id := range ids {
		if !pattern.MatchString(id) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}

	return fmt.Sprintf("%s%0*d", prefix, width, maxID+1)
}

// RegisterTeam allocates the next ID for the team's track and inserts the
// record. Two concurrent registrations can compute the same candidate; the
// unique index on team_id makes the loser fail with a duplicate key, and we
// rescan and retry a bounded number of times before giving up.
func RegisterTeam(db *gorm.DB, team *models.Team) error {
	prefix, width := models.TrackPrefix(team.Track)

	for attempt := 0; attempt < allocationRetries; attempt++ {
		var ids []string
		if err := db.Model(&models.Team{}).
			Where("team_id LIKE ?", prefix+"%").
			Pluck("team_id", &ids).Error; err != nil {
			return err
		}

		team.TeamID = NextTeamID(ids, prefix, width)
		err := db.Create(team).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		team.ID = 0 // 主键清零，重插
	}

	return ErrAllocationFailed
}
