// file: services/settings_service.go
package services

import (
	"encoding/json"
	"time"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/database"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
)

const settingsCacheKey = "hackathon:settings"

// GetSettings loads the toggle row through a short-lived Redis cache. The
// gate middleware hits this on every gated request, so the row itself is read
// at most once per TTL. A missing row is created with everything off.
func GetSettings() (models.EventSettings, error) {
	var settings models.EventSettings

	if database.RDB != nil {
		val, err := database.RDB.Get(database.Ctx, settingsCacheKey).Result()
		if err == nil && json.Unmarshal([]byte(val), &settings) == nil {
			return settings, nil
		}
	}

	if err := database.DB.FirstOrCreate(&settings).Error; err != nil {
		return settings, err
	}

	if database.RDB != nil {
		if jsonData, err := json.Marshal(settings); err == nil {
			database.RDB.Set(database.Ctx, settingsCacheKey, jsonData, 15*time.Second)
		}
	}

	return settings, nil
}

// SaveSettings replaces all four toggles and drops the cache so the new gate
// state takes effect immediately, not after the TTL.
func SaveSettings(settings *models.EventSettings) error {
	if err := database.DB.Save(settings).Error; err != nil {
		return err
	}
	if database.RDB != nil {
		database.RDB.Del(database.Ctx, settingsCacheKey)
	}
	return nil
}

// ToggleEnabled resolves one (actor, round) toggle by the snapshot kind that
// write would target.
func ToggleEnabled(settings models.EventSettings, kind SnapshotKind) bool {
	switch kind {
	case SnapshotStudentRound1:
		return settings.StudentRound1
	case SnapshotEvaluatorRound1:
		return settings.EvaluatorRound1
	case SnapshotStudentRound2:
		return settings.StudentRound2
	default:
		return settings.EvaluatorRound2
	}
}
