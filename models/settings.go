// file: models/settings.go
package models

import (
	"time"
)

// EventSettings is the single row of feature toggles the admin flips to open
// or close each round for each actor class. The gate middleware reads it
// before any team route runs.
type EventSettings struct {
	ID              uint32    `gorm:"primarykey" json:"-"`
	StudentRound1   bool      `gorm:"default:false" json:"student_round1"`
	EvaluatorRound1 bool      `gorm:"default:false" json:"evaluator_round1"`
	StudentRound2   bool      `gorm:"default:false" json:"student_round2"`
	EvaluatorRound2 bool      `gorm:"default:false" json:"evaluator_round2"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (EventSettings) TableName() string {
	return "hackathon_settings"
}
