// file: models/submission.go
package models

import (
	"time"

	"gorm.io/datatypes"
)

// Submission is the project-submission receipt. Only filenames are recorded
// here, never file bytes; the files themselves live under uploads_teams/.
type Submission struct {
	ID          uint64         `gorm:"primarykey" json:"-"`
	ReceiptID   string         `gorm:"size:36;unique;not null" json:"receipt_id"`
	TeamID      string         `gorm:"size:20;not null;index" json:"team_id"`
	Files       datatypes.JSON `json:"files"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

func (Submission) TableName() string {
	return "hackathon_submission"
}
