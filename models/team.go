// file: models/team.go
package models

import (
	"time"

	"gorm.io/datatypes"
)

// TeamTrack 区分报名赛道，teamId 前缀由赛道决定
type TeamTrack string

const (
	TrackBTech TeamTrack = "btech"
	TrackMCA   TeamTrack = "mca"
)

// TrackPrefix returns the team ID prefix and numeric suffix width for a track.
func TrackPrefix(track TeamTrack) (string, int) {
	switch track {
	case TrackMCA:
		return "MCA", 3
	default:
		return "BTECH", 3
	}
}

// AttendanceSnapshot is one of the four independent attendance sub-records.
// A snapshot is always replaced as a whole, never merged field by field.
type AttendanceSnapshot struct {
	Leader   bool       `json:"leader"`
	Member2  bool       `json:"member2"`
	Member3  bool       `json:"member3"`
	Member4  bool       `json:"member4"`
	MarkedBy string     `gorm:"size:100" json:"marked_by"`
	MarkedAt *time.Time `json:"marked_at"`
}

// EvaluationRound holds one round's marks and feedback.
// Marks stays nil until an evaluator writes it.
type EvaluationRound struct {
	Marks       *float64   `json:"marks"`
	Feedback    string     `gorm:"type:text" json:"feedback"`
	EvaluatedAt *time.Time `json:"evaluated_at"`
}

type Team struct {
	ID     uint32    `gorm:"primarykey" json:"-"`
	TeamID string    `gorm:"size:20;unique;not null" json:"team_id"`
	Track  TeamTrack `gorm:"type:enum('btech','mca');not null;default:'btech'" json:"track"`

	LeaderName       string `gorm:"size:100" json:"leader_name"`
	LeaderEnrollment string `gorm:"size:50" json:"leader_enrollment"`
	LeaderMobile     string `gorm:"size:20" json:"leader_mobile"`
	LeaderEmail      string `gorm:"size:100" json:"leader_email"`

	Member2Name       string `gorm:"size:100" json:"member2_name"`
	Member2Enrollment string `gorm:"size:50" json:"member2_enrollment"`
	Member2Email      string `gorm:"size:100" json:"member2_email"`

	Member3Name       string `gorm:"size:100" json:"member3_name"`
	Member3Enrollment string `gorm:"size:50" json:"member3_enrollment"`
	Member3Email      string `gorm:"size:100" json:"member3_email"`

	Member4Name       string `gorm:"size:100" json:"member4_name"`
	Member4Enrollment string `gorm:"size:50" json:"member4_enrollment"`
	Member4Email      string `gorm:"size:100" json:"member4_email"`

	ProblemStatement string         `gorm:"size:255" json:"problem_statement"`
	SelectedProblems datatypes.JSON `json:"selected_problems"`

	Submitted   bool       `gorm:"default:false" json:"submitted"`
	SubmittedBy string     `gorm:"size:100" json:"submitted_by"`
	SubmittedAt *time.Time `json:"submitted_at"`

	Round1StudentAttendance   AttendanceSnapshot `gorm:"embedded;embeddedPrefix:rnd1_stud_" json:"rnd1_stud"`
	Round1EvaluatorAttendance AttendanceSnapshot `gorm:"embedded;embeddedPrefix:rnd1_eval_" json:"rnd1_eval"`
	Round2StudentAttendance   AttendanceSnapshot `gorm:"embedded;embeddedPrefix:rnd2_stud_" json:"rnd2_stud"`
	Round2EvaluatorAttendance AttendanceSnapshot `gorm:"embedded;embeddedPrefix:rnd2_eval_" json:"rnd2_eval"`

	Round1 EvaluationRound `gorm:"embedded;embeddedPrefix:round1_" json:"round1"`
	Round2 EvaluationRound `gorm:"embedded;embeddedPrefix:round2_" json:"round2"`

	// 只增不删的变更日志，JSON 数组
	ChangeLog datatypes.JSON `json:"change_log"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Team) TableName() string {
	return "hackathon_team"
}
