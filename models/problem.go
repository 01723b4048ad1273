// file: models/problem.go
package models

import (
	"time"
)

// Problem 对应题目清单表，按赛道区分
type Problem struct {
	ID          uint32    `gorm:"primarykey" json:"id"`
	ProblemKey  string    `gorm:"size:20;unique;not null" json:"problem_key"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Track       TeamTrack `gorm:"type:enum('btech','mca');not null;default:'btech'" json:"track"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Problem) TableName() string {
	return "hackathon_problem"
}
