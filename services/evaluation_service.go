// file: services/evaluation_service.go
package services

import (
	"time"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
)

// MarkBounds returns the valid marks range for a round. Round 1 is bounded
// per track (BTech papers are scored out of 100, MCA out of 20); round 2 is
// out of 80 for everyone.
func MarkBounds(track models.TeamTrack, round int) (float64, float64) {
	if round == 1 {
		if track == models.TrackMCA {
			return 0, 20
		}
		return 0, 100
	}
	return 0, 80
}

// ClampMarks pins marks to the round's bounds. Out-of-range input is clamped
// silently, never rejected.
func ClampMarks(track models.TeamTrack, round int, marks float64) float64 {
	lo, hi := MarkBounds(track, round)
	if marks < lo {
		return lo
	}
	if marks > hi {
		return hi
	}
	return marks
}

// RecordEvaluation writes one round's marks and feedback onto the model and
// returns the column map for that round only. Marks and feedback are each
// written only when supplied: a marks-only save never rewrites stored
// feedback, and a feedback-only save never stamps evaluatedAt. Round 2 never
// looks at round 1.
func RecordEvaluation(team *models.Team, round int, marks *float64, feedback *string, now time.Time) (map[string]interface{}, error) {
	if round != 1 && round != 2 {
		return nil, ErrInvalidRound
	}

	target := &team.Round1
	prefix := "round1"
	if round == 2 {
		target = &team.Round2
		prefix = "round2"
	}

	cols := map[string]interface{}{}
	if feedback != nil {
		target.Feedback = *feedback
		cols[prefix+"_feedback"] = *feedback
	}

	if marks != nil {
		clamped := ClampMarks(team.Track, round, *marks)
		target.Marks = &clamped
		target.EvaluatedAt = &now
		cols[prefix+"_marks"] = clamped
		cols[prefix+"_evaluated_at"] = now
	}

	return cols, nil
}
