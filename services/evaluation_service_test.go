// file: services/evaluation_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkBounds(t *testing.T) {
	tests := []struct {
		name   string
		track  models.TeamTrack
		round  int
		lo, hi float64
	}{
		{"btech round 1", models.TrackBTech, 1, 0, 100},
		{"mca round 1", models.TrackMCA, 1, 0, 20},
		{"btech round 2", models.TrackBTech, 2, 0, 80},
		{"mca round 2", models.TrackMCA, 2, 0, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := MarkBounds(tt.track, tt.round)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestClampMarks(t *testing.T) {
	tests := []struct {
		name  string
		track models.TeamTrack
		round int
		in    float64
		want  float64
	}{
		{"round 2 over bound", models.TrackBTech, 2, 95, 80},
		{"round 2 at bound", models.TrackBTech, 2, 80, 80},
		{"round 2 negative", models.TrackBTech, 2, -5, 0},
		{"round 2 in range", models.TrackBTech, 2, 42.5, 42.5},
		{"mca round 1 over", models.TrackMCA, 1, 21, 20},
		{"btech round 1 over", models.TrackBTech, 1, 101, 100},
		{"zero", models.TrackBTech, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampMarks(tt.track, tt.round, tt.in))
		})
	}
}

func TestRecordEvaluationStampsAndScopes(t *testing.T) {
	team := &models.Team{Track: models.TrackBTech}
	now := time.Now()
	marks := 95.0
	feedback := "solid prototype"

	cols, err := RecordEvaluation(team, 2, &marks, &feedback, now)
	require.NoError(t, err)

	require.NotNil(t, team.Round2.Marks)
	assert.Equal(t, 80.0, *team.Round2.Marks)
	assert.Equal(t, "solid prototype", team.Round2.Feedback)
	require.NotNil(t, team.Round2.EvaluatedAt)
	assert.Equal(t, now, *team.Round2.EvaluatedAt)

	// round 2 写入绝不碰 round 1
	assert.Nil(t, team.Round1.Marks)
	assert.Nil(t, team.Round1.EvaluatedAt)
	for col := range cols {
		assert.NotContains(t, col, "round1_")
	}
}

func TestRecordEvaluationWithoutMarksKeepsEvaluatedAt(t *testing.T) {
	team := &models.Team{Track: models.TrackBTech}
	feedback := "needs work"

	cols, err := RecordEvaluation(team, 1, nil, &feedback, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "needs work", team.Round1.Feedback)
	assert.Nil(t, team.Round1.Marks)
	assert.Nil(t, team.Round1.EvaluatedAt)
	assert.NotContains(t, cols, "round1_evaluated_at")
	assert.Contains(t, cols, "round1_feedback")
}

func TestRecordEvaluationMarksOnlyKeepsStoredFeedback(t *testing.T) {
	team := &models.Team{Track: models.TrackBTech}
	team.Round2.Feedback = "from an earlier save"
	marks := 60.0

	cols, err := RecordEvaluation(team, 2, &marks, nil, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "from an earlier save", team.Round2.Feedback)
	assert.NotContains(t, cols, "round2_feedback")
	assert.Contains(t, cols, "round2_marks")
}

func TestRecordEvaluationRejectsBadRound(t *testing.T) {
	team := &models.Team{}
	marks := 10.0

	_, err := RecordEvaluation(team, 3, &marks, nil, time.Now())
	assert.ErrorIs(t, err, ErrInvalidRound)
}
