// file: services/attendance_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotFor(t *testing.T) {
	tests := []struct {
		name      string
		evaluator bool
		round     int
		want      SnapshotKind
		wantErr   bool
	}{
		{"student round 1", false, 1, SnapshotStudentRound1, false},
		{"evaluator round 1", true, 1, SnapshotEvaluatorRound1, false},
		{"student round 2", false, 2, SnapshotStudentRound2, false},
		{"evaluator round 2", true, 2, SnapshotEvaluatorRound2, false},
		{"round 0", false, 0, "", true},
		{"round 3", true, 3, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SnapshotFor(tt.evaluator, tt.round)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplaceSnapshotOverwritesWholesale(t *testing.T) {
	team := &models.Team{}
	old := time.Now().Add(-time.Hour)
	team.Round1StudentAttendance = models.AttendanceSnapshot{
		Leader: true, Member2: true, Member3: true, Member4: true,
		MarkedBy: "someone", MarkedAt: &old,
	}

	now := time.Now()
	cols := ReplaceSnapshot(team, SnapshotStudentRound1, Presence{Leader: true}, "Aarav", now)

	snap := team.Round1StudentAttendance
	assert.True(t, snap.Leader)
	// 没带的标志写 false，而不是保留旧值
	assert.False(t, snap.Member2)
	assert.False(t, snap.Member3)
	assert.False(t, snap.Member4)
	assert.Equal(t, "Aarav", snap.MarkedBy)
	assert.Equal(t, now, *snap.MarkedAt)

	assert.Equal(t, true, cols["rnd1_stud_leader"])
	assert.Equal(t, false, cols["rnd1_stud_member2"])
	assert.Equal(t, now, cols["rnd1_stud_marked_at"])
	assert.Len(t, cols, 6)
}

func TestReplaceSnapshotDoesNotTouchOtherSnapshots(t *testing.T) {
	team := &models.Team{}
	marked := time.Now().Add(-time.Minute)
	student1 := models.AttendanceSnapshot{Leader: true, Member2: true, MarkedBy: "Aarav", MarkedAt: &marked}
	team.Round1StudentAttendance = student1
	team.Round2StudentAttendance = student1
	team.Round2EvaluatorAttendance = student1

	cols := ReplaceSnapshot(team, SnapshotEvaluatorRound1, Presence{Leader: true}, "Dr. Rao", time.Now())

	assert.Equal(t, student1, team.Round1StudentAttendance)
	assert.Equal(t, student1, team.Round2StudentAttendance)
	assert.Equal(t, student1, team.Round2EvaluatorAttendance)
	for col := range cols {
		assert.Contains(t, col, "rnd1_eval_")
	}
}

func TestReplaceSnapshotIdempotentExceptMarkedAt(t *testing.T) {
	team := &models.Team{}
	p := Presence{Leader: true, Member2: true}

	t1 := time.Now()
	ReplaceSnapshot(team, SnapshotStudentRound1, p, "Aarav", t1)
	first := team.Round1StudentAttendance

	t2 := t1.Add(time.Minute)
	ReplaceSnapshot(team, SnapshotStudentRound1, p, "Aarav", t2)
	second := team.Round1StudentAttendance

	assert.Equal(t, first.Leader, second.Leader)
	assert.Equal(t, first.Member2, second.Member2)
	assert.Equal(t, first.Member3, second.Member3)
	assert.Equal(t, first.Member4, second.Member4)
	assert.Equal(t, first.MarkedBy, second.MarkedBy)
	// 重复提交内容不变，但 markedAt 总是前移
	assert.True(t, second.MarkedAt.After(*first.MarkedAt))
}

func TestStudentAndEvaluatorSnapshotsCoexist(t *testing.T) {
	team := &models.Team{}

	ReplaceSnapshot(team, SnapshotStudentRound1, Presence{Leader: true, Member2: true}, "Aarav", time.Now())
	ReplaceSnapshot(team, SnapshotEvaluatorRound1, Presence{Leader: true}, "Dr. Rao", time.Now())

	assert.True(t, team.Round1StudentAttendance.Leader)
	assert.True(t, team.Round1StudentAttendance.Member2)
	assert.True(t, team.Round1EvaluatorAttendance.Leader)
	assert.False(t, team.Round1EvaluatorAttendance.Member2)
}
