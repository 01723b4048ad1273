// file: mappers/team_mapper_test.go
package mappers

import (
	"testing"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/dto"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestMapRegistrationSeedsZeroValues(t *testing.T) {
	team := MapRegistration(dto.RegisterTeamReq{
		Track:            "btech",
		LeaderName:       "Aarav",
		LeaderEnrollment: "EN001",
	})

	assert.Equal(t, models.TrackBTech, team.Track)
	assert.False(t, team.Submitted)
	assert.Empty(t, team.TeamID) // 由分配器生成，不接受客户端传入
	// 子记录显式置零，下游读取无需判空
	assert.Equal(t, []byte("[]"), []byte(team.ChangeLog))
	assert.Equal(t, []byte("{}"), []byte(team.SelectedProblems))
	assert.False(t, team.Round1StudentAttendance.Leader)
	assert.Nil(t, team.Round1StudentAttendance.MarkedAt)
	assert.Nil(t, team.Round1.Marks)
	assert.Nil(t, team.Round2.Marks)
}

func TestMapStudentUpdateTargetsStudentSnapshot(t *testing.T) {
	up, err := MapStudentUpdate(dto.StudentUpdateReq{
		LeaderName:  "Aarav",
		SubmittedBy: "Aarav",
		Attendance: &dto.AttendanceReq{
			Round:   1,
			Leader:  boolPtr(true),
			Member2: boolPtr(true),
		},
	})
	require.NoError(t, err)

	assert.False(t, up.IsEvaluator)
	require.NotNil(t, up.Attendance)
	assert.Equal(t, services.SnapshotStudentRound1, up.Attendance.Kind)
	assert.True(t, up.Attendance.Presence.Leader)
	assert.True(t, up.Attendance.Presence.Member2)
	assert.False(t, up.Attendance.Presence.Member3)
	// markedBy 缺省回落到提交人
	assert.Equal(t, "Aarav", up.Attendance.MarkedBy)
}

func TestMapStudentUpdateFlattensSelections(t *testing.T) {
	up, err := MapStudentUpdate(dto.StudentUpdateReq{
		SelectedProblems: []dto.ProblemSelection{
			{Key: "prblm1", Text: "Smart irrigation"},
			{Key: "prblm4", Text: "Campus navigation"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"prblm1": "Smart irrigation",
		"prblm4": "Campus navigation",
	}, up.SelectedProblems)
}

func TestMapEvaluatorUpdateTargetsEvaluatorSnapshot(t *testing.T) {
	marks := 18.0
	up, err := MapEvaluatorUpdate(dto.EvaluatorUpdateReq{
		EvaluatorName: "Dr. Rao",
		Attendance: &dto.AttendanceReq{
			Round:  2,
			Leader: boolPtr(true),
		},
		Round2Marks: &marks,
	})
	require.NoError(t, err)

	assert.True(t, up.IsEvaluator)
	assert.Nil(t, up.Submitted) // 评委更新根本不携带锁字段
	require.NotNil(t, up.Attendance)
	assert.Equal(t, services.SnapshotEvaluatorRound2, up.Attendance.Kind)
	assert.Equal(t, "Dr. Rao", up.Attendance.MarkedBy)
	assert.Equal(t, &marks, up.Round2Marks)
}

func TestMapEvaluatorUpdateRejectsBadRound(t *testing.T) {
	_, err := MapEvaluatorUpdate(dto.EvaluatorUpdateReq{
		EvaluatorName: "Dr. Rao",
		Attendance:    &dto.AttendanceReq{Round: 5},
	})
	assert.Error(t, err)
}
