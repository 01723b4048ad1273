// file: services/attendance_service.go
package services

import (
	"errors"
	"time"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
)

// SnapshotKind names one of the four attendance sub-records. The value is the
// column prefix the snapshot lives under.
type SnapshotKind string

const (
	SnapshotStudentRound1   SnapshotKind = "rnd1_stud"
	SnapshotEvaluatorRound1 SnapshotKind = "rnd1_eval"
	SnapshotStudentRound2   SnapshotKind = "rnd2_stud"
	SnapshotEvaluatorRound2 SnapshotKind = "rnd2_eval"
)

var ErrInvalidRound = errors.New("round must be 1 or 2")

// Round reports which round a snapshot belongs to.
func (k SnapshotKind) Round() int {
	if k == SnapshotStudentRound2 || k == SnapshotEvaluatorRound2 {
		return 2
	}
	return 1
}

// SnapshotFor picks the snapshot a write targets. Students can only ever
// reach the _stud snapshots and evaluators the _eval ones, so ownership is
// enforced by construction rather than checked later.
func SnapshotFor(evaluator bool, round int) (SnapshotKind, error) {
	switch {
	case round == 1 && !evaluator:
		return SnapshotStudentRound1, nil
	case round == 1 && evaluator:
		return SnapshotEvaluatorRound1, nil
	case round == 2 && !evaluator:
		return SnapshotStudentRound2, nil
	case round == 2 && evaluator:
		return SnapshotEvaluatorRound2, nil
	default:
		return "", ErrInvalidRound
	}
}

// Presence is the full set of four flags. A caller always supplies all four;
// an absent flag in the request is false, not "unchanged".
type Presence struct {
	Leader  bool
	Member2 bool
	Member3 bool
	Member4 bool
}

// snapshotField returns the targeted snapshot on the model.
func snapshotField(team *models.Team, kind SnapshotKind) *models.AttendanceSnapshot {
	switch kind {
	case SnapshotStudentRound1:
		return &team.Round1StudentAttendance
	case SnapshotEvaluatorRound1:
		return &team.Round1EvaluatorAttendance
	case SnapshotStudentRound2:
		return &team.Round2StudentAttendance
	default:
		return &team.Round2EvaluatorAttendance
	}
}

// ReplaceSnapshot overwrites the targeted snapshot wholesale: four flags,
// markedBy and markedAt together. It returns the column map for exactly that
// snapshot's six columns, so a concurrent write to any other snapshot is
// never clobbered. Re-submitting identical flags still bumps markedAt.
func ReplaceSnapshot(team *models.Team, kind SnapshotKind, p Presence, markedBy string, now time.Time) map[string]interface{} {
	snap := snapshotField(team, kind)
	snap.Leader = p.Leader
	snap.Member2 = p.Member2
	snap.Member3 = p.Member3
	snap.Member4 = p.Member4
	snap.MarkedBy = markedBy
	snap.MarkedAt = &now

	prefix := string(kind)
	return map[string]interface{}{
		prefix + "_leader":    p.Leader,
		prefix + "_member2":   p.Member2,
		prefix + "_member3":   p.Member3,
		prefix + "_member4":   p.Member4,
		prefix + "_marked_by": markedBy,
		prefix + "_marked_at": now,
	}
}
