// file: services/team_merge_service.go
package services

import (
	"encoding/json"
	"time"

	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
)

// MemberState is one member slot's audited view: name, enrollment and the
// presence flag of the snapshot the update targeted. Empty and missing
// strings are both "" so a blank form field never produces a spurious diff.
type MemberState struct {
	Name       string `json:"name"`
	Enrollment string `json:"enrollment"`
	Present    bool   `json:"present"`
}

// ChangeEntry is one append-only change-log record. Entries are never edited
// or pruned once written.
type ChangeEntry struct {
	Slot string      `json:"slot"`
	Old  MemberState `json:"old"`
	New  MemberState `json:"new"`
	At   time.Time   `json:"at"`
}

// AttendanceChange is the normalized attendance part of an update.
type AttendanceChange struct {
	Kind     SnapshotKind
	Presence Presence
	MarkedBy string
}

// TeamUpdate is the normalized partial update the merge operates on. The two
// request variants (student / evaluator) both map into this; IsEvaluator
// records which one, because only student saves may touch Submitted.
type TeamUpdate struct {
	IsEvaluator bool

	LeaderName       string
	LeaderEnrollment string
	LeaderMobile     string

	Member2Name       string
	Member2Enrollment string
	Member3Name       string
	Member3Enrollment string
	Member4Name       string
	Member4Enrollment string

	ProblemStatement *string
	// key → title, replaces the stored selection wholesale when non-nil
	SelectedProblems map[string]string

	Submitted   *bool
	SubmittedBy string

	Attendance *AttendanceChange

	Round1Marks *float64
	Round2Marks *float64
	Feedback    *string
}

type slotState struct {
	slot          string
	oldName       string
	oldEnrollment string
	newName       string
	newEnrollment string
	oldPresent    bool
	newPresent    bool
}

// memberSlots lines up stored vs incoming state for the four slots. Presence
// is taken from the snapshot the update targets; with no attendance in the
// update, old and new presence are identical and cannot diff.
func memberSlots(team *models.Team, up *TeamUpdate) []slotState {
	var oldP, newP Presence
	if up.Attendance != nil {
		snap := snapshotField(team, up.Attendance.Kind)
		oldP = Presence{Leader: snap.Leader, Member2: snap.Member2, Member3: snap.Member3, Member4: snap.Member4}
		newP = up.Attendance.Presence
	}

	return []slotState{
		{"leader", team.LeaderName, team.LeaderEnrollment, up.LeaderName, up.LeaderEnrollment, oldP.Leader, newP.Leader},
		{"member2", team.Member2Name, team.Member2Enrollment, up.Member2Name, up.Member2Enrollment, oldP.Member2, newP.Member2},
		{"member3", team.Member3Name, team.Member3Enrollment, up.Member3Name, up.Member3Enrollment, oldP.Member3, newP.Member3},
		{"member4", team.Member4Name, team.Member4Enrollment, up.Member4Name, up.Member4Enrollment, oldP.Member4, newP.Member4},
	}
}

// appendChanges diffs the four member slots and appends one entry per changed
// slot to the end of the existing log.
func appendChanges(team *models.Team, up *TeamUpdate, now time.Time) ([]ChangeEntry, error) {
	var log []ChangeEntry
	if len(team.ChangeLog) > 0 {
		if err := json.Unmarshal(team.ChangeLog, &log); err != nil {
			return nil, err
		}
	}

	appended := false
	for _, s := range memberSlots(team, up) {
		old := MemberState{Name: s.oldName, Enrollment: s.oldEnrollment, Present: s.oldPresent}
		next := MemberState{Name: s.newName, Enrollment: s.newEnrollment, Present: s.newPresent}
		if old != next {
			log = append(log, ChangeEntry{Slot: s.slot, Old: old, New: next, At: now})
			appended = true
		}
	}
	if !appended {
		return nil, nil
	}
	return log, nil
}

// MergeTeamUpdate applies a partial update onto the loaded record and returns
// the field-scoped column map to persist. Only columns the update owns appear
// in the map; persisting it can never discard a concurrent write to anything
// else. Member scalars are last-write-wins; the change log is the audit
// trail, it does not block the overwrite.
func MergeTeamUpdate(team *models.Team, up *TeamUpdate, now time.Time) (map[string]interface{}, error) {
	cols := map[string]interface{}{}

	// 变更日志先行：diff 需要合并前的旧值
	newLog, err := appendChanges(team, up, now)
	if err != nil {
		return nil, err
	}
	if newLog != nil {
		raw, err := json.Marshal(newLog)
		if err != nil {
			return nil, err
		}
		team.ChangeLog = raw
		cols["change_log"] = raw
	}

	team.LeaderName = up.LeaderName
	team.LeaderEnrollment = up.LeaderEnrollment
	team.LeaderMobile = up.LeaderMobile
	team.Member2Name = up.Member2Name
	team.Member2Enrollment = up.Member2Enrollment
	team.Member3Name = up.Member3Name
	team.Member3Enrollment = up.Member3Enrollment
	team.Member4Name = up.Member4Name
	team.Member4Enrollment = up.Member4Enrollment
	cols["leader_name"] = up.LeaderName
	cols["leader_enrollment"] = up.LeaderEnrollment
	cols["leader_mobile"] = up.LeaderMobile
	cols["member2_name"] = up.Member2Name
	cols["member2_enrollment"] = up.Member2Enrollment
	cols["member3_name"] = up.Member3Name
	cols["member3_enrollment"] = up.Member3Enrollment
	cols["member4_name"] = up.Member4Name
	cols["member4_enrollment"] = up.Member4Enrollment

	if up.ProblemStatement != nil {
		team.ProblemStatement = *up.ProblemStatement
		cols["problem_statement"] = *up.ProblemStatement
	}

	if up.SelectedProblems != nil {
		raw, err := json.Marshal(up.SelectedProblems)
		if err != nil {
			return nil, err
		}
		team.SelectedProblems = raw
		cols["selected_problems"] = raw
	}

	// 锁状态只接受学生端写入；评委保存考勤/打分绝不能顺带翻转它
	if !up.IsEvaluator && up.Submitted != nil {
		wasSubmitted := team.Submitted
		team.Submitted = *up.Submitted
		cols["submitted"] = *up.Submitted

		if *up.Submitted && !wasSubmitted && up.SubmittedBy != "" {
			team.SubmittedBy = up.SubmittedBy
			team.SubmittedAt = &now
			cols["submitted_by"] = up.SubmittedBy
			cols["submitted_at"] = now
		}
		// 解锁时保留原 submittedBy/submittedAt，不清空
	}

	if up.Attendance != nil {
		snapCols := ReplaceSnapshot(team, up.Attendance.Kind, up.Attendance.Presence, up.Attendance.MarkedBy, now)
		for k, v := range snapCols {
			cols[k] = v
		}
	}

	if up.Round1Marks != nil {
		evalCols, err := RecordEvaluation(team, 1, up.Round1Marks, up.Feedback, now)
		if err != nil {
			return nil, err
		}
		for k, v := range evalCols {
			cols[k] = v
		}
	}
	if up.Round2Marks != nil {
		evalCols, err := RecordEvaluation(team, 2, up.Round2Marks, up.Feedback, now)
		if err != nil {
			return nil, err
		}
		for k, v := range evalCols {
			cols[k] = v
		}
	}
	// feedback 不带分数也要落库；轮次跟随本次更新针对的快照，缺省第 1 轮
	if up.Feedback != nil && up.Round1Marks == nil && up.Round2Marks == nil {
		round := 1
		if up.Attendance != nil {
			round = up.Attendance.Kind.Round()
		}
		evalCols, err := RecordEvaluation(team, round, nil, up.Feedback, now)
		if err != nil {
			return nil, err
		}
		for k, v := range evalCols {
			cols[k] = v
		}
	}

	return cols, nil
}

// SelectionCount reports how many problems a save would leave selected: the
// incoming selection when the update carries one, otherwise the stored one.
func SelectionCount(team *models.Team, incoming map[string]string) int {
	if incoming != nil {
		return len(incoming)
	}
	var stored map[string]string
	if len(team.SelectedProblems) > 0 {
		if err := json.Unmarshal(team.SelectedProblems, &stored); err != nil {
			return 0
		}
	}
	return len(stored)
}
