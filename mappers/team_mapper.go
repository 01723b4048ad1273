// file: mappers/team_mapper.go
package mappers

import (
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/dto"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/models"
	"github.com/bhvym-sudo/AlgoNetHackathonPortal/services"
)

func presenceFromReq(req *dto.AttendanceReq) services.Presence {
	asBool := func(p *bool) bool { return p != nil && *p }
	return services.Presence{
		Leader:  asBool(req.Leader),
		Member2: asBool(req.Member2),
		Member3: asBool(req.Member3),
		Member4: asBool(req.Member4),
	}
}

func attendanceChange(req *dto.AttendanceReq, evaluator bool, fallbackMarkedBy string) (*services.AttendanceChange, error) {
	if req == nil {
		return nil, nil
	}
	kind, err := services.SnapshotFor(evaluator, req.Round)
	if err != nil {
		return nil, err
	}
	markedBy := req.MarkedBy
	if markedBy == "" {
		markedBy = fallbackMarkedBy
	}
	return &services.AttendanceChange{
		Kind:     kind,
		Presence: presenceFromReq(req),
		MarkedBy: markedBy,
	}, nil
}

// MapStudentUpdate normalizes a student save into the merge input.
func MapStudentUpdate(req dto.StudentUpdateReq) (*services.TeamUpdate, error) {
	att, err := attendanceChange(req.Attendance, false, req.SubmittedBy)
	if err != nil {
		return nil, err
	}

	var selected map[string]string
	if req.SelectedProblems != nil {
		selected = make(map[string]string, len(req.SelectedProblems))
		for _, p := range req.SelectedProblems {
			selected[p.Key] = p.Text
		}
	}

	return &services.TeamUpdate{
		IsEvaluator:       false,
		LeaderName:        req.LeaderName,
		LeaderEnrollment:  req.LeaderEnrollment,
		LeaderMobile:      req.LeaderMobile,
		Member2Name:       req.Member2Name,
		Member2Enrollment: req.Member2Enrollment,
		Member3Name:       req.Member3Name,
		Member3Enrollment: req.Member3Enrollment,
		Member4Name:       req.Member4Name,
		Member4Enrollment: req.Member4Enrollment,
		ProblemStatement:  req.ProblemStatement,
		SelectedProblems:  selected,
		Submitted:         req.Submitted,
		SubmittedBy:       req.SubmittedBy,
		Attendance:        att,
	}, nil
}

// MapEvaluatorUpdate normalizes an evaluator save. No Submitted field exists
// on the request, and IsEvaluator keeps the merge from ever writing the lock.
func MapEvaluatorUpdate(req dto.EvaluatorUpdateReq) (*services.TeamUpdate, error) {
	att, err := attendanceChange(req.Attendance, true, req.EvaluatorName)
	if err != nil {
		return nil, err
	}

	return &services.TeamUpdate{
		IsEvaluator:       true,
		LeaderName:        req.LeaderName,
		LeaderEnrollment:  req.LeaderEnrollment,
		LeaderMobile:      req.LeaderMobile,
		Member2Name:       req.Member2Name,
		Member2Enrollment: req.Member2Enrollment,
		Member3Name:       req.Member3Name,
		Member3Enrollment: req.Member3Enrollment,
		Member4Name:       req.Member4Name,
		Member4Enrollment: req.Member4Enrollment,
		Attendance:        att,
		Round1Marks:       req.Round1Marks,
		Round2Marks:       req.Round2Marks,
		Feedback:          req.Feedback,
	}, nil
}

// MapRegistration builds a fresh record with every sub-record at its explicit
// zero value, so later readers never have to null-check snapshots or rounds.
func MapRegistration(req dto.RegisterTeamReq) models.Team {
	return models.Team{
		Track:             models.TeamTrack(req.Track),
		LeaderName:        req.LeaderName,
		LeaderEnrollment:  req.LeaderEnrollment,
		LeaderMobile:      req.LeaderMobile,
		LeaderEmail:       req.LeaderEmail,
		Member2Name:       req.Member2Name,
		Member2Enrollment: req.Member2Enrollment,
		Member2Email:      req.Member2Email,
		Member3Name:       req.Member3Name,
		Member3Enrollment: req.Member3Enrollment,
		Member3Email:      req.Member3Email,
		Member4Name:       req.Member4Name,
		Member4Enrollment: req.Member4Enrollment,
		Member4Email:      req.Member4Email,
		Submitted:         false,
		ChangeLog:         []byte("[]"),
		SelectedProblems:  []byte("{}"),
	}
}
