// file: dto/team.go
package dto

// AttendanceReq targets exactly one snapshot; which of the four is decided by
// (actor role, Round). Flags are typed *bool so anything that is not a JSON
// boolean fails binding instead of being coerced; a nil flag means absent and
// is stored as false (a snapshot write always replaces all four flags).
type AttendanceReq struct {
	Round    int    `json:"round" validate:"required,oneof=1 2"`
	Leader   *bool  `json:"leader"`
	Member2  *bool  `json:"member2"`
	Member3  *bool  `json:"member3"`
	Member4  *bool  `json:"member4"`
	MarkedBy string `json:"marked_by"`
}

func (r *AttendanceReq) Validate() error {
	return validate.Struct(r)
}

// ProblemSelection is one chosen problem key for the multi-select track.
type ProblemSelection struct {
	Key  string `json:"key" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// StudentUpdateReq is the student-side save. Member scalars are always
// overwritten from here (last write wins); Submitted is only writable through
// this variant, never through EvaluatorUpdateReq.
type StudentUpdateReq struct {
	LeaderName       string `json:"leader_name"`
	LeaderEnrollment string `json:"leader_enrollment"`
	LeaderMobile     string `json:"leader_mobile"`

	Member2Name       string `json:"member2_name"`
	Member2Enrollment string `json:"member2_enrollment"`
	Member3Name       string `json:"member3_name"`
	Member3Enrollment string `json:"member3_enrollment"`
	Member4Name       string `json:"member4_name"`
	Member4Enrollment string `json:"member4_enrollment"`

	ProblemStatement *string            `json:"problem_statement"`
	SelectedProblems []ProblemSelection `json:"selected_problems" validate:"omitempty,min=1,dive"`

	Submitted   *bool  `json:"submitted"`
	SubmittedBy string `json:"submitted_by"`

	Attendance *AttendanceReq `json:"attendance"`
}

func (r *StudentUpdateReq) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Attendance != nil {
		return r.Attendance.Validate()
	}
	return nil
}

// EvaluatorUpdateReq is the evaluator-side save: attendance for the
// evaluator-owned snapshots plus optional marks. It carries no Submitted
// field at all, so an evaluator save can never flip the lock.
type EvaluatorUpdateReq struct {
	EvaluatorName string `json:"evaluator_name" validate:"required"`

	LeaderName       string `json:"leader_name"`
	LeaderEnrollment string `json:"leader_enrollment"`
	LeaderMobile     string `json:"leader_mobile"`

	Member2Name       string `json:"member2_name"`
	Member2Enrollment string `json:"member2_enrollment"`
	Member3Name       string `json:"member3_name"`
	Member3Enrollment string `json:"member3_enrollment"`
	Member4Name       string `json:"member4_name"`
	Member4Enrollment string `json:"member4_enrollment"`

	Attendance  *AttendanceReq `json:"attendance"`
	Round1Marks *float64       `json:"round1_marks"`
	Round2Marks *float64       `json:"round2_marks"`
	Feedback    *string        `json:"feedback"`
}

func (r *EvaluatorUpdateReq) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Attendance != nil {
		return r.Attendance.Validate()
	}
	return nil
}

// RegisterTeamReq creates a record; the team ID itself is allocated
// server-side and never accepted from the client.
type RegisterTeamReq struct {
	Track string `json:"track" validate:"required,oneof=btech mca"`

	LeaderName       string `json:"leader_name" validate:"required"`
	LeaderEnrollment string `json:"leader_enrollment" validate:"required"`
	LeaderMobile     string `json:"leader_mobile"`
	LeaderEmail      string `json:"leader_email" validate:"omitempty,email"`

	Member2Name       string `json:"member2_name"`
	Member2Enrollment string `json:"member2_enrollment"`
	Member2Email      string `json:"member2_email" validate:"omitempty,email"`
	Member3Name       string `json:"member3_name"`
	Member3Enrollment string `json:"member3_enrollment"`
	Member3Email      string `json:"member3_email" validate:"omitempty,email"`
	Member4Name       string `json:"member4_name"`
	Member4Enrollment string `json:"member4_enrollment"`
	Member4Email      string `json:"member4_email" validate:"omitempty,email"`
}

func (r *RegisterTeamReq) Validate() error {
	return validate.Struct(r)
}

// SubmitProjectReq records the final project submission receipt and replaces
// the round-2 student attendance snapshot in the same request.
type SubmitProjectReq struct {
	Files      []string       `json:"files" validate:"required,min=1"`
	Attendance *AttendanceReq `json:"attendance"`
}

func (r *SubmitProjectReq) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Attendance != nil {
		return r.Attendance.Validate()
	}
	return nil
}
