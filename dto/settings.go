// file: dto/settings.go
package dto

// SettingsReq replaces all four toggles at once. Pointers keep the write
// strict: a missing or non-boolean toggle is a 1001, not a silent false.
type SettingsReq struct {
	StudentRound1   *bool `json:"student_round1" validate:"required"`
	EvaluatorRound1 *bool `json:"evaluator_round1" validate:"required"`
	StudentRound2   *bool `json:"student_round2" validate:"required"`
	EvaluatorRound2 *bool `json:"evaluator_round2" validate:"required"`
}

func (r *SettingsReq) Validate() error {
	return validate.Struct(r)
}
