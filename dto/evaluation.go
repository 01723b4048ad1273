// file: dto/evaluation.go
package dto

// EvaluationReq writes one round's marks and feedback. Marks is *float64 on
// purpose: a JSON string or boolean fails binding with 1001 rather than being
// coerced, while out-of-range numbers are accepted and clamped downstream.
// Feedback is *string so an omitted field leaves the stored feedback alone.
type EvaluationReq struct {
	Round    int      `json:"round" validate:"required,oneof=1 2"`
	Marks    *float64 `json:"marks" validate:"required"`
	Feedback *string  `json:"feedback"`
}

func (r *EvaluationReq) Validate() error {
	return validate.Struct(r)
}
