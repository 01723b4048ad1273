// file: dto/auth.go
package dto

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginReq) Validate() error {
	return validate.Struct(r)
}
