// file: models/session.go
package models

// SessionRole 登录会话角色（学生端不登录，由功能开关放行）
type SessionRole string

const (
	RoleAdmin     SessionRole = "admin"
	RoleEvaluator SessionRole = "evaluator"
)

// SessionCookieName returns the cookie a role's session token is stored in.
func SessionCookieName(role SessionRole) string {
	if role == RoleAdmin {
		return "admin_session"
	}
	return "evaluator_session"
}
