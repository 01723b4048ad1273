// file: utils/team_dir.go
package utils

import (
	"strings"
)

// SafeTeamDir maps a team ID to a directory-safe name: anything outside
// [a-zA-Z0-9_-] becomes an underscore.
func SafeTeamDir(teamID string) string {
	var sb strings.Builder
	sb.Grow(len(teamID))
	for i := 0; i < len(teamID); i++ {
		ch := teamID[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '_', ch == '-':
			sb.WriteByte(ch)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
