// file: utils/team_dir_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeTeamDir(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BTECH001", "BTECH001"},
		{"MCA-007_x", "MCA-007_x"},
		{"../etc/passwd", "___etc_passwd"},
		{"team id", "team_id"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeTeamDir(tt.in), tt.in)
	}
}
