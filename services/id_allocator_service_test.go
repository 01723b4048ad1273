// file: services/id_allocator_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTeamID(t *testing.T) {
	tests := []struct {
		name   string
		ids    []string
		prefix string
		width  int
		want   string
	}{
		{"first allocation", nil, "BTECH", 3, "BTECH001"},
		{"increments max", []string{"BTECH001", "BTECH002"}, "BTECH", 3, "BTECH003"},
		{"max plus one, not first gap", []string{"P001", "P002", "P004"}, "P", 3, "P005"},
		{"ignores other prefixes", []string{"MCA007", "BTECH002"}, "BTECH", 3, "BTECH003"},
		{"ignores wrong width", []string{"BTECH0009", "BTECH01"}, "BTECH", 3, "BTECH001"},
		{"ignores malformed suffix", []string{"BTECHabc", "BTECH002"}, "BTECH", 3, "BTECH003"},
		{"rolls into extra digit", []string{"MCA999"}, "MCA", 3, "MCA1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextTeamID(tt.ids, tt.prefix, tt.width))
		})
	}
}
