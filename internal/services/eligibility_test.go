package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestEvaluateEligibility(t *testing.T) {
	tests := []struct {
		name     string
		criteria string
		cgpa     *float64
		want     EligibilityStatus
	}{
		{
			name:     "below threshold",
			criteria: "CSE/IT, CGPA >= 8.0, no active backlogs",
			cgpa:     floatPtr(7.9),
			want:     NotEligible,
		},
		{
			name:     "exactly at threshold",
			criteria: "CSE/IT, CGPA >= 8.0, no active backlogs",
			cgpa:     floatPtr(8.0),
			want:     Eligible,
		},
		{
			name:     "above threshold",
			criteria: "CGPA >= 7.5",
			cgpa:     floatPtr(9.1),
			want:     Eligible,
		},
		{
			name:     "no cgpa clause in criteria",
			criteria: "Open to all branches",
			cgpa:     floatPtr(9.0),
			want:     Unknown,
		},
		{
			name:     "missing cgpa on profile",
			criteria: "CGPA >= 6.0",
			cgpa:     nil,
			want:     Unknown,
		},
		{
			name:     "case insensitive clause",
			criteria: "cgpa>=6.5 required",
			cgpa:     floatPtr(6.5),
			want:     Eligible,
		},
		{
			name:     "bare comparison without equals",
			criteria: "CGPA > 7",
			cgpa:     floatPtr(7.0),
			want:     Eligible,
		},
		{
			name:     "only first clause counts",
			criteria: "CGPA >= 6.0 preferred, CGPA >= 9.0 for premium roles",
			cgpa:     floatPtr(6.5),
			want:     Eligible,
		},
		{
			name:     "empty criteria",
			criteria: "",
			cgpa:     floatPtr(8.0),
			want:     Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateEligibility(tt.criteria, tt.cgpa))
		})
	}
}
