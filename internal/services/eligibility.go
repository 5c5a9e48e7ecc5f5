package services

import (
	"regexp"
	"strconv"
)

type EligibilityStatus string

const (
	Eligible    EligibilityStatus = "eligible"
	NotEligible EligibilityStatus = "not-eligible"
	Unknown     EligibilityStatus = "unknown"
)

// Only the first CGPA clause in the criteria text is honored. Branch lists,
// backlog counts and anything else in the string are informational only.
var cgpaPattern = regexp.MustCompile(`(?i)cgpa\s*>=?\s*(\d+(\.\d+)?)`)

// EvaluateEligibility compares a candidate's CGPA against the first
// "cgpa >= X" clause found in a free-text criteria string. A nil CGPA or a
// criteria string without such a clause yields Unknown.
func EvaluateEligibility(criteria string, cgpa *float64) EligibilityStatus {
	if cgpa == nil {
		return Unknown
	}

	match := cgpaPattern.FindStringSubmatch(criteria)
	if match == nil {
		return Unknown
	}

	required, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return Unknown
	}

	if *cgpa >= required {
		return Eligible
	}
	return NotEligible
}
