// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gpa converts course transcripts to the US 4.0 grade-point scale.
// classify.go recognises course records within single transcript lines.
package gpa

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/settle-convert/pkg/types"
)

// defaultCredits applies when a record carries no usable credit value.
const defaultCredits = 3.0

// recordRule pairs a line pattern with the extractor for its submatches.
type recordRule struct {
	name    string
	re      *regexp.Regexp
	extract func(m []string) types.CourseRecord
}

// recordRules are tried in order; the first match wins.
var recordRules = []recordRule{
	{
		// "Calculus, 4, A-"
		name:    "comma",
		re:      regexp.MustCompile(`(?i)^([^,]+),\s*(\d+(?:\.\d+)?),\s*([A-F][+-]?|\d+(?:\.\d+)?)`),
		extract: gradedRecord,
	},
	{
		// "Calculus - 4 - A-"
		name:    "hyphen",
		re:      regexp.MustCompile(`(?i)^([^-]+)-\s*(\d+(?:\.\d+)?)\s*-\s*([A-F][+-]?|\d+(?:\.\d+)?)`),
		extract: gradedRecord,
	},
	{
		// "Calculus (4): A-"
		name:    "parenthesized",
		re:      regexp.MustCompile(`(?i)^([^(]+)\s*\((\d+(?:\.\d+)?)\):\s*([A-F][+-]?|\d+(?:\.\d+)?)`),
		extract: gradedRecord,
	},
	{
		// "Calculus: 85%"
		name:    "percentage",
		re:      regexp.MustCompile(`^([^:]+):\s*(\d+(?:\.\d+)?)%`),
		extract: percentageRecord,
	},
}

// Rules returns the record pattern names in priority order.
func Rules() []string {
	names := make([]string, len(recordRules))
	for i, r := range recordRules {
		names[i] = r.name
	}
	return names
}

// Classify returns the course record on line, or nil when no pattern
// matches. Unmatched lines are not an error; callers pass them through.
func Classify(line string) *types.CourseRecord {
	_, rec := classify(line)
	return rec
}

// classify also reports which rule matched, for tests and debug logging.
func classify(line string) (string, *types.CourseRecord) {
	for _, r := range recordRules {
		m := r.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rec := r.extract(m)
		return r.name, &rec
	}
	return "", nil
}

// gradedRecord handles name/credits/grade patterns. A numeric grade token
// is also read as a percentage.
func gradedRecord(m []string) types.CourseRecord {
	grade := strings.TrimSpace(m[3])
	rec := types.CourseRecord{
		CourseName:    strings.TrimSpace(m[1]),
		Credits:       parseCredits(m[2]),
		OriginalGrade: &grade,
	}
	if pct, err := strconv.ParseFloat(grade, 64); err == nil {
		rec.Percentage = &pct
	}
	return rec
}

// percentageRecord handles "Name: NN%". The line carries no credits.
func percentageRecord(m []string) types.CourseRecord {
	token := strings.TrimSpace(m[2])
	rec := types.CourseRecord{
		CourseName:    strings.TrimSpace(m[1]),
		Credits:       defaultCredits,
		OriginalGrade: &token,
	}
	if pct, err := strconv.ParseFloat(token, 64); err == nil {
		rec.Percentage = &pct
	}
	return rec
}

// parseCredits falls back to defaultCredits for empty, unparseable or zero
// credit values.
func parseCredits(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v == 0 {
		return defaultCredits
	}
	return v
}
