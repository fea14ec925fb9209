// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gpa

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/settle-convert/pkg/types"
)

// ErrNonFiniteTotal is returned when accumulated credits or grade points
// overflow to infinity.
var ErrNonFiniteTotal = errors.New("grade point total is not a finite number")

const (
	summaryHeader   = "\n=== GPA CONVERSION SUMMARY ==="
	breakdownHeader = "\n=== DETAILED COURSE BREAKDOWN ==="
)

// Report is a converted transcript.
type Report struct {
	// Text is the annotated transcript followed by the summary sections.
	Text    string
	Courses []types.CourseResult
	Summary types.GpaSummary
}

// accumulator is the state folded over transcript lines.
type accumulator struct {
	lines            []string
	courses          []types.CourseResult
	totalCredits     float64
	totalGradePoints float64
}

// step folds one line into the accumulator. Blank lines are dropped.
func (a accumulator) step(line string) accumulator {
	if strings.TrimSpace(line) == "" {
		return a
	}
	rec := Classify(line)
	if rec == nil {
		a.lines = append(a.lines, line)
		return a
	}

	res := scoreRecord(*rec)
	a.totalCredits += res.Credits
	a.totalGradePoints += res.GradePoints
	a.courses = append(a.courses, res)
	a.lines = append(a.lines, annotate(res))
	return a
}

func (a accumulator) summary() types.GpaSummary {
	var overall float64
	if a.totalCredits > 0 {
		overall = a.totalGradePoints / a.totalCredits
	}
	return types.GpaSummary{
		TotalCredits:         a.totalCredits,
		TotalGradePoints:     a.totalGradePoints,
		OverallGPA:           overall,
		EquivalentPercentage: ToPercentage(overall),
	}
}

// scoreRecord derives the grade point and weighted points for a record.
func scoreRecord(rec types.CourseRecord) types.CourseResult {
	gp := ToUSGradePoint(rec.OriginalGrade, rec.Percentage)
	return types.CourseResult{
		Course:        rec.CourseName,
		Credits:       rec.Credits,
		OriginalGrade: rec.Grade(),
		Percentage:    rec.Percentage,
		USGrade:       gp,
		GradePoints:   gp * rec.Credits,
	}
}

// Convert parses text line by line and returns the annotated report. It
// fails only when the running totals stop being finite.
func Convert(text string) (Report, error) {
	var acc accumulator
	for _, line := range strings.Split(text, "\n") {
		acc = acc.step(line)
	}
	if math.IsInf(acc.totalCredits, 0) || math.IsInf(acc.totalGradePoints, 0) ||
		math.IsNaN(acc.totalCredits) || math.IsNaN(acc.totalGradePoints) {
		return Report{}, ErrNonFiniteTotal
	}

	sum := acc.summary()
	return Report{
		Text:    render(acc.lines, acc.courses, sum),
		Courses: acc.courses,
		Summary: sum,
	}, nil
}

// ConvertDocument is the text-only form of Convert. It never fails: errors
// and panics are reported inline together with the original content.
func ConvertDocument(text string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = FailureReport(fmt.Errorf("%v", r), text)
		}
	}()
	rep, err := Convert(text)
	if err != nil {
		return FailureReport(err, text)
	}
	return rep.Text
}

// FailureReport renders a conversion error alongside the original content.
func FailureReport(err error, text string) string {
	return "Error in GPA conversion: " + err.Error() + "\n\nOriginal content:\n" + text
}

func annotate(res types.CourseResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s | Credits: %s | Original: %s", res.Course, formatNumber(res.Credits), res.OriginalGrade)
	if res.Percentage != nil && *res.Percentage != 0 {
		fmt.Fprintf(&b, " (%s%%)", formatNumber(*res.Percentage))
	}
	b.WriteString(" → US Grade: " + types.FormatFixed(res.USGrade, 2))
	return b.String()
}

func render(lines []string, courses []types.CourseResult, sum types.GpaSummary) string {
	out := make([]string, 0, len(lines)+len(courses)+7)
	out = append(out, lines...)
	out = append(out,
		summaryHeader,
		"Total Credits: "+formatNumber(sum.TotalCredits),
		"Total Grade Points: "+types.FormatFixed(sum.TotalGradePoints, 2),
		"Overall GPA (4.0 scale): "+types.FormatFixed(sum.OverallGPA, 2),
		"Equivalent Percentage: "+types.FormatFixed(sum.EquivalentPercentage, 1)+"%",
		breakdownHeader,
	)
	for _, c := range courses {
		out = append(out, fmt.Sprintf("%s: %s credits, %s → %s (%s pts)",
			c.Course, formatNumber(c.Credits), c.OriginalGrade,
			types.FormatFixed(c.USGrade, 2), types.FormatFixed(c.GradePoints, 2)))
	}
	return strings.Join(out, "\n")
}

// formatNumber renders v in its shortest form: 3, 3.5, 85.25.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
