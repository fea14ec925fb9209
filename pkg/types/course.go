// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CourseRecord is one course line recognised in a transcript.
// Exactly one of OriginalGrade or Percentage drives the grade point: a
// numeric Percentage wins, otherwise OriginalGrade is looked up as a letter.
type CourseRecord struct {
	// CourseName is the trimmed text before the record delimiter.
	CourseName string `json:"course_name" yaml:"course_name"`

	// Credits weights the grade point; 3.0 when the line carries none.
	Credits float64 `json:"credits" yaml:"credits"`

	// OriginalGrade is the grade token as written (e.g. "B+", "85").
	OriginalGrade *string `json:"original_grade,omitempty" yaml:"original_grade,omitempty"`

	// Percentage is set when the grade token is numeric.
	Percentage *float64 `json:"percentage,omitempty" yaml:"percentage,omitempty"`
}

// Grade returns the original grade token, or "" when the record has none.
func (r CourseRecord) Grade() string {
	if r.OriginalGrade == nil {
		return ""
	}
	return *r.OriginalGrade
}

// CourseResult is a CourseRecord with its derived 4.0-scale values.
type CourseResult struct {
	Course        string   `json:"course" yaml:"course"`
	Credits       float64  `json:"credits" yaml:"credits"`
	OriginalGrade string   `json:"original_grade" yaml:"original_grade"`
	Percentage    *float64 `json:"percentage,omitempty" yaml:"percentage,omitempty"`
	USGrade       float64  `json:"us_grade" yaml:"us_grade"`
	GradePoints   float64  `json:"grade_points" yaml:"grade_points"`
}

// GpaSummary aggregates every matched course in one document.
type GpaSummary struct {
	TotalCredits         float64 `json:"total_credits" yaml:"total_credits"`
	TotalGradePoints     float64 `json:"total_grade_points" yaml:"total_grade_points"`
	OverallGPA           float64 `json:"overall_gpa" yaml:"overall_gpa"`
	EquivalentPercentage float64 `json:"equivalent_percentage" yaml:"equivalent_percentage"`
}
