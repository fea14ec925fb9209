// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the GPA and medical
// conversion pipelines, the CLI and the HTTP server.
package types

// ConversionType selects the conversion pipeline.
type ConversionType string

const (
	ConversionGPA     ConversionType = "gpa"
	ConversionMedical ConversionType = "medical"
)

// ConversionTypes lists the supported conversion types in display order.
func ConversionTypes() []ConversionType {
	return []ConversionType{ConversionGPA, ConversionMedical}
}

// Result is the outcome of converting one document: the original text, the
// converted report, and the structured values behind the report.
type Result struct {
	Type      ConversionType `json:"type" yaml:"type"`
	Original  string         `json:"original" yaml:"original"`
	Converted string         `json:"converted" yaml:"converted"`

	// Error is set when the pipeline failed and Converted holds the
	// failure report instead of a conversion.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Summary and Courses are set for gpa conversions.
	Summary *GpaSummary    `json:"summary,omitempty" yaml:"summary,omitempty"`
	Courses []CourseResult `json:"courses,omitempty" yaml:"courses,omitempty"`

	// Conversions is set for medical conversions.
	Conversions []MedicalConversionEntry `json:"conversions,omitempty" yaml:"conversions,omitempty"`
}
