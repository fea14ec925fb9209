// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strconv"
	"strings"
)

// MedicalConversionEntry records one detected and converted quantity.
type MedicalConversionEntry struct {
	// TestName labels the quantity: a lab keyword ("glucose") or
	// "Temperature", "Weight", "Height".
	TestName string `json:"test_name" yaml:"test_name"`

	SourceValue float64 `json:"source_value" yaml:"source_value"`
	SourceUnit  string  `json:"source_unit" yaml:"source_unit"`
	TargetValue float64 `json:"target_value" yaml:"target_value"`
	TargetUnit  string  `json:"target_unit" yaml:"target_unit"`

	// Precision is the number of decimals TargetValue is rendered with.
	Precision int `json:"precision" yaml:"precision"`
}

// Target renders the converted value with its unit, e.g. "5.00 mmol/L"
// or "37.0°C".
func (e MedicalConversionEntry) Target() string {
	return joinUnit(FormatFixed(e.TargetValue, e.Precision), e.TargetUnit)
}

// String renders the entry as "<test>: <src> <unit> = <dst> <unit>".
func (e MedicalConversionEntry) String() string {
	src := joinUnit(strconv.FormatFloat(e.SourceValue, 'f', -1, 64), e.SourceUnit)
	return e.TestName + ": " + src + " = " + e.Target()
}

// joinUnit attaches degree units directly and separates the rest by a space.
func joinUnit(value, unit string) string {
	if strings.HasPrefix(unit, "°") {
		return value + unit
	}
	return value + " " + unit
}
