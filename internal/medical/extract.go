// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package medical converts lab values, temperatures and body measurements
// found in free-text medical documents between unit systems.
// extract.go detects convertible quantities within single lines.
package medical

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/settle-convert/pkg/types"
)

var (
	// labValueRe matches the first value with a lab unit, e.g. "90 mg/dL".
	labValueRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(mg/dL|mmol/L|g/dL|g/L|μmol/L)`)

	// temperatureRe matches "98.6 F", "37°C", "101.2 ° f". The unit letter
	// is not bounded, so "170 cm" also reads as 170 °C.
	temperatureRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*°?\s*([CF])`)

	// bodyRe matches weights and heights, e.g. "150 lb", "70 inches".
	bodyRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(kg|lb|pounds?|cm|inches?|in)`)
)

const (
	labPrecision  = 2
	bodyPrecision = 1
)

// detector finds zero or more conversions on one line.
type detector struct {
	name   string
	detect func(line string) []types.MedicalConversionEntry
}

// detectors run in this order; each runs independently of the others.
var detectors = []detector{
	{name: "lab", detect: detectLab},
	{name: "temperature", detect: detectTemperature},
	{name: "anthropometric", detect: detectBody},
}

// Detectors returns the detector names in priority order.
func Detectors() []string {
	names := make([]string, len(detectors))
	for i, d := range detectors {
		names[i] = d.name
	}
	return names
}

// ExtractConversion returns the highest-priority conversion on line, or nil.
func ExtractConversion(line string) *types.MedicalConversionEntry {
	for _, d := range detectors {
		if found := d.detect(line); len(found) > 0 {
			return &found[0]
		}
	}
	return nil
}

// ExtractAll returns every conversion on line in detector order. One line
// can yield a lab value, a temperature and a body measurement at once, and
// more than one lab value when several keywords share a line.
func ExtractAll(line string) []types.MedicalConversionEntry {
	var out []types.MedicalConversionEntry
	for _, d := range detectors {
		out = append(out, d.detect(line)...)
	}
	return out
}

// detectLab converts the line's first lab value once per keyword present,
// provided the value is in that test's source unit.
func detectLab(line string) []types.MedicalConversionEntry {
	lower := strings.ToLower(line)
	var out []types.MedicalConversionEntry
	for _, t := range labTests {
		if !strings.Contains(lower, t.Keyword) {
			continue
		}
		m := labValueRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || !strings.EqualFold(m[2], t.From) {
			continue
		}
		out = append(out, types.MedicalConversionEntry{
			TestName:    t.Keyword,
			SourceValue: v,
			SourceUnit:  m[2],
			TargetValue: t.Convert(v),
			TargetUnit:  t.To,
			Precision:   labPrecision,
		})
	}
	return out
}

func detectTemperature(line string) []types.MedicalConversionEntry {
	m := temperatureRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	e := types.MedicalConversionEntry{
		TestName:    "Temperature",
		SourceValue: v,
		Precision:   bodyPrecision,
	}
	if strings.EqualFold(m[2], "F") {
		e.SourceUnit, e.TargetUnit = "°F", "°C"
		e.TargetValue = FahrenheitToCelsius(v)
	} else {
		e.SourceUnit, e.TargetUnit = "°C", "°F"
		e.TargetValue = CelsiusToFahrenheit(v)
	}
	return []types.MedicalConversionEntry{e}
}

func detectBody(line string) []types.MedicalConversionEntry {
	m := bodyRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	e := types.MedicalConversionEntry{SourceValue: v, Precision: bodyPrecision}
	switch strings.ToLower(m[2]) {
	case "lb", "pound", "pounds":
		e.TestName, e.SourceUnit, e.TargetUnit = "Weight", "lb", "kg"
		e.TargetValue = PoundsToKilograms(v)
	case "kg":
		e.TestName, e.SourceUnit, e.TargetUnit = "Weight", "kg", "lb"
		e.TargetValue = KilogramsToPounds(v)
	case "in", "inch", "inches":
		e.TestName, e.SourceUnit, e.TargetUnit = "Height", "in", "cm"
		e.TargetValue = InchesToCentimeters(v)
	case "cm":
		e.TestName, e.SourceUnit, e.TargetUnit = "Height", "cm", "in"
		e.TargetValue = CentimetersToInches(v)
	default:
		return nil
	}
	return []types.MedicalConversionEntry{e}
}
