// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medical

import (
	"fmt"
	"strings"

	"github.com/pdiddy/settle-convert/pkg/types"
)

const (
	summaryHeader    = "\n=== MEDICAL CONVERSION SUMMARY ==="
	referenceHeader  = "\n=== COMMON REFERENCE RANGES ==="
	conversionMarker = " → "
)

// referenceRanges is appended verbatim whenever a document has conversions.
var referenceRanges = []string{
	"Glucose: 70-100 mg/dL (3.9-5.6 mmol/L)",
	"Cholesterol: <200 mg/dL (<5.2 mmol/L)",
	"Creatinine: 0.6-1.2 mg/dL (53-106 μmol/L)",
	"Temperature: 98.6°F (37°C)",
	"Hemoglobin: 12-16 g/dL (120-160 g/L)",
}

// Report is a converted medical document.
type Report struct {
	Text        string
	Conversions []types.MedicalConversionEntry
}

type accumulator struct {
	lines       []string
	conversions []types.MedicalConversionEntry
}

// step folds one line into the accumulator. Blank lines are kept as empty
// lines; every detected quantity is appended to the line.
func (a accumulator) step(line string) accumulator {
	if strings.TrimSpace(line) == "" {
		a.lines = append(a.lines, "")
		return a
	}
	found := ExtractAll(line)
	if len(found) == 0 {
		a.lines = append(a.lines, line)
		return a
	}

	var b strings.Builder
	b.WriteString(line)
	for _, e := range found {
		b.WriteString(conversionMarker)
		b.WriteString(e.Target())
	}
	a.lines = append(a.lines, b.String())
	a.conversions = append(a.conversions, found...)
	return a
}

// Convert annotates every line of text with its unit conversions and
// appends a summary when at least one conversion was made.
func Convert(text string) (Report, error) {
	var acc accumulator
	for _, line := range strings.Split(text, "\n") {
		acc = acc.step(line)
	}

	out := acc.lines
	if len(acc.conversions) > 0 {
		out = append(out, summaryHeader)
		for _, e := range acc.conversions {
			out = append(out, "✓ "+e.String())
		}
		out = append(out, referenceHeader)
		out = append(out, referenceRanges...)
	}
	return Report{
		Text:        strings.Join(out, "\n"),
		Conversions: acc.conversions,
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
	return "Error in medical conversion: " + err.Error() + "\n\nOriginal content:\n" + text
}
