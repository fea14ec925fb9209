// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		prec int
		want string
	}{
		{"exact tie rounds up", 3.125, 2, "3.13"},
		{"tie below one", 0.125, 2, "0.13"},
		{"tie at zero decimals", 2.5, 0, "3"},
		{"negative tie rounds away from zero", -3.125, 2, "-3.13"},
		{"binary value below tie", 1.005, 2, "1.00"},
		{"binary value above tie", 0.05, 1, "0.1"},
		{"pads integers", 5, 2, "5.00"},
		{"one decimal", 37, 1, "37.0"},
		{"rounds to nearest", 1234.5674, 2, "1234.57"},
		{"small value", 0.001, 2, "0.00"},
		{"small negative keeps sign", -0.001, 2, "-0.00"},
		{"zero", 0, 2, "0.00"},
		{"three decimals", 4.9995, 3, "5.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFixed(tt.v, tt.prec))
		})
	}
}

func TestFormatFixed_NonFinite(t *testing.T) {
	assert.Equal(t, "NaN", FormatFixed(math.NaN(), 2))
	assert.Equal(t, "+Inf", FormatFixed(math.Inf(1), 2))
}

func TestMedicalConversionEntry_TargetRoundsTiesUp(t *testing.T) {
	e := MedicalConversionEntry{TestName: "glucose", SourceValue: 90, SourceUnit: "mg/dL",
		TargetValue: 2.125, TargetUnit: "mmol/L", Precision: 2}
	assert.Equal(t, "2.13 mmol/L", e.Target())
	assert.Equal(t, "glucose: 90 mg/dL = 2.13 mmol/L", e.String())
}
