// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gpa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUSGradePoint_Letters(t *testing.T) {
	want := map[string]float64{
		"A+": 4.0, "A": 4.0, "A-": 3.7,
		"B+": 3.3, "B": 3.0, "B-": 2.7,
		"C+": 2.3, "C": 2.0, "C-": 1.7,
		"D+": 1.3, "D": 1.0, "D-": 0.7,
		"F": 0.0,
		"b+": 3.3, " a- ": 3.7, "E": 0.0, "Pass": 0.0,
	}
	for grade, gp := range want {
		t.Run(grade, func(t *testing.T) {
			assert.Equal(t, gp, ToUSGradePoint(ptr(grade), nil))
		})
	}
	assert.Equal(t, 0.0, ToUSGradePoint(nil, nil))
}

func TestToUSGradePoint_Bands(t *testing.T) {
	tests := []struct {
		pct  float64
		want float64
	}{
		{100, 4.0}, {93, 4.0}, {92.9, 3.7}, {90, 3.7}, {89.99, 3.3},
		{87, 3.3}, {83, 3.0}, {80, 2.7}, {77, 2.3}, {73, 2.0},
		{70, 1.7}, {67, 1.3}, {65, 1.0}, {64.9, 0.0}, {0, 0.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToUSGradePoint(nil, ptr(tt.pct)), "percentage %v", tt.pct)
	}
}

func TestToUSGradePoint_PercentageWinsOverGrade(t *testing.T) {
	assert.Equal(t, 2.7, ToUSGradePoint(ptr("A"), ptr(82.0)))
}

func TestToUSGradePoint_NaNFallsBackToLetter(t *testing.T) {
	assert.Equal(t, 3.0, ToUSGradePoint(ptr("B"), ptr(math.NaN())))
}

func TestToUSGradePoint_Monotonic(t *testing.T) {
	prev := ToUSGradePoint(nil, ptr(0.0))
	distinct := map[float64]bool{prev: true}
	for p := 0.0; p <= 100.0; p += 0.05 {
		gp := ToUSGradePoint(nil, ptr(p))
		assert.GreaterOrEqual(t, gp, prev, "percentage %v", p)
		assert.GreaterOrEqual(t, gp, 0.0)
		assert.LessOrEqual(t, gp, 4.0)
		distinct[gp] = true
		prev = gp
	}
	assert.Len(t, distinct, 11)
}

func TestToPercentage(t *testing.T) {
	tests := []struct {
		gpa  float64
		want float64
	}{
		{4.0, 97}, {3.85, 93}, {3.7, 93}, {3.5, 89}, {3.0, 85}, {2.7, 82},
		{2.3, 78}, {2.0, 75}, {1.7, 72}, {1.3, 69}, {1.0, 65}, {0.99, 60}, {0, 60},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToPercentage(tt.gpa), "gpa %v", tt.gpa)
	}
}

// The inverse table is coarser than the grade bands, so a percentage does
// not survive the round trip.
func TestToPercentage_NotAnInverse(t *testing.T) {
	gp := ToUSGradePoint(nil, ptr(88.0))
	assert.Equal(t, 3.3, gp)
	assert.Equal(t, 89.0, ToPercentage(gp))
}
