// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gpa

import (
	"math"
	"strings"
)

// band maps an inclusive lower bound to a value.
type band struct {
	min   float64
	value float64
}

// percentageBands are ordered highest first.
var percentageBands = []band{
	{93, 4.0},
	{90, 3.7},
	{87, 3.3},
	{83, 3.0},
	{80, 2.7},
	{77, 2.3},
	{73, 2.0},
	{70, 1.7},
	{67, 1.3},
	{65, 1.0},
}

var letterGrades = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "D-": 0.7,
	"F": 0.0,
}

// gpaBands back-map a grade point average to a representative percentage.
var gpaBands = []band{
	{4.0, 97},
	{3.7, 93},
	{3.3, 89},
	{3.0, 85},
	{2.7, 82},
	{2.3, 78},
	{2.0, 75},
	{1.7, 72},
	{1.3, 69},
	{1.0, 65},
}

const gpaFloorPercentage = 60

// ToUSGradePoint maps a percentage or, failing that, a letter grade to the
// 4.0 scale. A non-nil, non-NaN percentage always takes precedence. Unknown
// letters and a nil grade map to 0.
func ToUSGradePoint(grade *string, percentage *float64) float64 {
	if percentage != nil && !math.IsNaN(*percentage) {
		return lookup(percentageBands, *percentage, 0)
	}
	if grade == nil {
		return 0
	}
	return letterGrades[strings.ToUpper(strings.TrimSpace(*grade))]
}

// ToPercentage approximates the percentage for a GPA. It is coarser than
// ToUSGradePoint and not its inverse: ToPercentage(ToUSGradePoint(p)) need
// not land back in p's band.
func ToPercentage(gpa float64) float64 {
	return lookup(gpaBands, gpa, gpaFloorPercentage)
}

func lookup(bands []band, v, floor float64) float64 {
	for _, b := range bands {
		if v >= b.min {
			return b.value
		}
	}
	return floor
}
