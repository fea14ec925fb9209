// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medical

// LabTest converts one lab value from its conventional unit to SI.
type LabTest struct {
	// Keyword is matched case-insensitively against the line and used as
	// the entry's test name.
	Keyword string
	From    string
	To      string
	Factor  float64
}

// Convert applies the test's multiplicative factor.
func (t LabTest) Convert(v float64) float64 {
	return v * t.Factor
}

var labTests = []LabTest{
	{Keyword: "glucose", From: "mg/dL", To: "mmol/L", Factor: 0.0555},
	{Keyword: "cholesterol", From: "mg/dL", To: "mmol/L", Factor: 0.0259},
	{Keyword: "creatinine", From: "mg/dL", To: "μmol/L", Factor: 88.4},
	{Keyword: "bilirubin", From: "mg/dL", To: "μmol/L", Factor: 17.1},
	{Keyword: "hemoglobin", From: "g/dL", To: "g/L", Factor: 10},
}

// LabTests returns a copy of the lab conversion table in match order.
func LabTests() []LabTest {
	out := make([]LabTest, len(labTests))
	copy(out, labTests)
	return out
}

const (
	poundsToKilograms   = 0.4536
	kilogramsToPounds   = 2.2046
	inchesToCentimeters = 2.54
	centimetersToInches = 0.3937
)

func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

func PoundsToKilograms(lb float64) float64 { return lb * poundsToKilograms }

func KilogramsToPounds(kg float64) float64 { return kg * kilogramsToPounds }

func InchesToCentimeters(in float64) float64 { return in * inchesToCentimeters }

func CentimetersToInches(cm float64) float64 { return cm * centimetersToInches }
