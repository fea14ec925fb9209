//go:build mage

package main

type sampleDocument struct {
	name     string
	convType string
	content  string
}

// sampleDocuments are written and converted by Sample.
var sampleDocuments = []sampleDocument{
	{name: "transcript.txt", convType: "gpa", content: `University of Nairobi - Academic Transcript
Student: A. Mwangi

Calculus I, 4, A-
Linear Algebra - 3 - B+
Organic Chemistry (4): 88
Academic Writing: 91%
Physical Education, 1, P
`},
	{name: "lab-report.txt", convType: "medical", content: `Clinic Visit Summary

Fasting Glucose: 95 mg/dL
Total Cholesterol: 185 mg/dL
Creatinine: 0.9 mg/dL
Hemoglobin: 13.8 g/dL
Temperature: 100.4 F
Weight: 165 lb
Height: 68 inches
`},
}
