package utils

import "errors"

// Plausibility bounds for adult anthropometrics. Values outside these
// almost always mean a unit mix-up (meters vs centimeters, lbs vs kg).
const (
	minHeightCm = 50
	maxHeightCm = 250
	minWeightKg = 10
	maxWeightKg = 400
)

var ErrImplausibleMeasure = errors.New("height or weight outside plausible range")

// CalculateBMI computes weight(kg) / height(m)^2 from a height given in
// centimeters. Non-positive or implausible inputs return an error rather
// than a nonsense index.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCm < minHeightCm || heightCm > maxHeightCm ||
		weightKg < minWeightKg || weightKg > maxWeightKg {
		return 0, ErrImplausibleMeasure
	}
	m := heightCm / 100
	return weightKg / (m * m), nil
}

// BMICategory maps an index to the WHO classification bands.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obesity class I"
	case bmi < 40:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
