package utils

import "fmt"

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	h := heightCm / 100.0
	return weightKg / (h * h)
}

// FormatBMI renders a BMI value to one decimal place.
func FormatBMI(bmi float64) string {
	return fmt.Sprintf("%.1f", bmi)
}
