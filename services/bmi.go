package services

import (
	"fmt"
	"math"

	"health-server/entities"
)

// CalculateBMI returns weight_kg / (height_cm/100)^2.
func CalculateBMI(heightCM, weightKG float64) (float64, error) {
	if !positive(heightCM) {
		return 0, fmt.Errorf("%w: height must be a positive number", entities.ErrInvalidInput)
	}
	if !positive(weightKG) {
		return 0, fmt.Errorf("%w: weight must be a positive number", entities.ErrInvalidInput)
	}
	heightM := heightCM / 100
	return weightKG / (heightM * heightM), nil
}

// BMICategory names the WHO band a BMI value falls into.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obesity"
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
