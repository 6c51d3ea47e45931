package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func ClampNonNegative(f float64) float64 {
	if f < 0 || math.IsNaN(f) {
		return 0
	}

	return f
}
