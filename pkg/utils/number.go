package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundHalfUp arredonda meio para cima (floor(x + 0.5)), também para negativos
func RoundHalfUp(f float64) int64 {
	return int64(math.Floor(f + 0.5))
}
