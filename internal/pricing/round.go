package pricing

import "math"

// RoundAmount rounds a quantity to one decimal place.
func RoundAmount(v float64) float64 {
	return math.Round(v*10) / 10
}

// RoundCents rounds a money value to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
