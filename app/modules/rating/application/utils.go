package ratingservice

import "math"

// round2 rounds to two decimals, the precision used for ratings and deltas.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round3 rounds to three decimals, the precision used for probabilities.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
