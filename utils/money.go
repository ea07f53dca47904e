package utils

import "math"

// Round2 rounds x to 2 decimal places (simple half-away rounding). Used for
// plain float DTO fields such as property areas; monetary amounts go through
// the pricing package's decimals instead.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
