// Package money converts between decimal amounts and integer minor units
// (cents). All settlement arithmetic happens on minor units; decimals only
// appear at the API boundary.
package money

import "math"

// ToMinorUnits converts a decimal amount to minor units by multiplying by 100
// and rounding half away from zero. NaN, ±Inf and negative amounts map to 0 so
// bad input can never poison a computation downstream.
func ToMinorUnits(amount float64) int64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	return int64(math.Round(amount * 100))
}

// FromMinorUnits converts minor units back to a decimal amount.
func FromMinorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// Round canonicalizes a decimal amount to exact-cent precision.
func Round(amount float64) float64 {
	return FromMinorUnits(ToMinorUnits(amount))
}
