// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/GuilhermeDReis/finch/pkg/constants"
)

// RoundTo rounds a value half-up (ties away from zero) to the given number of
// decimal places. This is the single rounding rule applied to every monetary
// value the calculator returns.
func RoundTo(val float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(val*factor) / factor
}

// Round rounds a value to two decimals, i.e. to represent real currency.
func Round(val float64) float64 {
	return RoundTo(val, constants.DefaultPrecision)
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
