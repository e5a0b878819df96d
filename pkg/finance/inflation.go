package finance

import (
	"github.com/GuilhermeDReis/finch/pkg/constants"
	"github.com/GuilhermeDReis/finch/pkg/mathutil"
)

// CumulativeInflation compounds a sequence of monthly inflation rates, each
// expressed as a percentage (e.g. 0.5 for 0.5%), into the accumulated
// percentage over the whole period. The result is always rounded to two
// decimals, independent of any Calculator precision. An empty sequence
// yields zero.
func CumulativeInflation(monthlyRates []float64) float64 {
	accumulated := 1.0
	for _, rate := range monthlyRates {
		accumulated *= 1 + rate/constants.PercentageMultiplier
	}

	return mathutil.RoundTo((accumulated-1)*constants.PercentageMultiplier, constants.InflationPrecision)
}
