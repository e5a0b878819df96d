// Package finance provides the financial formula set: compound interest,
// fixed-installment loan amortization (Price system), and return on investment.
package finance

import (
	"errors"
	"fmt"
	"math"

	"github.com/GuilhermeDReis/finch/pkg/constants"
	"github.com/GuilhermeDReis/finch/pkg/mathutil"
)

// Validation errors returned by InstallmentAmount, AmortizationTable, and ROI.
var (
	ErrNonPositiveRate         = errors.New("monthly rate must be greater than zero")
	ErrNonPositiveInstallments = errors.New("number of installments must be greater than zero")
	ErrZeroInvestment          = errors.New("initial investment must be nonzero")
)

// Installment holds the values for one row of an amortization schedule.
type Installment struct {
	Number           int
	Payment          float64
	Interest         float64
	Principal        float64
	RemainingBalance float64
}

// Calculator performs financial computations with a fixed rounding precision.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	precision int
}

// NewCalculator returns a Calculator that rounds monetary results half-up to
// the given number of decimal places. Non-positive precision falls back to the
// default of two decimals.
func NewCalculator(precision int) Calculator {
	if precision <= 0 {
		precision = constants.DefaultPrecision
	}
	return Calculator{precision: precision}
}

// Precision returns the configured number of decimal places.
func (c Calculator) Precision() int {
	return c.precision
}

// CompoundInterest calculates the final amount after compounding principal at
// a fractional per-period rate (e.g. 0.05 for 5%) over the given number of
// periods. Zero periods returns the rounded principal; negative periods
// discount back in time.
func (c Calculator) CompoundInterest(principal, rate float64, periods int) float64 {
	amount := principal * math.Pow(1+rate, float64(periods))
	return mathutil.RoundTo(amount, c.precision)
}

// InstallmentAmount calculates the fixed payment for a loan under the
// Price/French amortization system, where every installment has the same total
// value. The monthly rate is fractional (e.g. 0.015 for 1.5%).
func (c Calculator) InstallmentAmount(total, monthlyRate float64, installments int) (float64, error) {
	if monthlyRate <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrNonPositiveRate, monthlyRate)
	}
	if installments <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNonPositiveInstallments, installments)
	}

	power := math.Pow(1+monthlyRate, float64(installments))
	payment := total * (monthlyRate * power) / (power - 1)
	return mathutil.RoundTo(payment, c.precision), nil
}

// AmortizationTable generates the full Price-system schedule for a loan, one
// row per installment in chronological order. Each row's monetary fields are
// rounded independently; the running balance carried into the next period is
// the unrounded value, so small rounding drift accumulates and the final
// balance is floored at zero rather than reported negative. It shares
// InstallmentAmount's validation.
func (c Calculator) AmortizationTable(total, monthlyRate float64, installments int) ([]Installment, error) {
	payment, err := c.InstallmentAmount(total, monthlyRate, installments)
	if err != nil {
		return nil, err
	}

	schedule := make([]Installment, 0, installments)
	balance := total
	for number := 1; number <= installments; number++ {
		interest := balance * monthlyRate
		principal := payment - interest
		balance -= principal

		schedule = append(schedule, Installment{
			Number:           number,
			Payment:          payment,
			Interest:         mathutil.RoundTo(interest, c.precision),
			Principal:        mathutil.RoundTo(principal, c.precision),
			RemainingBalance: mathutil.RoundTo(mathutil.Max(0, balance), c.precision),
		})
	}

	return schedule, nil
}

// ROI calculates the return on investment as a percentage of the initial
// investment (e.g. 50.0 for a 50% gain). A zero initial investment is
// rejected rather than producing an infinite result.
func (c Calculator) ROI(initialInvestment, finalReturn float64) (float64, error) {
	if initialInvestment == 0 {
		return 0, ErrZeroInvestment
	}

	roi := ((finalReturn - initialInvestment) / initialInvestment) * constants.PercentageMultiplier
	return mathutil.RoundTo(roi, c.precision), nil
}
