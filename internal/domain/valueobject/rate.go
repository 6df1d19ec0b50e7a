package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAnnualRatePercent is the upper bound of the supported rate domain.
// Consumer mortgage rates live well below this; anything above it is almost
// certainly an input error.
const MaxAnnualRatePercent = 25.0

var (
	twelve     = decimal.NewFromInt(12)
	oneHundred = decimal.NewFromInt(100)
)

// InterestRate is an annual nominal interest rate, stored as a decimal
// fraction (0.056 for 5.6%). The monthly rate (annual / 12) is what the
// simulation actually applies.
type InterestRate struct {
	annual decimal.Decimal
}

// ZeroRate is the 0% rate.
var ZeroRate = InterestRate{annual: decimal.Zero}

// NewInterestRateFromPercent validates an annual rate given as a percentage,
// e.g. 5.6 for 5.6% p.a.
func NewInterestRateFromPercent(percent decimal.Decimal) (InterestRate, error) {
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromFloat(MaxAnnualRatePercent)) {
		return InterestRate{}, fmt.Errorf("%w: %s%%", ErrInvalidInterestRate, percent)
	}
	return InterestRate{annual: percent.Div(oneHundred)}, nil
}

// MustInterestRate builds a rate from a percent string and panics on error.
// Intended for tests only.
func MustInterestRate(percent string) InterestRate {
	p, err := decimal.NewFromString(percent)
	if err != nil {
		panic(err)
	}
	r, err := NewInterestRateFromPercent(p)
	if err != nil {
		panic(err)
	}
	return r
}

// Annual returns the annual rate as a decimal fraction.
func (r InterestRate) Annual() decimal.Decimal {
	return r.annual
}

// AnnualPercent returns the annual rate as a percentage.
func (r InterestRate) AnnualPercent() decimal.Decimal {
	return r.annual.Mul(oneHundred)
}

// Monthly returns the monthly rate (annual / 12) as a decimal fraction.
func (r InterestRate) Monthly() decimal.Decimal {
	return r.annual.Div(twelve)
}

// MonthlyFloat returns the monthly rate as a float64 for the Pow/Log based
// closed-form solvers.
func (r InterestRate) MonthlyFloat() float64 {
	return r.annual.InexactFloat64() / 12.0
}

// IsZero reports whether this is the 0% rate.
func (r InterestRate) IsZero() bool {
	return r.annual.IsZero()
}

// String formats the rate as a percentage, e.g. "5.6%".
func (r InterestRate) String() string {
	return r.AnnualPercent().String() + "%"
}
