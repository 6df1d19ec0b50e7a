package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percentage is a bounded share in [0, 100].
type Percentage struct {
	value decimal.Decimal
}

// ZeroPercent is the 0% share.
var ZeroPercent = Percentage{}

// NewPercentage validates a percentage value.
func NewPercentage(value decimal.Decimal) (Percentage, error) {
	if value.IsNegative() || value.GreaterThan(oneHundred) {
		return Percentage{}, fmt.Errorf("%w: %s", ErrInvalidPercentage, value)
	}
	return Percentage{value: value}, nil
}

// MustPercentage panics on an invalid value. Intended for tests only.
func MustPercentage(value string) Percentage {
	d, err := decimal.NewFromString(value)
	if err != nil {
		panic(err)
	}
	p, err := NewPercentage(d)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the percentage as a decimal in [0, 100].
func (p Percentage) Value() decimal.Decimal {
	return p.value
}

// Fraction returns the percentage as a decimal fraction in [0, 1].
func (p Percentage) Fraction() decimal.Decimal {
	return p.value.Div(oneHundred)
}

// Of applies the percentage to an amount, rounding to the nearest cent.
func (p Percentage) Of(m Money) (Money, error) {
	return m.MulDecimal(p.Fraction())
}

func (p Percentage) String() string {
	return p.value.String() + "%"
}

// YearlyLimit is the contextual cap on extra payments per loan year, expressed
// as a percentage of the original loan amount, or unlimited. The engine only
// aggregates against it; enforcement is the market-rules collaborator's job.
type YearlyLimit struct {
	pct       Percentage
	unlimited bool
}

// NewYearlyLimit creates a bounded yearly limit.
func NewYearlyLimit(pct Percentage) YearlyLimit {
	return YearlyLimit{pct: pct}
}

// UnlimitedYearlyLimit creates a limit that never caps.
func UnlimitedYearlyLimit() YearlyLimit {
	return YearlyLimit{unlimited: true}
}

// IsUnlimited reports whether the limit never caps.
func (l YearlyLimit) IsUnlimited() bool {
	return l.unlimited
}

// Percent returns the limit percentage. Meaningless when unlimited.
func (l YearlyLimit) Percent() Percentage {
	return l.pct
}

// AllowancePerYear returns the cent amount the limit allows per loan year for
// the given loan amount.
func (l YearlyLimit) AllowancePerYear(loanAmount Money) (Money, bool) {
	if l.unlimited {
		return Money{}, false
	}
	allowance, err := l.pct.Of(loanAmount)
	if err != nil {
		return Money{}, false
	}
	return allowance, true
}

func (l YearlyLimit) String() string {
	if l.unlimited {
		return "unlimited"
	}
	return l.pct.String() + " per year"
}
