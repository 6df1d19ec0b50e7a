package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAmountCents bounds every monetary value handled by the engine:
// 100 million euro, expressed in cents.
const MaxAmountCents int64 = 100_000_000_00

var centFactor = decimal.NewFromInt(100)

// Money is an immutable, non-negative monetary amount stored as an integer
// count of cents so that repeated arithmetic never accumulates binary
// floating-point drift. Arithmetic returns a new value or an error; existing
// values are never modified.
type Money struct {
	cents int64
}

// ZeroMoney is the additive identity.
var ZeroMoney = Money{}

// NewMoneyFromCents validates a raw cent count.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, fmt.Errorf("%w: %d cents", ErrNegativeAmount, cents)
	}
	if cents > MaxAmountCents {
		return Money{}, fmt.Errorf("%w: %d cents", ErrExceedsMaximum, cents)
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromDecimal converts a major-unit decimal amount (e.g. "1441.76")
// into Money, rounding half-up to the nearest cent.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	cents := amount.Mul(centFactor).Round(0)
	if !cents.IsInteger() {
		return Money{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	return NewMoneyFromCents(cents.IntPart())
}

// NewMoneyFromString parses a major-unit amount string into Money.
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return NewMoneyFromDecimal(d)
}

// MustMoney builds Money from a major-unit string and panics on error.
// Intended for tests and package-level constants only.
func MustMoney(amount string) Money {
	m, err := NewMoneyFromString(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(m.cents).Div(centFactor)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns m + other, failing if the sum exceeds the supported maximum.
func (m Money) Add(other Money) (Money, error) {
	return NewMoneyFromCents(m.cents + other.cents)
}

// Sub returns m - other, failing if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoneyFromCents(m.cents - other.cents)
}

// MulDecimal multiplies by an arbitrary decimal factor, rounding half-up to
// the nearest cent. Used for interest accrual (balance x monthly rate).
func (m Money) MulDecimal(factor decimal.Decimal) (Money, error) {
	cents := decimal.NewFromInt(m.cents).Mul(factor).Round(0)
	return NewMoneyFromCents(cents.IntPart())
}

// MulInt returns m multiplied by a non-negative integer count.
func (m Money) MulInt(n int) (Money, error) {
	if n < 0 {
		return Money{}, fmt.Errorf("%w: multiplier %d", ErrInvalidAmount, n)
	}
	return NewMoneyFromCents(m.cents * int64(n))
}

// Min returns the smaller of m and other.
func (m Money) Min(other Money) Money {
	if other.cents < m.cents {
		return other
	}
	return m
}

// LessThan reports m < other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// LessThanOrEqual reports m <= other.
func (m Money) LessThanOrEqual(other Money) bool {
	return m.cents <= other.cents
}

// GreaterThan reports m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// Equal reports cent-exact equality.
func (m Money) Equal(other Money) bool {
	return m.cents == other.cents
}

// Float64 returns the amount in major units as a float64. Only the closed-form
// solvers use this; all monetary bookkeeping stays in cents.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100.0
}

// String formats the amount with two decimal places, e.g. "1441.76".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}
