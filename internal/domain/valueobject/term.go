package valueobject

import "fmt"

// MaxTermMonths caps loan terms at 40 years.
const MaxTermMonths = 480

// MonthCount is a loan duration in months. It is deliberately distinct from
// PaymentMonth: a duration and a point-in-time index are not interchangeable.
type MonthCount struct {
	months int
}

// NewMonthCount validates a duration in the range [1, MaxTermMonths].
func NewMonthCount(months int) (MonthCount, error) {
	if months < 1 || months > MaxTermMonths {
		return MonthCount{}, fmt.Errorf("%w: %d months", ErrInvalidTerm, months)
	}
	return MonthCount{months: months}, nil
}

// MustMonthCount panics on an invalid duration. Intended for tests only.
func MustMonthCount(months int) MonthCount {
	mc, err := NewMonthCount(months)
	if err != nil {
		panic(err)
	}
	return mc
}

// Months returns the duration as a plain integer.
func (mc MonthCount) Months() int {
	return mc.months
}

// Years returns the duration in whole years, rounding down.
func (mc MonthCount) Years() int {
	return mc.months / 12
}

func (mc MonthCount) String() string {
	return fmt.Sprintf("%d months", mc.months)
}

// PaymentMonth is a 1-indexed month within a loan's life, identifying when a
// particular payment occurs.
type PaymentMonth struct {
	month int
}

// NewPaymentMonth validates a payment month in the range [1, MaxTermMonths].
func NewPaymentMonth(month int) (PaymentMonth, error) {
	if month < 1 || month > MaxTermMonths {
		return PaymentMonth{}, fmt.Errorf("%w: payment month %d", ErrInvalidTerm, month)
	}
	return PaymentMonth{month: month}, nil
}

// MustPaymentMonth panics on an invalid month. Intended for tests only.
func MustPaymentMonth(month int) PaymentMonth {
	pm, err := NewPaymentMonth(month)
	if err != nil {
		panic(err)
	}
	return pm
}

// Month returns the 1-indexed month number.
func (pm PaymentMonth) Month() int {
	return pm.month
}

// Year returns the 1-indexed loan year this month falls into
// (months 1-12 are year 1).
func (pm PaymentMonth) Year() int {
	return (pm.month-1)/12 + 1
}

func (pm PaymentMonth) String() string {
	return fmt.Sprintf("month %d", pm.month)
}
