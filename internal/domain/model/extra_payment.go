package model

import (
	"fmt"
	"sort"

	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

// ExtraPayment is one scheduled Sondertilgung: an additional principal payment
// in a specific month on top of the contractual instalment.
type ExtraPayment struct {
	month  valueobject.PaymentMonth
	amount valueobject.Money
}

// NewExtraPayment validates that the amount is strictly positive.
func NewExtraPayment(month valueobject.PaymentMonth, amount valueobject.Money) (ExtraPayment, error) {
	if amount.IsZero() {
		return ExtraPayment{}, fmt.Errorf("%w: extra payment in %s must be positive", valueobject.ErrInvalidAmount, month)
	}
	return ExtraPayment{month: month, amount: amount}, nil
}

// Month returns when the payment occurs.
func (e ExtraPayment) Month() valueobject.PaymentMonth { return e.month }

// Amount returns the extra principal amount.
func (e ExtraPayment) Amount() valueobject.Money { return e.amount }

func (e ExtraPayment) String() string {
	return fmt.Sprintf("%s in %s", e.amount, e.month)
}

// ExtraPaymentPlan is an ordered set of extra payments, at most one per month.
// Callers must merge multiple payments falling in the same month before
// constructing a plan. The yearly limit is informational context for the
// market-rules collaborator; the plan aggregates against it but never
// enforces it.
type ExtraPaymentPlan struct {
	limit    valueobject.YearlyLimit
	payments []ExtraPayment
}

// NewExtraPaymentPlan sorts the payments by month and rejects duplicates.
func NewExtraPaymentPlan(limit valueobject.YearlyLimit, payments []ExtraPayment) (ExtraPaymentPlan, error) {
	sorted := make([]ExtraPayment, len(payments))
	copy(sorted, payments)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].month.Month() < sorted[j].month.Month()
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].month.Month() == sorted[i-1].month.Month() {
			return ExtraPaymentPlan{}, fmt.Errorf(
				"%w: two extra payments in %s, merge them first",
				valueobject.ErrInvalidAmount, sorted[i].month,
			)
		}
	}

	return ExtraPaymentPlan{limit: limit, payments: sorted}, nil
}

// Limit returns the plan's yearly limit context.
func (p ExtraPaymentPlan) Limit() valueobject.YearlyLimit { return p.limit }

// Payments returns a defensive copy of the ordered payments.
func (p ExtraPaymentPlan) Payments() []ExtraPayment {
	out := make([]ExtraPayment, len(p.payments))
	copy(out, p.payments)
	return out
}

// IsEmpty reports whether the plan schedules no payments at all.
func (p ExtraPaymentPlan) IsEmpty() bool {
	return len(p.payments) == 0
}

// PaymentFor returns the extra payment scheduled for the given 1-indexed
// month, if any.
func (p ExtraPaymentPlan) PaymentFor(month int) (valueobject.Money, bool) {
	for _, ep := range p.payments {
		if ep.month.Month() == month {
			return ep.amount, true
		}
		if ep.month.Month() > month {
			break
		}
	}
	return valueobject.Money{}, false
}

// TotalAmount sums every scheduled extra payment.
func (p ExtraPaymentPlan) TotalAmount() (valueobject.Money, error) {
	total := valueobject.ZeroMoney
	for _, ep := range p.payments {
		var err error
		total, err = total.Add(ep.amount)
		if err != nil {
			return valueobject.Money{}, err
		}
	}
	return total, nil
}

// YearlyTotals aggregates the scheduled payments per 1-indexed loan year.
// This is the shape the external limit validation consumes.
func (p ExtraPaymentPlan) YearlyTotals() (map[int]valueobject.Money, error) {
	totals := make(map[int]valueobject.Money)
	for _, ep := range p.payments {
		year := ep.month.Year()
		sum, err := totals[year].Add(ep.amount)
		if err != nil {
			return nil, err
		}
		totals[year] = sum
	}
	return totals, nil
}
