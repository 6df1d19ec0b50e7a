package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

// consistencyToleranceCents is how far the stated monthly payment may deviate
// from the annuity formula before the configuration is rejected. One euro
// absorbs rounding differences between calculators without letting through
// genuinely inconsistent parameter sets.
const consistencyToleranceCents = 100

// AnnuityPayment computes the level monthly payment for a loan via the
// standard annuity formula
//
//	P = L * c * (1+c)^n / ((1+c)^n - 1)
//
// degrading to an even split P = L / n at 0%. The power term is evaluated in
// float64 and the result converted back to cents, the only place float math
// touches a monetary value.
func AnnuityPayment(
	amount valueobject.Money,
	rate valueobject.InterestRate,
	term valueobject.MonthCount,
) (valueobject.Money, error) {
	if rate.IsZero() {
		return amount.MulDecimal(decimal.NewFromInt(1).Div(decimal.NewFromInt(int64(term.Months()))))
	}

	c := rate.MonthlyFloat()
	n := float64(term.Months())
	factor := math.Pow(1+c, n)
	if factor-1 <= 0 {
		return valueobject.Money{}, fmt.Errorf("%w: degenerate annuity denominator for rate %s", valueobject.ErrMathematical, rate)
	}

	payment := amount.Float64() * c * factor / (factor - 1)
	return valueobject.NewMoneyFromDecimal(decimal.NewFromFloat(payment).Round(2))
}

// MonthlyPayment is one instalment split into its principal and interest
// components. The split always satisfies principal + interest == total to the
// cent, enforced at construction.
type MonthlyPayment struct {
	Principal valueobject.Money
	Interest  valueobject.Money
	Total     valueobject.Money
}

// NewMonthlyPayment validates the decomposition invariant.
func NewMonthlyPayment(principal, interest, total valueobject.Money) (MonthlyPayment, error) {
	sum := principal.Cents() + interest.Cents()
	diff := sum - total.Cents()
	if diff < -1 || diff > 1 {
		return MonthlyPayment{}, fmt.Errorf(
			"%w: principal %s + interest %s != total %s",
			valueobject.ErrInconsistentParameters, principal, interest, total,
		)
	}
	return MonthlyPayment{Principal: principal, Interest: interest, Total: total}, nil
}

// LoanConfiguration is the validated parameter set of an amortizing loan.
// The four fields must satisfy the annuity formula within tolerance; once
// constructed the configuration is immutable.
type LoanConfiguration struct {
	amount         valueobject.Money
	annualRate     valueobject.InterestRate
	termMonths     valueobject.MonthCount
	monthlyPayment valueobject.Money
}

// NewLoanConfiguration validates that the stated payment is consistent with
// amount, rate and term.
func NewLoanConfiguration(
	amount valueobject.Money,
	annualRate valueobject.InterestRate,
	termMonths valueobject.MonthCount,
	monthlyPayment valueobject.Money,
) (LoanConfiguration, error) {
	if amount.IsZero() {
		return LoanConfiguration{}, fmt.Errorf("%w: loan amount must be positive", valueobject.ErrInvalidAmount)
	}

	expected, err := AnnuityPayment(amount, annualRate, termMonths)
	if err != nil {
		return LoanConfiguration{}, err
	}

	diff := monthlyPayment.Cents() - expected.Cents()
	if diff < -consistencyToleranceCents || diff > consistencyToleranceCents {
		return LoanConfiguration{}, fmt.Errorf(
			"%w: stated payment %s, annuity payment %s",
			valueobject.ErrInconsistentParameters, monthlyPayment, expected,
		)
	}

	return LoanConfiguration{
		amount:         amount,
		annualRate:     annualRate,
		termMonths:     termMonths,
		monthlyPayment: monthlyPayment,
	}, nil
}

// DeriveLoanConfiguration computes the annuity payment itself instead of
// requiring the caller to supply a consistent one.
func DeriveLoanConfiguration(
	amount valueobject.Money,
	annualRate valueobject.InterestRate,
	termMonths valueobject.MonthCount,
) (LoanConfiguration, error) {
	payment, err := AnnuityPayment(amount, annualRate, termMonths)
	if err != nil {
		return LoanConfiguration{}, err
	}
	return NewLoanConfiguration(amount, annualRate, termMonths, payment)
}

// Amount returns the loan principal.
func (c LoanConfiguration) Amount() valueobject.Money { return c.amount }

// AnnualRate returns the nominal annual interest rate.
func (c LoanConfiguration) AnnualRate() valueobject.InterestRate { return c.annualRate }

// TermMonths returns the contractual term.
func (c LoanConfiguration) TermMonths() valueobject.MonthCount { return c.termMonths }

// MonthlyPayment returns the contractual level instalment.
func (c LoanConfiguration) MonthlyPayment() valueobject.Money { return c.monthlyPayment }

// WithRate derives a new configuration at a different rate, recomputing the
// payment so the result stays internally consistent.
func (c LoanConfiguration) WithRate(rate valueobject.InterestRate) (LoanConfiguration, error) {
	return DeriveLoanConfiguration(c.amount, rate, c.termMonths)
}

// WithTerm derives a new configuration with a different term, recomputing the
// payment so the result stays internally consistent.
func (c LoanConfiguration) WithTerm(term valueobject.MonthCount) (LoanConfiguration, error) {
	return DeriveLoanConfiguration(c.amount, c.annualRate, term)
}

// WithAmount derives a new configuration with a different principal,
// recomputing the payment so the result stays internally consistent.
func (c LoanConfiguration) WithAmount(amount valueobject.Money) (LoanConfiguration, error) {
	return DeriveLoanConfiguration(amount, c.annualRate, c.termMonths)
}

func (c LoanConfiguration) String() string {
	return fmt.Sprintf("%s at %s over %s, instalment %s",
		c.amount, c.annualRate, c.termMonths, c.monthlyPayment)
}
