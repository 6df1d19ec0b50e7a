package service

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/kreditwerk/tilgung-service/internal/domain/model"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

// Bisection bounds for the rate solver. The annual rate has no closed form,
// so it is bracketed and halved; bisection trades iterations for guaranteed
// convergence on a monotonic function, which is the right trade for a
// non-latency-critical engine.
const (
	rateSearchLowAnnual  = 0.0001
	rateSearchHighAnnual = 0.30
	rateSearchMaxIter    = 200
	// paymentToleranceMajor is one cent, in major units.
	paymentToleranceMajor = 0.01
)

// LoanAlgebra relates the four loan unknowns - amount, rate, term, payment -
// through closed-form formulas and one numerical solver. Every method is
// deterministic and side-effect-free; failures mean the inputs admit no valid
// answer, never that something should be retried.
type LoanAlgebra struct{}

// NewLoanAlgebra returns the stateless algebra service.
func NewLoanAlgebra() *LoanAlgebra {
	return &LoanAlgebra{}
}

// MonthlyPayment computes the level instalment for the configuration and the
// first month's principal/interest split.
func (a *LoanAlgebra) MonthlyPayment(cfg model.LoanConfiguration) (model.MonthlyPayment, error) {
	total, err := model.AnnuityPayment(cfg.Amount(), cfg.AnnualRate(), cfg.TermMonths())
	if err != nil {
		return model.MonthlyPayment{}, err
	}

	interest, err := cfg.Amount().MulDecimal(cfg.AnnualRate().Monthly())
	if err != nil {
		return model.MonthlyPayment{}, err
	}
	if total.LessThan(interest) {
		return model.MonthlyPayment{}, fmt.Errorf(
			"%w: instalment %s below first month interest %s",
			valueobject.ErrInsufficientPayment, total, interest,
		)
	}

	principal, err := total.Sub(interest)
	if err != nil {
		return model.MonthlyPayment{}, err
	}
	return model.NewMonthlyPayment(principal, interest, total)
}

// LoanTerm inverts the annuity formula for the number of months:
//
//	n = -ln(1 - L*c/P) / ln(1+c)
//
// rounded up to whole months; at 0% it degrades to ceil(L / P). The payment
// must strictly exceed the first month's interest, otherwise the balance never
// shrinks and no term exists.
func (a *LoanAlgebra) LoanTerm(
	amount valueobject.Money,
	rate valueobject.InterestRate,
	payment valueobject.Money,
) (valueobject.MonthCount, error) {
	if payment.IsZero() {
		return valueobject.MonthCount{}, fmt.Errorf("%w: payment is zero", valueobject.ErrInsufficientPayment)
	}

	if rate.IsZero() {
		months := (amount.Cents() + payment.Cents() - 1) / payment.Cents()
		return valueobject.NewMonthCount(int(months))
	}

	c := rate.MonthlyFloat()
	firstInterest := amount.Float64() * c
	if payment.Float64() <= firstInterest {
		return valueobject.MonthCount{}, fmt.Errorf(
			"%w: payment %s covers at most the monthly interest (%.2f)",
			valueobject.ErrInsufficientPayment, payment, firstInterest,
		)
	}

	n := -math.Log(1-amount.Float64()*c/payment.Float64()) / math.Log(1+c)
	return valueobject.NewMonthCount(int(math.Ceil(n - 1e-9)))
}

// InterestRate solves for the annual rate that produces the given payment.
// There is no closed form; the rate is found by bisecting the annual interval
// [0.01%, 30%] until the implied payment is within one cent of the target.
func (a *LoanAlgebra) InterestRate(
	amount valueobject.Money,
	payment valueobject.Money,
	term valueobject.MonthCount,
) (valueobject.InterestRate, error) {
	L := amount.Float64()
	P := payment.Float64()
	n := float64(term.Months())

	// A payment at or below the even zero-interest split means 0% (or an
	// infeasible target below it).
	zeroSplit := L / n
	if math.Abs(P-zeroSplit) <= paymentToleranceMajor {
		return valueobject.ZeroRate, nil
	}
	if P < zeroSplit {
		return valueobject.InterestRate{}, fmt.Errorf(
			"%w: payment %s below the zero-interest instalment %.2f",
			valueobject.ErrMathematical, payment, zeroSplit,
		)
	}

	implied := func(annual float64) float64 {
		c := annual / 12.0
		factor := math.Pow(1+c, n)
		return L * c * factor / (factor - 1)
	}

	lo, hi := rateSearchLowAnnual, rateSearchHighAnnual
	if P > implied(hi)+paymentToleranceMajor {
		return valueobject.InterestRate{}, fmt.Errorf(
			"%w: payment %s exceeds the instalment at %.0f%% (%.2f)",
			valueobject.ErrMathematical, payment, rateSearchHighAnnual*100, implied(hi),
		)
	}
	if P < implied(lo)-paymentToleranceMajor {
		// Between 0% and the lower search bound: indistinguishable from zero.
		return valueobject.ZeroRate, nil
	}

	mid := lo
	for i := 0; i < rateSearchMaxIter; i++ {
		mid = (lo + hi) / 2
		p := implied(mid)
		if math.Abs(p-P) <= paymentToleranceMajor {
			break
		}
		if p < P {
			lo = mid
		} else {
			hi = mid
		}
	}

	return valueobject.NewInterestRateFromPercent(decimal.NewFromFloat(mid * 100).Round(4))
}

// TotalInterest is the lifetime interest of the contractual schedule:
// instalment x term - amount.
func (a *LoanAlgebra) TotalInterest(cfg model.LoanConfiguration) (valueobject.Money, error) {
	totalPaid, err := cfg.MonthlyPayment().MulInt(cfg.TermMonths().Months())
	if err != nil {
		return valueobject.Money{}, err
	}
	if totalPaid.LessThan(cfg.Amount()) {
		return valueobject.Money{}, fmt.Errorf(
			"%w: lifetime payments %s below principal %s",
			valueobject.ErrInsufficientPayment, totalPaid, cfg.Amount(),
		)
	}
	return totalPaid.Sub(cfg.Amount())
}

// RemainingBalance evaluates the closed-form balance after k payments:
//
//	B(k) = L * (F(n) - F(k)) / (F(n) - 1),  F(x) = (1+c)^x
//
// zero once k >= n, linear paydown at 0%.
func (a *LoanAlgebra) RemainingBalance(cfg model.LoanConfiguration, paymentsMade int) (valueobject.Money, error) {
	if paymentsMade < 0 {
		return valueobject.Money{}, fmt.Errorf("%w: %d payments made", valueobject.ErrInvalidTerm, paymentsMade)
	}

	n := cfg.TermMonths().Months()
	if paymentsMade >= n {
		return valueobject.ZeroMoney, nil
	}

	if cfg.AnnualRate().IsZero() {
		frac := decimal.NewFromInt(int64(n - paymentsMade)).Div(decimal.NewFromInt(int64(n)))
		return cfg.Amount().MulDecimal(frac)
	}

	c := cfg.AnnualRate().MonthlyFloat()
	fn := math.Pow(1+c, float64(n))
	fk := math.Pow(1+c, float64(paymentsMade))
	if fn-1 <= 0 {
		return valueobject.Money{}, fmt.Errorf("%w: degenerate balance denominator", valueobject.ErrMathematical)
	}

	balance := cfg.Amount().Float64() * (fn - fk) / (fn - 1)
	return valueobject.NewMoneyFromDecimal(decimal.NewFromFloat(balance).Round(2))
}

// BreakEvenPoint is the number of months after which the instalment saved by
// refinancing offsets its upfront cost: ceil(cost / (current - new)). The new
// payment must be strictly lower, otherwise there is nothing to recover.
func (a *LoanAlgebra) BreakEvenPoint(current, proposed, cost valueobject.Money) (int, error) {
	if !proposed.LessThan(current) {
		return 0, fmt.Errorf(
			"%w: new instalment %s is not below current %s",
			valueobject.ErrInsufficientPayment, proposed, current,
		)
	}
	saved := current.Cents() - proposed.Cents()
	months := (cost.Cents() + saved - 1) / saved
	if months < 1 {
		months = 1
	}
	return int(months), nil
}

// ScenarioAdjustment overrides individual loan parameters for a what-if run.
// Nil fields keep the base value.
type ScenarioAdjustment struct {
	Label      string
	Amount     *valueobject.Money
	AnnualRate *valueobject.InterestRate
	TermMonths *valueobject.MonthCount
}

// PaymentScenario is the outcome of one what-if adjustment.
type PaymentScenario struct {
	Label         string
	Configuration model.LoanConfiguration
	Payment       model.MonthlyPayment
	TotalInterest valueobject.Money
	// PaymentDelta is new instalment minus base instalment, in major units.
	PaymentDelta decimal.Decimal
}

// PaymentScenarios evaluates a batch of adjustments against a base
// configuration. A single invalid adjustment fails the whole batch; callers
// get either every scenario or none.
func (a *LoanAlgebra) PaymentScenarios(
	base model.LoanConfiguration,
	adjustments []ScenarioAdjustment,
) ([]PaymentScenario, error) {
	scenarios := make([]PaymentScenario, 0, len(adjustments))

	for _, adj := range adjustments {
		amount := base.Amount()
		if adj.Amount != nil {
			amount = *adj.Amount
		}
		rate := base.AnnualRate()
		if adj.AnnualRate != nil {
			rate = *adj.AnnualRate
		}
		term := base.TermMonths()
		if adj.TermMonths != nil {
			term = *adj.TermMonths
		}

		cfg, err := model.DeriveLoanConfiguration(amount, rate, term)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", adj.Label, err)
		}
		payment, err := a.MonthlyPayment(cfg)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", adj.Label, err)
		}
		totalInterest, err := a.TotalInterest(cfg)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", adj.Label, err)
		}

		scenarios = append(scenarios, PaymentScenario{
			Label:         adj.Label,
			Configuration: cfg,
			Payment:       payment,
			TotalInterest: totalInterest,
			PaymentDelta:  payment.Total.Decimal().Sub(base.MonthlyPayment().Decimal()),
		})
	}

	return scenarios, nil
}
