package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kreditwerk/tilgung-service/internal/domain/model"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

// SondertilgungImpact quantifies what a plan of extra payments does to a loan.
type SondertilgungImpact struct {
	OriginalTotalInterest valueobject.Money
	NewTotalInterest      valueobject.Money
	InterestSaved         valueobject.Money
	OriginalTermMonths    int
	NewTermMonths         int
	TermReduction         int
	TotalExtraPayments    valueobject.Money
	// EffectiveInterestRate is interest saved per unit of extra payment as a
	// percentage; zero when the plan schedules nothing.
	EffectiveInterestRate decimal.Decimal
}

// StrategyComparison ranks one candidate plan against its alternatives.
type StrategyComparison struct {
	Rank   int
	Label  string
	Plan   model.ExtraPaymentPlan
	Impact SondertilgungImpact
}

// RateSensitivity expresses how much the savings from one extra payment move
// when the rate assumption shifts by one percentage point in either direction.
type RateSensitivity struct {
	BaseRate        valueobject.InterestRate
	SavingsAtBase   valueobject.Money
	SavingsAtLower  valueobject.Money
	SavingsAtHigher valueobject.Money
	LowerRate       valueobject.InterestRate
	HigherRate      valueobject.InterestRate
}

// SondertilgungAnalyzer builds comparative analytics on top of the
// amortization engine and the loan algebra. It carries no state between
// calls; every analysis is an independent computation from explicit inputs.
type SondertilgungAnalyzer struct {
	algebra *LoanAlgebra
	engine  *AmortizationEngine
}

// NewSondertilgungAnalyzer wires the two lower layers.
func NewSondertilgungAnalyzer(algebra *LoanAlgebra, engine *AmortizationEngine) *SondertilgungAnalyzer {
	return &SondertilgungAnalyzer{algebra: algebra, engine: engine}
}

// Impact simulates the loan once with the plan attached and compares it
// against the closed-form contractual baseline.
func (s *SondertilgungAnalyzer) Impact(
	cfg model.LoanConfiguration,
	plan model.ExtraPaymentPlan,
	startDate time.Time,
) (SondertilgungImpact, error) {
	schedule, err := s.engine.GenerateSchedule(cfg, &plan, startDate)
	if err != nil {
		return SondertilgungImpact{}, fmt.Errorf("simulate plan: %w", err)
	}

	originalInterest, err := s.algebra.TotalInterest(cfg)
	if err != nil {
		return SondertilgungImpact{}, err
	}

	m := schedule.Metrics()
	return SondertilgungImpact{
		OriginalTotalInterest: originalInterest,
		NewTotalInterest:      m.TotalInterest,
		InterestSaved:         m.InterestSaved,
		OriginalTermMonths:    m.OriginalTermMonths,
		NewTermMonths:         m.ActualTermMonths,
		TermReduction:         m.TermReduction,
		TotalExtraPayments:    m.TotalExtraPayments,
		EffectiveInterestRate: m.EffectiveReturnPercent,
	}, nil
}

// OptimalExtraPayment returns min(maxAmount, remaining balance at the month).
// This is deliberately the simple cap-at-maximum policy, not a true optimizer;
// substituting a smarter algorithm would be a behavior change for existing
// consumers.
func (s *SondertilgungAnalyzer) OptimalExtraPayment(
	cfg model.LoanConfiguration,
	month valueobject.PaymentMonth,
	maxAmount valueobject.Money,
) (valueobject.Money, error) {
	balance, err := s.algebra.RemainingBalance(cfg, month.Month()-1)
	if err != nil {
		return valueobject.Money{}, err
	}
	return maxAmount.Min(balance), nil
}

// CandidatePlan names a plan for strategy comparison.
type CandidatePlan struct {
	Label string
	Plan  model.ExtraPaymentPlan
}

// CompareStrategies evaluates every candidate plan and ranks them by
// descending interest saved. A single invalid plan fails the whole
// comparison.
func (s *SondertilgungAnalyzer) CompareStrategies(
	cfg model.LoanConfiguration,
	candidates []CandidatePlan,
	startDate time.Time,
) ([]StrategyComparison, error) {
	comparisons := make([]StrategyComparison, 0, len(candidates))
	for _, c := range candidates {
		impact, err := s.Impact(cfg, c.Plan, startDate)
		if err != nil {
			return nil, fmt.Errorf("strategy %q: %w", c.Label, err)
		}
		comparisons = append(comparisons, StrategyComparison{
			Label:  c.Label,
			Plan:   c.Plan,
			Impact: impact,
		})
	}

	sort.SliceStable(comparisons, func(i, j int) bool {
		return comparisons[j].Impact.InterestSaved.LessThan(comparisons[i].Impact.InterestSaved)
	})
	for i := range comparisons {
		comparisons[i].Rank = i + 1
	}
	return comparisons, nil
}

// InterestSensitivity computes the savings from a single extra payment at the
// configured rate and at one percentage point below and above it, exposing how
// much the savings estimate depends on the rate assumption. The payment for
// each shifted rate is re-derived so every comparison runs against an
// internally consistent configuration.
func (s *SondertilgungAnalyzer) InterestSensitivity(
	cfg model.LoanConfiguration,
	amount valueobject.Money,
	month valueobject.PaymentMonth,
	startDate time.Time,
) (RateSensitivity, error) {
	basePercent := cfg.AnnualRate().AnnualPercent()

	lowerPercent := basePercent.Sub(decimal.NewFromInt(1))
	if lowerPercent.IsNegative() {
		lowerPercent = decimal.Zero
	}
	higherPercent := basePercent.Add(decimal.NewFromInt(1))

	lowerRate, err := valueobject.NewInterestRateFromPercent(lowerPercent)
	if err != nil {
		return RateSensitivity{}, err
	}
	higherRate, err := valueobject.NewInterestRateFromPercent(higherPercent)
	if err != nil {
		return RateSensitivity{}, err
	}

	savingsAt := func(rate valueobject.InterestRate) (valueobject.Money, error) {
		shifted, err := cfg.WithRate(rate)
		if err != nil {
			return valueobject.Money{}, err
		}
		extra, err := model.NewExtraPayment(month, amount)
		if err != nil {
			return valueobject.Money{}, err
		}
		plan, err := model.NewExtraPaymentPlan(valueobject.UnlimitedYearlyLimit(), []model.ExtraPayment{extra})
		if err != nil {
			return valueobject.Money{}, err
		}
		impact, err := s.Impact(shifted, plan, startDate)
		if err != nil {
			return valueobject.Money{}, err
		}
		return impact.InterestSaved, nil
	}

	atBase, err := savingsAt(cfg.AnnualRate())
	if err != nil {
		return RateSensitivity{}, fmt.Errorf("sensitivity at base rate: %w", err)
	}
	atLower, err := savingsAt(lowerRate)
	if err != nil {
		return RateSensitivity{}, fmt.Errorf("sensitivity at lower rate: %w", err)
	}
	atHigher, err := savingsAt(higherRate)
	if err != nil {
		return RateSensitivity{}, fmt.Errorf("sensitivity at higher rate: %w", err)
	}

	return RateSensitivity{
		BaseRate:        cfg.AnnualRate(),
		SavingsAtBase:   atBase,
		SavingsAtLower:  atLower,
		SavingsAtHigher: atHigher,
		LowerRate:       lowerRate,
		HigherRate:      higherRate,
	}, nil
}
