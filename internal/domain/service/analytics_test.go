package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kreditwerk/tilgung-service/internal/domain/model"
	"github.com/kreditwerk/tilgung-service/internal/domain/service"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

func newAnalyzer() *service.SondertilgungAnalyzer {
	algebra := service.NewLoanAlgebra()
	return service.NewSondertilgungAnalyzer(algebra, service.NewAmortizationEngine(algebra))
}

func TestAnalyzer_Impact(t *testing.T) {
	analyzer := newAnalyzer()
	cfg := deriveConfig(t, "50000.00", "2", 60)
	plan := planOf(t, extraAt(t, 12, "5000.00"), extraAt(t, 24, "5000.00"))

	impact, err := analyzer.Impact(cfg, *plan, scheduleStart)

	require.NoError(t, err)
	assert.Equal(t, 60, impact.OriginalTermMonths)
	assert.Less(t, impact.NewTermMonths, 60)
	assert.Equal(t, impact.OriginalTermMonths-impact.NewTermMonths, impact.TermReduction)
	assert.True(t, impact.NewTotalInterest.LessThan(impact.OriginalTotalInterest))
	assert.True(t, impact.InterestSaved.GreaterThan(valueobject.ZeroMoney))
	assert.Equal(t, int64(1000000), impact.TotalExtraPayments.Cents())
	assert.True(t, impact.EffectiveInterestRate.IsPositive())
}

func TestAnalyzer_Impact_EmptyPlan(t *testing.T) {
	analyzer := newAnalyzer()
	cfg := deriveConfig(t, "50000.00", "2", 60)
	empty, err := model.NewExtraPaymentPlan(valueobject.UnlimitedYearlyLimit(), nil)
	require.NoError(t, err)

	impact, err := analyzer.Impact(cfg, empty, scheduleStart)

	require.NoError(t, err)
	assert.Equal(t, 0, impact.TermReduction)
	assert.True(t, impact.TotalExtraPayments.IsZero())
	assert.True(t, impact.EffectiveInterestRate.IsZero())
}

func TestAnalyzer_OptimalExtraPayment_CappedByMaximum(t *testing.T) {
	analyzer := newAnalyzer()
	cfg := deriveConfig(t, "100000.00", "5.6", 84)

	optimal, err := analyzer.OptimalExtraPayment(cfg, valueobject.MustPaymentMonth(12), valueobject.MustMoney("10000.00"))

	require.NoError(t, err)
	assert.Equal(t, int64(1000000), optimal.Cents())
}

func TestAnalyzer_OptimalExtraPayment_CappedByBalance(t *testing.T) {
	analyzer := newAnalyzer()
	cfg := deriveConfig(t, "100000.00", "5.6", 84)

	// In the final month the remaining balance is below the offered maximum.
	optimal, err := analyzer.OptimalExtraPayment(cfg, valueobject.MustPaymentMonth(84), valueobject.MustMoney("10000.00"))

	require.NoError(t, err)
	assert.True(t, optimal.LessThan(valueobject.MustMoney("10000.00")))
	assert.False(t, optimal.IsZero())
}

func TestAnalyzer_CompareStrategies_RanksBySavings(t *testing.T) {
	analyzer := newAnalyzer()
	cfg := deriveConfig(t, "100000.00", "5.6", 84)

	comparisons, err := analyzer.CompareStrategies(cfg, []service.CandidatePlan{
		{Label: "small late", Plan: *planOf(t, extraAt(t, 48, "2000.00"))},
		{Label: "large early", Plan: *planOf(t, extraAt(t, 6, "10000.00"))},
		{Label: "medium", Plan: *planOf(t, extraAt(t, 12, "5000.00"))},
	}, scheduleStart)

	require.NoError(t, err)
	require.Len(t, comparisons, 3)

	assert.Equal(t, "large early", comparisons[0].Label)
	assert.Equal(t, 1, comparisons[0].Rank)
	assert.Equal(t, "medium", comparisons[1].Label)
	assert.Equal(t, 2, comparisons[1].Rank)
	assert.Equal(t, "small late", comparisons[2].Label)
	assert.Equal(t, 3, comparisons[2].Rank)

	for i := 1; i < len(comparisons); i++ {
		assert.True(t, comparisons[i].Impact.InterestSaved.LessThanOrEqual(comparisons[i-1].Impact.InterestSaved))
	}
}

func TestAnalyzer_InterestSensitivity(t *testing.T) {
	analyzer := newAnalyzer()
	cfg := deriveConfig(t, "100000.00", "5.6", 84)

	sensitivity, err := analyzer.InterestSensitivity(
		cfg,
		valueobject.MustMoney("10000.00"),
		valueobject.MustPaymentMonth(12),
		scheduleStart,
	)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(5.6).Equal(sensitivity.BaseRate.AnnualPercent()))
	assert.True(t, decimal.NewFromFloat(4.6).Equal(sensitivity.LowerRate.AnnualPercent()))
	assert.True(t, decimal.NewFromFloat(6.6).Equal(sensitivity.HigherRate.AnnualPercent()))

	// Higher rates make the same extra payment save more.
	assert.True(t, sensitivity.SavingsAtLower.LessThan(sensitivity.SavingsAtBase))
	assert.True(t, sensitivity.SavingsAtBase.LessThan(sensitivity.SavingsAtHigher))
}

func TestAnalyzer_InterestSensitivity_LowerRateClampedAtZero(t *testing.T) {
	analyzer := newAnalyzer()
	cfg := deriveConfig(t, "60000.00", "0.5", 60)

	sensitivity, err := analyzer.InterestSensitivity(
		cfg,
		valueobject.MustMoney("5000.00"),
		valueobject.MustPaymentMonth(6),
		scheduleStart,
	)

	require.NoError(t, err)
	assert.True(t, sensitivity.LowerRate.IsZero())
	assert.True(t, sensitivity.SavingsAtLower.IsZero())
}
