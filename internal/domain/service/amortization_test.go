package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kreditwerk/tilgung-service/internal/domain/model"
	"github.com/kreditwerk/tilgung-service/internal/domain/service"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

func newEngine() *service.AmortizationEngine {
	return service.NewAmortizationEngine(service.NewLoanAlgebra())
}

func planOf(t *testing.T, payments ...model.ExtraPayment) *model.ExtraPaymentPlan {
	t.Helper()
	plan, err := model.NewExtraPaymentPlan(valueobject.UnlimitedYearlyLimit(), payments)
	require.NoError(t, err)
	return &plan
}

func extraAt(t *testing.T, month int, amount string) model.ExtraPayment {
	t.Helper()
	ep, err := model.NewExtraPayment(valueobject.MustPaymentMonth(month), valueobject.MustMoney(amount))
	require.NoError(t, err)
	return ep
}

var scheduleStart = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateSchedule_ContractualTerm(t *testing.T) {
	engine := newEngine()
	cfg := deriveConfig(t, "100000.00", "5.6", 84)

	schedule, err := engine.GenerateSchedule(cfg, nil, scheduleStart)

	require.NoError(t, err)
	assert.Equal(t, 84, schedule.Months())

	first, ok := schedule.Entry(1)
	require.True(t, ok)
	assert.Equal(t, int64(10000000), first.StartingBalance.Cents())
	assert.Equal(t, int64(46667), first.Payment.Interest.Cents())

	last, ok := schedule.Entry(84)
	require.True(t, ok)
	assert.True(t, last.EndingBalance.IsZero())
	assert.Equal(t, int64(10000000), last.CumulativePrincipal.Cents())
	assert.Equal(t, 0, last.RemainingMonths)
}

func TestGenerateSchedule_BalancesDecreaseMonotonically(t *testing.T) {
	engine := newEngine()
	cfg := deriveConfig(t, "100000.00", "5.6", 84)

	schedule, err := engine.GenerateSchedule(cfg, nil, scheduleStart)
	require.NoError(t, err)

	prev := cfg.Amount()
	for _, entry := range schedule.Entries() {
		assert.True(t, entry.StartingBalance.Equal(prev), "month %d starting balance", entry.MonthNumber)
		assert.True(t, entry.EndingBalance.LessThan(entry.StartingBalance), "month %d", entry.MonthNumber)
		prev = entry.EndingBalance
	}
	assert.True(t, prev.IsZero())
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	engine := newEngine()
	cfg := deriveConfig(t, "60000.00", "0", 60)

	schedule, err := engine.GenerateSchedule(cfg, nil, scheduleStart)

	require.NoError(t, err)
	assert.Equal(t, 60, schedule.Months())

	metrics := schedule.Metrics()
	assert.True(t, metrics.TotalInterest.IsZero())
	assert.Equal(t, int64(6000000), metrics.TotalPrincipal.Cents())
	assert.Equal(t, int64(100000), metrics.AveragePayment.Cents())

	for _, entry := range schedule.Entries() {
		assert.True(t, entry.Payment.Interest.IsZero(), "month %d", entry.MonthNumber)
		assert.Equal(t, int64(100000), entry.TotalPayment.Cents(), "month %d", entry.MonthNumber)
	}
}

func TestGenerateSchedule_WithExtraPayments(t *testing.T) {
	engine := newEngine()
	cfg := deriveConfig(t, "50000.00", "2", 60)
	plan := planOf(t,
		extraAt(t, 12, "5000.00"),
		extraAt(t, 24, "5000.00"),
	)

	schedule, err := engine.GenerateSchedule(cfg, plan, scheduleStart)

	require.NoError(t, err)
	assert.Less(t, schedule.Months(), 60)

	twelve, ok := schedule.Entry(12)
	require.True(t, ok)
	assert.Equal(t, int64(500000), twelve.ExtraPayment.Cents())
	assert.True(t, twelve.HasExtraPayment())

	twentyFour, ok := schedule.Entry(24)
	require.True(t, ok)
	assert.Equal(t, int64(500000), twentyFour.ExtraPayment.Cents())

	metrics := schedule.Metrics()
	assert.Equal(t, int64(1000000), metrics.TotalExtraPayments.Cents())
	assert.Greater(t, metrics.TermReduction, 0)
	assert.True(t, metrics.InterestSaved.GreaterThan(valueobject.ZeroMoney))
	assert.True(t, metrics.EffectiveReturnPercent.IsPositive())
	assert.Equal(t, 60, metrics.OriginalTermMonths)
	assert.Equal(t, schedule.Months(), metrics.ActualTermMonths)
}

func TestGenerateSchedule_ExtraPaymentsNeverLengthenTerm(t *testing.T) {
	engine := newEngine()
	cfg := deriveConfig(t, "100000.00", "5.6", 84)

	base, err := engine.GenerateSchedule(cfg, nil, scheduleStart)
	require.NoError(t, err)

	withExtra, err := engine.GenerateSchedule(cfg, planOf(t, extraAt(t, 6, "2000.00")), scheduleStart)
	require.NoError(t, err)

	assert.LessOrEqual(t, withExtra.Months(), base.Months())
	assert.True(t, withExtra.Metrics().TotalInterest.LessThan(base.Metrics().TotalInterest))
}

func TestGenerateSchedule_ExtraPaymentCappedAtBalance(t *testing.T) {
	engine := newEngine()
	cfg := deriveConfig(t, "50000.00", "2", 60)

	// An extra payment larger than the loan balance pays off in month one.
	schedule, err := engine.GenerateSchedule(cfg, planOf(t, extraAt(t, 1, "80000.00")), scheduleStart)

	require.NoError(t, err)
	assert.Equal(t, 1, schedule.Months())

	only, ok := schedule.Entry(1)
	require.True(t, ok)
	assert.True(t, only.ExtraPayment.LessThan(valueobject.MustMoney("80000.00")))
	assert.True(t, only.EndingBalance.IsZero())
	assert.Equal(t, int64(5000000), only.CumulativePrincipal.Cents())
}

func TestGenerateSchedule_CumulativePrincipalConservation(t *testing.T) {
	engine := newEngine()
	cfg := deriveConfig(t, "50000.00", "2", 60)

	schedule, err := engine.GenerateSchedule(cfg, planOf(t, extraAt(t, 12, "5000.00")), scheduleStart)
	require.NoError(t, err)

	entries := schedule.Entries()
	last := entries[len(entries)-1]
	assert.Equal(t, cfg.Amount().Cents(), last.CumulativePrincipal.Cents())

	// Per-entry accounting: starting - principal - extra == ending.
	for _, entry := range entries {
		paid := entry.Payment.Principal.Cents() + entry.ExtraPayment.Cents()
		assert.Equal(t, entry.StartingBalance.Cents()-paid, entry.EndingBalance.Cents(), "month %d", entry.MonthNumber)
	}
}

func TestGenerateSchedule_PrincipalPercentageReachesHundred(t *testing.T) {
	engine := newEngine()
	cfg := deriveConfig(t, "15000.00", "8", 120)

	schedule, err := engine.GenerateSchedule(cfg, nil, scheduleStart)
	require.NoError(t, err)

	entries := schedule.Entries()
	last := entries[len(entries)-1]
	assert.True(t, last.PrincipalPercentage.Value().Equal(valueobject.MustPercentage("100").Value()))

	prev := valueobject.ZeroPercent
	for _, entry := range entries {
		assert.True(t, entry.PrincipalPercentage.Value().GreaterThanOrEqual(prev.Value()), "month %d", entry.MonthNumber)
		prev = entry.PrincipalPercentage
	}
}

func TestGenerateSchedule_PayoffDate(t *testing.T) {
	engine := newEngine()
	cfg := deriveConfig(t, "60000.00", "0", 60)

	schedule, err := engine.GenerateSchedule(cfg, nil, scheduleStart)
	require.NoError(t, err)

	assert.Equal(t, scheduleStart.AddDate(0, 60, 0), schedule.Metrics().PayoffDate)
}
