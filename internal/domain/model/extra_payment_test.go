package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kreditwerk/tilgung-service/internal/domain/model"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

func mustExtraPayment(t *testing.T, month int, amount string) model.ExtraPayment {
	t.Helper()
	ep, err := model.NewExtraPayment(valueobject.MustPaymentMonth(month), valueobject.MustMoney(amount))
	require.NoError(t, err)
	return ep
}

func TestNewExtraPayment_ZeroAmount(t *testing.T) {
	_, err := model.NewExtraPayment(valueobject.MustPaymentMonth(12), valueobject.ZeroMoney)

	require.ErrorIs(t, err, valueobject.ErrInvalidAmount)
}

func TestNewExtraPaymentPlan_SortsByMonth(t *testing.T) {
	plan, err := model.NewExtraPaymentPlan(valueobject.UnlimitedYearlyLimit(), []model.ExtraPayment{
		mustExtraPayment(t, 24, "5000.00"),
		mustExtraPayment(t, 12, "5000.00"),
	})

	require.NoError(t, err)
	payments := plan.Payments()
	require.Len(t, payments, 2)
	assert.Equal(t, 12, payments[0].Month().Month())
	assert.Equal(t, 24, payments[1].Month().Month())
}

func TestNewExtraPaymentPlan_RejectsDuplicateMonths(t *testing.T) {
	_, err := model.NewExtraPaymentPlan(valueobject.UnlimitedYearlyLimit(), []model.ExtraPayment{
		mustExtraPayment(t, 12, "1000.00"),
		mustExtraPayment(t, 12, "2000.00"),
	})

	require.ErrorIs(t, err, valueobject.ErrInvalidAmount)
}

func TestExtraPaymentPlan_PaymentFor(t *testing.T) {
	plan, err := model.NewExtraPaymentPlan(valueobject.UnlimitedYearlyLimit(), []model.ExtraPayment{
		mustExtraPayment(t, 12, "5000.00"),
		mustExtraPayment(t, 24, "3000.00"),
	})
	require.NoError(t, err)

	amount, ok := plan.PaymentFor(12)
	require.True(t, ok)
	assert.Equal(t, int64(500000), amount.Cents())

	_, ok = plan.PaymentFor(13)
	assert.False(t, ok)
}

func TestExtraPaymentPlan_TotalAmount(t *testing.T) {
	plan, err := model.NewExtraPaymentPlan(valueobject.UnlimitedYearlyLimit(), []model.ExtraPayment{
		mustExtraPayment(t, 12, "5000.00"),
		mustExtraPayment(t, 24, "5000.00"),
	})
	require.NoError(t, err)

	total, err := plan.TotalAmount()
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), total.Cents())
}

func TestExtraPaymentPlan_YearlyTotals(t *testing.T) {
	plan, err := model.NewExtraPaymentPlan(valueobject.UnlimitedYearlyLimit(), []model.ExtraPayment{
		mustExtraPayment(t, 6, "2000.00"),
		mustExtraPayment(t, 12, "3000.00"),
		mustExtraPayment(t, 13, "4000.00"),
	})
	require.NoError(t, err)

	totals, err := plan.YearlyTotals()
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, int64(500000), totals[1].Cents())
	assert.Equal(t, int64(400000), totals[2].Cents())
}

func TestExtraPaymentPlan_Empty(t *testing.T) {
	plan, err := model.NewExtraPaymentPlan(valueobject.UnlimitedYearlyLimit(), nil)

	require.NoError(t, err)
	assert.True(t, plan.IsEmpty())

	total, err := plan.TotalAmount()
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}
