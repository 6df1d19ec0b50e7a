package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

func TestNewInterestRateFromPercent_Valid(t *testing.T) {
	rate, err := valueobject.NewInterestRateFromPercent(decimal.NewFromFloat(5.6))

	require.NoError(t, err)
	assert.True(t, decimal.NewFromFloat(5.6).Equal(rate.AnnualPercent()))
	assert.True(t, decimal.NewFromFloat(0.056).Equal(rate.Annual()))
}

func TestNewInterestRateFromPercent_Bounds(t *testing.T) {
	tests := []struct {
		percent float64
		wantErr bool
	}{
		{percent: 0},
		{percent: 25},
		{percent: 0.01},
		{percent: -0.1, wantErr: true},
		{percent: 25.01, wantErr: true},
	}

	for _, tt := range tests {
		_, err := valueobject.NewInterestRateFromPercent(decimal.NewFromFloat(tt.percent))
		if tt.wantErr {
			assert.ErrorIs(t, err, valueobject.ErrInvalidInterestRate, "percent %v", tt.percent)
		} else {
			assert.NoError(t, err, "percent %v", tt.percent)
		}
	}
}

func TestInterestRate_Monthly(t *testing.T) {
	rate := valueobject.MustInterestRate("6")

	expected := decimal.NewFromFloat(0.005)
	assert.True(t, expected.Equal(rate.Monthly()), "expected %s, got %s", expected, rate.Monthly())
	assert.InDelta(t, 0.005, rate.MonthlyFloat(), 1e-12)
}

func TestInterestRate_IsZero(t *testing.T) {
	assert.True(t, valueobject.ZeroRate.IsZero())
	assert.False(t, valueobject.MustInterestRate("1").IsZero())
}
