package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

func TestNewMonthCount_Bounds(t *testing.T) {
	tests := []struct {
		months  int
		wantErr bool
	}{
		{months: 1},
		{months: 360},
		{months: valueobject.MaxTermMonths},
		{months: 0, wantErr: true},
		{months: -12, wantErr: true},
		{months: valueobject.MaxTermMonths + 1, wantErr: true},
	}

	for _, tt := range tests {
		mc, err := valueobject.NewMonthCount(tt.months)
		if tt.wantErr {
			assert.ErrorIs(t, err, valueobject.ErrInvalidTerm, "months %d", tt.months)
			continue
		}
		require.NoError(t, err, "months %d", tt.months)
		assert.Equal(t, tt.months, mc.Months())
	}
}

func TestMonthCount_Years(t *testing.T) {
	assert.Equal(t, 7, valueobject.MustMonthCount(84).Years())
	assert.Equal(t, 2, valueobject.MustMonthCount(30).Years())
}

func TestNewPaymentMonth_Bounds(t *testing.T) {
	_, err := valueobject.NewPaymentMonth(0)
	assert.ErrorIs(t, err, valueobject.ErrInvalidTerm)

	pm, err := valueobject.NewPaymentMonth(1)
	require.NoError(t, err)
	assert.Equal(t, 1, pm.Month())
}

func TestPaymentMonth_Year(t *testing.T) {
	tests := []struct {
		month int
		year  int
	}{
		{month: 1, year: 1},
		{month: 12, year: 1},
		{month: 13, year: 2},
		{month: 24, year: 2},
		{month: 25, year: 3},
	}

	for _, tt := range tests {
		pm := valueobject.MustPaymentMonth(tt.month)
		assert.Equal(t, tt.year, pm.Year(), "month %d", tt.month)
	}
}
