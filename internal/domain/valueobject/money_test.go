package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

func TestNewMoneyFromCents_Valid(t *testing.T) {
	m, err := valueobject.NewMoneyFromCents(123456)

	require.NoError(t, err)
	assert.Equal(t, int64(123456), m.Cents())
	assert.Equal(t, "1234.56", m.String())
}

func TestNewMoneyFromCents_Negative(t *testing.T) {
	_, err := valueobject.NewMoneyFromCents(-1)

	require.ErrorIs(t, err, valueobject.ErrNegativeAmount)
}

func TestNewMoneyFromCents_ExceedsMaximum(t *testing.T) {
	_, err := valueobject.NewMoneyFromCents(valueobject.MaxAmountCents + 1)

	require.ErrorIs(t, err, valueobject.ErrExceedsMaximum)
}

func TestNewMoneyFromCents_AtMaximum(t *testing.T) {
	m, err := valueobject.NewMoneyFromCents(valueobject.MaxAmountCents)

	require.NoError(t, err)
	assert.Equal(t, valueobject.MaxAmountCents, m.Cents())
}

func TestNewMoneyFromString(t *testing.T) {
	tests := []struct {
		input   string
		cents   int64
		wantErr bool
	}{
		{input: "100000.00", cents: 10000000},
		{input: "0.01", cents: 1},
		{input: "0", cents: 0},
		{input: "1441.76", cents: 144176},
		{input: "-5.00", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		m, err := valueobject.NewMoneyFromString(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.cents, m.Cents(), "input %q", tt.input)
	}
}

func TestNewMoneyFromDecimal_RoundsToCent(t *testing.T) {
	m, err := valueobject.NewMoneyFromDecimal(decimal.NewFromFloat(10.005))

	require.NoError(t, err)
	assert.Equal(t, int64(1001), m.Cents())
}

func TestMoney_AddSub(t *testing.T) {
	a := valueobject.MustMoney("100.50")
	b := valueobject.MustMoney("0.50")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(10100), sum.Cents())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), diff.Cents())
}

func TestMoney_Sub_Underflow(t *testing.T) {
	a := valueobject.MustMoney("1.00")
	b := valueobject.MustMoney("2.00")

	_, err := a.Sub(b)

	require.ErrorIs(t, err, valueobject.ErrNegativeAmount)
}

func TestMoney_MulDecimal_HalfUp(t *testing.T) {
	// 100000.00 * 0.004666... = 466.67 after half-up rounding.
	m := valueobject.MustMoney("100000.00")
	monthlyRate := decimal.NewFromFloat(0.056).Div(decimal.NewFromInt(12))

	interest, err := m.MulDecimal(monthlyRate)

	require.NoError(t, err)
	assert.Equal(t, int64(46667), interest.Cents())
}

func TestMoney_Comparisons(t *testing.T) {
	small := valueobject.MustMoney("1.00")
	large := valueobject.MustMoney("2.00")

	assert.True(t, small.LessThan(large))
	assert.True(t, small.LessThanOrEqual(small))
	assert.True(t, large.GreaterThan(small))
	assert.True(t, small.Equal(valueobject.MustMoney("1.00")))
	assert.Equal(t, small, small.Min(large))
	assert.True(t, valueobject.ZeroMoney.IsZero())
}
