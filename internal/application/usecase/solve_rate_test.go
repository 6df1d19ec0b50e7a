package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kreditwerk/tilgung-service/internal/application/dto"
	"github.com/kreditwerk/tilgung-service/internal/application/usecase"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

func TestSolveRateUseCase_Execute(t *testing.T) {
	uc := usecase.NewSolveRateUseCase(testAlgebra())

	resp, err := uc.Execute(context.Background(), dto.SolveRateRequest{
		Amount:         decimal.NewFromInt(100000),
		MonthlyPayment: decimal.NewFromFloat(1441.76),
		TermMonths:     84,
	})

	require.NoError(t, err)
	assert.InDelta(t, 5.6, resp.AnnualRatePercent.InexactFloat64(), 0.1)
}

func TestSolveRateUseCase_InfeasiblePayment(t *testing.T) {
	uc := usecase.NewSolveRateUseCase(testAlgebra())

	_, err := uc.Execute(context.Background(), dto.SolveRateRequest{
		Amount:         decimal.NewFromInt(60000),
		MonthlyPayment: decimal.NewFromInt(500),
		TermMonths:     60,
	})

	require.ErrorIs(t, err, valueobject.ErrMathematical)
}
