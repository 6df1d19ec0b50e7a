package usecase

import (
	"context"
	"fmt"

	"github.com/kreditwerk/tilgung-service/internal/application/dto"
	"github.com/kreditwerk/tilgung-service/internal/domain/service"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

// SolveRateUseCase finds the annual rate that produces a given instalment.
type SolveRateUseCase struct {
	algebra *service.LoanAlgebra
}

// NewSolveRateUseCase wires dependencies.
func NewSolveRateUseCase(algebra *service.LoanAlgebra) *SolveRateUseCase {
	return &SolveRateUseCase{algebra: algebra}
}

// Execute solves for the rate.
func (uc *SolveRateUseCase) Execute(
	ctx context.Context,
	req dto.SolveRateRequest,
) (dto.RateResponse, error) {
	_, span := tracer().Start(ctx, "SolveRate")
	defer span.End()

	amount, err := valueobject.NewMoneyFromDecimal(req.Amount)
	if err != nil {
		return dto.RateResponse{}, fmt.Errorf("loan amount: %w", err)
	}
	payment, err := valueobject.NewMoneyFromDecimal(req.MonthlyPayment)
	if err != nil {
		return dto.RateResponse{}, fmt.Errorf("monthly payment: %w", err)
	}
	term, err := valueobject.NewMonthCount(req.TermMonths)
	if err != nil {
		return dto.RateResponse{}, fmt.Errorf("term: %w", err)
	}

	rate, err := uc.algebra.InterestRate(amount, payment, term)
	if err != nil {
		return dto.RateResponse{}, err
	}

	return dto.RateResponse{AnnualRatePercent: rate.AnnualPercent()}, nil
}
