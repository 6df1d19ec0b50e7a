package usecase

import (
	"context"
	"fmt"

	"github.com/kreditwerk/tilgung-service/internal/application/dto"
	"github.com/kreditwerk/tilgung-service/internal/domain/service"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

// SolveTermUseCase inverts the annuity formula for the loan duration.
type SolveTermUseCase struct {
	algebra *service.LoanAlgebra
}

// NewSolveTermUseCase wires dependencies.
func NewSolveTermUseCase(algebra *service.LoanAlgebra) *SolveTermUseCase {
	return &SolveTermUseCase{algebra: algebra}
}

// Execute solves for the term.
func (uc *SolveTermUseCase) Execute(
	ctx context.Context,
	req dto.SolveTermRequest,
) (dto.TermResponse, error) {
	_, span := tracer().Start(ctx, "SolveTerm")
	defer span.End()

	amount, err := valueobject.NewMoneyFromDecimal(req.Amount)
	if err != nil {
		return dto.TermResponse{}, fmt.Errorf("loan amount: %w", err)
	}
	rate, err := valueobject.NewInterestRateFromPercent(req.AnnualRatePercent)
	if err != nil {
		return dto.TermResponse{}, fmt.Errorf("annual rate: %w", err)
	}
	payment, err := valueobject.NewMoneyFromDecimal(req.MonthlyPayment)
	if err != nil {
		return dto.TermResponse{}, fmt.Errorf("monthly payment: %w", err)
	}

	term, err := uc.algebra.LoanTerm(amount, rate, payment)
	if err != nil {
		return dto.TermResponse{}, err
	}

	return dto.TermResponse{Months: term.Months(), Years: term.Years()}, nil
}
