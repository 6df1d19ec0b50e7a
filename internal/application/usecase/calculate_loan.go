package usecase

import (
	"context"
	"fmt"

	"github.com/kreditwerk/tilgung-service/internal/application/dto"
	"github.com/kreditwerk/tilgung-service/internal/domain/service"
)

// CalculateLoanUseCase returns the instalment breakdown and lifetime totals
// for a loan configuration.
type CalculateLoanUseCase struct {
	algebra *service.LoanAlgebra
}

// NewCalculateLoanUseCase wires dependencies.
func NewCalculateLoanUseCase(algebra *service.LoanAlgebra) *CalculateLoanUseCase {
	return &CalculateLoanUseCase{algebra: algebra}
}

// Execute computes the payment breakdown.
func (uc *CalculateLoanUseCase) Execute(
	ctx context.Context,
	req dto.CalculateLoanRequest,
) (dto.PaymentBreakdownResponse, error) {
	_, span := tracer().Start(ctx, "CalculateLoan")
	defer span.End()

	cfg, err := loanConfigFromParams(req.Loan)
	if err != nil {
		return dto.PaymentBreakdownResponse{}, fmt.Errorf("loan parameters: %w", err)
	}

	payment, err := uc.algebra.MonthlyPayment(cfg)
	if err != nil {
		return dto.PaymentBreakdownResponse{}, fmt.Errorf("monthly payment: %w", err)
	}
	totalInterest, err := uc.algebra.TotalInterest(cfg)
	if err != nil {
		return dto.PaymentBreakdownResponse{}, fmt.Errorf("total interest: %w", err)
	}
	totalPaid, err := cfg.Amount().Add(totalInterest)
	if err != nil {
		return dto.PaymentBreakdownResponse{}, fmt.Errorf("total paid: %w", err)
	}

	return dto.PaymentBreakdownResponse{
		Principal:     payment.Principal.Decimal(),
		Interest:      payment.Interest.Decimal(),
		Total:         payment.Total.Decimal(),
		TotalInterest: totalInterest.Decimal(),
		TotalPaid:     totalPaid.Decimal(),
	}, nil
}
