package usecase

import (
	"context"
	"fmt"

	"github.com/kreditwerk/tilgung-service/internal/application/dto"
	"github.com/kreditwerk/tilgung-service/internal/domain/service"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

// PaymentScenariosUseCase evaluates a batch of what-if adjustments.
type PaymentScenariosUseCase struct {
	algebra *service.LoanAlgebra
}

// NewPaymentScenariosUseCase wires dependencies.
func NewPaymentScenariosUseCase(algebra *service.LoanAlgebra) *PaymentScenariosUseCase {
	return &PaymentScenariosUseCase{algebra: algebra}
}

// Execute evaluates the whole batch; one invalid adjustment fails all of it.
func (uc *PaymentScenariosUseCase) Execute(
	ctx context.Context,
	req dto.PaymentScenariosRequest,
) (dto.PaymentScenariosResponse, error) {
	_, span := tracer().Start(ctx, "PaymentScenarios")
	defer span.End()

	cfg, err := loanConfigFromParams(req.Loan)
	if err != nil {
		return dto.PaymentScenariosResponse{}, fmt.Errorf("loan parameters: %w", err)
	}

	adjustments := make([]service.ScenarioAdjustment, 0, len(req.Adjustments))
	for _, a := range req.Adjustments {
		adj := service.ScenarioAdjustment{Label: a.Label}

		if a.Amount != nil {
			amount, err := valueobject.NewMoneyFromDecimal(*a.Amount)
			if err != nil {
				return dto.PaymentScenariosResponse{}, fmt.Errorf("scenario %q amount: %w", a.Label, err)
			}
			adj.Amount = &amount
		}
		if a.AnnualRatePercent != nil {
			rate, err := valueobject.NewInterestRateFromPercent(*a.AnnualRatePercent)
			if err != nil {
				return dto.PaymentScenariosResponse{}, fmt.Errorf("scenario %q rate: %w", a.Label, err)
			}
			adj.AnnualRate = &rate
		}
		if a.TermMonths != nil {
			term, err := valueobject.NewMonthCount(*a.TermMonths)
			if err != nil {
				return dto.PaymentScenariosResponse{}, fmt.Errorf("scenario %q term: %w", a.Label, err)
			}
			adj.TermMonths = &term
		}

		adjustments = append(adjustments, adj)
	}

	scenarios, err := uc.algebra.PaymentScenarios(cfg, adjustments)
	if err != nil {
		return dto.PaymentScenariosResponse{}, err
	}

	out := make([]dto.PaymentScenarioResponse, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, dto.PaymentScenarioResponse{
			Label:          s.Label,
			MonthlyPayment: s.Payment.Total.Decimal(),
			TotalInterest:  s.TotalInterest.Decimal(),
			PaymentDelta:   s.PaymentDelta,
		})
	}
	return dto.PaymentScenariosResponse{Scenarios: out}, nil
}
