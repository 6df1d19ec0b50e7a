package usecase

import (
	"context"
	"fmt"

	"github.com/kreditwerk/tilgung-service/internal/application/dto"
	"github.com/kreditwerk/tilgung-service/internal/domain/service"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

// SensitivityUseCase shows how savings from one extra payment move under
// shifted rate assumptions.
type SensitivityUseCase struct {
	analyzer *service.SondertilgungAnalyzer
}

// NewSensitivityUseCase wires dependencies.
func NewSensitivityUseCase(analyzer *service.SondertilgungAnalyzer) *SensitivityUseCase {
	return &SensitivityUseCase{analyzer: analyzer}
}

// Execute computes the sensitivity spread.
func (uc *SensitivityUseCase) Execute(
	ctx context.Context,
	req dto.SensitivityRequest,
) (dto.SensitivityResponse, error) {
	_, span := tracer().Start(ctx, "InterestSensitivity")
	defer span.End()

	cfg, err := loanConfigFromParams(req.Loan)
	if err != nil {
		return dto.SensitivityResponse{}, fmt.Errorf("loan parameters: %w", err)
	}
	amount, err := valueobject.NewMoneyFromDecimal(req.ExtraAmount)
	if err != nil {
		return dto.SensitivityResponse{}, fmt.Errorf("extra amount: %w", err)
	}
	month, err := valueobject.NewPaymentMonth(req.Month)
	if err != nil {
		return dto.SensitivityResponse{}, fmt.Errorf("month: %w", err)
	}

	result, err := uc.analyzer.InterestSensitivity(cfg, amount, month, startDateOrNow(req.StartDate))
	if err != nil {
		return dto.SensitivityResponse{}, err
	}

	return dto.SensitivityResponse{
		BaseRatePercent:   result.BaseRate.AnnualPercent(),
		LowerRatePercent:  result.LowerRate.AnnualPercent(),
		HigherRatePercent: result.HigherRate.AnnualPercent(),
		SavingsAtBase:     result.SavingsAtBase.Decimal(),
		SavingsAtLower:    result.SavingsAtLower.Decimal(),
		SavingsAtHigher:   result.SavingsAtHigher.Decimal(),
	}, nil
}
