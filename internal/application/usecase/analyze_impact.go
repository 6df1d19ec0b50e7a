package usecase

import (
	"context"
	"fmt"

	"github.com/kreditwerk/tilgung-service/internal/application/dto"
	"github.com/kreditwerk/tilgung-service/internal/domain/service"
)

// AnalyzeImpactUseCase quantifies what an extra-payment plan saves.
type AnalyzeImpactUseCase struct {
	analyzer *service.SondertilgungAnalyzer
}

// NewAnalyzeImpactUseCase wires dependencies.
func NewAnalyzeImpactUseCase(analyzer *service.SondertilgungAnalyzer) *AnalyzeImpactUseCase {
	return &AnalyzeImpactUseCase{analyzer: analyzer}
}

// Execute analyzes the plan.
func (uc *AnalyzeImpactUseCase) Execute(
	ctx context.Context,
	req dto.AnalyzeImpactRequest,
) (dto.ImpactResponse, error) {
	_, span := tracer().Start(ctx, "AnalyzeImpact")
	defer span.End()

	cfg, err := loanConfigFromParams(req.Loan)
	if err != nil {
		return dto.ImpactResponse{}, fmt.Errorf("loan parameters: %w", err)
	}

	plan, err := planFromRequests(req.ExtraPayments, req.YearlyLimitPercent)
	if err != nil {
		return dto.ImpactResponse{}, fmt.Errorf("extra payment plan: %w", err)
	}

	impact, err := uc.analyzer.Impact(cfg, plan, startDateOrNow(req.StartDate))
	if err != nil {
		return dto.ImpactResponse{}, err
	}

	return toImpactResponse(impact), nil
}
