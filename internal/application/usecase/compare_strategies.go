package usecase

import (
	"context"
	"fmt"

	"github.com/kreditwerk/tilgung-service/internal/application/dto"
	"github.com/kreditwerk/tilgung-service/internal/domain/service"
)

// CompareStrategiesUseCase ranks candidate extra-payment plans by interest
// saved.
type CompareStrategiesUseCase struct {
	analyzer *service.SondertilgungAnalyzer
}

// NewCompareStrategiesUseCase wires dependencies.
func NewCompareStrategiesUseCase(analyzer *service.SondertilgungAnalyzer) *CompareStrategiesUseCase {
	return &CompareStrategiesUseCase{analyzer: analyzer}
}

// Execute ranks the candidate plans, best first.
func (uc *CompareStrategiesUseCase) Execute(
	ctx context.Context,
	req dto.CompareStrategiesRequest,
) (dto.CompareStrategiesResponse, error) {
	_, span := tracer().Start(ctx, "CompareStrategies")
	defer span.End()

	cfg, err := loanConfigFromParams(req.Loan)
	if err != nil {
		return dto.CompareStrategiesResponse{}, fmt.Errorf("loan parameters: %w", err)
	}

	candidates := make([]service.CandidatePlan, 0, len(req.Strategies))
	for _, s := range req.Strategies {
		plan, err := planFromRequests(s.ExtraPayments, nil)
		if err != nil {
			return dto.CompareStrategiesResponse{}, fmt.Errorf("strategy %q: %w", s.Label, err)
		}
		candidates = append(candidates, service.CandidatePlan{Label: s.Label, Plan: plan})
	}

	ranked, err := uc.analyzer.CompareStrategies(cfg, candidates, startDateOrNow(req.StartDate))
	if err != nil {
		return dto.CompareStrategiesResponse{}, err
	}

	out := make([]dto.StrategyComparisonResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, dto.StrategyComparisonResponse{
			Rank:   r.Rank,
			Label:  r.Label,
			Impact: toImpactResponse(r.Impact),
		})
	}
	return dto.CompareStrategiesResponse{Strategies: out}, nil
}
