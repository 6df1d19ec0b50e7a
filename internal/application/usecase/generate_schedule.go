package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kreditwerk/tilgung-service/internal/application/dto"
	"github.com/kreditwerk/tilgung-service/internal/domain/model"
	"github.com/kreditwerk/tilgung-service/internal/domain/service"
)

// GenerateScheduleUseCase runs the full amortization simulation and maps the
// resulting schedule for the consuming layer.
type GenerateScheduleUseCase struct {
	engine *service.AmortizationEngine
}

// NewGenerateScheduleUseCase wires dependencies.
func NewGenerateScheduleUseCase(engine *service.AmortizationEngine) *GenerateScheduleUseCase {
	return &GenerateScheduleUseCase{engine: engine}
}

// Execute simulates the loan and returns the complete schedule.
func (uc *GenerateScheduleUseCase) Execute(
	ctx context.Context,
	req dto.GenerateScheduleRequest,
) (dto.ScheduleResponse, error) {
	_, span := tracer().Start(ctx, "GenerateSchedule")
	defer span.End()

	cfg, err := loanConfigFromParams(req.Loan)
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("loan parameters: %w", err)
	}

	var plan *model.ExtraPaymentPlan
	if len(req.ExtraPayments) > 0 {
		built, err := planFromRequests(req.ExtraPayments, req.YearlyLimitPercent)
		if err != nil {
			return dto.ScheduleResponse{}, fmt.Errorf("extra payment plan: %w", err)
		}
		plan = &built
	}

	schedule, err := uc.engine.GenerateSchedule(cfg, plan, startDateOrNow(req.StartDate))
	if err != nil {
		return dto.ScheduleResponse{}, err
	}

	entries := schedule.Entries()
	entryResponses := make([]dto.ScheduleEntryResponse, 0, len(entries))
	for _, e := range entries {
		entryResponses = append(entryResponses, toScheduleEntryResponse(e))
	}

	firstYear, err := schedule.FirstYearSummary()
	if err != nil {
		return dto.ScheduleResponse{}, fmt.Errorf("first year summary: %w", err)
	}

	return dto.ScheduleResponse{
		ScheduleID:       uuid.New().String(),
		Entries:          entryResponses,
		Metrics:          toScheduleMetricsResponse(schedule.Metrics()),
		FirstYearSummary: toYearSummaryResponse(firstYear),
	}, nil
}
