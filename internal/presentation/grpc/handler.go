package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kreditwerk/tilgung-service/internal/application/usecase"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
	"github.com/kreditwerk/tilgung-service/pkg/observability"
)

// TilgungHandler exposes the calculation use cases over gRPC.
type TilgungHandler struct {
	UnimplementedTilgungServiceServer

	calculate   *usecase.CalculateLoanUseCase
	solveTerm   *usecase.SolveTermUseCase
	solveRate   *usecase.SolveRateUseCase
	schedule    *usecase.GenerateScheduleUseCase
	impact      *usecase.AnalyzeImpactUseCase
	compare     *usecase.CompareStrategiesUseCase
	sensitivity *usecase.SensitivityUseCase
	scenarios   *usecase.PaymentScenariosUseCase
	logger      *slog.Logger
}

// NewTilgungHandler creates the handler with all use-case dependencies.
func NewTilgungHandler(
	calculate *usecase.CalculateLoanUseCase,
	solveTerm *usecase.SolveTermUseCase,
	solveRate *usecase.SolveRateUseCase,
	schedule *usecase.GenerateScheduleUseCase,
	impact *usecase.AnalyzeImpactUseCase,
	compare *usecase.CompareStrategiesUseCase,
	sensitivity *usecase.SensitivityUseCase,
	scenarios *usecase.PaymentScenariosUseCase,
	logger *slog.Logger,
) *TilgungHandler {
	return &TilgungHandler{
		calculate:   calculate,
		solveTerm:   solveTerm,
		solveRate:   solveRate,
		schedule:    schedule,
		impact:      impact,
		compare:     compare,
		sensitivity: sensitivity,
		scenarios:   scenarios,
		logger:      logger,
	}
}

// CalculatePayment returns the instalment breakdown for a loan.
func (h *TilgungHandler) CalculatePayment(ctx context.Context, req *CalculatePaymentRequest) (*CalculatePaymentResponse, error) {
	resp, err := h.calculate.Execute(ctx, *req)
	if err != nil {
		return nil, h.fail("CalculatePayment", err)
	}
	observability.CalculationRequests.WithLabelValues("calculate_payment", "ok").Inc()
	return &resp, nil
}

// SolveTerm returns the duration a payment sustains.
func (h *TilgungHandler) SolveTerm(ctx context.Context, req *SolveTermRequest) (*SolveTermResponse, error) {
	resp, err := h.solveTerm.Execute(ctx, *req)
	if err != nil {
		return nil, h.fail("SolveTerm", err)
	}
	observability.CalculationRequests.WithLabelValues("solve_term", "ok").Inc()
	return &resp, nil
}

// SolveRate returns the rate implied by a payment.
func (h *TilgungHandler) SolveRate(ctx context.Context, req *SolveRateRequest) (*SolveRateResponse, error) {
	resp, err := h.solveRate.Execute(ctx, *req)
	if err != nil {
		return nil, h.fail("SolveRate", err)
	}
	observability.CalculationRequests.WithLabelValues("solve_rate", "ok").Inc()
	return &resp, nil
}

// GenerateSchedule returns the full amortization simulation.
func (h *TilgungHandler) GenerateSchedule(ctx context.Context, req *GenerateScheduleRequest) (*GenerateScheduleResponse, error) {
	resp, err := h.schedule.Execute(ctx, *req)
	if err != nil {
		return nil, h.fail("GenerateSchedule", err)
	}
	observability.CalculationRequests.WithLabelValues("generate_schedule", "ok").Inc()
	return &resp, nil
}

// AnalyzeImpact returns what an extra-payment plan saves.
func (h *TilgungHandler) AnalyzeImpact(ctx context.Context, req *AnalyzeImpactRequest) (*AnalyzeImpactResponse, error) {
	resp, err := h.impact.Execute(ctx, *req)
	if err != nil {
		return nil, h.fail("AnalyzeImpact", err)
	}
	observability.CalculationRequests.WithLabelValues("analyze_impact", "ok").Inc()
	return &resp, nil
}

// CompareStrategies ranks candidate plans.
func (h *TilgungHandler) CompareStrategies(ctx context.Context, req *CompareStrategiesRequest) (*CompareStrategiesResponse, error) {
	resp, err := h.compare.Execute(ctx, *req)
	if err != nil {
		return nil, h.fail("CompareStrategies", err)
	}
	observability.CalculationRequests.WithLabelValues("compare_strategies", "ok").Inc()
	return &resp, nil
}

// InterestSensitivity returns savings under shifted rate assumptions.
func (h *TilgungHandler) InterestSensitivity(ctx context.Context, req *SensitivityRequest) (*SensitivityResponse, error) {
	resp, err := h.sensitivity.Execute(ctx, *req)
	if err != nil {
		return nil, h.fail("InterestSensitivity", err)
	}
	observability.CalculationRequests.WithLabelValues("interest_sensitivity", "ok").Inc()
	return &resp, nil
}

// PaymentScenarios evaluates a batch of what-if adjustments.
func (h *TilgungHandler) PaymentScenarios(ctx context.Context, req *PaymentScenariosRequest) (*PaymentScenariosResponse, error) {
	resp, err := h.scenarios.Execute(ctx, *req)
	if err != nil {
		return nil, h.fail("PaymentScenarios", err)
	}
	observability.CalculationRequests.WithLabelValues("payment_scenarios", "ok").Inc()
	return &resp, nil
}

// fail logs the error, counts it, and translates it into a gRPC status.
// Validation and infeasibility errors are the caller's problem; everything
// else is internal.
func (h *TilgungHandler) fail(method string, err error) error {
	kind, code := classify(err)
	observability.CalculationRequests.WithLabelValues(snake(method), "error").Inc()
	observability.CalculationErrors.WithLabelValues(snake(method), kind).Inc()
	h.logger.Warn("calculation failed", "method", method, "kind", kind, "error", err)
	return status.Error(code, err.Error())
}

func classify(err error) (string, codes.Code) {
	var simErr *valueobject.SimulationError
	switch {
	case errors.Is(err, valueobject.ErrNegativeAmount),
		errors.Is(err, valueobject.ErrExceedsMaximum),
		errors.Is(err, valueobject.ErrInvalidAmount),
		errors.Is(err, valueobject.ErrInvalidInterestRate),
		errors.Is(err, valueobject.ErrInvalidTerm),
		errors.Is(err, valueobject.ErrInvalidPercentage):
		return "validation", codes.InvalidArgument
	case errors.Is(err, valueobject.ErrInconsistentParameters):
		return "inconsistent_parameters", codes.InvalidArgument
	case errors.Is(err, valueobject.ErrInsufficientPayment),
		errors.Is(err, valueobject.ErrPaymentTooHigh),
		errors.Is(err, valueobject.ErrMathematical):
		return "infeasible", codes.InvalidArgument
	case errors.As(err, &simErr):
		return "simulation", codes.FailedPrecondition
	default:
		return "internal", codes.Internal
	}
}

var methodNames = map[string]string{
	"CalculatePayment":    "calculate_payment",
	"SolveTerm":           "solve_term",
	"SolveRate":           "solve_rate",
	"GenerateSchedule":    "generate_schedule",
	"AnalyzeImpact":       "analyze_impact",
	"CompareStrategies":   "compare_strategies",
	"InterestSensitivity": "interest_sensitivity",
	"PaymentScenarios":    "payment_scenarios",
}

func snake(method string) string {
	if s, ok := methodNames[method]; ok {
		return s
	}
	return method
}
