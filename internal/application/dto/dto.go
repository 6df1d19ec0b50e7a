package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// LoanParams carries the raw loan parameters as supplied by the consuming
// layer: major-unit amounts, the rate as a percentage, the term in months or
// years. Validation happens in the domain constructors, not here.
type LoanParams struct {
	Amount            decimal.Decimal `json:"amount"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermMonths        int             `json:"term_months,omitempty"`
	TermYears         int             `json:"term_years,omitempty"`
	// MonthlyPayment is optional; when zero the annuity payment is derived.
	MonthlyPayment decimal.Decimal `json:"monthly_payment,omitempty"`
}

// ExtraPaymentRequest is one scheduled extra principal payment.
type ExtraPaymentRequest struct {
	Month  int             `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// CalculateLoanRequest asks for the instalment breakdown of a loan.
type CalculateLoanRequest struct {
	Loan LoanParams `json:"loan"`
}

// SolveTermRequest asks how long a loan runs at a given payment.
type SolveTermRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
}

// SolveRateRequest asks which rate produces a given payment.
type SolveRateRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TermMonths     int             `json:"term_months"`
}

// GenerateScheduleRequest asks for a full amortization simulation.
type GenerateScheduleRequest struct {
	Loan               LoanParams            `json:"loan"`
	ExtraPayments      []ExtraPaymentRequest `json:"extra_payments,omitempty"`
	YearlyLimitPercent *decimal.Decimal      `json:"yearly_limit_percent,omitempty"`
	StartDate          time.Time             `json:"start_date,omitempty"`
}

// AnalyzeImpactRequest asks what a plan of extra payments saves.
type AnalyzeImpactRequest struct {
	Loan               LoanParams            `json:"loan"`
	ExtraPayments      []ExtraPaymentRequest `json:"extra_payments"`
	YearlyLimitPercent *decimal.Decimal      `json:"yearly_limit_percent,omitempty"`
	StartDate          time.Time             `json:"start_date,omitempty"`
}

// StrategyRequest names one candidate extra-payment plan.
type StrategyRequest struct {
	Label         string                `json:"label"`
	ExtraPayments []ExtraPaymentRequest `json:"extra_payments"`
}

// CompareStrategiesRequest asks for a ranking of candidate plans.
type CompareStrategiesRequest struct {
	Loan       LoanParams        `json:"loan"`
	Strategies []StrategyRequest `json:"strategies"`
	StartDate  time.Time         `json:"start_date,omitempty"`
}

// SensitivityRequest asks how rate assumptions move the savings from one
// extra payment.
type SensitivityRequest struct {
	Loan        LoanParams      `json:"loan"`
	ExtraAmount decimal.Decimal `json:"extra_amount"`
	Month       int             `json:"month"`
	StartDate   time.Time       `json:"start_date,omitempty"`
}

// ScenarioAdjustmentRequest overrides individual parameters for one what-if
// scenario. Nil fields keep the base value.
type ScenarioAdjustmentRequest struct {
	Label             string           `json:"label"`
	Amount            *decimal.Decimal `json:"amount,omitempty"`
	AnnualRatePercent *decimal.Decimal `json:"annual_rate_percent,omitempty"`
	TermMonths        *int             `json:"term_months,omitempty"`
}

// PaymentScenariosRequest asks for a batch what-if evaluation.
type PaymentScenariosRequest struct {
	Loan        LoanParams                  `json:"loan"`
	Adjustments []ScenarioAdjustmentRequest `json:"adjustments"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// PaymentBreakdownResponse is the instalment with its first-month split.
type PaymentBreakdownResponse struct {
	Principal     decimal.Decimal `json:"principal"`
	Interest      decimal.Decimal `json:"interest"`
	Total         decimal.Decimal `json:"total"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
}

// TermResponse is a solved loan duration.
type TermResponse struct {
	Months int `json:"months"`
	Years  int `json:"years"`
}

// RateResponse is a solved annual rate.
type RateResponse struct {
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
}

// ScheduleEntryResponse is one simulated month.
type ScheduleEntryResponse struct {
	Month               int             `json:"month"`
	StartingBalance     decimal.Decimal `json:"starting_balance"`
	Principal           decimal.Decimal `json:"principal"`
	Interest            decimal.Decimal `json:"interest"`
	RegularPayment      decimal.Decimal `json:"regular_payment"`
	ExtraPayment        decimal.Decimal `json:"extra_payment,omitempty"`
	TotalPayment        decimal.Decimal `json:"total_payment"`
	EndingBalance       decimal.Decimal `json:"ending_balance"`
	CumulativeInterest  decimal.Decimal `json:"cumulative_interest"`
	CumulativePrincipal decimal.Decimal `json:"cumulative_principal"`
	PrincipalPercent    decimal.Decimal `json:"principal_percent"`
	RemainingMonths     int             `json:"remaining_months"`
}

// ScheduleMetricsResponse is the aggregate view of a schedule.
type ScheduleMetricsResponse struct {
	TotalInterest          decimal.Decimal `json:"total_interest"`
	TotalPrincipal         decimal.Decimal `json:"total_principal"`
	TotalExtraPayments     decimal.Decimal `json:"total_extra_payments"`
	TotalPaid              decimal.Decimal `json:"total_paid"`
	ActualTermMonths       int             `json:"actual_term_months"`
	OriginalTermMonths     int             `json:"original_term_months"`
	InterestSaved          decimal.Decimal `json:"interest_saved"`
	TermReductionMonths    int             `json:"term_reduction_months"`
	EffectiveReturnPercent decimal.Decimal `json:"effective_return_percent"`
	AveragePayment         decimal.Decimal `json:"average_payment"`
	LargestPayment         decimal.Decimal `json:"largest_payment"`
	SmallestPayment        decimal.Decimal `json:"smallest_payment"`
	PayoffDate             time.Time       `json:"payoff_date"`
}

// YearSummaryResponse is the first-year projection for presentation layers.
type YearSummaryResponse struct {
	Year          int             `json:"year"`
	Interest      decimal.Decimal `json:"interest"`
	Principal     decimal.Decimal `json:"principal"`
	ExtraPayments decimal.Decimal `json:"extra_payments"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	EndingBalance decimal.Decimal `json:"ending_balance"`
}

// ScheduleResponse is the full simulation output.
type ScheduleResponse struct {
	ScheduleID       string                  `json:"schedule_id"`
	Entries          []ScheduleEntryResponse `json:"entries"`
	Metrics          ScheduleMetricsResponse `json:"metrics"`
	FirstYearSummary YearSummaryResponse     `json:"first_year_summary"`
}

// ImpactResponse quantifies a plan's effect.
type ImpactResponse struct {
	OriginalTotalInterest decimal.Decimal `json:"original_total_interest"`
	NewTotalInterest      decimal.Decimal `json:"new_total_interest"`
	InterestSaved         decimal.Decimal `json:"interest_saved"`
	OriginalTermMonths    int             `json:"original_term_months"`
	NewTermMonths         int             `json:"new_term_months"`
	TermReductionMonths   int             `json:"term_reduction_months"`
	TotalExtraPayments    decimal.Decimal `json:"total_extra_payments"`
	EffectiveRatePercent  decimal.Decimal `json:"effective_rate_percent"`
}

// StrategyComparisonResponse is one ranked plan.
type StrategyComparisonResponse struct {
	Rank   int            `json:"rank"`
	Label  string         `json:"label"`
	Impact ImpactResponse `json:"impact"`
}

// CompareStrategiesResponse ranks all candidate plans, best first.
type CompareStrategiesResponse struct {
	Strategies []StrategyComparisonResponse `json:"strategies"`
}

// SensitivityResponse shows savings under shifted rate assumptions.
type SensitivityResponse struct {
	BaseRatePercent   decimal.Decimal `json:"base_rate_percent"`
	LowerRatePercent  decimal.Decimal `json:"lower_rate_percent"`
	HigherRatePercent decimal.Decimal `json:"higher_rate_percent"`
	SavingsAtBase     decimal.Decimal `json:"savings_at_base"`
	SavingsAtLower    decimal.Decimal `json:"savings_at_lower"`
	SavingsAtHigher   decimal.Decimal `json:"savings_at_higher"`
}

// PaymentScenarioResponse is one evaluated what-if adjustment.
type PaymentScenarioResponse struct {
	Label          string          `json:"label"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	PaymentDelta   decimal.Decimal `json:"payment_delta"`
}

// PaymentScenariosResponse is the whole evaluated batch.
type PaymentScenariosResponse struct {
	Scenarios []PaymentScenarioResponse `json:"scenarios"`
}
