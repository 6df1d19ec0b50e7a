package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/kreditwerk/tilgung-service/internal/application/dto"
	"github.com/kreditwerk/tilgung-service/internal/domain/model"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

func tracer() trace.Tracer {
	return otel.Tracer("tilgung-service/usecase")
}

// loanConfigFromParams translates raw request parameters into a validated
// LoanConfiguration. The term may come in months or years; a zero monthly
// payment means "derive the annuity payment".
func loanConfigFromParams(p dto.LoanParams) (model.LoanConfiguration, error) {
	amount, err := valueobject.NewMoneyFromDecimal(p.Amount)
	if err != nil {
		return model.LoanConfiguration{}, fmt.Errorf("loan amount: %w", err)
	}

	rate, err := valueobject.NewInterestRateFromPercent(p.AnnualRatePercent)
	if err != nil {
		return model.LoanConfiguration{}, fmt.Errorf("annual rate: %w", err)
	}

	months := p.TermMonths
	if months == 0 {
		months = p.TermYears * 12
	}
	term, err := valueobject.NewMonthCount(months)
	if err != nil {
		return model.LoanConfiguration{}, fmt.Errorf("term: %w", err)
	}

	if p.MonthlyPayment.IsZero() {
		return model.DeriveLoanConfiguration(amount, rate, term)
	}

	payment, err := valueobject.NewMoneyFromDecimal(p.MonthlyPayment)
	if err != nil {
		return model.LoanConfiguration{}, fmt.Errorf("monthly payment: %w", err)
	}
	return model.NewLoanConfiguration(amount, rate, term, payment)
}

// planFromRequests translates extra-payment requests and an optional yearly
// limit percentage into a domain plan. A nil limit means unlimited.
func planFromRequests(
	payments []dto.ExtraPaymentRequest,
	yearlyLimitPercent *decimal.Decimal,
) (model.ExtraPaymentPlan, error) {
	limit := valueobject.UnlimitedYearlyLimit()
	if yearlyLimitPercent != nil {
		pct, err := valueobject.NewPercentage(*yearlyLimitPercent)
		if err != nil {
			return model.ExtraPaymentPlan{}, fmt.Errorf("yearly limit: %w", err)
		}
		limit = valueobject.NewYearlyLimit(pct)
	}

	extras := make([]model.ExtraPayment, 0, len(payments))
	for _, p := range payments {
		month, err := valueobject.NewPaymentMonth(p.Month)
		if err != nil {
			return model.ExtraPaymentPlan{}, fmt.Errorf("extra payment month: %w", err)
		}
		amount, err := valueobject.NewMoneyFromDecimal(p.Amount)
		if err != nil {
			return model.ExtraPaymentPlan{}, fmt.Errorf("extra payment amount: %w", err)
		}
		extra, err := model.NewExtraPayment(month, amount)
		if err != nil {
			return model.ExtraPaymentPlan{}, err
		}
		extras = append(extras, extra)
	}

	return model.NewExtraPaymentPlan(limit, extras)
}

// startDateOrNow defaults a zero start date to the current UTC time.
func startDateOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
