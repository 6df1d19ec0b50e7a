package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kreditwerk/tilgung-service/internal/domain/model"
	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

// payoffThresholdCents ends the simulation: a residual of at most one cent
// counts as paid off.
const payoffThresholdCents = 1

// AmortizationEngine simulates a loan month by month, merging the contractual
// instalment with scheduled Sondertilgungen. The instalment is fixed once from
// the configuration and never recomputed; extra payments only pull the payoff
// date forward, exactly as in real mortgage servicing.
type AmortizationEngine struct {
	algebra *LoanAlgebra
}

// NewAmortizationEngine wires the algebra used for baseline comparisons.
func NewAmortizationEngine(algebra *LoanAlgebra) *AmortizationEngine {
	return &AmortizationEngine{algebra: algebra}
}

// entryDraft is one simulated month before the second pass fills in
// RemainingMonths. Entries become immutable once the schedule is built.
type entryDraft struct {
	month               int
	startingBalance     valueobject.Money
	payment             model.MonthlyPayment
	extra               valueobject.Money
	totalPayment        valueobject.Money
	endingBalance       valueobject.Money
	cumulativeInterest  valueobject.Money
	cumulativePrincipal valueobject.Money
}

// GenerateSchedule simulates the loan to completion and reduces the result
// into metrics. A nil plan simulates the contractual schedule. The start date
// anchors the payoff date; it does not affect any amount.
//
// The loop is capped at twice the nominal term so a configuration that cannot
// amortize (instalment at or below interest-only) terminates with a
// reportable error instead of iterating forever.
func (e *AmortizationEngine) GenerateSchedule(
	cfg model.LoanConfiguration,
	plan *model.ExtraPaymentPlan,
	startDate time.Time,
) (model.AmortizationSchedule, error) {
	const op = "amortization.GenerateSchedule"

	monthlyRate := cfg.AnnualRate().Monthly()
	instalment := cfg.MonthlyPayment()
	nominalTerm := cfg.TermMonths().Months()
	maxMonths := 2 * nominalTerm

	balance := cfg.Amount()
	cumInterest := valueobject.ZeroMoney
	cumPrincipal := valueobject.ZeroMoney
	drafts := make([]entryDraft, 0, nominalTerm)

	for month := 1; balance.Cents() > payoffThresholdCents; month++ {
		if month > maxMonths {
			return model.AmortizationSchedule{}, valueobject.NewSimulationError(
				op, month, balance,
				fmt.Errorf("%w: balance not amortized after %d months", valueobject.ErrInsufficientPayment, maxMonths),
			)
		}

		interest, err := balance.MulDecimal(monthlyRate)
		if err != nil {
			return model.AmortizationSchedule{}, valueobject.NewSimulationError(op, month, balance, err)
		}

		// Regular principal: whatever the instalment leaves after interest,
		// never more than the outstanding balance. An instalment below
		// interest-only pays down nothing and runs into the safety cap.
		var regularPrincipal valueobject.Money
		if instalment.GreaterThan(interest) {
			regularPrincipal, err = instalment.Sub(interest)
			if err != nil {
				return model.AmortizationSchedule{}, valueobject.NewSimulationError(op, month, balance, err)
			}
			regularPrincipal = regularPrincipal.Min(balance)
		}

		// The nominal final month absorbs accumulated cent rounding: close
		// out the residual as long as it is in the order of an instalment.
		if month == nominalTerm && balance.Cents() <= 2*instalment.Cents() {
			regularPrincipal = balance
		}

		afterRegular, err := balance.Sub(regularPrincipal)
		if err != nil {
			return model.AmortizationSchedule{}, valueobject.NewSimulationError(op, month, balance, err)
		}

		// Sondertilgung for this month, capped at the remaining balance so
		// applied principal never exceeds what is owed. The cap is a
		// documented business rule, not error suppression.
		extra := valueobject.ZeroMoney
		if plan != nil {
			if scheduled, ok := plan.PaymentFor(month); ok {
				extra = scheduled.Min(afterRegular)
			}
		}

		endingBalance, err := afterRegular.Sub(extra)
		if err != nil {
			return model.AmortizationSchedule{}, valueobject.NewSimulationError(op, month, balance, err)
		}

		// Fold a sub-cent residual into this month's principal instead of
		// emitting a phantom final month.
		if endingBalance.Cents() > 0 && endingBalance.Cents() <= payoffThresholdCents {
			regularPrincipal, err = regularPrincipal.Add(endingBalance)
			if err != nil {
				return model.AmortizationSchedule{}, valueobject.NewSimulationError(op, month, balance, err)
			}
			endingBalance = valueobject.ZeroMoney
		}

		paymentTotal, err := regularPrincipal.Add(interest)
		if err != nil {
			return model.AmortizationSchedule{}, valueobject.NewSimulationError(op, month, balance, err)
		}
		payment, err := model.NewMonthlyPayment(regularPrincipal, interest, paymentTotal)
		if err != nil {
			return model.AmortizationSchedule{}, valueobject.NewSimulationError(op, month, balance, err)
		}
		totalPayment, err := paymentTotal.Add(extra)
		if err != nil {
			return model.AmortizationSchedule{}, valueobject.NewSimulationError(op, month, balance, err)
		}

		if cumInterest, err = cumInterest.Add(interest); err != nil {
			return model.AmortizationSchedule{}, valueobject.NewSimulationError(op, month, balance, err)
		}
		principalPaid, err := regularPrincipal.Add(extra)
		if err != nil {
			return model.AmortizationSchedule{}, valueobject.NewSimulationError(op, month, balance, err)
		}
		if cumPrincipal, err = cumPrincipal.Add(principalPaid); err != nil {
			return model.AmortizationSchedule{}, valueobject.NewSimulationError(op, month, balance, err)
		}

		drafts = append(drafts, entryDraft{
			month:               month,
			startingBalance:     balance,
			payment:             payment,
			extra:               extra,
			totalPayment:        totalPayment,
			endingBalance:       endingBalance,
			cumulativeInterest:  cumInterest,
			cumulativePrincipal: cumPrincipal,
		})

		balance = endingBalance
	}

	if len(drafts) == 0 {
		return model.AmortizationSchedule{}, valueobject.NewSimulationError(
			op, 0, balance, fmt.Errorf("%w: nothing to amortize", valueobject.ErrInvalidAmount))
	}

	entries, err := e.finalizeEntries(cfg, drafts)
	if err != nil {
		return model.AmortizationSchedule{}, err
	}

	metrics, err := e.computeMetrics(cfg, entries, startDate)
	if err != nil {
		return model.AmortizationSchedule{}, err
	}

	return model.NewAmortizationSchedule(cfg, plan, entries, metrics)
}

// finalizeEntries is the second pass: with the actual term known, it stamps
// each draft with its remaining months and principal percentage.
func (e *AmortizationEngine) finalizeEntries(
	cfg model.LoanConfiguration,
	drafts []entryDraft,
) ([]model.AmortizationEntry, error) {
	actualTerm := len(drafts)
	amountDec := cfg.Amount().Decimal()

	entries := make([]model.AmortizationEntry, 0, actualTerm)
	for _, d := range drafts {
		pctValue := d.cumulativePrincipal.Decimal().
			Div(amountDec).
			Mul(decimal.NewFromInt(100)).
			Round(2)
		if pctValue.GreaterThan(decimal.NewFromInt(100)) {
			pctValue = decimal.NewFromInt(100)
		}
		pct, err := valueobject.NewPercentage(pctValue)
		if err != nil {
			return nil, valueobject.NewSimulationError("amortization.finalizeEntries", d.month, d.endingBalance, err)
		}

		entries = append(entries, model.AmortizationEntry{
			MonthNumber:         d.month,
			StartingBalance:     d.startingBalance,
			Payment:             d.payment,
			ExtraPayment:        d.extra,
			TotalPayment:        d.totalPayment,
			EndingBalance:       d.endingBalance,
			CumulativeInterest:  d.cumulativeInterest,
			CumulativePrincipal: d.cumulativePrincipal,
			PrincipalPercentage: pct,
			RemainingMonths:     actualTerm - d.month,
		})
	}
	return entries, nil
}

// computeMetrics reduces a completed schedule. The savings comparison uses the
// algebra's closed-form total interest for the contractual schedule, so the
// baseline is available without simulating a second schedule.
func (e *AmortizationEngine) computeMetrics(
	cfg model.LoanConfiguration,
	entries []model.AmortizationEntry,
	startDate time.Time,
) (model.ScheduleMetrics, error) {
	last := entries[len(entries)-1]

	totalExtra := valueobject.ZeroMoney
	totalPaid := valueobject.ZeroMoney
	largest := entries[0].TotalPayment
	smallest := entries[0].TotalPayment
	var err error
	for _, entry := range entries {
		if totalExtra, err = totalExtra.Add(entry.ExtraPayment); err != nil {
			return model.ScheduleMetrics{}, err
		}
		if totalPaid, err = totalPaid.Add(entry.TotalPayment); err != nil {
			return model.ScheduleMetrics{}, err
		}
		if entry.TotalPayment.GreaterThan(largest) {
			largest = entry.TotalPayment
		}
		if entry.TotalPayment.LessThan(smallest) {
			smallest = entry.TotalPayment
		}
	}

	average, err := valueobject.NewMoneyFromCents(totalPaid.Cents() / int64(len(entries)))
	if err != nil {
		return model.ScheduleMetrics{}, err
	}

	originalInterest, err := e.algebra.TotalInterest(cfg)
	if err != nil {
		return model.ScheduleMetrics{}, err
	}
	saved := valueobject.ZeroMoney
	if last.CumulativeInterest.LessThan(originalInterest) {
		if saved, err = originalInterest.Sub(last.CumulativeInterest); err != nil {
			return model.ScheduleMetrics{}, err
		}
	}

	termReduction := cfg.TermMonths().Months() - len(entries)
	if termReduction < 0 {
		termReduction = 0
	}

	effectiveReturn := decimal.Zero
	if !totalExtra.IsZero() {
		effectiveReturn = saved.Decimal().
			Div(totalExtra.Decimal()).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return model.ScheduleMetrics{
		TotalInterest:          last.CumulativeInterest,
		TotalPrincipal:         last.CumulativePrincipal,
		TotalExtraPayments:     totalExtra,
		TotalPaid:              totalPaid,
		ActualTermMonths:       len(entries),
		OriginalTermMonths:     cfg.TermMonths().Months(),
		InterestSaved:          saved,
		TermReduction:          termReduction,
		EffectiveReturnPercent: effectiveReturn,
		AveragePayment:         average,
		LargestPayment:         largest,
		SmallestPayment:        smallest,
		PayoffDate:             startDate.AddDate(0, len(entries), 0),
	}, nil
}
