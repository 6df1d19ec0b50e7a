package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kreditwerk/tilgung-service/internal/domain/valueobject"
)

// AmortizationEntry is an immutable value object describing one simulated
// month of the loan.
type AmortizationEntry struct {
	MonthNumber         int
	StartingBalance     valueobject.Money
	Payment             MonthlyPayment
	ExtraPayment        valueobject.Money
	TotalPayment        valueobject.Money
	EndingBalance       valueobject.Money
	CumulativeInterest  valueobject.Money
	CumulativePrincipal valueobject.Money
	PrincipalPercentage valueobject.Percentage
	RemainingMonths     int
}

// HasExtraPayment reports whether a Sondertilgung was applied this month.
func (e AmortizationEntry) HasExtraPayment() bool {
	return !e.ExtraPayment.IsZero()
}

// ScheduleMetrics are the aggregate figures reduced from a completed schedule.
type ScheduleMetrics struct {
	TotalInterest      valueobject.Money
	TotalPrincipal     valueobject.Money
	TotalExtraPayments valueobject.Money
	TotalPaid          valueobject.Money
	ActualTermMonths   int
	OriginalTermMonths int
	InterestSaved      valueobject.Money
	TermReduction      int
	// EffectiveReturnPercent is interest saved per unit of extra payment,
	// expressed as a percentage. Zero when the schedule has no extra payments.
	EffectiveReturnPercent decimal.Decimal
	AveragePayment         valueobject.Money
	LargestPayment         valueobject.Money
	SmallestPayment        valueobject.Money
	PayoffDate             time.Time
}

// AmortizationSchedule is the complete month-by-month simulation of a loan,
// built atomically by the amortization engine and never mutated afterwards.
// Comparisons and what-if runs produce new schedules.
type AmortizationSchedule struct {
	config  LoanConfiguration
	plan    *ExtraPaymentPlan
	entries []AmortizationEntry
	metrics ScheduleMetrics
}

// NewAmortizationSchedule validates entry ordering and takes ownership of the
// entries slice.
func NewAmortizationSchedule(
	config LoanConfiguration,
	plan *ExtraPaymentPlan,
	entries []AmortizationEntry,
	metrics ScheduleMetrics,
) (AmortizationSchedule, error) {
	if len(entries) == 0 {
		return AmortizationSchedule{}, fmt.Errorf("%w: schedule has no entries", valueobject.ErrMathematical)
	}
	for i, e := range entries {
		if e.MonthNumber != i+1 {
			return AmortizationSchedule{}, fmt.Errorf(
				"%w: entry %d carries month number %d", valueobject.ErrMathematical, i, e.MonthNumber)
		}
	}
	return AmortizationSchedule{config: config, plan: plan, entries: entries, metrics: metrics}, nil
}

// Configuration returns the loan parameters the schedule was simulated from.
func (s AmortizationSchedule) Configuration() LoanConfiguration { return s.config }

// Plan returns the attached extra-payment plan, or nil.
func (s AmortizationSchedule) Plan() *ExtraPaymentPlan { return s.plan }

// Metrics returns the aggregate figures.
func (s AmortizationSchedule) Metrics() ScheduleMetrics { return s.metrics }

// Months returns the simulated term length.
func (s AmortizationSchedule) Months() int { return len(s.entries) }

// Entries returns a defensive copy of the schedule rows.
func (s AmortizationSchedule) Entries() []AmortizationEntry {
	out := make([]AmortizationEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry returns the row for a 1-indexed month.
func (s AmortizationSchedule) Entry(month int) (AmortizationEntry, bool) {
	if month < 1 || month > len(s.entries) {
		return AmortizationEntry{}, false
	}
	return s.entries[month-1], true
}

// YearSummary is a read-only projection of one loan year. Presentation layers
// should recompute these through the engine rather than cache derived math.
type YearSummary struct {
	Year           int
	Interest       valueobject.Money
	Principal      valueobject.Money
	ExtraPayments  valueobject.Money
	TotalPaid      valueobject.Money
	EndingBalance  valueobject.Money
	MonthsIncluded int
}

// SummaryForYear reduces the entries of the given 1-indexed loan year.
func (s AmortizationSchedule) SummaryForYear(year int) (YearSummary, error) {
	if year < 1 {
		return YearSummary{}, fmt.Errorf("%w: year %d", valueobject.ErrInvalidTerm, year)
	}

	first := (year - 1) * 12
	if first >= len(s.entries) {
		return YearSummary{}, fmt.Errorf("%w: schedule ends before year %d", valueobject.ErrInvalidTerm, year)
	}

	sum := YearSummary{Year: year}
	for i := first; i < len(s.entries) && i < first+12; i++ {
		e := s.entries[i]
		var err error
		if sum.Interest, err = sum.Interest.Add(e.Payment.Interest); err != nil {
			return YearSummary{}, err
		}
		if sum.Principal, err = sum.Principal.Add(e.Payment.Principal); err != nil {
			return YearSummary{}, err
		}
		if sum.ExtraPayments, err = sum.ExtraPayments.Add(e.ExtraPayment); err != nil {
			return YearSummary{}, err
		}
		if sum.TotalPaid, err = sum.TotalPaid.Add(e.TotalPayment); err != nil {
			return YearSummary{}, err
		}
		sum.EndingBalance = e.EndingBalance
		sum.MonthsIncluded++
	}
	return sum, nil
}

// FirstYearSummary is the projection the presentation layer shows by default.
func (s AmortizationSchedule) FirstYearSummary() (YearSummary, error) {
	return s.SummaryForYear(1)
}
