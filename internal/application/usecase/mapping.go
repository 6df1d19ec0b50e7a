package usecase

import (
	"github.com/kreditwerk/tilgung-service/internal/application/dto"
	"github.com/kreditwerk/tilgung-service/internal/domain/model"
	"github.com/kreditwerk/tilgung-service/internal/domain/service"
)

func toScheduleEntryResponse(e model.AmortizationEntry) dto.ScheduleEntryResponse {
	return dto.ScheduleEntryResponse{
		Month:               e.MonthNumber,
		StartingBalance:     e.StartingBalance.Decimal(),
		Principal:           e.Payment.Principal.Decimal(),
		Interest:            e.Payment.Interest.Decimal(),
		RegularPayment:      e.Payment.Total.Decimal(),
		ExtraPayment:        e.ExtraPayment.Decimal(),
		TotalPayment:        e.TotalPayment.Decimal(),
		EndingBalance:       e.EndingBalance.Decimal(),
		CumulativeInterest:  e.CumulativeInterest.Decimal(),
		CumulativePrincipal: e.CumulativePrincipal.Decimal(),
		PrincipalPercent:    e.PrincipalPercentage.Value(),
		RemainingMonths:     e.RemainingMonths,
	}
}

func toScheduleMetricsResponse(m model.ScheduleMetrics) dto.ScheduleMetricsResponse {
	return dto.ScheduleMetricsResponse{
		TotalInterest:          m.TotalInterest.Decimal(),
		TotalPrincipal:         m.TotalPrincipal.Decimal(),
		TotalExtraPayments:     m.TotalExtraPayments.Decimal(),
		TotalPaid:              m.TotalPaid.Decimal(),
		ActualTermMonths:       m.ActualTermMonths,
		OriginalTermMonths:     m.OriginalTermMonths,
		InterestSaved:          m.InterestSaved.Decimal(),
		TermReductionMonths:    m.TermReduction,
		EffectiveReturnPercent: m.EffectiveReturnPercent,
		AveragePayment:         m.AveragePayment.Decimal(),
		LargestPayment:         m.LargestPayment.Decimal(),
		SmallestPayment:        m.SmallestPayment.Decimal(),
		PayoffDate:             m.PayoffDate,
	}
}

func toYearSummaryResponse(s model.YearSummary) dto.YearSummaryResponse {
	return dto.YearSummaryResponse{
		Year:          s.Year,
		Interest:      s.Interest.Decimal(),
		Principal:     s.Principal.Decimal(),
		ExtraPayments: s.ExtraPayments.Decimal(),
		TotalPaid:     s.TotalPaid.Decimal(),
		EndingBalance: s.EndingBalance.Decimal(),
	}
}

func toImpactResponse(i service.SondertilgungImpact) dto.ImpactResponse {
	return dto.ImpactResponse{
		OriginalTotalInterest: i.OriginalTotalInterest.Decimal(),
		NewTotalInterest:      i.NewTotalInterest.Decimal(),
		InterestSaved:         i.InterestSaved.Decimal(),
		OriginalTermMonths:    i.OriginalTermMonths,
		NewTermMonths:         i.NewTermMonths,
		TermReductionMonths:   i.TermReduction,
		TotalExtraPayments:    i.TotalExtraPayments.Decimal(),
		EffectiveRatePercent:  i.EffectiveInterestRate,
	}
}
