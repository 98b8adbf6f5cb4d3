package reporting

import (
	"github.com/shopspring/decimal"

	"supplier_report/internal/domain/entities"
)

// Aggregate reduces a payment collection into a KPISummary.
//
// Everything except ByStatus.Deleted is computed over the active
// (not soft-deleted) payments. Payments with a method outside
// KnownPaymentMethods count towards the totals but not the breakdown.
// The result depends only on the input slice.
func Aggregate(payments []entities.Payment) entities.KPISummary {
	summary := entities.KPISummary{
		TotalAmount:            decimal.Zero,
		TotalAmountInBolivares: decimal.Zero,
		AveragePaymentAmount:   decimal.Zero,
		ByPaymentMethod:        make(map[entities.PaymentMethod]entities.MethodBreakdown, len(entities.KnownPaymentMethods)),
	}
	for _, m := range entities.KnownPaymentMethods {
		summary.ByPaymentMethod[m] = entities.MethodBreakdown{TotalAmount: decimal.Zero}
	}

	suppliers := make(map[int64]struct{})
	for _, p := range payments {
		if p.Deleted {
			summary.ByStatus.Deleted++
			continue
		}

		summary.TotalPayments++
		summary.TotalAmount = summary.TotalAmount.Add(p.Amount)
		if p.IsBolivares && p.AmountInBolivares != nil {
			summary.TotalAmountInBolivares = summary.TotalAmountInBolivares.Add(*p.AmountInBolivares)
		}

		if b, ok := summary.ByPaymentMethod[p.PaymentMethod]; ok {
			b.Count++
			b.TotalAmount = b.TotalAmount.Add(p.Amount)
			summary.ByPaymentMethod[p.PaymentMethod] = b
		}

		if p.Verified {
			summary.ByStatus.Verified++
		} else {
			summary.ByStatus.Unverified++
		}
		if p.Shared {
			summary.ByStatus.Shared++
		}

		if p.PaymentDate != nil {
			d := *p.PaymentDate
			if summary.DateRange.First == nil || d.Before(*summary.DateRange.First) {
				summary.DateRange.First = &d
			}
			if summary.DateRange.Last == nil || d.After(*summary.DateRange.Last) {
				summary.DateRange.Last = &d
			}
		}

		if p.SupplierID > 0 {
			suppliers[p.SupplierID] = struct{}{}
		}
	}

	if summary.TotalPayments > 0 {
		summary.AveragePaymentAmount = summary.TotalAmount.Div(decimal.NewFromInt(int64(summary.TotalPayments)))
	}
	summary.SuppliersServed = len(suppliers)
	return summary
}

// Statistics is the reduced form of Aggregate used by report pages.
func Statistics(payments []entities.Payment) entities.PaymentStatistics {
	kpi := Aggregate(payments)
	return entities.PaymentStatistics{
		TotalPaid:      kpi.TotalAmount,
		PaymentCount:   kpi.TotalPayments,
		AveragePayment: kpi.AveragePaymentAmount,
	}
}
