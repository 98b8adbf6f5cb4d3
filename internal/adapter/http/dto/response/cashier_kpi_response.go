package response

import "supplier_report/internal/domain/entities"

type CashierKPIResponse struct {
	CashierID  int64               `json:"cashierId"`
	KPIs       entities.KPISummary `json:"kpis"`
	Payments   []entities.Payment  `json:"payments"`
	Pagination entities.Pagination `json:"pagination"`
}

func FromCashierKPIReport(r entities.CashierKPIReport) CashierKPIResponse {
	payments := r.Payments
	if payments == nil {
		payments = []entities.Payment{}
	}
	return CashierKPIResponse{
		CashierID:  r.CashierID,
		KPIs:       r.KPIs,
		Payments:   payments,
		Pagination: r.Pagination,
	}
}
