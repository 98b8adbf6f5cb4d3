package entities

import "github.com/shopspring/decimal"

// DebtView is the selected debt with its derived due-date indicators.
type DebtView struct {
	Debt                 Debt   `json:"debt"`
	DueStatus            string `json:"dueStatus"`
	DaysUntilDue         *int   `json:"daysUntilDue,omitempty"`
	ActivePaymentsCount  int    `json:"activePaymentsCount"`
	DeletedPaymentsCount int    `json:"deletedPaymentsCount"`
}

// ReportView is everything the presentation layer reads from a report
// session at one point in time.
type ReportView struct {
	State            ReportState       `json:"state"`
	Providers        []Provider        `json:"providers"`
	SelectedProvider *Provider         `json:"selectedProvider,omitempty"`
	Report           *ProviderReport   `json:"report,omitempty"`
	ActiveDebt       *DebtView         `json:"activeDebt,omitempty"`
	Payments         []Payment         `json:"payments"`
	Pagination       Pagination        `json:"pagination"`
	Statistics       PaymentStatistics `json:"statistics"`
	KPIs             KPISummary        `json:"kpis"`
	TotalDebt        decimal.Decimal   `json:"totalDebt"`
	LoadingReport    bool              `json:"loadingReport"`
	LoadingPayments  bool              `json:"loadingPayments"`
	Link             string            `json:"link"`
}
