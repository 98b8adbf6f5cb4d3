package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProviderReport is the detailed report of one provider (without payments;
// payments are fetched per debt).
type ProviderReport struct {
	Provider       Provider        `json:"supplier"`
	Debts          []Debt          `json:"debts"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	PaymentCount   int             `json:"paymentCount"`
	AveragePayment decimal.Decimal `json:"averagePayment"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination derives TotalPages as ceil(total/limit).
func NewPagination(page, limit, total int) Pagination {
	p := Pagination{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		p.TotalPages = (total + limit - 1) / limit
	}
	return p
}

type PaymentStatistics struct {
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	PaymentCount   int             `json:"paymentCount"`
	AveragePayment decimal.Decimal `json:"averagePayment"`
}

// DebtPaymentsPage is one page of a debt's payment history (deleted included).
type DebtPaymentsPage struct {
	Payments   []Payment         `json:"payments"`
	Pagination Pagination        `json:"pagination"`
	Statistics PaymentStatistics `json:"statistics"`
}

// CashierPaymentsQuery filters the payments registered by one cashier.
type CashierPaymentsQuery struct {
	Page           int            `json:"page"`
	Limit          int            `json:"limit"`
	StartDate      *time.Time     `json:"startDate,omitempty"`
	EndDate        *time.Time     `json:"endDate,omitempty"`
	PaymentMethod  *PaymentMethod `json:"paymentMethod,omitempty"`
	IncludeDeleted bool           `json:"includeDeleted"`
	// Period narrows the returned page to a quick period; empty means all.
	Period Period `json:"period,omitempty"`
}

type CashierPaymentsPage struct {
	Payments   []Payment  `json:"payments"`
	Pagination Pagination `json:"pagination"`
}

// CashierKPIReport pairs a cashier payments page with the KPIs derived from it.
type CashierKPIReport struct {
	CashierID  int64      `json:"cashierId"`
	KPIs       KPISummary `json:"kpis"`
	Payments   []Payment  `json:"payments"`
	Pagination Pagination `json:"pagination"`
}

type SharedPayment struct {
	Payment  Payment `json:"payment"`
	ShareURL string  `json:"shareUrl"`
}

// ExportFile is an opaque export blob with its suggested file name.
type ExportFile struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"-"`
}

type NotificationSeverity string

const (
	SeveritySuccess NotificationSeverity = "success"
	SeverityInfo    NotificationSeverity = "info"
	SeverityWarn    NotificationSeverity = "warn"
	SeverityError   NotificationSeverity = "error"
)

// Notification is a transient user-facing message (toast).
type Notification struct {
	Severity  NotificationSeverity `json:"severity"`
	Summary   string               `json:"summary"`
	Detail    string               `json:"detail"`
	CreatedAt time.Time            `json:"createdAt"`
}
