package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProviderStatus mirrors the supplier lifecycle owned by the supplier service.
type ProviderStatus string

const (
	ProviderStatusPending   ProviderStatus = "PENDING"
	ProviderStatusCompleted ProviderStatus = "COMPLETED"
)

// Provider is the supplier (counterparty) debts and payments are attributed to.
//
// Read-only for the report service:
//   - TotalDebt is the aggregate the supplier service maintains; the report
//     falls back to it when no debts are loaded.
type Provider struct {
	ID              int64           `json:"id"`
	CompanyName     string          `json:"companyName"`
	TaxID           string          `json:"taxId,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	Email           string          `json:"email,omitempty"`
	Status          ProviderStatus  `json:"status"`
	TotalDebt       decimal.Decimal `json:"totalDebt"`
	LastPaymentDate *time.Time      `json:"lastPaymentDate,omitempty"`
	CreatedAt       *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`
}

// DebtStatus represents the repayment state of a debt.
type DebtStatus string

const (
	DebtStatusPending       DebtStatus = "PENDING"
	DebtStatusPartiallyPaid DebtStatus = "PARTIALLY_PAID"
	DebtStatusPaid          DebtStatus = "PAID"
	DebtStatusOverdue       DebtStatus = "OVERDUE"
)

func (s DebtStatus) Valid() bool {
	switch s {
	case DebtStatusPending, DebtStatusPartiallyPaid, DebtStatusPaid, DebtStatusOverdue:
		return true
	}
	return false
}

// Debt is an amount owed to exactly one provider.
//
// Debts are created and mutated by the order flow; the report only reads
// and selects among an already loaded list.
type Debt struct {
	ID              int64           `json:"id"`
	OrderID         int64           `json:"orderId,omitempty"`
	SupplierID      int64           `json:"supplierId"`
	DebtNumber      int64           `json:"debtNumber,omitempty"`
	InitialAmount   decimal.Decimal `json:"initialAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          DebtStatus      `json:"status"`
	DueDate         *time.Time      `json:"dueDate,omitempty"`
	CreatedAt       *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`
	Payments        []Payment       `json:"payments,omitempty"`
}
