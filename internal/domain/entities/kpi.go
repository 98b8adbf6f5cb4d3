package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type MethodBreakdown struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type StatusCounts struct {
	Verified   int `json:"verified"`
	Unverified int `json:"unverified"`
	Shared     int `json:"shared"`
	Deleted    int `json:"deleted"`
}

type PaymentSpan struct {
	First *time.Time `json:"firstPayment"`
	Last  *time.Time `json:"lastPayment"`
}

// KPISummary is derived from a payment collection and never persisted.
// A new value is produced every time the collection changes.
type KPISummary struct {
	TotalPayments          int                               `json:"totalPayments"`
	TotalAmount            decimal.Decimal                   `json:"totalAmount"`
	TotalAmountInBolivares decimal.Decimal                   `json:"totalAmountInBolivares"`
	AveragePaymentAmount   decimal.Decimal                   `json:"averagePaymentAmount"`
	ByPaymentMethod        map[PaymentMethod]MethodBreakdown `json:"byPaymentMethod"`
	ByStatus               StatusCounts                      `json:"byStatus"`
	DateRange              PaymentSpan                       `json:"dateRange"`
	SuppliersServed        int                               `json:"suppliersServed"`
}
