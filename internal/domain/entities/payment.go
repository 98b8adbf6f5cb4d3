package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the channel a payment was received through.
//
// The canonical values are the API codes. Display labels used by the
// back-office ("Zelle", "Transferencia", "Efectivo") are accepted on input.
type PaymentMethod string

const (
	PaymentMethodZelle    PaymentMethod = "ZELLE"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodCash     PaymentMethod = "CASH"
)

// KnownPaymentMethods lists the methods KPI breakdowns are keyed by, in display order.
var KnownPaymentMethods = []PaymentMethod{PaymentMethodZelle, PaymentMethodTransfer, PaymentMethodCash}

// ParsePaymentMethod maps API codes and display labels to a PaymentMethod.
// Unknown values are returned as-is with ok=false so callers can decide to drop them.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ZELLE":
		return PaymentMethodZelle, true
	case "TRANSFER", "TRANSFERENCIA":
		return PaymentMethodTransfer, true
	case "CASH", "EFECTIVO":
		return PaymentMethodCash, true
	}
	return PaymentMethod(strings.TrimSpace(raw)), false
}

func (m PaymentMethod) Known() bool {
	switch m {
	case PaymentMethodZelle, PaymentMethodTransfer, PaymentMethodCash:
		return true
	}
	return false
}

// Payment is a payment applied against exactly one debt.
//
// Soft delete:
//   - Deleted payments stay in the collection with DeletedAt/DeleteReason set.
//   - They are excluded from "active" aggregates unless explicitly requested.
//
// Bolívares:
//   - Amount is always in base currency; AmountInBolivares/ExchangeRate are
//     informative and only summed when IsBolivares is set.
type Payment struct {
	ID                 int64            `json:"id"`
	DebtID             int64            `json:"debtId"`
	SupplierID         int64            `json:"supplierId,omitempty"`
	Amount             decimal.Decimal  `json:"amount"`
	PaymentMethod      PaymentMethod    `json:"paymentMethod"`
	SenderName         string           `json:"senderName,omitempty"`
	SenderEmail        string           `json:"senderEmail,omitempty"`
	ConfirmationNumber string           `json:"confirmationNumber,omitempty"`
	PaymentDate        *time.Time       `json:"paymentDate,omitempty"`
	ReceiptFile        string           `json:"receiptFile,omitempty"`
	Verified           bool             `json:"verified"`
	Shared             bool             `json:"shared"`
	SharedAt           *time.Time       `json:"sharedAt,omitempty"`
	CreatedBy          int64            `json:"createdBy,omitempty"`
	CreatedAt          *time.Time       `json:"createdAt,omitempty"`
	IsBolivares        bool             `json:"isBolivares"`
	ExchangeRate       *decimal.Decimal `json:"exchangeRate,omitempty"`
	AmountInBolivares  *decimal.Decimal `json:"amountInBolivares,omitempty"`
	Deleted            bool             `json:"deleted"`
	DeletedAt          *time.Time       `json:"deletedAt,omitempty"`
	DeletedBy          int64            `json:"deletedBy,omitempty"`
	DeleteReason       string           `json:"deleteReason,omitempty"`
}
