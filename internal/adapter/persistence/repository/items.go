package repository

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"supplier_report/internal/domain/entities"
	"supplier_report/internal/domain/reporting"
)

type supplierItem struct {
	ID              int64       `dynamodbav:"id"`
	CompanyName     string      `dynamodbav:"company_name"`
	TaxID           string      `dynamodbav:"tax_id,omitempty"`
	Phone           string      `dynamodbav:"phone,omitempty"`
	Email           string      `dynamodbav:"email,omitempty"`
	Status          string      `dynamodbav:"status"`
	TotalDebt       decimalAttr `dynamodbav:"total_debt"`
	LastPaymentDate string      `dynamodbav:"last_payment_date,omitempty"`
	CreatedAt       string      `dynamodbav:"created_at,omitempty"`
	UpdatedAt       string      `dynamodbav:"updated_at,omitempty"`
}

type debtItem struct {
	ID              int64       `dynamodbav:"id"`
	OrderID         int64       `dynamodbav:"order_id,omitempty"`
	SupplierID      int64       `dynamodbav:"supplier_id"`
	DebtNumber      int64       `dynamodbav:"debt_number,omitempty"`
	InitialAmount   decimalAttr `dynamodbav:"initial_amount"`
	RemainingAmount decimalAttr `dynamodbav:"remaining_amount"`
	Status          string      `dynamodbav:"status"`
	DueDate         string      `dynamodbav:"due_date,omitempty"`
	CreatedAt       string      `dynamodbav:"created_at,omitempty"`
	UpdatedAt       string      `dynamodbav:"updated_at,omitempty"`
}

type paymentItem struct {
	ID                 int64        `dynamodbav:"id"`
	DebtID             int64        `dynamodbav:"debt_id"`
	SupplierID         int64        `dynamodbav:"supplier_id"`
	Amount             decimalAttr  `dynamodbav:"amount"`
	PaymentMethod      string       `dynamodbav:"payment_method"`
	SenderName         string       `dynamodbav:"sender_name,omitempty"`
	SenderEmail        string       `dynamodbav:"sender_email,omitempty"`
	ConfirmationNumber string       `dynamodbav:"confirmation_number,omitempty"`
	PaymentDate        string       `dynamodbav:"payment_date,omitempty"`
	ReceiptFile        string       `dynamodbav:"receipt_file,omitempty"`
	Verified           bool         `dynamodbav:"verified"`
	Shared             bool         `dynamodbav:"shared"`
	SharedAt           string       `dynamodbav:"shared_at,omitempty"`
	CreatedBy          int64        `dynamodbav:"created_by,omitempty"`
	CreatedAt          string       `dynamodbav:"created_at,omitempty"`
	IsBolivares        bool         `dynamodbav:"is_bolivares"`
	ExchangeRate       *decimalAttr `dynamodbav:"exchange_rate,omitempty"`
	AmountInBolivares  *decimalAttr `dynamodbav:"amount_in_bolivares,omitempty"`
	Deleted            bool         `dynamodbav:"deleted"`
	DeletedAt          string       `dynamodbav:"deleted_at,omitempty"`
	DeletedBy          int64        `dynamodbav:"deleted_by,omitempty"`
	DeleteReason       string       `dynamodbav:"delete_reason,omitempty"`
}

// parser converts stored items into entities. Calendar dates are read in
// loc; timestamps keep their instant.
type parser struct {
	loc            *time.Location
	suppliersTable string
	debtsTable     string
	paymentsTable  string
}

func (p parser) provider(it supplierItem) (entities.Provider, error) {
	if it.ID <= 0 {
		return entities.Provider{}, malformed(p.suppliersTable, it.ID, "id", "must be positive")
	}
	if strings.TrimSpace(it.CompanyName) == "" {
		return entities.Provider{}, malformed(p.suppliersTable, it.ID, "company_name", "empty")
	}
	out := entities.Provider{
		ID:          it.ID,
		CompanyName: it.CompanyName,
		TaxID:       it.TaxID,
		Phone:       it.Phone,
		Email:       it.Email,
		Status:      entities.ProviderStatus(it.Status),
		TotalDebt:   it.TotalDebt.Decimal,
	}
	var err error
	if out.LastPaymentDate, err = p.optionalDate(p.suppliersTable, it.ID, "last_payment_date", it.LastPaymentDate); err != nil {
		return entities.Provider{}, err
	}
	if out.CreatedAt, err = p.optionalTimestamp(p.suppliersTable, it.ID, "created_at", it.CreatedAt); err != nil {
		return entities.Provider{}, err
	}
	if out.UpdatedAt, err = p.optionalTimestamp(p.suppliersTable, it.ID, "updated_at", it.UpdatedAt); err != nil {
		return entities.Provider{}, err
	}
	return out, nil
}

func (p parser) debt(it debtItem) (entities.Debt, error) {
	if it.ID <= 0 {
		return entities.Debt{}, malformed(p.debtsTable, it.ID, "id", "must be positive")
	}
	if it.SupplierID <= 0 {
		return entities.Debt{}, malformed(p.debtsTable, it.ID, "supplier_id", "must be positive")
	}
	status := entities.DebtStatus(strings.ToUpper(strings.TrimSpace(it.Status)))
	if !status.Valid() {
		return entities.Debt{}, malformed(p.debtsTable, it.ID, "status", "unknown status "+it.Status)
	}
	if it.RemainingAmount.IsNegative() {
		return entities.Debt{}, malformed(p.debtsTable, it.ID, "remaining_amount", "negative")
	}
	out := entities.Debt{
		ID:              it.ID,
		OrderID:         it.OrderID,
		SupplierID:      it.SupplierID,
		DebtNumber:      it.DebtNumber,
		InitialAmount:   it.InitialAmount.Decimal,
		RemainingAmount: it.RemainingAmount.Decimal,
		Status:          status,
	}
	var err error
	if out.DueDate, err = p.optionalDate(p.debtsTable, it.ID, "due_date", it.DueDate); err != nil {
		return entities.Debt{}, err
	}
	if out.CreatedAt, err = p.optionalTimestamp(p.debtsTable, it.ID, "created_at", it.CreatedAt); err != nil {
		return entities.Debt{}, err
	}
	if out.UpdatedAt, err = p.optionalTimestamp(p.debtsTable, it.ID, "updated_at", it.UpdatedAt); err != nil {
		return entities.Debt{}, err
	}
	return out, nil
}

func (p parser) payment(it paymentItem) (entities.Payment, error) {
	if it.ID <= 0 {
		return entities.Payment{}, malformed(p.paymentsTable, it.ID, "id", "must be positive")
	}
	if it.DebtID <= 0 {
		return entities.Payment{}, malformed(p.paymentsTable, it.ID, "debt_id", "must be positive")
	}
	if it.Amount.IsNegative() {
		return entities.Payment{}, malformed(p.paymentsTable, it.ID, "amount", "negative")
	}
	method, _ := entities.ParsePaymentMethod(it.PaymentMethod)
	out := entities.Payment{
		ID:                 it.ID,
		DebtID:             it.DebtID,
		SupplierID:         it.SupplierID,
		Amount:             it.Amount.Decimal,
		PaymentMethod:      method,
		SenderName:         it.SenderName,
		SenderEmail:        it.SenderEmail,
		ConfirmationNumber: it.ConfirmationNumber,
		ReceiptFile:        it.ReceiptFile,
		Verified:           it.Verified,
		Shared:             it.Shared,
		CreatedBy:          it.CreatedBy,
		IsBolivares:        it.IsBolivares,
		ExchangeRate:       it.ExchangeRate.ptr(),
		AmountInBolivares:  it.AmountInBolivares.ptr(),
		Deleted:            it.Deleted,
		DeletedBy:          it.DeletedBy,
		DeleteReason:       it.DeleteReason,
	}
	var err error
	if out.PaymentDate, err = p.optionalDate(p.paymentsTable, it.ID, "payment_date", it.PaymentDate); err != nil {
		return entities.Payment{}, err
	}
	if out.SharedAt, err = p.optionalTimestamp(p.paymentsTable, it.ID, "shared_at", it.SharedAt); err != nil {
		return entities.Payment{}, err
	}
	if out.CreatedAt, err = p.optionalTimestamp(p.paymentsTable, it.ID, "created_at", it.CreatedAt); err != nil {
		return entities.Payment{}, err
	}
	if out.DeletedAt, err = p.optionalTimestamp(p.paymentsTable, it.ID, "deleted_at", it.DeletedAt); err != nil {
		return entities.Payment{}, err
	}
	if out.DeletedAt != nil {
		out.Deleted = true
	}
	return out, nil
}

func (p parser) optionalDate(table string, id int64, field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, ok := reporting.ParseLocalDate(raw, p.loc)
	if !ok {
		return nil, malformed(table, id, field, "unparseable date "+raw)
	}
	return &t, nil
}

func (p parser) optionalTimestamp(table string, id int64, field, raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, malformed(table, id, field, "unparseable timestamp "+raw)
	}
	return &t, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func formatOptionalTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTimestamp(*t)
}

func formatOptionalDay(t *time.Time) string {
	if t == nil {
		return ""
	}
	return reporting.FormatDay(*t)
}

func toSupplierItem(p entities.Provider) supplierItem {
	return supplierItem{
		ID:              p.ID,
		CompanyName:     p.CompanyName,
		TaxID:           p.TaxID,
		Phone:           p.Phone,
		Email:           p.Email,
		Status:          string(p.Status),
		TotalDebt:       newDecimalAttr(p.TotalDebt),
		LastPaymentDate: formatOptionalDay(p.LastPaymentDate),
		CreatedAt:       formatOptionalTimestamp(p.CreatedAt),
		UpdatedAt:       formatOptionalTimestamp(p.UpdatedAt),
	}
}

func toDebtItem(d entities.Debt) debtItem {
	return debtItem{
		ID:              d.ID,
		OrderID:         d.OrderID,
		SupplierID:      d.SupplierID,
		DebtNumber:      d.DebtNumber,
		InitialAmount:   newDecimalAttr(d.InitialAmount),
		RemainingAmount: newDecimalAttr(d.RemainingAmount),
		Status:          string(d.Status),
		DueDate:         formatOptionalDay(d.DueDate),
		CreatedAt:       formatOptionalTimestamp(d.CreatedAt),
		UpdatedAt:       formatOptionalTimestamp(d.UpdatedAt),
	}
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		DebtID:             p.DebtID,
		SupplierID:         p.SupplierID,
		Amount:             newDecimalAttr(p.Amount),
		PaymentMethod:      string(p.PaymentMethod),
		SenderName:         p.SenderName,
		SenderEmail:        p.SenderEmail,
		ConfirmationNumber: p.ConfirmationNumber,
		PaymentDate:        formatOptionalDay(p.PaymentDate),
		ReceiptFile:        p.ReceiptFile,
		Verified:           p.Verified,
		Shared:             p.Shared,
		SharedAt:           formatOptionalTimestamp(p.SharedAt),
		CreatedBy:          p.CreatedBy,
		CreatedAt:          formatOptionalTimestamp(p.CreatedAt),
		IsBolivares:        p.IsBolivares,
		ExchangeRate:       newDecimalAttrPtr(p.ExchangeRate),
		AmountInBolivares:  newDecimalAttrPtr(p.AmountInBolivares),
		Deleted:            p.Deleted,
		DeletedAt:          formatOptionalTimestamp(p.DeletedAt),
		DeletedBy:          p.DeletedBy,
		DeleteReason:       p.DeleteReason,
	}
}

// debtStatusFor derives the repayment status from the balances.
func debtStatusFor(initial, remaining decimal.Decimal, current entities.DebtStatus) entities.DebtStatus {
	switch {
	case remaining.LessThanOrEqual(decimal.Zero):
		return entities.DebtStatusPaid
	case remaining.LessThan(initial):
		return entities.DebtStatusPartiallyPaid
	case current == entities.DebtStatusOverdue:
		return entities.DebtStatusOverdue
	default:
		return entities.DebtStatusPending
	}
}
