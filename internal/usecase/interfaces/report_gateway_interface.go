package interfaces

import (
	"context"
	"errors"
	"time"

	"supplier_report/internal/domain/entities"
)

// ErrDebtDeletionNotImplemented is returned by gateways that expose debt
// deletion without a backing operation.
var ErrDebtDeletionNotImplemented = errors.New("debt deletion not implemented")

// IReportGateway is the backend the payment report reads from and acts on.
//
// Dates are calendar days in the report location; nil means unbounded.
// Providers report only debts; payments are fetched per debt, deleted
// payments included (the caller filters).
type IReportGateway interface {
	ListProviders(ctx context.Context) ([]entities.Provider, error)
	GetProviderDetailedReport(ctx context.Context, providerID int64, start, end *time.Time) (entities.ProviderReport, error)
	GetDebtPayments(ctx context.Context, debtID int64, page, pageSize int, start, end *time.Time) (entities.DebtPaymentsPage, error)
	GetPaymentsByCashier(ctx context.Context, cashierID int64, q entities.CashierPaymentsQuery) (entities.CashierPaymentsPage, error)
	ExportProviderReport(ctx context.Context, providerID int64, start, end *time.Time) (entities.ExportFile, error)
	DeletePayment(ctx context.Context, paymentID int64, reason string) error
	SharePayment(ctx context.Context, paymentID int64) (entities.SharedPayment, error)
	DeleteDebt(ctx context.Context, debtID int64) error
}
