package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"supplier_report/internal/domain/entities"
	"supplier_report/internal/domain/reporting"
	"supplier_report/internal/logger"
	"supplier_report/internal/usecase/interfaces"
)

const MaxCashierPageSize = 100

var (
	ErrInvalidCashierID = errors.New("invalid cashier_id")
	ErrInvalidDateRange = errors.New("startDate must not be after endDate")
)

// ICashierKPIUseCase backs the cashier close screen.
//
// KPIs are aggregated over the page of payments the backend returns, not
// over every payment matching the filters.
type ICashierKPIUseCase interface {
	GetCashierKPIs(ctx context.Context, cashierID int64, q entities.CashierPaymentsQuery) (entities.CashierKPIReport, error)
}

type CashierKPIUseCase struct {
	gateway         interfaces.IReportGateway
	defaultPageSize int
	loc             *time.Location
	now             func() time.Time
	log             zerolog.Logger
}

var _ ICashierKPIUseCase = (*CashierKPIUseCase)(nil)

func NewCashierKPIUseCase(gateway interfaces.IReportGateway, defaultPageSize int, loc *time.Location) *CashierKPIUseCase {
	if defaultPageSize <= 0 || defaultPageSize > MaxCashierPageSize {
		defaultPageSize = 20
	}
	if loc == nil {
		loc = time.Local
	}
	return &CashierKPIUseCase{
		gateway:         gateway,
		defaultPageSize: defaultPageSize,
		loc:             loc,
		now:             time.Now,
		log:             logger.WithComponent("cashier-kpi"),
	}
}

func (u *CashierKPIUseCase) GetCashierKPIs(ctx context.Context, cashierID int64, q entities.CashierPaymentsQuery) (entities.CashierKPIReport, error) {
	const op = "cashier_kpi.GetCashierKPIs"
	if cashierID <= 0 {
		return entities.CashierKPIReport{}, ErrInvalidCashierID
	}
	if q.StartDate != nil && q.EndDate != nil && q.StartDate.After(*q.EndDate) {
		return entities.CashierKPIReport{}, ErrInvalidDateRange
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = u.defaultPageSize
	}
	if q.Limit > MaxCashierPageSize {
		q.Limit = MaxCashierPageSize
	}

	page, err := u.gateway.GetPaymentsByCashier(ctx, cashierID, q)
	if err != nil {
		u.log.Error().Err(err).Int64("cashier_id", cashierID).Msg("cashier payments load failed")
		return entities.CashierKPIReport{}, fmt.Errorf("%s: %w", op, err)
	}

	payments := page.Payments
	if payments == nil {
		payments = []entities.Payment{}
	}
	if q.Period != "" && q.Period != entities.PeriodAll {
		payments = reporting.FilterByPeriod(payments, q.Period, u.now().In(u.loc))
	}
	kpis := reporting.Aggregate(payments)
	u.log.Debug().
		Int64("cashier_id", cashierID).
		Int("page", q.Page).
		Int("returned", len(payments)).
		Int("active", kpis.TotalPayments).
		Msg("cashier kpis aggregated")

	return entities.CashierKPIReport{
		CashierID:  cashierID,
		KPIs:       kpis,
		Payments:   payments,
		Pagination: page.Pagination,
	}, nil
}
