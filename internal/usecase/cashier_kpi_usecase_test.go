package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"supplier_report/internal/domain/entities"
	mock_interfaces "supplier_report/internal/usecase/interfaces/mocks"
)

func TestCashierKPIUseCase_GetCashierKPIs(t *testing.T) {
	t.Run("invalid cashier id", func(t *testing.T) {
		uc := NewCashierKPIUseCase(nil, 20, time.UTC)
		_, err := uc.GetCashierKPIs(context.Background(), 0, entities.CashierPaymentsQuery{})
		if !errors.Is(err, ErrInvalidCashierID) {
			t.Fatalf("expected ErrInvalidCashierID, got %v", err)
		}
	})

	t.Run("inverted date range", func(t *testing.T) {
		uc := NewCashierKPIUseCase(nil, 20, time.UTC)
		start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := uc.GetCashierKPIs(context.Background(), 3, entities.CashierPaymentsQuery{StartDate: &start, EndDate: &end})
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("defaults and clamps paging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIReportGateway(ctrl)
		uc := NewCashierKPIUseCase(gw, 20, time.UTC)

		gw.EXPECT().GetPaymentsByCashier(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, q entities.CashierPaymentsQuery) (entities.CashierPaymentsPage, error) {
				if q.Page != 1 || q.Limit != 20 {
					t.Fatalf("expected page 1 limit 20, got %+v", q)
				}
				return entities.CashierPaymentsPage{}, nil
			},
		)
		gw.EXPECT().GetPaymentsByCashier(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, q entities.CashierPaymentsQuery) (entities.CashierPaymentsPage, error) {
				if q.Limit != MaxCashierPageSize {
					t.Fatalf("expected limit clamped to %d, got %d", MaxCashierPageSize, q.Limit)
				}
				return entities.CashierPaymentsPage{}, nil
			},
		)

		res, err := uc.GetCashierKPIs(context.Background(), 3, entities.CashierPaymentsQuery{Page: -1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Payments == nil || res.KPIs.TotalPayments != 0 || !res.KPIs.AveragePaymentAmount.IsZero() {
			t.Fatalf("unexpected empty report %+v", res)
		}
		if _, err := uc.GetCashierKPIs(context.Background(), 3, entities.CashierPaymentsQuery{Limit: 500}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("aggregates the returned page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIReportGateway(ctrl)
		uc := NewCashierKPIUseCase(gw, 20, time.UTC)

		gw.EXPECT().GetPaymentsByCashier(gomock.Any(), int64(9), gomock.Any()).Return(entities.CashierPaymentsPage{
			Payments: []entities.Payment{
				{ID: 1, SupplierID: 1, Amount: money("100"), PaymentMethod: entities.PaymentMethodZelle},
				{ID: 2, SupplierID: 1, Amount: money("50"), PaymentMethod: entities.PaymentMethodZelle, Deleted: true},
				{ID: 3, SupplierID: 2, Amount: money("200"), PaymentMethod: entities.PaymentMethodCash},
			},
			Pagination: entities.NewPagination(1, 20, 43),
		}, nil)

		res, err := uc.GetCashierKPIs(context.Background(), 9, entities.CashierPaymentsQuery{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		k := res.KPIs
		if k.TotalPayments != 2 || !k.TotalAmount.Equal(money("300")) || k.ByStatus.Deleted != 1 {
			t.Fatalf("unexpected kpis %+v", k)
		}
		if k.ByPaymentMethod[entities.PaymentMethodZelle].Count != 1 || k.SuppliersServed != 2 {
			t.Fatalf("unexpected breakdown %+v", k)
		}
		if res.Pagination.TotalPages != 3 || res.CashierID != 9 {
			t.Fatalf("unexpected report meta %+v", res)
		}
	})

	t.Run("period narrows the page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIReportGateway(ctrl)
		uc := NewCashierKPIUseCase(gw, 20, time.UTC)
		uc.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }

		day := func(d int) *time.Time {
			ts := time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC)
			return &ts
		}
		gw.EXPECT().GetPaymentsByCashier(gomock.Any(), int64(4), gomock.Any()).Return(entities.CashierPaymentsPage{
			Payments: []entities.Payment{
				{ID: 1, Amount: money("10"), PaymentMethod: entities.PaymentMethodCash, PaymentDate: day(15)},
				{ID: 2, Amount: money("20"), PaymentMethod: entities.PaymentMethodCash, PaymentDate: day(9)},
				{ID: 3, Amount: money("40"), PaymentMethod: entities.PaymentMethodCash, PaymentDate: day(1)},
				{ID: 4, Amount: money("80"), PaymentMethod: entities.PaymentMethodCash},
			},
			Pagination: entities.NewPagination(1, 20, 4),
		}, nil)

		res, err := uc.GetCashierKPIs(context.Background(), 4, entities.CashierPaymentsQuery{Period: entities.PeriodWeek})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Payments) != 2 || res.Payments[0].ID != 1 || res.Payments[1].ID != 2 {
			t.Fatalf("expected payments of the last 7 days, got %+v", res.Payments)
		}
		if res.KPIs.TotalPayments != 2 || !res.KPIs.TotalAmount.Equal(money("30")) {
			t.Fatalf("expected kpis over the period, got %+v", res.KPIs)
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIReportGateway(ctrl)
		uc := NewCashierKPIUseCase(gw, 20, time.UTC)
		gw.EXPECT().GetPaymentsByCashier(gomock.Any(), int64(9), gomock.Any()).Return(entities.CashierPaymentsPage{}, errors.New("db"))

		if _, err := uc.GetCashierKPIs(context.Background(), 9, entities.CashierPaymentsQuery{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
