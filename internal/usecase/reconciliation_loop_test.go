package usecase

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"supplier_report/internal/adapter/navigation"
	"supplier_report/internal/domain/entities"
	"supplier_report/internal/usecase/interfaces"
	mock_interfaces "supplier_report/internal/usecase/interfaces/mocks"
)

// spawnQueue holds spawned loads until the test runs them.
type spawnQueue struct {
	mu  sync.Mutex
	fns []func()
}

func (q *spawnQueue) spawn(f func()) {
	q.mu.Lock()
	q.fns = append(q.fns, f)
	q.mu.Unlock()
}

func (q *spawnQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.fns)
}

// take removes and returns the i-th queued load.
func (q *spawnQueue) take(i int) func() {
	q.mu.Lock()
	defer q.mu.Unlock()
	f := q.fns[i]
	q.fns = append(q.fns[:i], q.fns[i+1:]...)
	return f
}

// drain runs queued loads (and the ones they queue) in FIFO order.
func (q *spawnQueue) drain() {
	for q.len() > 0 {
		q.take(0)()
	}
}

type countingNav struct {
	*navigation.History
	replaces int
}

func (n *countingNav) Replace(ctx context.Context, query url.Values) error {
	n.replaces++
	return n.History.Replace(ctx, query)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []entities.Notification
}

func (r *recordingNotifier) Notify(n entities.Notification) {
	r.mu.Lock()
	r.sent = append(r.sent, n)
	r.mu.Unlock()
}

func (r *recordingNotifier) last() entities.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return entities.Notification{}
	}
	return r.sent[len(r.sent)-1]
}

func values(raw string) url.Values {
	v, _ := url.ParseQuery(raw)
	return v
}

func pageOf(debtID int64, paymentIDs ...int64) entities.DebtPaymentsPage {
	p := entities.DebtPaymentsPage{Pagination: entities.NewPagination(1, 10, len(paymentIDs))}
	for _, id := range paymentIDs {
		p.Payments = append(p.Payments, entities.Payment{ID: id, DebtID: debtID, Amount: money("10")})
	}
	return p
}

func TestReconciliationLoop_PageChangeWritesLinkOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIReportGateway(ctrl)
	notifier := mock_interfaces.NewMockINotifier(ctrl)

	hist := navigation.NewHistory(url.Values{})
	nav := &countingNav{History: hist}
	queue := &spawnQueue{}
	store := NewReportStateStore(10, time.UTC)
	loop := NewReconciliationLoop(store, gw, nav, notifier, WithSpawner(queue.spawn))

	echoes := 0
	hist.Subscribe(func(ctx context.Context, v url.Values) {
		if loop.Syncing() {
			echoes++
		}
		loop.HandleNavigation(ctx, v)
	})

	gw.EXPECT().GetProviderDetailedReport(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
		Return(reportWithDebts(1, 1, 2), nil).Times(1)
	gw.EXPECT().GetDebtPayments(gomock.Any(), int64(1), 1, 10, gomock.Any(), gomock.Any()).
		Return(pageOf(1, 100), nil).Times(1)

	ctx := context.Background()
	if err := hist.Push(ctx, values("providerId=1&debtId=1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	queue.drain()
	if nav.replaces != 0 {
		t.Fatalf("expected canonical deep link to need no rewrite, got %d writes", nav.replaces)
	}

	gw.EXPECT().GetDebtPayments(gomock.Any(), int64(1), 2, 10, gomock.Any(), gomock.Any()).
		Return(pageOf(1, 101), nil).Times(1)

	loop.ChangePage(ctx, 2)
	queue.drain()

	if nav.replaces != 1 {
		t.Fatalf("expected exactly one link write, got %d", nav.replaces)
	}
	if echoes != 1 {
		t.Fatalf("expected the write to echo once, got %d", echoes)
	}
	if hist.Len() != 2 {
		t.Fatalf("expected replace to keep history length 2, got %d", hist.Len())
	}
	if got := hist.Current().Get("page"); got != "2" {
		t.Fatalf("expected page=2 in link, got %q", got)
	}
	if loop.Syncing() || loop.Phase() != PhaseIdle {
		t.Fatalf("expected idle loop, syncing=%v phase=%s", loop.Syncing(), loop.Phase())
	}
	if got := store.DisplayedPayments(); len(got) != 1 || got[0].ID != 101 {
		t.Fatalf("expected page 2 payments, got %+v", got)
	}
}

func TestReconciliationLoop_LinkDebtIsOneShot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIReportGateway(ctrl)
	nav := mock_interfaces.NewMockINavigator(ctrl)
	queue := &spawnQueue{}
	store := NewReportStateStore(10, time.UTC)
	loop := NewReconciliationLoop(store, gw, nav, &recordingNotifier{}, WithSpawner(queue.spawn))

	report := entities.ProviderReport{
		Provider: entities.Provider{ID: 7},
		Debts: []entities.Debt{
			{ID: 1, Status: entities.DebtStatusPending},
			{ID: 2, Status: entities.DebtStatusPaid},
		},
	}
	gw.EXPECT().GetProviderDetailedReport(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(report, nil).Times(2)
	gw.EXPECT().GetDebtPayments(gomock.Any(), int64(2), 1, 10, gomock.Any(), gomock.Any()).Return(pageOf(2), nil).Times(2)

	ctx := context.Background()
	loop.HandleNavigation(ctx, values("providerId=7&debtId=2"))
	queue.drain()
	if store.State().DebtID != 2 {
		t.Fatalf("expected debt 2 from link, got %d", store.State().DebtID)
	}

	if err := loop.Refresh(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	queue.drain()
	if store.State().DebtID != 2 {
		t.Fatalf("expected debt 2 kept after reload, got %d", store.State().DebtID)
	}
}

func TestReconciliationLoop_LatestPaymentsRequestWins(t *testing.T) {
	for _, order := range []string{"newest first", "oldest first"} {
		t.Run(order, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gw := mock_interfaces.NewMockIReportGateway(ctrl)
			nav := mock_interfaces.NewMockINavigator(ctrl)
			nav.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			queue := &spawnQueue{}
			store := NewReportStateStore(10, time.UTC)
			store.ChangeProvider(1)
			store.ReportLoaded(reportWithDebts(1, 1, 2, 3))
			loop := NewReconciliationLoop(store, gw, nav, &recordingNotifier{}, WithSpawner(queue.spawn))

			gw.EXPECT().GetDebtPayments(gomock.Any(), int64(2), 1, 10, gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, _ int64, _, _ int, _, _ *time.Time) (entities.DebtPaymentsPage, error) {
					if ctx.Err() == nil {
						t.Fatalf("expected superseded request to be cancelled")
					}
					return pageOf(2, 20), nil
				},
			)
			gw.EXPECT().GetDebtPayments(gomock.Any(), int64(3), 1, 10, gomock.Any(), gomock.Any()).Return(pageOf(3, 30), nil)

			ctx := context.Background()
			if err := loop.ChangeDebt(ctx, 2); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := loop.ChangeDebt(ctx, 3); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if queue.len() != 2 {
				t.Fatalf("expected two queued loads, got %d", queue.len())
			}

			if order == "newest first" {
				queue.take(1)()
				queue.take(0)()
			} else {
				queue.drain()
			}

			got := store.DisplayedPayments()
			if len(got) != 1 || got[0].ID != 30 {
				t.Fatalf("expected payments of debt 3, got %+v", got)
			}
			if err := loop.WaitIdle(ctx); err != nil {
				t.Fatalf("unexpected wait error: %v", err)
			}
		})
	}
}

func TestReconciliationLoop_FailedWriteClearsGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIReportGateway(ctrl)
	nav := mock_interfaces.NewMockINavigator(ctrl)
	store := NewReportStateStore(10, time.UTC)
	loop := NewReconciliationLoop(store, gw, nav, &recordingNotifier{}, WithSpawner((&spawnQueue{}).spawn))

	ctx := context.Background()
	gomock.InOrder(
		nav.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(errors.New("router detached")),
		nav.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v url.Values) error {
			if v.Get("page") != "3" {
				t.Fatalf("expected page=3, got %v", v)
			}
			return nil
		}),
	)

	loop.ChangePage(ctx, 2)
	if loop.Syncing() {
		t.Fatalf("guard left set after failed write")
	}
	if loop.Phase() != PhaseIdle {
		t.Fatalf("expected idle phase, got %s", loop.Phase())
	}
	if store.State().Page != 2 {
		t.Fatalf("expected state kept after failed write, got page %d", store.State().Page)
	}

	loop.ChangePage(ctx, 3)
	if loop.Syncing() {
		t.Fatalf("guard left set")
	}
}

func TestReconciliationLoop_LoadFailureKeepsLastGoodData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIReportGateway(ctrl)
	nav := mock_interfaces.NewMockINavigator(ctrl)
	nav.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	notifier := mock_interfaces.NewMockINotifier(ctrl)

	queue := &spawnQueue{}
	store := NewReportStateStore(10, time.UTC)
	store.ChangeProvider(1)
	store.ReportLoaded(reportWithDebts(1, 1))
	store.PaymentsLoaded(pageOf(1, 5))
	loop := NewReconciliationLoop(store, gw, nav, notifier, WithSpawner(queue.spawn))

	gw.EXPECT().GetDebtPayments(gomock.Any(), int64(1), 2, 10, gomock.Any(), gomock.Any()).
		Return(entities.DebtPaymentsPage{}, errors.New("timeout"))
	notifier.EXPECT().Notify(gomock.Any()).Do(func(n entities.Notification) {
		if n.Severity != entities.SeverityError {
			t.Fatalf("expected error notification, got %+v", n)
		}
	})

	loop.ChangePage(context.Background(), 2)
	if !store.View(time.Now()).LoadingPayments {
		t.Fatalf("expected loading flag while request is in flight")
	}
	queue.drain()

	v := store.View(time.Now())
	if v.LoadingPayments {
		t.Fatalf("expected loading flag reset")
	}
	if len(v.Payments) != 1 || v.Payments[0].ID != 5 {
		t.Fatalf("expected previous payments kept, got %+v", v.Payments)
	}
}

func TestReconciliationLoop_CloseDiscardsResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIReportGateway(ctrl)
	nav := mock_interfaces.NewMockINavigator(ctrl)
	nav.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	queue := &spawnQueue{}
	store := NewReportStateStore(10, time.UTC)
	loop := NewReconciliationLoop(store, gw, nav, &recordingNotifier{}, WithSpawner(queue.spawn))

	gw.EXPECT().GetProviderDetailedReport(gomock.Any(), int64(4), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ int64, _, _ *time.Time) (entities.ProviderReport, error) {
			if ctx.Err() == nil {
				t.Fatalf("expected cancelled context after close")
			}
			return reportWithDebts(4, 1), nil
		},
	)

	loop.ChangeProvider(context.Background(), 4)
	loop.Close()
	queue.drain()

	if v := store.View(time.Now()); v.Report != nil {
		t.Fatalf("expected report discarded after close")
	}
	if err := loop.WaitIdle(context.Background()); err != nil {
		t.Fatalf("unexpected wait error: %v", err)
	}
}

func TestReconciliationLoop_WaitIdleWithGoroutines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIReportGateway(ctrl)
	nav := mock_interfaces.NewMockINavigator(ctrl)

	gw.EXPECT().ListProviders(gomock.Any()).Return([]entities.Provider{{ID: 1, CompanyName: "Acme"}}, nil)
	gw.EXPECT().GetProviderDetailedReport(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(reportWithDebts(1, 3), nil)
	gw.EXPECT().GetDebtPayments(gomock.Any(), int64(3), 1, 10, gomock.Any(), gomock.Any()).Return(pageOf(3, 9), nil)
	nav.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	store := NewReportStateStore(10, time.UTC)
	loop := NewReconciliationLoop(store, gw, nav, &recordingNotifier{})
	defer loop.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	loop.Start(ctx, values("providerId=1"))
	if err := loop.WaitIdle(ctx); err != nil {
		t.Fatalf("unexpected wait error: %v", err)
	}

	v := store.View(time.Now())
	if len(v.Providers) != 1 || v.State.DebtID != 3 || len(v.Payments) != 1 {
		t.Fatalf("unexpected view after idle: %+v", v)
	}
}

func TestReconciliationLoop_PaymentActions(t *testing.T) {
	setup := func(t *testing.T) (*ReconciliationLoop, *mock_interfaces.MockIReportGateway, *spawnQueue, *recordingNotifier) {
		ctrl := gomock.NewController(t)
		gw := mock_interfaces.NewMockIReportGateway(ctrl)
		nav := mock_interfaces.NewMockINavigator(ctrl)
		nav.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		store := NewReportStateStore(10, time.UTC)
		store.ChangeProvider(1)
		store.ReportLoaded(reportWithDebts(1, 1))
		page := pageOf(1, 5, 6)
		page.Payments[1].Deleted = true
		store.PaymentsLoaded(page)
		queue := &spawnQueue{}
		notifier := &recordingNotifier{}
		return NewReconciliationLoop(store, gw, nav, notifier, WithSpawner(queue.spawn)), gw, queue, notifier
	}

	t.Run("delete validations", func(t *testing.T) {
		loop, _, _, _ := setup(t)
		ctx := context.Background()
		if err := loop.DeletePayment(ctx, 5, "  "); !errors.Is(err, ErrDeleteReasonRequired) {
			t.Fatalf("expected ErrDeleteReasonRequired, got %v", err)
		}
		if err := loop.DeletePayment(ctx, 99, "dup"); !errors.Is(err, ErrPaymentNotLoaded) {
			t.Fatalf("expected ErrPaymentNotLoaded, got %v", err)
		}
		if err := loop.DeletePayment(ctx, 6, "dup"); !errors.Is(err, ErrPaymentAlreadyDeleted) {
			t.Fatalf("expected ErrPaymentAlreadyDeleted, got %v", err)
		}
	})

	t.Run("delete success reloads report", func(t *testing.T) {
		loop, gw, queue, notifier := setup(t)
		gw.EXPECT().DeletePayment(gomock.Any(), int64(5), "duplicated").Return(nil)
		gw.EXPECT().GetProviderDetailedReport(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(reportWithDebts(1, 1), nil)
		gw.EXPECT().GetDebtPayments(gomock.Any(), int64(1), 1, 10, gomock.Any(), gomock.Any()).Return(pageOf(1, 6), nil)

		if err := loop.DeletePayment(context.Background(), 5, " duplicated "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if notifier.last().Severity != entities.SeveritySuccess {
			t.Fatalf("expected success notification, got %+v", notifier.last())
		}
		queue.drain()
	})

	t.Run("delete gateway error", func(t *testing.T) {
		loop, gw, _, notifier := setup(t)
		gw.EXPECT().DeletePayment(gomock.Any(), int64(5), "x").Return(errors.New("boom"))
		if err := loop.DeletePayment(context.Background(), 5, "x"); err == nil {
			t.Fatalf("expected error")
		}
		if notifier.last().Severity != entities.SeverityError {
			t.Fatalf("expected error notification")
		}
	})

	t.Run("share replaces the payment", func(t *testing.T) {
		loop, gw, _, _ := setup(t)
		gw.EXPECT().SharePayment(gomock.Any(), int64(5)).Return(entities.SharedPayment{
			Payment:  entities.Payment{ID: 5, DebtID: 1, Shared: true},
			ShareURL: "https://wa.me/?text=x",
		}, nil)

		res, err := loop.SharePayment(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ShareURL == "" {
			t.Fatalf("expected share url")
		}
		if p, _ := loop.Store().FindPayment(5); !p.Shared {
			t.Fatalf("expected shared payment on the page")
		}
	})

	t.Run("share rejects deleted", func(t *testing.T) {
		loop, _, _, _ := setup(t)
		if _, err := loop.SharePayment(context.Background(), 6); !errors.Is(err, ErrPaymentDeletedNoShare) {
			t.Fatalf("expected ErrPaymentDeletedNoShare, got %v", err)
		}
	})

	t.Run("debt deletion is not implemented", func(t *testing.T) {
		loop, gw, queue, notifier := setup(t)
		gw.EXPECT().DeleteDebt(gomock.Any(), int64(1)).Return(interfaces.ErrDebtDeletionNotImplemented)

		err := loop.DeleteDebt(context.Background(), 1)
		if !errors.Is(err, interfaces.ErrDebtDeletionNotImplemented) {
			t.Fatalf("expected ErrDebtDeletionNotImplemented, got %v", err)
		}
		if notifier.last().Severity != entities.SeverityInfo {
			t.Fatalf("expected info notification, got %+v", notifier.last())
		}
		if queue.len() != 0 {
			t.Fatalf("expected no reload")
		}
		if err := loop.DeleteDebt(context.Background(), 42); !errors.Is(err, ErrUnknownDebt) {
			t.Fatalf("expected ErrUnknownDebt, got %v", err)
		}
	})

	t.Run("export requires a provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mock_interfaces.NewMockIReportGateway(ctrl)
		loop := NewReconciliationLoop(NewReportStateStore(10, time.UTC), gw, mock_interfaces.NewMockINavigator(ctrl), nil)
		if _, err := loop.Export(context.Background()); !errors.Is(err, ErrNoProviderSelected) {
			t.Fatalf("expected ErrNoProviderSelected, got %v", err)
		}
	})
}

func TestReconciliationLoop_ProviderSwitchDropsOldPayments(t *testing.T) {
	switches := map[string]func(ctx context.Context, loop *ReconciliationLoop){
		"user selection": func(ctx context.Context, loop *ReconciliationLoop) { loop.ChangeProvider(ctx, 9) },
		"link":           func(ctx context.Context, loop *ReconciliationLoop) { loop.HandleNavigation(ctx, values("providerId=9")) },
	}
	for name, switchProvider := range switches {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gw := mock_interfaces.NewMockIReportGateway(ctrl)
			nav := mock_interfaces.NewMockINavigator(ctrl)
			nav.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			notifier := &recordingNotifier{}

			queue := &spawnQueue{}
			store := NewReportStateStore(10, time.UTC)
			store.ChangeProvider(1)
			store.ReportLoaded(reportWithDebts(1, 1, 2))
			loop := NewReconciliationLoop(store, gw, nav, notifier, WithSpawner(queue.spawn))

			gw.EXPECT().GetDebtPayments(gomock.Any(), int64(2), 1, 10, gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, _ int64, _, _ int, _, _ *time.Time) (entities.DebtPaymentsPage, error) {
					if ctx.Err() == nil {
						t.Fatalf("expected payments of the previous provider to be cancelled")
					}
					return pageOf(2, 20), nil
				},
			)
			gw.EXPECT().GetProviderDetailedReport(gomock.Any(), int64(9), gomock.Any(), gomock.Any()).
				Return(entities.ProviderReport{}, errors.New("unavailable"))

			ctx := context.Background()
			if err := loop.ChangeDebt(ctx, 2); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switchProvider(ctx, loop)
			queue.drain()

			state := store.State()
			if state.ProviderID != 9 || state.DebtID != 0 {
				t.Fatalf("expected provider 9 without debt, got %+v", state)
			}
			if got := store.DisplayedPayments(); len(got) != 0 {
				t.Fatalf("expected no payments under provider 9, got %+v", got)
			}
			if notifier.last().Severity != entities.SeverityError {
				t.Fatalf("expected the report failure to be notified, got %+v", notifier.last())
			}
			if err := loop.WaitIdle(ctx); err != nil {
				t.Fatalf("unexpected wait error: %v", err)
			}
		})
	}
}
