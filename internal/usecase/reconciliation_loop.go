package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"supplier_report/internal/adapter/urlstate"
	"supplier_report/internal/domain/entities"
	"supplier_report/internal/logger"
	"supplier_report/internal/usecase/interfaces"
)

var (
	ErrPaymentNotLoaded      = errors.New("payment is not on the loaded page")
	ErrPaymentAlreadyDeleted = errors.New("payment already deleted")
	ErrPaymentDeletedNoShare = errors.New("deleted payments cannot be shared")
	ErrNoProviderSelected    = errors.New("no provider selected")
	ErrUnknownDebt           = errors.New("debt is not part of the loaded report")
	ErrDeleteReasonRequired  = errors.New("delete reason is required")
)

type LoopPhase int32

const (
	PhaseIdle LoopPhase = iota
	PhaseApplyingURL
	PhaseSyncingURL
)

func (p LoopPhase) String() string {
	switch p {
	case PhaseApplyingURL:
		return "applying_url"
	case PhaseSyncingURL:
		return "syncing_url"
	default:
		return "idle"
	}
}

type LoopOption func(*ReconciliationLoop)

// WithSpawner replaces the goroutine launcher used for loads.
func WithSpawner(spawn func(func())) LoopOption {
	return func(l *ReconciliationLoop) { l.spawn = spawn }
}

func WithClock(now func() time.Time) LoopOption {
	return func(l *ReconciliationLoop) { l.now = now }
}

func WithLogger(log zerolog.Logger) LoopOption {
	return func(l *ReconciliationLoop) { l.log = log }
}

// ReconciliationLoop keeps a ReportStateStore and the report link in
// agreement. Incoming navigation is decoded and applied to the store; user
// mutations are applied to the store and written back to the link with a
// non-appending navigation. The navigation produced by that write is
// dropped through the syncing guard.
//
// Loads run asynchronously. Each carries a token; a newer load of the same
// kind cancels the older request and late results are discarded.
type ReconciliationLoop struct {
	store    *ReportStateStore
	gateway  interfaces.IReportGateway
	nav      interfaces.INavigator
	notifier interfaces.INotifier
	spawn    func(func())
	now      func() time.Time
	log      zerolog.Logger

	mu         sync.Mutex
	lastSynced string
	phase      atomic.Int32
	syncing    atomic.Bool

	reqMu          sync.Mutex
	baseCtx        context.Context
	cancelAll      context.CancelFunc
	reportSeq      uint64
	paymentsSeq    uint64
	cancelReport   context.CancelFunc
	cancelPayments context.CancelFunc
	pending        int
	idle           chan struct{}
}

func NewReconciliationLoop(store *ReportStateStore, gateway interfaces.IReportGateway, nav interfaces.INavigator, notifier interfaces.INotifier, opts ...LoopOption) *ReconciliationLoop {
	ctx, cancel := context.WithCancel(context.Background())
	l := &ReconciliationLoop{
		store:     store,
		gateway:   gateway,
		nav:       nav,
		notifier:  notifier,
		spawn:     func(f func()) { go f() },
		now:       time.Now,
		log:       logger.WithComponent("report-loop"),
		baseCtx:   ctx,
		cancelAll: cancel,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *ReconciliationLoop) Store() *ReportStateStore {
	return l.store
}

func (l *ReconciliationLoop) Phase() LoopPhase {
	return LoopPhase(l.phase.Load())
}

// Syncing reports whether a link write is in progress.
func (l *ReconciliationLoop) Syncing() bool {
	return l.syncing.Load()
}

// Start loads the provider list and applies the initial link.
func (l *ReconciliationLoop) Start(ctx context.Context, initial url.Values) {
	l.loadProviders()
	l.HandleNavigation(ctx, initial)
}

// HandleNavigation applies an external navigation event. Events that arrive
// while the loop writes the link itself are its own echo and are dropped.
func (l *ReconciliationLoop) HandleNavigation(ctx context.Context, query url.Values) {
	if l.syncing.Load() {
		l.log.Debug().Str("query", query.Encode()).Msg("own navigation echo dropped")
		return
	}
	if l.baseCtx.Err() != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.phase.Store(int32(PhaseApplyingURL))
	defer l.phase.Store(int32(PhaseIdle))

	q := urlstate.Decode(query, l.store.Location())
	l.lastSynced = urlstate.Canonical(q)
	l.log.Debug().Str("query", l.lastSynced).Msg("applying navigation")

	l.execute(ctx, l.leavingProvider(func() Effects { return l.store.ApplyQuery(q) }))
}

func (l *ReconciliationLoop) ChangeProvider(ctx context.Context, providerID int64) {
	l.apply(ctx, func() Effects {
		if providerID <= 0 {
			eff := l.store.ChangeProvider(providerID)
			l.supersedeAll()
			return eff
		}
		return l.leavingProvider(func() Effects { return l.store.ChangeProvider(providerID) })
	})
}

// leavingProvider runs a mutation and, when it switched provider, drops the
// payments request still in flight for the previous provider's debt.
func (l *ReconciliationLoop) leavingProvider(mutate func() Effects) Effects {
	before := l.store.State().ProviderID
	eff := mutate()
	if l.store.State().ProviderID != before {
		l.supersedePayments()
	}
	return eff
}

func (l *ReconciliationLoop) ChangeDebt(ctx context.Context, debtID int64) error {
	if debtID > 0 && !l.store.HasDebt(debtID) {
		return ErrUnknownDebt
	}
	l.apply(ctx, func() Effects {
		eff := l.store.ChangeDebt(debtID)
		if debtID <= 0 {
			l.supersedePayments()
		}
		return eff
	})
	return nil
}

func (l *ReconciliationLoop) ChangePage(ctx context.Context, page int) {
	l.apply(ctx, func() Effects { return l.store.ChangePage(page) })
}

func (l *ReconciliationLoop) ChangePageSize(ctx context.Context, size int) {
	l.apply(ctx, func() Effects { return l.store.ChangePageSize(size) })
}

func (l *ReconciliationLoop) ChangeDateRange(ctx context.Context, r entities.DateRange) {
	l.apply(ctx, func() Effects { return l.store.ChangeDateRange(r) })
}

func (l *ReconciliationLoop) ChangePeriod(ctx context.Context, p entities.Period) {
	l.apply(ctx, func() Effects { return l.store.ChangePeriod(p, l.now()) })
}

func (l *ReconciliationLoop) ChangeDeleteFilter(ctx context.Context, f entities.DeleteFilter) {
	l.apply(ctx, func() Effects { return l.store.ChangeDeleteFilter(f) })
}

func (l *ReconciliationLoop) ClearFilters(ctx context.Context) {
	l.apply(ctx, func() Effects { return l.store.ClearFilters() })
}

// Refresh reloads the selected provider's report (and, once it lands, the
// active debt's payments).
func (l *ReconciliationLoop) Refresh(ctx context.Context) error {
	if l.store.State().ProviderID == 0 {
		return ErrNoProviderSelected
	}
	l.apply(ctx, func() Effects { return Effects{LoadReport: true} })
	return nil
}

// DeletePayment soft-deletes a payment of the loaded page and reloads the
// report on success.
func (l *ReconciliationLoop) DeletePayment(ctx context.Context, paymentID int64, reason string) error {
	const op = "reconciliation_loop.DeletePayment"
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrDeleteReasonRequired
	}
	p, ok := l.store.FindPayment(paymentID)
	if !ok {
		return ErrPaymentNotLoaded
	}
	if p.Deleted {
		return ErrPaymentAlreadyDeleted
	}
	if err := l.gateway.DeletePayment(ctx, paymentID, reason); err != nil {
		l.raise(entities.SeverityError, "Error", "Could not delete the payment")
		return fmt.Errorf("%s: %w", op, err)
	}
	l.raise(entities.SeveritySuccess, "Payment deleted", fmt.Sprintf("Payment %d was deleted", paymentID))
	l.apply(ctx, func() Effects { return Effects{LoadReport: true} })
	return nil
}

// SharePayment marks a loaded payment as shared and swaps the updated copy
// into the page.
func (l *ReconciliationLoop) SharePayment(ctx context.Context, paymentID int64) (entities.SharedPayment, error) {
	const op = "reconciliation_loop.SharePayment"
	p, ok := l.store.FindPayment(paymentID)
	if !ok {
		return entities.SharedPayment{}, ErrPaymentNotLoaded
	}
	if p.Deleted {
		return entities.SharedPayment{}, ErrPaymentDeletedNoShare
	}
	shared, err := l.gateway.SharePayment(ctx, paymentID)
	if err != nil {
		l.raise(entities.SeverityError, "Error", "Could not share the payment")
		return entities.SharedPayment{}, fmt.Errorf("%s: %w", op, err)
	}
	if shared.Payment.ID == 0 {
		p.Shared = true
		shared.Payment = p
	}
	l.store.ReplacePayment(shared.Payment)
	l.raise(entities.SeveritySuccess, "Payment shared", shared.ShareURL)
	return shared, nil
}

// DeleteDebt forwards to the gateway, which may not implement it.
func (l *ReconciliationLoop) DeleteDebt(ctx context.Context, debtID int64) error {
	if !l.store.HasDebt(debtID) {
		return ErrUnknownDebt
	}
	err := l.gateway.DeleteDebt(ctx, debtID)
	switch {
	case errors.Is(err, interfaces.ErrDebtDeletionNotImplemented):
		l.raise(entities.SeverityInfo, "Not available", "Debt deletion is not implemented")
		return err
	case err != nil:
		l.raise(entities.SeverityError, "Error", "Could not delete the debt")
		return fmt.Errorf("reconciliation_loop.DeleteDebt: %w", err)
	}
	l.apply(ctx, func() Effects { return Effects{LoadReport: true} })
	return nil
}

// Export builds the export of the selected provider for the current range.
func (l *ReconciliationLoop) Export(ctx context.Context) (entities.ExportFile, error) {
	state := l.store.State()
	if state.ProviderID == 0 {
		return entities.ExportFile{}, ErrNoProviderSelected
	}
	file, err := l.gateway.ExportProviderReport(ctx, state.ProviderID, state.DateRange.Start, state.DateRange.End)
	if err != nil {
		l.raise(entities.SeverityError, "Error", "Could not export the report")
		return entities.ExportFile{}, fmt.Errorf("reconciliation_loop.Export: %w", err)
	}
	return file, nil
}

// WaitIdle blocks until no load is in flight or ctx is done.
func (l *ReconciliationLoop) WaitIdle(ctx context.Context) error {
	for {
		l.reqMu.Lock()
		if l.pending == 0 {
			l.reqMu.Unlock()
			return nil
		}
		ch := l.idle
		l.reqMu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close cancels every in-flight request. Results arriving afterwards are
// discarded.
func (l *ReconciliationLoop) Close() {
	l.cancelAll()
}

func (l *ReconciliationLoop) apply(ctx context.Context, mutate func() Effects) {
	if l.baseCtx.Err() != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.execute(ctx, mutate())
}

// execute runs effects in order: report load, payments load, link write.
// Callers hold l.mu.
func (l *ReconciliationLoop) execute(ctx context.Context, eff Effects) {
	if eff.LoadReport {
		l.loadReport()
	}
	if eff.LoadPayments {
		l.loadPayments()
	}
	if eff.SyncURL {
		l.syncURL(ctx)
	}
}

// syncURL writes the current selection to the link. The guard is cleared
// on every path; a failed write is logged and the state is kept.
func (l *ReconciliationLoop) syncURL(ctx context.Context) {
	q := l.store.State().Query()
	canonical := urlstate.Canonical(q)
	if canonical == l.lastSynced {
		return
	}

	l.syncing.Store(true)
	prev := l.phase.Swap(int32(PhaseSyncingURL))
	defer func() {
		l.syncing.Store(false)
		l.phase.Store(prev)
	}()

	if err := l.nav.Replace(ctx, urlstate.Encode(q)); err != nil {
		l.log.Warn().Err(err).Str("query", canonical).Msg("link write failed")
		return
	}
	l.lastSynced = canonical
}

func (l *ReconciliationLoop) begin(seq *uint64, cancelPrev *context.CancelFunc) (uint64, context.Context, context.CancelFunc) {
	l.reqMu.Lock()
	defer l.reqMu.Unlock()
	*seq++
	if *cancelPrev != nil {
		(*cancelPrev)()
	}
	ctx, cancel := context.WithCancel(l.baseCtx)
	*cancelPrev = cancel
	l.trackLocked()
	return *seq, ctx, cancel
}

func (l *ReconciliationLoop) trackLocked() {
	if l.pending == 0 {
		l.idle = make(chan struct{})
	}
	l.pending++
}

func (l *ReconciliationLoop) done() {
	l.reqMu.Lock()
	defer l.reqMu.Unlock()
	l.pending--
	if l.pending == 0 {
		close(l.idle)
	}
}

func (l *ReconciliationLoop) current(seq *uint64, token uint64) bool {
	l.reqMu.Lock()
	defer l.reqMu.Unlock()
	return *seq == token && l.baseCtx.Err() == nil
}

func (l *ReconciliationLoop) supersedePayments() {
	l.reqMu.Lock()
	defer l.reqMu.Unlock()
	l.paymentsSeq++
	if l.cancelPayments != nil {
		l.cancelPayments()
		l.cancelPayments = nil
	}
}

func (l *ReconciliationLoop) supersedeAll() {
	l.reqMu.Lock()
	l.reportSeq++
	if l.cancelReport != nil {
		l.cancelReport()
		l.cancelReport = nil
	}
	l.reqMu.Unlock()
	l.supersedePayments()
}

func (l *ReconciliationLoop) loadReport() {
	state := l.store.State()
	token, ctx, cancel := l.begin(&l.reportSeq, &l.cancelReport)
	l.store.BeginReportLoad()
	l.log.Debug().Uint64("token", token).Int64("provider_id", state.ProviderID).Msg("report load issued")

	l.spawn(func() {
		defer l.done()
		defer cancel()
		report, err := l.gateway.GetProviderDetailedReport(ctx, state.ProviderID, state.DateRange.Start, state.DateRange.End)

		l.mu.Lock()
		defer l.mu.Unlock()
		if !l.current(&l.reportSeq, token) {
			l.log.Debug().Uint64("token", token).Msg("stale report discarded")
			return
		}
		if err != nil {
			l.store.ReportFailed()
			l.log.Error().Err(err).Int64("provider_id", state.ProviderID).Msg("report load failed")
			l.raise(entities.SeverityError, "Error", "Could not load the provider report")
			return
		}
		l.execute(l.baseCtx, l.store.ReportLoaded(report))
	})
}

func (l *ReconciliationLoop) loadPayments() {
	state := l.store.State()
	if state.DebtID == 0 {
		return
	}
	token, ctx, cancel := l.begin(&l.paymentsSeq, &l.cancelPayments)
	l.store.BeginPaymentsLoad()
	l.log.Debug().Uint64("token", token).Int64("debt_id", state.DebtID).Int("page", state.Page).Msg("payments load issued")

	l.spawn(func() {
		defer l.done()
		defer cancel()
		page, err := l.gateway.GetDebtPayments(ctx, state.DebtID, state.Page, state.PageSize, state.DateRange.Start, state.DateRange.End)

		l.mu.Lock()
		defer l.mu.Unlock()
		if !l.current(&l.paymentsSeq, token) {
			l.log.Debug().Uint64("token", token).Int64("debt_id", state.DebtID).Msg("stale payments discarded")
			return
		}
		if err != nil {
			l.store.PaymentsFailed()
			l.log.Error().Err(err).Int64("debt_id", state.DebtID).Msg("payments load failed")
			l.raise(entities.SeverityError, "Error", "Could not load the debt payments")
			return
		}
		l.store.PaymentsLoaded(page)
	})
}

func (l *ReconciliationLoop) loadProviders() {
	l.reqMu.Lock()
	l.trackLocked()
	l.reqMu.Unlock()

	l.spawn(func() {
		defer l.done()
		providers, err := l.gateway.ListProviders(l.baseCtx)
		if l.baseCtx.Err() != nil {
			return
		}
		if err != nil {
			l.log.Error().Err(err).Msg("providers load failed")
			l.raise(entities.SeverityError, "Error", "Could not load the providers")
			return
		}
		l.store.ProvidersLoaded(providers)
	})
}

func (l *ReconciliationLoop) raise(severity entities.NotificationSeverity, summary, detail string) {
	if l.notifier == nil {
		return
	}
	l.notifier.Notify(entities.Notification{
		Severity:  severity,
		Summary:   summary,
		Detail:    detail,
		CreatedAt: l.now(),
	})
}
