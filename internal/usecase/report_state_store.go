package usecase

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"supplier_report/internal/adapter/urlstate"
	"supplier_report/internal/domain/entities"
	"supplier_report/internal/domain/reporting"
	"supplier_report/internal/logger"
)

// Effects lists the reloads and link write a store mutation requires. The
// loop executes them in field order.
type Effects struct {
	LoadReport   bool
	LoadPayments bool
	SyncURL      bool
}

func (e Effects) None() bool {
	return !e.LoadReport && !e.LoadPayments && !e.SyncURL
}

func (e Effects) Merge(o Effects) Effects {
	return Effects{
		LoadReport:   e.LoadReport || o.LoadReport,
		LoadPayments: e.LoadPayments || o.LoadPayments,
		SyncURL:      e.SyncURL || o.SyncURL,
	}
}

// ReportStateStore owns the report selection and the data loaded for it.
// State cells are only written through the named mutations below; each one
// returns the Effects it requires and fires subscribers when the selection
// changed.
type ReportStateStore struct {
	mu  sync.RWMutex
	loc *time.Location
	log zerolog.Logger

	state           entities.ReportState
	preferredDebtID int64

	providers  []entities.Provider
	report     *entities.ProviderReport
	payments   []entities.Payment
	pagination entities.Pagination
	statistics entities.PaymentStatistics

	loadingReport   bool
	loadingPayments bool

	listeners map[int]func(entities.ReportState)
	nextID    int
}

func NewReportStateStore(pageSize int, loc *time.Location) *ReportStateStore {
	if loc == nil {
		loc = time.Local
	}
	return &ReportStateStore{
		loc:       loc,
		log:       logger.WithComponent("report-store"),
		state:     entities.DefaultReportState(pageSize),
		listeners: map[int]func(entities.ReportState){},
	}
}

func (s *ReportStateStore) Location() *time.Location {
	return s.loc
}

func (s *ReportStateStore) State() entities.ReportState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn for selection changes. The returned func removes it.
func (s *ReportStateStore) Subscribe(fn func(entities.ReportState)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// mutate runs fn under the write lock and notifies subscribers afterwards
// when the selection changed.
func (s *ReportStateStore) mutate(name string, fn func() Effects) Effects {
	s.mu.Lock()
	before := s.state
	eff := fn()
	after := s.state
	var ls []func(entities.ReportState)
	if before != after {
		ids := make([]int, 0, len(s.listeners))
		for id := range s.listeners {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			ls = append(ls, s.listeners[id])
		}
	}
	s.mu.Unlock()

	s.log.Debug().
		Str("mutation", name).
		Int64("provider_id", after.ProviderID).
		Int64("debt_id", after.DebtID).
		Int("page", after.Page).
		Bool("load_report", eff.LoadReport).
		Bool("load_payments", eff.LoadPayments).
		Bool("sync_url", eff.SyncURL).
		Msg("state mutation")

	for _, fn := range ls {
		fn(after)
	}
	return eff
}

func (s *ReportStateStore) clearPaymentsLocked() {
	s.payments = nil
	s.pagination = entities.Pagination{}
	s.statistics = entities.PaymentStatistics{}
	s.loadingPayments = false
}

func (s *ReportStateStore) reportLoadedLocked() bool {
	return s.report != nil && s.report.Provider.ID == s.state.ProviderID
}

// ChangeProvider selects a provider (0 clears the selection). Debt and page
// are reset and a fresh report load is required.
func (s *ReportStateStore) ChangeProvider(providerID int64) Effects {
	if providerID < 0 {
		providerID = 0
	}
	return s.mutate("change-provider", func() Effects {
		if providerID == s.state.ProviderID && (providerID == 0 || s.reportLoadedLocked() || s.loadingReport) {
			return Effects{}
		}
		s.state.ProviderID = providerID
		s.state.DebtID = 0
		s.state.Page = entities.DefaultPage
		s.preferredDebtID = 0
		s.report = nil
		s.clearPaymentsLocked()
		if providerID == 0 {
			s.loadingReport = false
			return Effects{SyncURL: true}
		}
		return Effects{LoadReport: true, SyncURL: true}
	})
}

// ChangeDebt selects a debt of the loaded report (0 clears it).
func (s *ReportStateStore) ChangeDebt(debtID int64) Effects {
	if debtID < 0 {
		debtID = 0
	}
	return s.mutate("change-debt", func() Effects {
		if debtID == s.state.DebtID {
			return Effects{}
		}
		s.state.DebtID = debtID
		s.state.Page = entities.DefaultPage
		s.clearPaymentsLocked()
		if debtID == 0 {
			return Effects{SyncURL: true}
		}
		return Effects{LoadPayments: true, SyncURL: true}
	})
}

// ChangePage always reloads the current debt's payments.
func (s *ReportStateStore) ChangePage(page int) Effects {
	if page < entities.DefaultPage {
		page = entities.DefaultPage
	}
	return s.mutate("change-page", func() Effects {
		if page == s.state.Page {
			return Effects{}
		}
		s.state.Page = page
		return Effects{LoadPayments: s.state.DebtID != 0, SyncURL: true}
	})
}

func (s *ReportStateStore) ChangePageSize(size int) Effects {
	if size <= 0 {
		size = entities.DefaultPageSize
	}
	return s.mutate("change-page-size", func() Effects {
		if size == s.state.PageSize {
			return Effects{}
		}
		s.state.PageSize = size
		s.state.Page = entities.DefaultPage
		return Effects{LoadPayments: s.state.DebtID != 0, SyncURL: true}
	})
}

// ChangeDateRange sets an explicit date range. The provider report is
// reloaded for the new range and the payments follow once it lands.
func (s *ReportStateStore) ChangeDateRange(r entities.DateRange) Effects {
	return s.mutate("change-date-range", func() Effects {
		return s.setRangeLocked(r, s.state.Period)
	})
}

// ChangePeriod applies a quick period relative to now.
func (s *ReportStateStore) ChangePeriod(p entities.Period, now time.Time) Effects {
	if parsed, ok := entities.ParsePeriod(string(p)); ok {
		p = parsed
	} else {
		p = entities.PeriodAll
	}
	r := reporting.PeriodRange(p, now.In(s.loc))
	return s.mutate("change-period", func() Effects {
		return s.setRangeLocked(r, p)
	})
}

func (s *ReportStateStore) setRangeLocked(r entities.DateRange, p entities.Period) Effects {
	r = entities.ReportQuery{DateRange: r}.Normalize(s.loc).DateRange
	if r.Equal(s.state.DateRange) && p == s.state.Period {
		return Effects{}
	}
	s.state.DateRange = r
	s.state.Period = p
	if s.state.ProviderID == 0 {
		return Effects{SyncURL: true}
	}
	s.state.Page = entities.DefaultPage
	s.preferredDebtID = 0
	return Effects{LoadReport: true, SyncURL: true}
}

// ChangeDeleteFilter only changes which loaded payments are displayed.
func (s *ReportStateStore) ChangeDeleteFilter(f entities.DeleteFilter) Effects {
	if parsed, ok := entities.ParseDeleteFilter(string(f)); ok {
		f = parsed
	} else {
		f = entities.DeleteFilterActive
	}
	return s.mutate("change-delete-filter", func() Effects {
		if f == s.state.DeleteFilter {
			return Effects{}
		}
		s.state.DeleteFilter = f
		return Effects{SyncURL: true}
	})
}

// ClearFilters resets dates, period, delete filter and page.
func (s *ReportStateStore) ClearFilters() Effects {
	return s.mutate("clear-filters", func() Effects {
		rangeSet := !s.state.DateRange.IsZero() || s.state.Period != entities.PeriodAll
		pageSet := s.state.Page != entities.DefaultPage
		if !rangeSet && !pageSet && s.state.DeleteFilter == entities.DeleteFilterActive {
			return Effects{}
		}
		s.state.DateRange = entities.DateRange{}
		s.state.Period = entities.PeriodAll
		s.state.DeleteFilter = entities.DeleteFilterActive
		s.state.Page = entities.DefaultPage

		eff := Effects{SyncURL: true}
		switch {
		case rangeSet && s.state.ProviderID != 0:
			s.preferredDebtID = 0
			eff.LoadReport = true
		case pageSet && s.state.DebtID != 0:
			eff.LoadPayments = true
		}
		return eff
	})
}

// ApplyQuery applies a decoded link. A link without a provider leaves the
// session untouched. A new provider (or one whose report is not loaded)
// triggers a report load with the link's debt as one-shot preference;
// otherwise only debt, page and filter differences are applied.
func (s *ReportStateStore) ApplyQuery(q entities.ReportQuery) Effects {
	q = q.Normalize(s.loc)
	return s.mutate("apply-query", func() Effects {
		if q.ProviderID == 0 {
			return Effects{}
		}

		rangeChanged := !q.DateRange.Equal(s.state.DateRange)
		pageChanged := q.Page != s.state.Page
		s.state.DeleteFilter = q.DeleteFilter
		s.state.Period = q.Period
		s.state.DateRange = q.DateRange
		s.state.Page = q.Page

		if q.ProviderID != s.state.ProviderID || (!s.reportLoadedLocked() && !s.loadingReport) || rangeChanged {
			if q.ProviderID != s.state.ProviderID {
				s.report = nil
				s.state.DebtID = 0
				s.clearPaymentsLocked()
			}
			s.state.ProviderID = q.ProviderID
			s.preferredDebtID = q.DebtID
			return Effects{LoadReport: true}
		}

		if s.loadingReport {
			s.preferredDebtID = q.DebtID
			return Effects{}
		}

		debtID := reporting.SelectDebt(s.report.Debts, q.DebtID, s.state.DebtID)
		eff := Effects{SyncURL: debtID != q.DebtID}
		if debtID != s.state.DebtID {
			s.state.DebtID = debtID
			s.clearPaymentsLocked()
			eff.LoadPayments = debtID != 0
			return eff
		}
		eff.LoadPayments = pageChanged && debtID != 0
		return eff
	})
}

func (s *ReportStateStore) BeginReportLoad() {
	s.mu.Lock()
	s.loadingReport = true
	s.mu.Unlock()
}

// ReportLoaded installs a provider report and resolves the active debt
// (link preference first, then the current debt, then the first debt). The
// link preference is consumed.
func (s *ReportStateStore) ReportLoaded(report entities.ProviderReport) Effects {
	return s.mutate("report-loaded", func() Effects {
		if report.Provider.ID == 0 {
			report.Provider.ID = s.state.ProviderID
		}
		s.report = &report
		s.loadingReport = false

		debtID := reporting.SelectDebt(report.Debts, s.preferredDebtID, s.state.DebtID)
		s.preferredDebtID = 0
		if debtID != s.state.DebtID {
			s.clearPaymentsLocked()
		}
		s.state.DebtID = debtID
		if debtID == 0 {
			s.clearPaymentsLocked()
			return Effects{SyncURL: true}
		}
		return Effects{LoadPayments: true, SyncURL: true}
	})
}

// ReportFailed keeps the last good data on screen.
func (s *ReportStateStore) ReportFailed() {
	s.mu.Lock()
	s.loadingReport = false
	s.mu.Unlock()
}

func (s *ReportStateStore) BeginPaymentsLoad() {
	s.mu.Lock()
	s.loadingPayments = true
	s.mu.Unlock()
}

func (s *ReportStateStore) PaymentsLoaded(page entities.DebtPaymentsPage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append([]entities.Payment(nil), page.Payments...)
	s.pagination = page.Pagination
	s.statistics = page.Statistics
	s.loadingPayments = false
}

func (s *ReportStateStore) PaymentsFailed() {
	s.mu.Lock()
	s.loadingPayments = false
	s.mu.Unlock()
}

func (s *ReportStateStore) ProvidersLoaded(providers []entities.Provider) {
	s.mu.Lock()
	s.providers = append([]entities.Provider(nil), providers...)
	s.mu.Unlock()
}

// ReplacePayment swaps a loaded payment for an updated copy. It reports
// false when the payment is not on the loaded page.
func (s *ReportStateStore) ReplacePayment(p entities.Payment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].ID == p.ID {
			s.payments[i] = p
			return true
		}
	}
	return false
}

// FindPayment looks a payment up on the loaded page.
func (s *ReportStateStore) FindPayment(id int64) (entities.Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.payments {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Payment{}, false
}

// HasDebt reports whether id names a debt of the loaded report.
func (s *ReportStateStore) HasDebt(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.report == nil {
		return false
	}
	_, ok := reporting.FindDebt(s.report.Debts, id)
	return ok
}

func (s *ReportStateStore) ActiveDebt() (entities.Debt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeDebtLocked()
}

func (s *ReportStateStore) activeDebtLocked() (entities.Debt, bool) {
	if s.report == nil {
		return entities.Debt{}, false
	}
	return reporting.FindDebt(s.report.Debts, s.state.DebtID)
}

// DisplayedPayments is the loaded page filtered by the delete filter.
func (s *ReportStateStore) DisplayedPayments() []entities.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reporting.FilterActiveOrDeleted(s.payments, s.state.DeleteFilter)
}

func (s *ReportStateStore) DeletedPayments() []entities.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reporting.FilterActiveOrDeleted(s.payments, entities.DeleteFilterDeleted)
}

func (s *ReportStateStore) TotalDebtAcrossDebts() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalDebtLocked()
}

func (s *ReportStateStore) totalDebtLocked() decimal.Decimal {
	provider := s.selectedProviderLocked()
	if s.report == nil {
		return reporting.TotalRemaining(nil, provider)
	}
	return reporting.TotalRemaining(s.report.Debts, provider)
}

// KPIs aggregates the loaded page, deleted payments included in the
// status counts.
func (s *ReportStateStore) KPIs() entities.KPISummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reporting.Aggregate(s.payments)
}

func (s *ReportStateStore) Pagination() entities.Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pagination
}

func (s *ReportStateStore) SelectedProvider() (entities.Provider, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.selectedProviderLocked()
	if p == nil {
		return entities.Provider{}, false
	}
	return *p, true
}

func (s *ReportStateStore) selectedProviderLocked() *entities.Provider {
	if s.state.ProviderID == 0 {
		return nil
	}
	if s.report != nil && s.report.Provider.ID == s.state.ProviderID {
		p := s.report.Provider
		return &p
	}
	for i := range s.providers {
		if s.providers[i].ID == s.state.ProviderID {
			p := s.providers[i]
			return &p
		}
	}
	return nil
}

// View renders a consistent snapshot of the session for presentation.
func (s *ReportStateStore) View(now time.Time) entities.ReportView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := entities.ReportView{
		State:           s.state,
		Providers:       append([]entities.Provider(nil), s.providers...),
		Payments:        reporting.FilterActiveOrDeleted(s.payments, s.state.DeleteFilter),
		Pagination:      s.pagination,
		Statistics:      s.statistics,
		KPIs:            reporting.Aggregate(s.payments),
		TotalDebt:       s.totalDebtLocked(),
		LoadingReport:   s.loadingReport,
		LoadingPayments: s.loadingPayments,
		Link:            urlstate.Canonical(s.state.Query()),
	}
	v.SelectedProvider = s.selectedProviderLocked()
	if s.report != nil {
		r := *s.report
		v.Report = &r
	}
	if debt, ok := s.activeDebtLocked(); ok {
		dv := entities.DebtView{
			Debt:                 debt,
			DueStatus:            string(reporting.DebtDueStatus(debt, now.In(s.loc))),
			ActivePaymentsCount:  reporting.ActivePaymentsCount(debt),
			DeletedPaymentsCount: len(debt.Payments) - reporting.ActivePaymentsCount(debt),
		}
		if debt.DueDate != nil {
			days := reporting.DaysUntilDue(debt, now.In(s.loc))
			dv.DaysUntilDue = &days
		}
		v.ActiveDebt = &dv
	}
	return v
}
