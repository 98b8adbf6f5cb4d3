package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"supplier_report/internal/domain/entities"
)

func money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func reportWithDebts(providerID int64, debtIDs ...int64) entities.ProviderReport {
	r := entities.ProviderReport{Provider: entities.Provider{ID: providerID, CompanyName: "Acme"}}
	for _, id := range debtIDs {
		r.Debts = append(r.Debts, entities.Debt{
			ID:              id,
			SupplierID:      providerID,
			Status:          entities.DebtStatusPending,
			RemainingAmount: money("100"),
		})
	}
	return r
}

// loadedStore returns a store with provider 1 loaded and debt 1 active.
func loadedStore(t *testing.T, debtIDs ...int64) *ReportStateStore {
	t.Helper()
	s := NewReportStateStore(10, time.UTC)
	s.ChangeProvider(1)
	s.ReportLoaded(reportWithDebts(1, debtIDs...))
	return s
}

func TestReportStateStore_ChangeProvider(t *testing.T) {
	t.Run("select provider", func(t *testing.T) {
		s := NewReportStateStore(10, time.UTC)
		eff := s.ChangeProvider(3)
		if eff != (Effects{LoadReport: true, SyncURL: true}) {
			t.Fatalf("unexpected effects %+v", eff)
		}
		st := s.State()
		if st.ProviderID != 3 || st.DebtID != 0 || st.Page != 1 {
			t.Fatalf("unexpected state %+v", st)
		}
	})

	t.Run("switch resets debt and page", func(t *testing.T) {
		s := loadedStore(t, 1, 2)
		s.ChangeDebt(2)
		s.ChangePage(3)
		eff := s.ChangeProvider(5)
		if !eff.LoadReport {
			t.Fatalf("expected report load, got %+v", eff)
		}
		st := s.State()
		if st.DebtID != 0 || st.Page != 1 {
			t.Fatalf("expected reset debt/page, got %+v", st)
		}
		if _, ok := s.ActiveDebt(); ok {
			t.Fatalf("expected no active debt after provider switch")
		}
	})

	t.Run("same provider while loaded is a no-op", func(t *testing.T) {
		s := loadedStore(t, 1)
		if eff := s.ChangeProvider(1); !eff.None() {
			t.Fatalf("expected no effects, got %+v", eff)
		}
	})

	t.Run("clear provider", func(t *testing.T) {
		s := loadedStore(t, 1)
		eff := s.ChangeProvider(0)
		if eff != (Effects{SyncURL: true}) {
			t.Fatalf("unexpected effects %+v", eff)
		}
		if v := s.View(time.Now()); v.Report != nil || v.ActiveDebt != nil {
			t.Fatalf("expected cleared report, got %+v", v)
		}
	})
}

func TestReportStateStore_OneShotDebtPreference(t *testing.T) {
	s := NewReportStateStore(10, time.UTC)
	eff := s.ApplyQuery(entities.ReportQuery{ProviderID: 1, DebtID: 2, Page: 1})
	if eff != (Effects{LoadReport: true}) {
		t.Fatalf("expected report load only, got %+v", eff)
	}

	r := entities.ProviderReport{
		Provider: entities.Provider{ID: 1},
		Debts: []entities.Debt{
			{ID: 1, Status: entities.DebtStatusPending},
			{ID: 2, Status: entities.DebtStatusPaid},
		},
	}
	eff = s.ReportLoaded(r)
	if s.State().DebtID != 2 {
		t.Fatalf("expected debt 2 from link, got %d", s.State().DebtID)
	}
	if !eff.LoadPayments {
		t.Fatalf("expected payments load, got %+v", eff)
	}

	s.ReportLoaded(r)
	if s.State().DebtID != 2 {
		t.Fatalf("expected debt 2 kept on reload, got %d", s.State().DebtID)
	}
}

func TestReportStateStore_StaleLinkDebtFallsBack(t *testing.T) {
	s := NewReportStateStore(10, time.UTC)
	s.ApplyQuery(entities.ReportQuery{ProviderID: 1, DebtID: 99, Page: 1})
	s.ReportLoaded(reportWithDebts(1, 4, 5))
	if s.State().DebtID != 4 {
		t.Fatalf("expected first debt 4, got %d", s.State().DebtID)
	}

	t.Run("empty report clears debt", func(t *testing.T) {
		eff := s.ReportLoaded(reportWithDebts(1))
		if s.State().DebtID != 0 || eff.LoadPayments {
			t.Fatalf("expected no debt and no payments load, state=%+v eff=%+v", s.State(), eff)
		}
	})
}

func TestReportStateStore_ChangePage(t *testing.T) {
	s := loadedStore(t, 1)

	eff := s.ChangePage(2)
	if eff != (Effects{LoadPayments: true, SyncURL: true}) {
		t.Fatalf("unexpected effects %+v", eff)
	}
	if eff := s.ChangePage(2); !eff.None() {
		t.Fatalf("expected no-op for same page, got %+v", eff)
	}
	if eff := s.ChangePage(-4); s.State().Page != 1 || !eff.LoadPayments {
		t.Fatalf("expected clamp to page 1, state=%+v eff=%+v", s.State(), eff)
	}

	t.Run("without debt only syncs", func(t *testing.T) {
		s := NewReportStateStore(10, time.UTC)
		eff := s.ChangePage(3)
		if eff != (Effects{SyncURL: true}) {
			t.Fatalf("unexpected effects %+v", eff)
		}
	})

	t.Run("page size resets page", func(t *testing.T) {
		s := loadedStore(t, 1)
		s.ChangePage(4)
		eff := s.ChangePageSize(25)
		if s.State().Page != 1 || s.State().PageSize != 25 || !eff.LoadPayments {
			t.Fatalf("unexpected state=%+v eff=%+v", s.State(), eff)
		}
	})
}

func TestReportStateStore_ChangeDebt(t *testing.T) {
	s := loadedStore(t, 1, 2)
	s.PaymentsLoaded(entities.DebtPaymentsPage{Payments: []entities.Payment{{ID: 10, DebtID: 1}}})
	s.ChangePage(2)

	eff := s.ChangeDebt(2)
	if eff != (Effects{LoadPayments: true, SyncURL: true}) {
		t.Fatalf("unexpected effects %+v", eff)
	}
	if s.State().Page != 1 {
		t.Fatalf("expected page reset, got %d", s.State().Page)
	}
	if len(s.DisplayedPayments()) != 0 {
		t.Fatalf("expected payments of previous debt cleared")
	}
	if eff := s.ChangeDebt(2); !eff.None() {
		t.Fatalf("expected no-op for same debt, got %+v", eff)
	}
}

func TestReportStateStore_DeleteFilter(t *testing.T) {
	s := loadedStore(t, 1)
	s.PaymentsLoaded(entities.DebtPaymentsPage{Payments: []entities.Payment{
		{ID: 1, Amount: money("100")},
		{ID: 2, Amount: money("50"), Deleted: true},
	}})

	if got := s.DisplayedPayments(); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected active payment only, got %+v", got)
	}

	eff := s.ChangeDeleteFilter(entities.DeleteFilterDeleted)
	if eff != (Effects{SyncURL: true}) {
		t.Fatalf("filter change must not reload, got %+v", eff)
	}
	if got := s.DisplayedPayments(); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected deleted payment only, got %+v", got)
	}
	if len(s.DeletedPayments()) != 1 {
		t.Fatalf("expected one deleted payment")
	}

	k := s.KPIs()
	if k.TotalPayments != 1 || k.ByStatus.Deleted != 1 {
		t.Fatalf("unexpected kpis %+v", k)
	}
}

func TestReportStateStore_DateFilters(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)

	t.Run("period sets range and reloads report", func(t *testing.T) {
		s := loadedStore(t, 1)
		s.ChangePage(3)
		eff := s.ChangePeriod(entities.PeriodToday, now)
		if eff != (Effects{LoadReport: true, SyncURL: true}) {
			t.Fatalf("unexpected effects %+v", eff)
		}
		st := s.State()
		if st.Period != entities.PeriodToday || st.Page != 1 {
			t.Fatalf("unexpected state %+v", st)
		}
		if st.DateRange.Start == nil || st.DateRange.Start.Day() != 15 || st.DateRange.End.Day() != 15 {
			t.Fatalf("unexpected range %+v", st.DateRange)
		}
		if eff := s.ChangePeriod(entities.PeriodToday, now); !eff.None() {
			t.Fatalf("expected no-op for same period, got %+v", eff)
		}
	})

	t.Run("explicit range without provider only syncs", func(t *testing.T) {
		s := NewReportStateStore(10, time.UTC)
		start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
		eff := s.ChangeDateRange(entities.DateRange{Start: &start})
		if eff != (Effects{SyncURL: true}) {
			t.Fatalf("unexpected effects %+v", eff)
		}
		if got := s.State().DateRange.Start; got == nil || got.Hour() != 0 {
			t.Fatalf("expected start truncated to the day, got %v", got)
		}
	})

	t.Run("clear filters", func(t *testing.T) {
		s := loadedStore(t, 1)
		s.ChangePeriod(entities.PeriodMonth, now)
		s.ChangeDeleteFilter(entities.DeleteFilterDeleted)
		eff := s.ClearFilters()
		if eff != (Effects{LoadReport: true, SyncURL: true}) {
			t.Fatalf("unexpected effects %+v", eff)
		}
		st := s.State()
		if !st.DateRange.IsZero() || st.Period != entities.PeriodAll || st.DeleteFilter != entities.DeleteFilterActive {
			t.Fatalf("expected filters cleared, got %+v", st)
		}
		if eff := s.ClearFilters(); !eff.None() {
			t.Fatalf("expected no-op on second clear, got %+v", eff)
		}
	})
}

func TestReportStateStore_ApplyQuery(t *testing.T) {
	t.Run("no provider leaves session untouched", func(t *testing.T) {
		s := loadedStore(t, 1)
		s.ChangePage(2)
		eff := s.ApplyQuery(entities.ReportQuery{Page: 1})
		if !eff.None() || s.State().ProviderID != 1 || s.State().Page != 2 {
			t.Fatalf("expected untouched session, state=%+v eff=%+v", s.State(), eff)
		}
	})

	t.Run("same provider page change reloads payments only", func(t *testing.T) {
		s := loadedStore(t, 1, 2)
		eff := s.ApplyQuery(entities.ReportQuery{ProviderID: 1, DebtID: 1, Page: 2})
		if eff != (Effects{LoadPayments: true}) {
			t.Fatalf("unexpected effects %+v", eff)
		}
	})

	t.Run("same provider debt change", func(t *testing.T) {
		s := loadedStore(t, 1, 2)
		eff := s.ApplyQuery(entities.ReportQuery{ProviderID: 1, DebtID: 2, Page: 1})
		if eff != (Effects{LoadPayments: true}) || s.State().DebtID != 2 {
			t.Fatalf("unexpected state=%+v eff=%+v", s.State(), eff)
		}
	})

	t.Run("same provider stale debt keeps current and rewrites link", func(t *testing.T) {
		s := loadedStore(t, 1, 2)
		eff := s.ApplyQuery(entities.ReportQuery{ProviderID: 1, DebtID: 77, Page: 1})
		if eff != (Effects{SyncURL: true}) || s.State().DebtID != 1 {
			t.Fatalf("unexpected state=%+v eff=%+v", s.State(), eff)
		}
	})

	t.Run("identical query is a no-op", func(t *testing.T) {
		s := loadedStore(t, 1)
		if eff := s.ApplyQuery(s.State().Query()); !eff.None() {
			t.Fatalf("expected no effects, got %+v", eff)
		}
	})

	t.Run("different provider loads report", func(t *testing.T) {
		s := loadedStore(t, 1)
		eff := s.ApplyQuery(entities.ReportQuery{ProviderID: 2, DebtID: 8, Page: 3})
		if eff != (Effects{LoadReport: true}) {
			t.Fatalf("unexpected effects %+v", eff)
		}
		st := s.State()
		if st.ProviderID != 2 || st.DebtID != 0 || st.Page != 3 {
			t.Fatalf("unexpected state %+v", st)
		}
	})
}

func TestReportStateStore_Subscribe(t *testing.T) {
	s := NewReportStateStore(10, time.UTC)
	var seen []entities.ReportState
	cancel := s.Subscribe(func(st entities.ReportState) { seen = append(seen, st) })

	s.ChangePage(2)
	s.ChangePage(2)
	if len(seen) != 1 || seen[0].Page != 2 {
		t.Fatalf("expected one notification for page 2, got %+v", seen)
	}

	cancel()
	s.ChangePage(3)
	if len(seen) != 1 {
		t.Fatalf("expected no notification after cancel, got %d", len(seen))
	}
}

func TestReportStateStore_TotalsAndView(t *testing.T) {
	s := NewReportStateStore(10, time.UTC)
	s.ProvidersLoaded([]entities.Provider{{ID: 1, CompanyName: "Acme", TotalDebt: money("750")}})
	s.ChangeProvider(1)

	if got := s.TotalDebtAcrossDebts(); !got.Equal(money("750")) {
		t.Fatalf("expected provider total fallback 750, got %s", got)
	}
	if p, ok := s.SelectedProvider(); !ok || p.CompanyName != "Acme" {
		t.Fatalf("expected selected provider from list, got %+v", p)
	}

	due := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	r := reportWithDebts(1, 1, 2)
	r.Debts[0].DueDate = &due
	s.ReportLoaded(r)

	if got := s.TotalDebtAcrossDebts(); !got.Equal(money("200")) {
		t.Fatalf("expected sum of remaining 200, got %s", got)
	}

	v := s.View(time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))
	if v.ActiveDebt == nil || v.ActiveDebt.Debt.ID != 1 {
		t.Fatalf("expected active debt 1, got %+v", v.ActiveDebt)
	}
	if v.ActiveDebt.DueStatus != "danger" || v.ActiveDebt.DaysUntilDue == nil || *v.ActiveDebt.DaysUntilDue != 5 {
		t.Fatalf("unexpected due indicators %+v", v.ActiveDebt)
	}
	if v.Link != "debtId=1&providerId=1" {
		t.Fatalf("unexpected link %q", v.Link)
	}
}

func TestReportStateStore_ReplacePayment(t *testing.T) {
	s := loadedStore(t, 1)
	s.PaymentsLoaded(entities.DebtPaymentsPage{Payments: []entities.Payment{{ID: 5}}})

	if !s.ReplacePayment(entities.Payment{ID: 5, Shared: true}) {
		t.Fatalf("expected replacement")
	}
	if p, _ := s.FindPayment(5); !p.Shared {
		t.Fatalf("expected shared payment")
	}
	if s.ReplacePayment(entities.Payment{ID: 6}) {
		t.Fatalf("expected no replacement for unknown payment")
	}
}
