package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"supplier_report/internal/domain/entities"
)

// SelectDebt picks the active debt after a provider's debts load:
//  1. urlDebtID, when it names a loaded debt;
//  2. currentDebtID, when it names a loaded debt;
//  3. the first debt in list order;
//  4. none (0).
func SelectDebt(debts []entities.Debt, urlDebtID, currentDebtID int64) int64 {
	if urlDebtID > 0 && containsDebt(debts, urlDebtID) {
		return urlDebtID
	}
	if currentDebtID > 0 && containsDebt(debts, currentDebtID) {
		return currentDebtID
	}
	if len(debts) > 0 {
		return debts[0].ID
	}
	return 0
}

func containsDebt(debts []entities.Debt, id int64) bool {
	_, ok := FindDebt(debts, id)
	return ok
}

// FindDebt looks a debt up by id; non-positive ids never match.
func FindDebt(debts []entities.Debt, id int64) (entities.Debt, bool) {
	if id <= 0 {
		return entities.Debt{}, false
	}
	for _, d := range debts {
		if d.ID == id {
			return d, true
		}
	}
	return entities.Debt{}, false
}

// TotalRemaining sums RemainingAmount, falling back to the provider's own
// TotalDebt when no debts are loaded.
func TotalRemaining(debts []entities.Debt, provider *entities.Provider) decimal.Decimal {
	if len(debts) == 0 {
		if provider != nil {
			return provider.TotalDebt
		}
		return decimal.Zero
	}
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.RemainingAmount)
	}
	return total
}

// DueDateStatus grades how close a debt is to its due date.
type DueDateStatus string

const (
	DueDateSafe    DueDateStatus = "safe"
	DueDateWarning DueDateStatus = "warning"
	DueDateDanger  DueDateStatus = "danger"
)

// DaysUntilDue counts calendar days from ref's day to the due day; negative
// when overdue, 0 when the debt has no due date.
func DaysUntilDue(debt entities.Debt, ref time.Time) int {
	if debt.DueDate == nil {
		return 0
	}
	loc := ref.Location()
	due := startOfDay(debt.DueDate.In(loc))
	today := startOfDay(ref)
	// Day arithmetic through UTC dates keeps DST transitions out of the count.
	dueUTC := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	todayUTC := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(dueUTC.Sub(todayUTC).Hours() / 24)
}

// DebtDueStatus is danger under 7 days (or overdue), warning up to 30 days.
func DebtDueStatus(debt entities.Debt, ref time.Time) DueDateStatus {
	if debt.DueDate == nil {
		return DueDateSafe
	}
	days := DaysUntilDue(debt, ref)
	switch {
	case days < 7:
		return DueDateDanger
	case days <= 30:
		return DueDateWarning
	default:
		return DueDateSafe
	}
}

// ActivePaymentsCount counts the embedded payments that are not soft-deleted.
func ActivePaymentsCount(debt entities.Debt) int {
	n := 0
	for _, p := range debt.Payments {
		if !p.Deleted && p.DeletedAt == nil {
			n++
		}
	}
	return n
}
