package reporting

import (
	"time"

	"supplier_report/internal/domain/entities"
)

// weekWindowDays is the length of the inclusive "week" window, reference day included.
const weekWindowDays = 7

// FilterActiveOrDeleted returns the payments whose soft-delete flag matches
// mode. Any mode other than "deleted" selects the active payments.
func FilterActiveOrDeleted(payments []entities.Payment, mode entities.DeleteFilter) []entities.Payment {
	wantDeleted := mode == entities.DeleteFilterDeleted
	out := make([]entities.Payment, 0, len(payments))
	for _, p := range payments {
		if p.Deleted == wantDeleted {
			out = append(out, p)
		}
	}
	return out
}

// FilterByPeriod keeps the payments whose calendar day (in ref's location)
// falls in the quick period ending at ref. Payments without a date only
// survive PeriodAll.
func FilterByPeriod(payments []entities.Payment, period entities.Period, ref time.Time) []entities.Payment {
	out := make([]entities.Payment, 0, len(payments))
	if period == entities.PeriodAll {
		return append(out, payments...)
	}
	for _, p := range payments {
		if p.PaymentDate == nil {
			continue
		}
		if inPeriod(*p.PaymentDate, period, ref) {
			out = append(out, p)
		}
	}
	return out
}

func inPeriod(t time.Time, period entities.Period, ref time.Time) bool {
	loc := ref.Location()
	day := startOfDay(t.In(loc))
	refDay := startOfDay(ref)

	switch period {
	case entities.PeriodToday:
		return day.Equal(refDay)
	case entities.PeriodWeek:
		from := refDay.AddDate(0, 0, -(weekWindowDays - 1))
		return !day.Before(from) && !day.After(refDay)
	case entities.PeriodMonth:
		return day.Year() == refDay.Year() && day.Month() == refDay.Month()
	default:
		return true
	}
}

// PeriodRange is the explicit date range a quick period selects when it is
// picked in the report.
func PeriodRange(period entities.Period, ref time.Time) entities.DateRange {
	refDay := startOfDay(ref)
	var start, end time.Time

	switch period {
	case entities.PeriodToday:
		start, end = refDay, refDay
	case entities.PeriodWeek:
		start, end = refDay.AddDate(0, 0, -(weekWindowDays-1)), refDay
	case entities.PeriodMonth:
		start = time.Date(refDay.Year(), refDay.Month(), 1, 0, 0, 0, 0, refDay.Location())
		end = start.AddDate(0, 1, -1)
	default:
		return entities.DateRange{}
	}
	return entities.DateRange{Start: &start, End: &end}
}
