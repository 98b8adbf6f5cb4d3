package entities

import (
	"strings"
	"time"
)

// Period is a named quick date-range shortcut.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod accepts the four URL values plus "last7" (dashboard spelling of week).
func ParsePeriod(raw string) (Period, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "today":
		return PeriodToday, true
	case "week", "last7":
		return PeriodWeek, true
	case "month":
		return PeriodMonth, true
	case "all":
		return PeriodAll, true
	}
	return PeriodAll, false
}

// DeleteFilter selects which side of the soft-delete split is displayed.
type DeleteFilter string

const (
	DeleteFilterActive  DeleteFilter = "active"
	DeleteFilterDeleted DeleteFilter = "deleted"
)

func ParseDeleteFilter(raw string) (DeleteFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "active":
		return DeleteFilterActive, true
	case "deleted":
		return DeleteFilterDeleted, true
	}
	return DeleteFilterActive, false
}

// DateRange is an optional pair of calendar days (midnight in the report location).
type DateRange struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

func (r DateRange) Equal(o DateRange) bool {
	return sameDay(r.Start, o.Start) && sameDay(r.End, o.End)
}

// Contains reports whether the calendar day of t lies within the range.
// Open ends are unbounded.
func (r DateRange) Contains(t time.Time, loc *time.Location) bool {
	day := CalendarDay(t.In(loc), loc)
	if r.Start != nil && day.Before(CalendarDay(*r.Start, loc)) {
		return false
	}
	if r.End != nil && day.After(CalendarDay(*r.End, loc)) {
		return false
	}
	return true
}

func (r DateRange) normalize(loc *time.Location) DateRange {
	out := DateRange{}
	if r.Start != nil {
		d := CalendarDay(*r.Start, loc)
		out.Start = &d
	}
	if r.End != nil {
		d := CalendarDay(*r.End, loc)
		out.End = &d
	}
	return out
}

// CalendarDay keeps the calendar fields of t (as seen in t's own location)
// and returns midnight of that day in loc.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// ReportState is the canonical in-memory selection of the payment report.
//
// Invariants:
//   - Page >= 1, PageSize > 0.
//   - ProviderID/DebtID are positive when set; 0 means "none".
//   - DebtID may be stale while a report is loading; it is reconciled
//     against the loaded debts before it is trusted.
type ReportState struct {
	ProviderID   int64        `json:"providerId"`
	DebtID       int64        `json:"debtId"`
	Page         int          `json:"page"`
	PageSize     int          `json:"pageSize"`
	Period       Period       `json:"period"`
	DateRange    DateRange    `json:"dateRange"`
	DeleteFilter DeleteFilter `json:"deleteFilter"`
}

func DefaultReportState(pageSize int) ReportState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return ReportState{
		Page:         DefaultPage,
		PageSize:     pageSize,
		Period:       PeriodAll,
		DeleteFilter: DeleteFilterActive,
	}
}

// Query projects the state onto the fields carried by the report link.
func (s ReportState) Query() ReportQuery {
	return ReportQuery{
		ProviderID:   s.ProviderID,
		DebtID:       s.DebtID,
		Page:         s.Page,
		Period:       s.Period,
		DateRange:    s.DateRange,
		DeleteFilter: s.DeleteFilter,
	}
}

// ReportQuery is the link-carried (bookmarkable) part of ReportState.
type ReportQuery struct {
	ProviderID   int64        `json:"providerId,omitempty"`
	DebtID       int64        `json:"debtId,omitempty"`
	Page         int          `json:"page"`
	Period       Period       `json:"period"`
	DateRange    DateRange    `json:"dateRange"`
	DeleteFilter DeleteFilter `json:"deleteFilter"`
}

// Normalize applies the defaulting rules of the link format: non-positive
// ids become absent, page is at least 1, unknown enums fall back to their
// defaults and dates are truncated to calendar days in loc.
func (q ReportQuery) Normalize(loc *time.Location) ReportQuery {
	out := q
	if out.ProviderID < 0 {
		out.ProviderID = 0
	}
	if out.DebtID < 0 {
		out.DebtID = 0
	}
	if out.Page < 1 {
		out.Page = DefaultPage
	}
	if p, ok := ParsePeriod(string(out.Period)); ok {
		out.Period = p
	} else {
		out.Period = PeriodAll
	}
	if f, ok := ParseDeleteFilter(string(out.DeleteFilter)); ok {
		out.DeleteFilter = f
	} else {
		out.DeleteFilter = DeleteFilterActive
	}
	out.DateRange = out.DateRange.normalize(loc)
	return out
}

func (q ReportQuery) Equal(o ReportQuery) bool {
	return q.ProviderID == o.ProviderID &&
		q.DebtID == o.DebtID &&
		q.Page == o.Page &&
		q.Period == o.Period &&
		q.DeleteFilter == o.DeleteFilter &&
		q.DateRange.Equal(o.DateRange)
}
