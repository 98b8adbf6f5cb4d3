package entities

import "time"

// ReportSession is one open payment report (the server-side counterpart of a
// browser tab): its current view, the link it shows and the notifications
// raised since the last read.
type ReportSession struct {
	ID            string         `json:"id"`
	View          ReportView     `json:"view"`
	Notifications []Notification `json:"notifications"`
	CanGoBack     bool           `json:"canGoBack"`
	CanGoForward  bool           `json:"canGoForward"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type SessionActionKind string

const (
	ActionChangeProvider     SessionActionKind = "provider"
	ActionChangeDebt         SessionActionKind = "debt"
	ActionChangePage         SessionActionKind = "page"
	ActionChangePageSize     SessionActionKind = "page-size"
	ActionChangeDateRange    SessionActionKind = "date-range"
	ActionChangePeriod       SessionActionKind = "period"
	ActionChangeDeleteFilter SessionActionKind = "filter"
	ActionClearFilters       SessionActionKind = "clear-filters"
	ActionRefresh            SessionActionKind = "refresh"
)

// SessionAction is a user operation on a report session. Only the fields
// relevant to Kind are read.
type SessionAction struct {
	Kind         SessionActionKind
	ID           int64
	Page         int
	DateRange    DateRange
	Period       Period
	DeleteFilter DeleteFilter
}
