package reporting

import (
	"regexp"
	"strings"
	"time"

	"supplier_report/internal/domain/entities"
)

// DateLayout is the calendar-day layout used in links and query filters.
const DateLayout = "2006-01-02"

var (
	dateOnlyPattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	utcMidnightPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T00:00:00(?:\.0+)?Z$`)
)

// ParseLocalDate reads a backend date value.
//
// "YYYY-MM-DD" and "YYYY-MM-DDT00:00:00Z" both denote a calendar day and are
// returned as midnight in loc, so the day never shifts for locations behind
// UTC. Anything else must be RFC3339 and keeps its instant.
func ParseLocalDate(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if dateOnlyPattern.MatchString(raw) || utcMidnightPattern.MatchString(raw) {
		t, err := time.ParseInLocation(DateLayout, raw[:10], loc)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(loc), true
}

// ParseDay reads a link/filter day. A time suffix ("2024-01-15T10:00") is
// ignored; only the calendar day matters.
func ParseDay(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, 'T'); i >= 0 {
		raw = raw[:i]
	}
	if !dateOnlyPattern.MatchString(raw) {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDay renders t's own calendar fields as YYYY-MM-DD. It never converts
// to UTC first.
func FormatDay(t time.Time) string {
	return t.Format(DateLayout)
}

func startOfDay(t time.Time) time.Time {
	return entities.CalendarDay(t, t.Location())
}
