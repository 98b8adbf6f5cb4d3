package urlstate

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"supplier_report/internal/domain/entities"
	"supplier_report/internal/domain/reporting"
)

// Query parameter names of a report link.
const (
	ParamProviderID = "providerId"
	ParamDebtID     = "debtId"
	ParamPage       = "page"
	ParamFilter     = "filter"
	ParamPeriod     = "period"
	ParamStart      = "start"
	ParamEnd        = "end"
)

// Encode renders the query as link parameters. Fields equal to their
// default are omitted so links stay short and stable.
func Encode(q entities.ReportQuery) url.Values {
	v := url.Values{}
	if q.ProviderID > 0 {
		v.Set(ParamProviderID, strconv.FormatInt(q.ProviderID, 10))
	}
	if q.DebtID > 0 {
		v.Set(ParamDebtID, strconv.FormatInt(q.DebtID, 10))
	}
	if q.Page > entities.DefaultPage {
		v.Set(ParamPage, strconv.Itoa(q.Page))
	}
	if q.DeleteFilter == entities.DeleteFilterDeleted {
		v.Set(ParamFilter, string(entities.DeleteFilterDeleted))
	}
	if p, ok := entities.ParsePeriod(string(q.Period)); ok && p != entities.PeriodAll {
		v.Set(ParamPeriod, string(p))
	}
	if q.DateRange.Start != nil {
		v.Set(ParamStart, reporting.FormatDay(*q.DateRange.Start))
	}
	if q.DateRange.End != nil {
		v.Set(ParamEnd, reporting.FormatDay(*q.DateRange.End))
	}
	return v
}

// Canonical is the sorted, escaped query string of Encode(q).
func Canonical(q entities.ReportQuery) string {
	return Encode(q).Encode()
}

// Decode reads link parameters. It never fails: missing or malformed values
// fall back to their defaults (absent ids, page 1, period all, filter
// active, no dates).
func Decode(v url.Values, loc *time.Location) entities.ReportQuery {
	q := entities.ReportQuery{
		ProviderID:   parseID(v.Get(ParamProviderID)),
		DebtID:       parseID(v.Get(ParamDebtID)),
		Page:         parsePage(v.Get(ParamPage)),
		Period:       entities.PeriodAll,
		DeleteFilter: entities.DeleteFilterActive,
	}
	if p, ok := entities.ParsePeriod(v.Get(ParamPeriod)); ok {
		q.Period = p
	}
	if f, ok := entities.ParseDeleteFilter(v.Get(ParamFilter)); ok {
		q.DeleteFilter = f
	}
	if d, ok := reporting.ParseDay(v.Get(ParamStart), loc); ok {
		q.DateRange.Start = &d
	}
	if d, ok := reporting.ParseDay(v.Get(ParamEnd), loc); ok {
		q.DateRange.End = &d
	}
	return q
}

// DecodeString parses a raw query string ("providerId=1&page=2", with or
// without a leading "?"). Pairs that fail to unescape are skipped; the rest
// of the link still applies.
func DecodeString(raw string, loc *time.Location) entities.ReportQuery {
	v, _ := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(raw), "?"))
	return Decode(v, loc)
}

func parseID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < entities.DefaultPage {
		return entities.DefaultPage
	}
	return page
}
