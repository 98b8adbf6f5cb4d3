package request

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"supplier_report/internal/domain/entities"
	"supplier_report/internal/domain/reporting"
)

var (
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidPeriod   = errors.New("invalid period")
	ErrInvalidFilter   = errors.New("invalid delete filter")
	ErrInvalidDayRange = errors.New("start must not be after end")
)

// NavigateRequest carries a report link: a bare query ("providerId=1&page=2"),
// a query with a leading "?" or a full URL.
type NavigateRequest struct {
	Link string `json:"link"`
}

// Query never fails: pairs that do not unescape are dropped and the link
// codec defaults whatever is missing.
func (r NavigateRequest) Query() url.Values {
	raw := strings.TrimSpace(r.Link)
	if i := strings.Index(raw, "?"); i >= 0 {
		raw = raw[i+1:]
	} else if strings.Contains(raw, "://") {
		raw = ""
	}
	v, _ := url.ParseQuery(raw)
	return v
}

// SelectRequest selects a provider or debt. A null or zero id clears it.
type SelectRequest struct {
	ID *int64 `json:"id"`
}

func (r SelectRequest) Value() int64 {
	if r.ID == nil {
		return 0
	}
	return *r.ID
}

type PageRequest struct {
	Page int `json:"page" binding:"required,min=1"`
}

type PageSizeRequest struct {
	PageSize int `json:"pageSize" binding:"required,min=1,max=100"`
}

// DateRangeRequest holds optional calendar days; empty strings clear a bound.
type DateRangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r DateRangeRequest) ToDateRange(loc *time.Location) (entities.DateRange, error) {
	start, err := optionalDay(r.Start, loc)
	if err != nil {
		return entities.DateRange{}, err
	}
	end, err := optionalDay(r.End, loc)
	if err != nil {
		return entities.DateRange{}, err
	}
	if start != nil && end != nil && start.After(*end) {
		return entities.DateRange{}, ErrInvalidDayRange
	}
	return entities.DateRange{Start: start, End: end}, nil
}

type PeriodRequest struct {
	Period string `json:"period" binding:"required"`
}

func (r PeriodRequest) ToPeriod() (entities.Period, error) {
	p, ok := entities.ParsePeriod(r.Period)
	if !ok {
		return "", ErrInvalidPeriod
	}
	return p, nil
}

type FilterRequest struct {
	Filter string `json:"filter" binding:"required"`
}

func (r FilterRequest) ToDeleteFilter() (entities.DeleteFilter, error) {
	f, ok := entities.ParseDeleteFilter(r.Filter)
	if !ok {
		return "", ErrInvalidFilter
	}
	return f, nil
}

type DeletePaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func optionalDay(raw string, loc *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, ok := reporting.ParseDay(raw, loc)
	if !ok {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
