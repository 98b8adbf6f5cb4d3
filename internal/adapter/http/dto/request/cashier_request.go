package request

import (
	"errors"
	"time"

	"supplier_report/internal/domain/entities"
)

var ErrInvalidPaymentMethod = errors.New("invalid paymentMethod")

// CashierPaymentsRequest is the query string of the cashier close endpoint.
type CashierPaymentsRequest struct {
	Page           int    `form:"page" binding:"omitempty,min=1"`
	Limit          int    `form:"limit" binding:"omitempty,min=1,max=100"`
	StartDate      string `form:"startDate"`
	EndDate        string `form:"endDate"`
	PaymentMethod  string `form:"paymentMethod"`
	IncludeDeleted bool   `form:"includeDeleted"`
	Period         string `form:"period"`
}

func (r CashierPaymentsRequest) ToQuery(loc *time.Location) (entities.CashierPaymentsQuery, error) {
	q := entities.CashierPaymentsQuery{
		Page:           r.Page,
		Limit:          r.Limit,
		IncludeDeleted: r.IncludeDeleted,
	}
	var err error
	if q.StartDate, err = optionalDay(r.StartDate, loc); err != nil {
		return entities.CashierPaymentsQuery{}, err
	}
	if q.EndDate, err = optionalDay(r.EndDate, loc); err != nil {
		return entities.CashierPaymentsQuery{}, err
	}
	if r.PaymentMethod != "" {
		m, ok := entities.ParsePaymentMethod(r.PaymentMethod)
		if !ok {
			return entities.CashierPaymentsQuery{}, ErrInvalidPaymentMethod
		}
		q.PaymentMethod = &m
	}
	if r.Period != "" {
		p, ok := entities.ParsePeriod(r.Period)
		if !ok {
			return entities.CashierPaymentsQuery{}, ErrInvalidPeriod
		}
		q.Period = p
	}
	return q, nil
}
