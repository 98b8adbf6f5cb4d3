package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"supplier_report/internal/adapter/http/dto/request"
	"supplier_report/internal/adapter/http/dto/response"
	"supplier_report/internal/logger"
	"supplier_report/internal/usecase"
	"supplier_report/pkg"
)

// CashierKPIHandler serves the cashier close screen.
type CashierKPIHandler struct {
	usecase usecase.ICashierKPIUseCase
	loc     *time.Location
}

func NewCashierKPIHandler(uc usecase.ICashierKPIUseCase, loc *time.Location) *CashierKPIHandler {
	if loc == nil {
		loc = time.Local
	}
	return &CashierKPIHandler{usecase: uc, loc: loc}
}

// GetCashierPayments godoc
// @Summary  Payments registered by a cashier with KPIs over the returned page
// @Tags     cashiers
// @Produce  json
// @Param    cashier_id      path   int     true   "Cashier id"
// @Param    page            query  int     false  "Page"
// @Param    limit           query  int     false  "Page size (max 100)"
// @Param    startDate       query  string  false  "YYYY-MM-DD"
// @Param    endDate         query  string  false  "YYYY-MM-DD"
// @Param    paymentMethod   query  string  false  "ZELLE | TRANSFER | CASH"
// @Param    includeDeleted  query  bool    false  "Include soft-deleted payments"
// @Param    period          query  string  false  "today | week | month | all"
// @Success  200  {object}  response.CashierKPIResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /v1/cashiers/{cashier_id}/payments [get]
func (h *CashierKPIHandler) GetCashierPayments(c *gin.Context) {
	cashierID, err := strconv.ParseInt(c.Param("cashier_id"), 10, 64)
	if err != nil || cashierID <= 0 {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid cashier_id", http.StatusBadRequest).ToHTTPError())
		return
	}

	var params request.CashierPaymentsRequest
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}
	q, err := params.ToQuery(h.loc)
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	report, err := h.usecase.GetCashierKPIs(c.Request.Context(), cashierID, q)
	if err != nil {
		appErr := mapCashierError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.WithContext(c.Request.Context()).Error().Err(err).Int64("cashier_id", cashierID).Msg("cashier payments failed")
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCashierKPIReport(report))
}

func mapCashierError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCashierID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid cashier_id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "startDate must not be after endDate", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
