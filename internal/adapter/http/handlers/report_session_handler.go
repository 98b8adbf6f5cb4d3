package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"supplier_report/internal/adapter/http/dto/request"
	"supplier_report/internal/adapter/http/dto/response"
	"supplier_report/internal/adapter/persistence/repository"
	"supplier_report/internal/domain/entities"
	"supplier_report/internal/logger"
	"supplier_report/internal/usecase"
	"supplier_report/internal/usecase/interfaces"
	"supplier_report/pkg"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// ReportSessionHandler exposes report sessions: one server-side payment
// report whose state round-trips through a shareable link.
type ReportSessionHandler struct {
	usecase usecase.IReportSessionUseCase
	loc     *time.Location
}

func NewReportSessionHandler(uc usecase.IReportSessionUseCase, loc *time.Location) *ReportSessionHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ReportSessionHandler{usecase: uc, loc: loc}
}

// OpenSession godoc
// @Summary      Open a report session
// @Description  The request query string is the initial report link (providerId, debtId, page, period, start, end, filter).
// @Tags         report-sessions
// @Produce      json
// @Param        providerId  query  int     false  "Provider id"
// @Param        debtId      query  int     false  "Debt id"
// @Param        page        query  int     false  "Payments page"
// @Param        period      query  string  false  "today | week | month | all"
// @Param        start       query  string  false  "YYYY-MM-DD"
// @Param        end         query  string  false  "YYYY-MM-DD"
// @Param        filter      query  string  false  "active | deleted"
// @Success      201  {object}  response.ReportSessionResponse
// @Router       /v1/report-sessions [post]
func (h *ReportSessionHandler) OpenSession(c *gin.Context) {
	s, err := h.usecase.Open(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromReportSession(s))
}

// GetSession godoc
// @Summary  Current view of a report session
// @Tags     report-sessions
// @Produce  json
// @Param    session_id  path  string  true  "Session id"
// @Success  200  {object}  response.ReportSessionResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /v1/report-sessions/{session_id} [get]
func (h *ReportSessionHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	h.respond(c, s, err)
}

// Navigate pushes a report link onto the session history.
func (h *ReportSessionHandler) Navigate(c *gin.Context) {
	var payload request.NavigateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	s, err := h.usecase.Navigate(c.Request.Context(), c.Param("session_id"), payload.Query())
	h.respond(c, s, err)
}

func (h *ReportSessionHandler) Back(c *gin.Context) {
	s, err := h.usecase.Back(c.Request.Context(), c.Param("session_id"))
	h.respond(c, s, err)
}

func (h *ReportSessionHandler) Forward(c *gin.Context) {
	s, err := h.usecase.Forward(c.Request.Context(), c.Param("session_id"))
	h.respond(c, s, err)
}

func (h *ReportSessionHandler) ChangeProvider(c *gin.Context) {
	var payload request.SelectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	h.apply(c, entities.SessionAction{Kind: entities.ActionChangeProvider, ID: payload.Value()})
}

func (h *ReportSessionHandler) ChangeDebt(c *gin.Context) {
	var payload request.SelectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	h.apply(c, entities.SessionAction{Kind: entities.ActionChangeDebt, ID: payload.Value()})
}

func (h *ReportSessionHandler) ChangePage(c *gin.Context) {
	var payload request.PageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	h.apply(c, entities.SessionAction{Kind: entities.ActionChangePage, Page: payload.Page})
}

func (h *ReportSessionHandler) ChangePageSize(c *gin.Context) {
	var payload request.PageSizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	h.apply(c, entities.SessionAction{Kind: entities.ActionChangePageSize, Page: payload.PageSize})
}

func (h *ReportSessionHandler) ChangeDateRange(c *gin.Context) {
	var payload request.DateRangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	r, err := payload.ToDateRange(h.loc)
	if err != nil {
		h.badRequest(c, "INVALID_DATE_RANGE", err)
		return
	}
	h.apply(c, entities.SessionAction{Kind: entities.ActionChangeDateRange, DateRange: r})
}

func (h *ReportSessionHandler) ChangePeriod(c *gin.Context) {
	var payload request.PeriodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	p, err := payload.ToPeriod()
	if err != nil {
		h.badRequest(c, "INVALID_PERIOD", err)
		return
	}
	h.apply(c, entities.SessionAction{Kind: entities.ActionChangePeriod, Period: p})
}

func (h *ReportSessionHandler) ChangeFilter(c *gin.Context) {
	var payload request.FilterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	f, err := payload.ToDeleteFilter()
	if err != nil {
		h.badRequest(c, "INVALID_FILTER", err)
		return
	}
	h.apply(c, entities.SessionAction{Kind: entities.ActionChangeDeleteFilter, DeleteFilter: f})
}

func (h *ReportSessionHandler) ClearFilters(c *gin.Context) {
	h.apply(c, entities.SessionAction{Kind: entities.ActionClearFilters})
}

func (h *ReportSessionHandler) Refresh(c *gin.Context) {
	h.apply(c, entities.SessionAction{Kind: entities.ActionRefresh})
}

// Export godoc
// @Summary   Export the selected provider report as xlsx
// @Tags      report-sessions
// @Produce   application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param     session_id  path  string  true  "Session id"
// @Success   200
// @Failure   409  {object}  pkg.HTTPError
// @Router    /v1/report-sessions/{session_id}/export [get]
func (h *ReportSessionHandler) Export(c *gin.Context) {
	file, err := h.usecase.Export(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.FileName+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func (h *ReportSessionHandler) DeletePayment(c *gin.Context) {
	paymentID, ok := h.pathID(c, "payment_id")
	if !ok {
		return
	}
	var payload request.DeletePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.badRequest(c, "DELETE_REASON_REQUIRED", err)
		return
	}
	s, err := h.usecase.DeletePayment(c.Request.Context(), c.Param("session_id"), paymentID, payload.Reason)
	h.respond(c, s, err)
}

func (h *ReportSessionHandler) SharePayment(c *gin.Context) {
	paymentID, ok := h.pathID(c, "payment_id")
	if !ok {
		return
	}
	shared, err := h.usecase.SharePayment(c.Request.Context(), c.Param("session_id"), paymentID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSharedPayment(shared))
}

func (h *ReportSessionHandler) DeleteDebt(c *gin.Context) {
	debtID, ok := h.pathID(c, "debt_id")
	if !ok {
		return
	}
	if err := h.usecase.DeleteDebt(c.Request.Context(), c.Param("session_id"), debtID); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReportSessionHandler) CloseSession(c *gin.Context) {
	if err := h.usecase.Close(c.Request.Context(), c.Param("session_id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReportSessionHandler) apply(c *gin.Context, action entities.SessionAction) {
	s, err := h.usecase.Apply(c.Request.Context(), c.Param("session_id"), action)
	h.respond(c, s, err)
}

func (h *ReportSessionHandler) respond(c *gin.Context, s entities.ReportSession, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReportSession(s))
}

func (h *ReportSessionHandler) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid "+name, http.StatusBadRequest).ToHTTPError())
		return 0, false
	}
	return id, true
}

func (h *ReportSessionHandler) badRequest(c *gin.Context, code string, err error) {
	appErr := pkg.NewDomainError(code, err.Error(), err, http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func (h *ReportSessionHandler) fail(c *gin.Context, err error) {
	appErr := mapReportError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).Error().Err(err).Str("session_id", c.Param("session_id")).Msg("report session request failed")
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidProviderID),
		errors.Is(err, usecase.ErrInvalidDebtID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrUnknownAction):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeleteReasonRequired):
		return pkg.NewDomainErrorSimple("DELETE_REASON_REQUIRED", "A reason is required to delete a payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Report session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoHistoryEntry):
		return pkg.NewDomainErrorSimple("NO_HISTORY_ENTRY", "No history entry in that direction", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoProviderSelected):
		return pkg.NewDomainErrorSimple("NO_PROVIDER_SELECTED", "Select a provider first", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownDebt):
		return pkg.NewDomainErrorSimple("DEBT_NOT_IN_REPORT", "Debt is not part of the loaded report", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotLoaded):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_LOADED", "Payment is not on the loaded page", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAlreadyDeleted), errors.Is(err, repository.ErrPaymentAlreadyDeleted):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_DELETED", "Payment already deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDeletedNoShare), errors.Is(err, repository.ErrPaymentDeleted):
		return pkg.NewDomainErrorSimple("PAYMENT_DELETED", "Deleted payments cannot be shared", http.StatusConflict)
	case errors.Is(err, repository.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "The debt changed, reload and try again", http.StatusConflict)
	case errors.Is(err, repository.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Provider not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrPaymentNotFound), errors.Is(err, repository.ErrDebtNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrDebtDeletionNotImplemented):
		return pkg.NewDomainErrorSimple("NOT_IMPLEMENTED", "Debt deletion is not implemented", http.StatusNotImplemented)
	case errors.Is(err, repository.ErrMalformedItem):
		return pkg.NewDomainError("MALFORMED_DATA", "Stored report data is malformed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
