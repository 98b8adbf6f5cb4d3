package routes

import (
	"supplier_report/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReportSessions = "/report-sessions"
	PathProviders      = "/providers"
	PathCashiers       = "/cashiers"
)

func addReportRoutes(rg *gin.RouterGroup, sessionHandler *handlers.ReportSessionHandler, providerHandler *handlers.ProviderHandler, cashierHandler *handlers.CashierKPIHandler) {
	sessions := rg.Group(PathReportSessions)
	{
		sessions.POST("", sessionHandler.OpenSession)
		sessions.GET("/:session_id", sessionHandler.GetSession)
		sessions.DELETE("/:session_id", sessionHandler.CloseSession)

		// History.
		sessions.POST("/:session_id/navigate", sessionHandler.Navigate)
		sessions.POST("/:session_id/back", sessionHandler.Back)
		sessions.POST("/:session_id/forward", sessionHandler.Forward)

		// Selection and filters.
		sessions.PUT("/:session_id/provider", sessionHandler.ChangeProvider)
		sessions.PUT("/:session_id/debt", sessionHandler.ChangeDebt)
		sessions.PUT("/:session_id/page", sessionHandler.ChangePage)
		sessions.PUT("/:session_id/page-size", sessionHandler.ChangePageSize)
		sessions.PUT("/:session_id/date-range", sessionHandler.ChangeDateRange)
		sessions.PUT("/:session_id/period", sessionHandler.ChangePeriod)
		sessions.PUT("/:session_id/filter", sessionHandler.ChangeFilter)
		sessions.DELETE("/:session_id/filters", sessionHandler.ClearFilters)
		sessions.POST("/:session_id/refresh", sessionHandler.Refresh)

		sessions.GET("/:session_id/export", sessionHandler.Export)
		sessions.DELETE("/:session_id/payments/:payment_id", sessionHandler.DeletePayment)
		sessions.POST("/:session_id/payments/:payment_id/share", sessionHandler.SharePayment)
		sessions.DELETE("/:session_id/debts/:debt_id", sessionHandler.DeleteDebt)
	}

	rg.GET(PathProviders, providerHandler.ListProviders)
	rg.GET(PathCashiers+"/:cashier_id/payments", cashierHandler.GetCashierPayments)
}

func addPingRoutes(rg *gin.RouterGroup, healthHandler *handlers.HealthHandler) {
	rg.GET("/ping", healthHandler.Ping)
	rg.GET("/health", healthHandler.Health)
}
