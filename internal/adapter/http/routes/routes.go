package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "supplier_report/docs"
	"supplier_report/internal/adapter/http/handlers"
	"supplier_report/internal/adapter/persistence/repository"
	"supplier_report/internal/config"
	"supplier_report/internal/infrastructure/database"
	"supplier_report/internal/infrastructure/export"
	"supplier_report/internal/logger"
	"supplier_report/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the use cases the router serves.
type Dependencies struct {
	Sessions usecase.IReportSessionUseCase
	Cashiers usecase.ICashierKPIUseCase
	Provider usecase.IProviderUseCase
	Health   func(ctx context.Context) error
	Location *time.Location
}

// Run will start the server
func Run(ctx context.Context, cfg *config.Config) error {
	ddb, err := database.ConnectDynamoDB(ctx, database.Options{
		Region:   cfg.AWSRegion,
		Endpoint: cfg.DynamoDBEndpoint,
	})
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	gateway := repository.NewReportDynamoGateway(ddb, repository.GatewayConfig{
		SuppliersTable: cfg.SuppliersTable,
		DebtsTable:     cfg.DebtsTable,
		PaymentsTable:  cfg.PaymentsTable,
		Location:       loc,
		ShareBaseURL:   cfg.ShareBaseURL,
	}, export.NewProviderReportXLSX(loc))

	sessions := usecase.NewReportSessionUseCase(gateway, usecase.SessionConfig{
		PageSize:    cfg.ReportPageSize,
		Location:    loc,
		WaitTimeout: cfg.SessionWaitTimeout,
	})
	defer sessions.CloseAll()

	router := NewRouter(Dependencies{
		Sessions: sessions,
		Cashiers: usecase.NewCashierKPIUseCase(gateway, cfg.CashierPageSize, loc),
		Provider: usecase.NewProviderUseCase(gateway),
		Health: func(ctx context.Context) error {
			return database.CheckTables(ctx, ddb, cfg.SuppliersTable, cfg.DebtsTable, cfg.PaymentsTable)
		},
		Location: loc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log := logger.WithComponent("http")
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("starting http server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	log.Info().Msg("http server stopped")
	return nil
}

// NewRouter builds the gin engine with middlewares, swagger and the v1 routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loc := deps.Location
	sessionHandler := handlers.NewReportSessionHandler(deps.Sessions, loc)
	providerHandler := handlers.NewProviderHandler(deps.Provider)
	cashierHandler := handlers.NewCashierKPIHandler(deps.Cashiers, loc)
	healthHandler := handlers.NewHealthHandler(deps.Health)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1, healthHandler)
	addReportRoutes(v1, sessionHandler, providerHandler, cashierHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{"/v1/ping", "/v1/health", "/swagger/*any"},
	}))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c.Request.Context()).Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
