package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "supplier_report/docs"
	"supplier_report/internal/adapter/http/routes"
	"supplier_report/internal/config"
	"supplier_report/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Supplier Payment Report API
// @version         1.0
// @description     Payment report sessions, provider exports and cashier close KPIs backed by DynamoDB.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := logger.WithComponent("main")
	l.Info().Msg("starting supplier report api")
	if err := routes.Run(ctx, cfg); err != nil {
		l.Fatal().Err(err).Msg("api stopped")
	}
}
