package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"supplier_report/internal/adapter/persistence/repository"
	"supplier_report/internal/config"
	"supplier_report/internal/infrastructure/database"
	"supplier_report/internal/infrastructure/export"
	"supplier_report/internal/logger"
	"supplier_report/internal/usecase/interfaces"
)

var version = "1.0.0"

var errNoConfig = errors.New("configuration not loaded; check the environment")

// backend is what the data commands need from storage.
type backend interface {
	interfaces.IReportGateway
	Seed(ctx context.Context, data repository.SeedData) (repository.SeedResult, error)
}

type app struct {
	cfg     *config.Config
	loc     *time.Location
	out     io.Writer
	backend func(ctx context.Context) (backend, error)
}

// Execute runs reportctl and returns the process exit code.
func Execute(cfg *config.Config) int {
	log := logger.WithComponent("cmd")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(cfg, os.Stdout)
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func newApp(cfg *config.Config, out io.Writer) *app {
	a := &app{cfg: cfg, loc: time.Local, out: out}
	if cfg != nil {
		if loc, err := cfg.Location(); err == nil {
			a.loc = loc
		}
	}
	a.backend = a.dynamoBackend
	return a
}

func (a *app) dynamoBackend(ctx context.Context) (backend, error) {
	if a.cfg == nil {
		return nil, errNoConfig
	}
	ddb, err := database.ConnectDynamoDB(ctx, database.Options{
		Region:   a.cfg.AWSRegion,
		Endpoint: a.cfg.DynamoDBEndpoint,
	})
	if err != nil {
		return nil, err
	}
	return repository.NewReportDynamoGateway(ddb, repository.GatewayConfig{
		SuppliersTable: a.cfg.SuppliersTable,
		DebtsTable:     a.cfg.DebtsTable,
		PaymentsTable:  a.cfg.PaymentsTable,
		Location:       a.loc,
		ShareBaseURL:   a.cfg.ShareBaseURL,
	}, export.NewProviderReportXLSX(a.loc)), nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "reportctl",
		Short: "Supplier payment report tooling",
		Long: `reportctl works with the supplier payment report outside the HTTP API.

It encodes and decodes report links, prints cashier close KPIs, exports a
provider report to xlsx and loads fixture data into DynamoDB.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.out)
	root.AddCommand(newLinkCmd(a), newKPICmd(a), newExportCmd(a), newSeedCmd(a))
	return root
}
