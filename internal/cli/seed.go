package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"supplier_report/internal/adapter/persistence/repository"
	"supplier_report/internal/logger"
)

func newSeedCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "seed",
		Short:   "Load providers, debts and payments from a JSON fixture file",
		Example: `  reportctl seed --file fixtures.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.WithComponent("seed")
			path, err := cmd.Flags().GetString("file")
			if err != nil {
				return err
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read fixtures: %w", err)
			}
			var data repository.SeedData
			if err := json.Unmarshal(raw, &data); err != nil {
				return fmt.Errorf("parse fixtures %s: %w", path, err)
			}

			ctx := cmd.Context()
			b, err := a.backend(ctx)
			if err != nil {
				return err
			}
			res, err := b.Seed(ctx, data)
			if err != nil {
				return err
			}
			log.Info().Int("written", res.Written).Int("skipped", res.Skipped).Msg("Seed finished")
			fmt.Fprintf(cmd.OutOrStdout(), "written: %d, skipped: %d\n", res.Written, res.Skipped)
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "Fixture file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
