package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"supplier_report/internal/logger"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		providerID int64
		start, end string
		out        string
	)
	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Write a provider report workbook",
		Example: `  reportctl export --provider 3 --start 2024-01-01 --end 2024-01-31 --out ./reports`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.WithComponent("export")
			startDay, err := flagDay("start", start, a)
			if err != nil {
				return err
			}
			endDay, err := flagDay("end", end, a)
			if err != nil {
				return err
			}
			if providerID <= 0 {
				return fmt.Errorf("--provider must be a positive id")
			}

			ctx := cmd.Context()
			b, err := a.backend(ctx)
			if err != nil {
				return err
			}
			file, err := b.ExportProviderReport(ctx, providerID, startDay, endDay)
			if err != nil {
				return err
			}

			path := out
			if info, statErr := os.Stat(out); statErr == nil && info.IsDir() {
				path = filepath.Join(out, file.FileName)
			}
			if err := os.WriteFile(path, file.Content, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			log.Info().Int64("provider_id", providerID).Str("path", path).Int("bytes", len(file.Content)).Msg("Report exported")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	f := cmd.Flags()
	f.Int64Var(&providerID, "provider", 0, "Provider id")
	f.StringVar(&start, "start", "", "Start day (YYYY-MM-DD)")
	f.StringVar(&end, "end", "", "End day (YYYY-MM-DD)")
	f.StringVarP(&out, "out", "o", ".", "Output file or directory")
	_ = cmd.MarkFlagRequired("provider")
	return cmd
}
