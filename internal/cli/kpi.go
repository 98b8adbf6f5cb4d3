package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"supplier_report/internal/domain/entities"
	"supplier_report/internal/usecase"
)

func newKPICmd(a *app) *cobra.Command {
	var (
		cashierID      int64
		page, limit    int
		start, end     string
		method, period string
		includeDeleted bool
	)
	cmd := &cobra.Command{
		Use:     "kpi",
		Short:   "Print the cashier close KPIs as JSON",
		Example: `  reportctl kpi --cashier 7 --start 2024-03-01 --end 2024-03-31 --method zelle`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := entities.CashierPaymentsQuery{Page: page, Limit: limit, IncludeDeleted: includeDeleted}
			var err error
			if q.StartDate, err = flagDay("start", start, a); err != nil {
				return err
			}
			if q.EndDate, err = flagDay("end", end, a); err != nil {
				return err
			}
			if method != "" {
				m, ok := entities.ParsePaymentMethod(method)
				if !ok {
					return fmt.Errorf("invalid --method %q", method)
				}
				q.PaymentMethod = &m
			}
			if period != "" {
				p, ok := entities.ParsePeriod(period)
				if !ok {
					return fmt.Errorf("invalid --period %q", period)
				}
				q.Period = p
			}

			ctx := cmd.Context()
			b, err := a.backend(ctx)
			if err != nil {
				return err
			}
			pageSize := 0
			if a.cfg != nil {
				pageSize = a.cfg.CashierPageSize
			}
			report, err := usecase.NewCashierKPIUseCase(b, pageSize, a.loc).GetCashierKPIs(ctx, cashierID, q)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
	f := cmd.Flags()
	f.Int64Var(&cashierID, "cashier", 0, "Cashier (user) id")
	f.IntVar(&page, "page", 1, "Page")
	f.IntVar(&limit, "limit", 0, "Page size (max 100)")
	f.StringVar(&start, "start", "", "Start day (YYYY-MM-DD)")
	f.StringVar(&end, "end", "", "End day (YYYY-MM-DD)")
	f.StringVar(&method, "method", "", "zelle | transfer | cash")
	f.StringVar(&period, "period", "", "today | week | month | all")
	f.BoolVar(&includeDeleted, "include-deleted", false, "Count soft-deleted payments")
	_ = cmd.MarkFlagRequired("cashier")
	return cmd
}
