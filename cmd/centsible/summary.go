package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/ledger"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show spending totals per period",
		Long:  `Total expense spend for Today, This Week, This Month, This Year, and All Time.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, _, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.ListTransactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			now := time.Now()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\n", cli.TitleStyle.Render("Spending"))
			for _, period := range ledger.Periods {
				total := ledger.PeriodTotal(txns, period, now)
				fmt.Fprintf(w, "%s\t%s\n", period, cli.ExpenseStyle.Render(fmt.Sprintf("%.2f", total)))
			}

			return nil
		},
	}
}
