package main

import (
	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the ledger interactively",
		Long: `Open a live view of the ledger: transactions grouped by day, period
totals, and a net-flow chart. Navigate periods with the arrow keys;
moving past the current real-world period is not possible.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, _, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return tui.Run(ctx, tui.Config{Store: store})
		},
	}
}
