package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/ledger"
)

const chartBarWidth = 30

func chartCmd() *cobra.Command {
	var (
		year  int
		month string
		week  string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Draw a net-flow chart",
		Long: `Draw income-minus-expenses bars per sub-period. By default the twelve
months of the current year; --month draws the days of a month, --week
the seven days of a Monday-anchored week.`,
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

			var points []ledger.Point
			var title string
			switch {
			case month != "":
				ref, parseErr := time.Parse("2006-01", month)
				if parseErr != nil {
					return common.NewUserError(fmt.Sprintf("month %q is not in YYYY-MM form", month), parseErr)
				}
				points = ledger.DailySeriesForMonth(txns, ref)
				title = ref.Format("January 2006")
			case week != "":
				ref, parseErr := time.Parse("2006-01-02", week)
				if parseErr != nil {
					return common.NewUserError(fmt.Sprintf("week %q is not in YYYY-MM-DD form", week), parseErr)
				}
				start := ledger.WeekStart(ref)
				points = ledger.DailySeriesForWeek(txns, start)
				title = "Week of " + start.Format("January 2, 2006")
			default:
				if year == 0 {
					year = time.Now().Year()
				}
				points = ledger.MonthlySeries(txns, year)
				title = fmt.Sprintf("%d", year)
			}

			fmt.Println(cli.TitleStyle.Render(title))
			renderBars(points)
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "year to chart monthly (default: current year)")
	cmd.Flags().StringVarP(&month, "month", "m", "", "month to chart daily, YYYY-MM")
	cmd.Flags().StringVarP(&week, "week", "w", "", "any date inside the week to chart daily, YYYY-MM-DD")

	return cmd
}

func renderBars(points []ledger.Point) {
	var maxAbs float64
	for _, p := range points {
		abs := p.Net
		if abs < 0 {
			abs = -abs
		}
		if abs > maxAbs {
			maxAbs = abs
		}
	}

	for _, p := range points {
		bar := ""
		if maxAbs > 0 && p.Net != 0 {
			abs := p.Net
			style := cli.IncomeStyle
			if abs < 0 {
				abs = -abs
				style = cli.ExpenseStyle
			}
			bar = style.Render(strings.Repeat("█", int(abs/maxAbs*chartBarWidth)))
		}
		fmt.Printf("%4s %s %s\n", p.Label, bar, cli.SubtleStyle.Render(fmt.Sprintf("%+.2f", p.Net)))
	}
}
