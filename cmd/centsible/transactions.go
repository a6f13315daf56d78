package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/ledger"
	"github.com/centsible/centsible/internal/model"
	"github.com/centsible/centsible/internal/storage"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Add, list, edit, and delete income and expense transactions.`,
	}

	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(editTxCmd())
	cmd.AddCommand(deleteTxCmd())
	cmd.AddCommand(deleteAllTxCmd())

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		txType   string
		date     string
		clock    string
		notes    string
		category string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			typ, err := parseType(txType)
			if err != nil {
				return err
			}
			day, err := parseDate(date)
			if err != nil {
				return err
			}

			store, _, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txn := model.Transaction{
				Amount:   amount,
				Type:     typ,
				Date:     day,
				Time:     clock,
				Category: category,
				Notes:    notes,
			}
			if err := store.AddTransaction(ctx, &txn); err != nil {
				return fmt.Errorf("failed to add transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded %s of %.2f in %s (id %d)", typ, amount, category, txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (expense, income)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "calendar date, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&clock, "time", "", "clock time, free form (optional)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "free-text notes")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		month    string
		category string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions grouped by day",
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
			mode, ref := ledger.ModeAll, now
			if month != "" {
				ref, err = time.Parse("2006-01", month)
				if err != nil {
					return common.NewUserError(fmt.Sprintf("month %q is not in YYYY-MM form", month), err)
				}
				mode = ledger.ModeMonth
			}

			visible := ledger.Filter(txns, mode, ref, category)
			if len(visible) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'centsible tx add' to record one."))
				return nil
			}

			cats, err := lookupCategories(ctx, store)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			for _, group := range ledger.GroupByDay(visible, now) {
				fmt.Fprintf(w, "%s\n", cli.TitleStyle.Render(group.Label))
				for _, txn := range group.Transactions {
					cat := cats[catName{txn.Category, txn.Type}]
					fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n",
						txn.ID,
						cli.CategoryBadge(cat, txn.Category),
						cli.Amount(txn.Type, txn.Amount),
						cli.SubtleStyle.Render(txn.Notes))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "restrict to one month, YYYY-MM")
	cmd.Flags().StringVarP(&category, "filter", "f", ledger.CategoryAll, "secondary filter: Income, Expense, or All")

	return cmd
}

func editTxCmd() *cobra.Command {
	var (
		amount   string
		date     string
		clock    string
		notes    string
		category string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("id %q is not a number", args[0]), err)
			}

			store, _, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txn, err := store.GetTransactionByID(ctx, id)
			if err != nil {
				return err
			}

			if amount != "" {
				txn.Amount, err = parseAmount(amount)
				if err != nil {
					return err
				}
			}
			if date != "" {
				txn.Date, err = parseDate(date)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("time") {
				txn.Time = clock
			}
			if cmd.Flags().Changed("notes") {
				txn.Notes = notes
			}
			if category != "" {
				txn.Category = category
			}

			if err := store.UpdateTransaction(ctx, txn); err != nil {
				return fmt.Errorf("failed to edit transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated transaction %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "new amount")
	cmd.Flags().StringVarP(&date, "date", "d", "", "new calendar date, YYYY-MM-DD")
	cmd.Flags().StringVar(&clock, "time", "", "new clock time")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category name")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "new free-text notes")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("id %q is not a number", args[0]), err)
			}

			store, _, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteTransaction(ctx, id); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted transaction %d", id)))
			return nil
		},
	}
}

func deleteAllTxCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !yes {
				return common.NewUserError("refusing to delete all transactions without --yes", nil)
			}

			store, _, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteAllTransactions(ctx); err != nil {
				return fmt.Errorf("failed to delete transactions: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Deleted all transactions"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the bulk delete")

	return cmd
}

type catName struct {
	name string
	typ  model.TransactionType
}

// lookupCategories indexes every category by name and type so dangling
// transaction references resolve to nil and render with fallback styling.
func lookupCategories(ctx context.Context, store *storage.Store) (map[catName]*model.Category, error) {
	out := make(map[catName]*model.Category)
	for _, typ := range []model.TransactionType{model.TypeExpense, model.TypeIncome} {
		cats, err := store.ListCategories(ctx, typ)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		for i := range cats {
			out[catName{cats[i].Name, cats[i].Type}] = &cats[i]
		}
	}
	return out, nil
}
