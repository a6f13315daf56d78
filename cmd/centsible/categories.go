package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/centsible/centsible/internal/cli"
	"github.com/centsible/centsible/internal/common"
	"github.com/centsible/centsible/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, add, edit, delete, and promote the emoji/color categories used to tag transactions.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(editCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())
	cmd.AddCommand(promoteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var txType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories by bucket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			typ, err := parseType(txType)
			if err != nil {
				return err
			}

			store, reg, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			for _, bucket := range []model.Bucket{model.BucketDefault, model.BucketCustom, model.BucketSuggested} {
				cats, err := reg.CategoriesByBucket(ctx, typ, bucket)
				if err != nil {
					return fmt.Errorf("failed to list %s categories: %w", bucket, err)
				}

				fmt.Fprintf(w, "%s\n", cli.TitleStyle.Render(string(bucket)))
				if len(cats) == 0 {
					fmt.Fprintf(w, "  %s\n", cli.SubtleStyle.Render("(none)"))
					continue
				}
				for i := range cats {
					fmt.Fprintf(w, "  %d\t%s\t%s\n",
						cats[i].ID,
						cli.CategoryBadge(&cats[i], cats[i].Name),
						cli.SubtleStyle.Render(cats[i].ColorHex))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (expense, income)")

	return cmd
}

func addCategoryCmd() *cobra.Command {
	var (
		txType   string
		emoji    string
		colorHex string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			typ, err := parseType(txType)
			if err != nil {
				return err
			}

			store, reg, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat := model.Category{
				Name:     args[0],
				Emoji:    emoji,
				ColorHex: colorHex,
				Type:     typ,
			}
			if err := reg.AddCustom(ctx, &cat); err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Added category %s (id %d)", cli.CategoryBadge(&cat, cat.Name), cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (expense, income)")
	cmd.Flags().StringVarP(&emoji, "emoji", "e", "🏷️", "emoji glyph")
	cmd.Flags().StringVarP(&colorHex, "color", "c", "#95A5A6", "color, #RRGGBB or #AARRGGBB")

	return cmd
}

func editCategoryCmd() *cobra.Command {
	var (
		name     string
		emoji    string
		colorHex string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a custom category",
		Long:  `Edit a custom category's name, emoji, or color. Default categories cannot be edited.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("id %q is not a number", args[0]), err)
			}

			store, reg, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := store.GetCategoryByID(ctx, id)
			if err != nil {
				return err
			}

			if name != "" {
				cat.Name = name
			}
			if emoji != "" {
				cat.Emoji = emoji
			}
			if colorHex != "" {
				cat.ColorHex = colorHex
			}

			if err := reg.UpdateCategory(ctx, cat); err != nil {
				return fmt.Errorf("failed to edit category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated category %s", cli.CategoryBadge(cat, cat.Name))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new display name")
	cmd.Flags().StringVarP(&emoji, "emoji", "e", "", "new emoji glyph")
	cmd.Flags().StringVarP(&colorHex, "color", "c", "", "new color, #RRGGBB or #AARRGGBB")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom category",
		Long:  `Delete a custom category. Transactions tagged with it are kept and render with fallback styling.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("id %q is not a number", args[0]), err)
			}

			store, reg, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := reg.DeleteCategory(ctx, id); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted category %d", id)))
			return nil
		},
	}
}

func promoteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <id>",
		Short: "Promote a suggested category",
		Long:  `Copy a suggested category into the custom bucket with a fresh id. The suggestion itself remains offerable.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("id %q is not a number", args[0]), err)
			}

			store, reg, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			cat, err := store.GetCategoryByID(ctx, id)
			if err != nil {
				return err
			}

			promoted, err := reg.PromoteSuggested(ctx, cat)
			if err != nil {
				return fmt.Errorf("failed to promote category: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Promoted %s (new id %d)", cli.CategoryBadge(promoted, promoted.Name), promoted.ID)))
			return nil
		},
	}
}
