package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pocketledger/internal/cli"
	"github.com/Veraticus/pocketledger/internal/common"
	"github.com/Veraticus/pocketledger/internal/model"
)

const defaultCategoryColor = "#607D8B"

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cat"},
		Short:   "Manage categories",
		Long:    `List the expense and income categories, or add new ones.`,
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesEditCmd())

	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all categories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}

			categories, err := store.ListCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			out := cmd.OutOrStdout()
			printCategoryGroup(out, "Expense categories", model.FilterCategories(categories, model.CategoryTypeExpense))
			fmt.Fprintln(out)
			printCategoryGroup(out, "Income categories", model.FilterCategories(categories, model.CategoryTypeIncome))
			return nil
		},
	}
}

func printCategoryGroup(w io.Writer, title string, categories []model.Category) {
	fmt.Fprintln(w, cli.TableHeaderStyle.Render(title))
	if len(categories) == 0 {
		fmt.Fprintln(w, cli.SubtleStyle.Render("  (none)"))
		return
	}
	for _, c := range categories {
		fmt.Fprintf(w, "  %s %-20s %s\n", cli.CategorySwatch(c.Color), c.Name, cli.SubtleStyle.Render(c.Color.Hex()))
	}
}

func categoriesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Example: `  pocket categories add Groceries --color "#FF9800"
  pocket categories add Freelance --income`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := strings.TrimSpace(args[0])
			if name == "" {
				return common.NewUserError("Category name cannot be empty", common.ErrInvalidInput)
			}

			hex, _ := cmd.Flags().GetString("color")
			color, err := model.ParseColor(hex)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("Invalid color %q", hex), err)
			}
			income, _ := cmd.Flags().GetBool("income")

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}

			categories, err := store.ListCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}
			for _, c := range categories {
				if strings.EqualFold(c.Name, name) {
					return common.NewUserError(fmt.Sprintf("Category %q already exists", c.Name), common.ErrInvalidInput)
				}
			}

			category := model.Category{
				ID:        model.NewID(),
				Name:      name,
				Color:     color,
				IsExpense: !income,
			}
			if err := store.UpsertCategory(ctx, category); err != nil {
				return fmt.Errorf("failed to save category: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Added %s category %s %s",
				category.Type(), cli.CategorySwatch(category.Color), category.Name)))
			return nil
		},
	}

	cmd.Flags().String("color", defaultCategoryColor, "display color as #RRGGBB")
	cmd.Flags().Bool("income", false, "create an income category instead of an expense one")

	return cmd
}

func categoriesEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Change a category's color",
		Long: `Change a category's display color.

Transactions reference categories by name, so names are not editable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			hex, _ := cmd.Flags().GetString("color")
			color, err := model.ParseColor(hex)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("Invalid color %q", hex), err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			categories, err := store.ListCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			for _, c := range categories {
				if !strings.EqualFold(c.Name, strings.TrimSpace(args[0])) {
					continue
				}
				c.Color = color
				if err := store.UpsertCategory(ctx, c); err != nil {
					return fmt.Errorf("failed to save category: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Updated %s %s", cli.CategorySwatch(c.Color), c.Name)))
				return nil
			}
			return common.NewUserError(fmt.Sprintf("No category named %q", args[0]), common.ErrNotFound)
		},
	}

	cmd.Flags().String("color", "", "display color as #RRGGBB")
	_ = cmd.MarkFlagRequired("color")

	return cmd
}
