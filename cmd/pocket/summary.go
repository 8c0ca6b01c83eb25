package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Veraticus/pocketledger/internal/cli"
	"github.com/Veraticus/pocketledger/internal/currency"
	"github.com/Veraticus/pocketledger/internal/engine"
	"github.com/Veraticus/pocketledger/internal/model"
)

var hundred = decimal.NewFromInt(100)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the monthly overview",
		Long: `Show income, expenses, balance, budget usage and spending by
category for one month.`,
		Example: `  pocket summary
  pocket summary --month 3 --year 2024 --transactions`,
		Args: cobra.NoArgs,
		RunE: runSummary,
	}
	addMonthFlags(cmd)
	cmd.Flags().Bool("transactions", false, "also list the month's transactions")
	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	month, year, err := resolveMonth(cmd)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	summary, err := engine.New(store).Summary(ctx, month, year)
	if err != nil {
		return err
	}
	categories, err := store.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	fmt.Fprintln(out, cli.FormatTitle(summary.Label))
	fmt.Fprintln(out, cli.RenderBox("Overview", renderOverview(summary)))

	if len(summary.Categories) > 0 {
		fmt.Fprintln(out, cli.RenderBox("Spending by category", renderCategories(summary, categories)))
	}

	if withTxns, _ := cmd.Flags().GetBool("transactions"); withTxns && len(summary.Transactions) > 0 {
		fmt.Fprintln(out)
		printTransactions(out, summary.Transactions, summary.CurrencyCode)
	}
	return nil
}

func renderOverview(s *engine.MonthlySummary) string {
	code := s.CurrencyCode
	var b strings.Builder

	fmt.Fprintf(&b, "Income:   %s\n", cli.IncomeStyle.Render(currency.Format(s.Income, code)))
	fmt.Fprintf(&b, "Expenses: %s\n", cli.ExpenseStyle.Render(currency.Format(s.Expense, code)))
	fmt.Fprintf(&b, "Balance:  %s", cli.BoldStyle.Render(currency.Format(s.Balance, code)))

	if s.Budget == nil {
		fmt.Fprintf(&b, "\n\n%s", cli.SubtleStyle.Render("No budget set for this month"))
		return b.String()
	}

	style := cli.StatusStyle(s.Alert.Status)
	fmt.Fprintf(&b, "\n\nBudget:   %s\n", currency.Format(s.Budget.Amount, code))
	if s.OverBudget {
		fmt.Fprintf(&b, "Over by:  %s\n", style.Render(currency.Format(s.Alert.Overage, code)))
	} else {
		fmt.Fprintf(&b, "Left:     %s (%.0f%%)\n", style.Render(currency.Format(s.Remaining, code)), s.RemainingPercentage)
	}
	fmt.Fprintf(&b, "%s %d%% %s", cli.BudgetBar(s.UsedPercentage, s.Alert.Status), s.UsedPercentage, style.Render(s.Alert.Status.String()))
	return b.String()
}

func renderCategories(s *engine.MonthlySummary, categories []model.Category) string {
	colors := make(map[string]model.Color, len(categories))
	for _, c := range categories {
		if c.IsExpense {
			colors[c.Name] = c.Color
		}
	}

	lines := make([]string, 0, len(s.Categories))
	for _, spent := range s.Categories {
		swatch := cli.SubtleStyle.Render(cli.SwatchIcon)
		if color, ok := colors[spent.Name]; ok {
			swatch = cli.CategorySwatch(color)
		}
		share := 0
		if s.Expense.IsPositive() {
			share = int(spent.Amount.Div(s.Expense).Mul(hundred).IntPart())
		}
		lines = append(lines, fmt.Sprintf("%s %-18s %12s %3d%%",
			swatch, truncate(spent.Name, 18), currency.Format(spent.Amount, s.CurrencyCode), share))
	}
	return strings.Join(lines, "\n")
}
