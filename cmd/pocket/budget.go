package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pocketledger/internal/calendar"
	"github.com/Veraticus/pocketledger/internal/cli"
	"github.com/Veraticus/pocketledger/internal/common"
	"github.com/Veraticus/pocketledger/internal/currency"
	"github.com/Veraticus/pocketledger/internal/engine"
	"github.com/Veraticus/pocketledger/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Set or show the monthly budget",
		Long: `Manage the monthly spending limit.

Only one budget is kept; setting a new one replaces it.`,
	}

	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetShowCmd())

	return cmd
}

func budgetSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the budget for a month",
		Example: `  pocket budget set 1000
  pocket budget set 1500 --month 12 --year 2024`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			amount, err := parseAmount(args[0])
			if err != nil {
				return common.NewUserError("Invalid budget amount", err)
			}
			month, year, err := resolveMonth(cmd)
			if err != nil {
				return err
			}

			budget := model.Budget{Amount: amount, Month: month, Year: year}
			if err := budget.Validate(); err != nil {
				return common.NewUserError("Budget is not valid", err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			if err := store.SetBudget(ctx, budget); err != nil {
				return fmt.Errorf("failed to save budget: %w", err)
			}

			code, err := store.GetCurrency(ctx)
			if err != nil {
				return fmt.Errorf("failed to load currency: %w", err)
			}
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Budget for %s set to %s",
				calendar.MonthYearLabel(month, year), currency.Format(amount, code))))

			_, err = checkBudget(ctx, out, store)
			return err
		},
	}
	addMonthFlags(cmd)
	return cmd
}

func budgetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored budget and how much of it is used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			budget, err := store.GetBudget(ctx)
			if err != nil {
				return fmt.Errorf("failed to load budget: %w", err)
			}
			if budget == nil {
				fmt.Fprintln(out, cli.FormatInfo("No budget set. Use 'pocket budget set <amount>'."))
				return nil
			}

			summary, err := engine.New(store).Summary(ctx, budget.Month, budget.Year)
			if err != nil {
				return err
			}

			code := summary.CurrencyCode
			fmt.Fprintln(out, cli.RenderBox(
				fmt.Sprintf("Budget · %s", calendar.MonthYearLabel(budget.Month, budget.Year)),
				fmt.Sprintf("Limit:     %s\nSpent:     %s\nRemaining: %s\n\n%s %d%%",
					currency.Format(budget.Amount, code),
					currency.Format(summary.Expense, code),
					cli.StatusStyle(summary.Alert.Status).Render(currency.Format(summary.Remaining, code)),
					cli.BudgetBar(summary.UsedPercentage, summary.Alert.Status),
					summary.UsedPercentage)))

			if !budget.IsActiveFor(calendar.MonthOf(now()), now().Year()) {
				fmt.Fprintln(out, cli.FormatWarning("This budget is not for the current month"))
			}
			return nil
		},
	}
}
