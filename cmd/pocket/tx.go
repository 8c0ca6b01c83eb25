package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pocketledger/internal/cli"
	"github.com/Veraticus/pocketledger/internal/common"
	"github.com/Veraticus/pocketledger/internal/currency"
	"github.com/Veraticus/pocketledger/internal/engine"
	"github.com/Veraticus/pocketledger/internal/model"
	"github.com/Veraticus/pocketledger/internal/service"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transaction", "transactions"},
		Short:   "Record and browse transactions",
		Long:    `Add, edit, delete and list income and expense transactions.`,
	}

	cmd.AddCommand(txAddCmd())
	cmd.AddCommand(txEditCmd())
	cmd.AddCommand(txDeleteCmd())
	cmd.AddCommand(txListCmd())

	return cmd
}

func addTxFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "transaction title")
	cmd.Flags().String("amount", "", "amount (positive number)")
	cmd.Flags().String("category", "", "category name")
	cmd.Flags().String("date", "", "date (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().String("notes", "", "optional notes")
	cmd.Flags().Bool("income", false, "record as income instead of expense")
}

func txAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new transaction",
		Long: `Record a new expense (or income with --income).

Values not given as flags are asked for interactively.`,
		Example: `  pocket tx add --title Lunch --amount 12.50 --category Food
  pocket tx add --income --title Payday --amount 3000 --category Salary --date 2024-03-01`,
		Args: cobra.NoArgs,
		RunE: runTxAdd,
	}
	addTxFlags(cmd)
	return cmd
}

func runTxAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}

	income, _ := cmd.Flags().GetBool("income")
	title, _ := cmd.Flags().GetString("title")
	amountFlag, _ := cmd.Flags().GetString("amount")
	categoryName, _ := cmd.Flags().GetString("category")
	dateFlag, _ := cmd.Flags().GetString("date")
	notes, _ := cmd.Flags().GetString("notes")

	prompter := cli.NewPrompter(stdin, out)

	if strings.TrimSpace(title) == "" {
		if title, err = prompter.AskValid(ctx, "Title", "", func(s string) error {
			if strings.TrimSpace(s) == "" {
				return model.ErrEmptyTitle
			}
			return nil
		}); err != nil {
			return err
		}
	}

	if amountFlag == "" {
		if amountFlag, err = prompter.AskValid(ctx, "Amount", "", func(s string) error {
			_, perr := parseAmount(s)
			return perr
		}); err != nil {
			return err
		}
	}
	amount, err := parseAmount(amountFlag)
	if err != nil {
		return common.NewUserError("Invalid amount", err)
	}

	date, err := parseDate(dateFlag)
	if err != nil {
		return common.NewUserError("Invalid date", err)
	}

	category, err := resolveCategory(ctx, store, prompter, categoryName, !income)
	if err != nil {
		return err
	}

	txn := model.NewTransaction(strings.TrimSpace(title), amount, category.Name, date, !income, notes)
	if err := txn.Validate(); err != nil {
		return common.NewUserError("Transaction is not valid", err)
	}
	if err := store.UpsertTransaction(ctx, txn); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	code, err := store.GetCurrency(ctx)
	if err != nil {
		return fmt.Errorf("failed to load currency: %w", err)
	}
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Recorded %s %s (%s)",
		txn.Title, cli.FormatAmount(currency.Format(txn.Amount, code), txn.IsExpense), txn.ID)))

	if txn.IsExpense {
		if _, err := checkBudget(ctx, out, store); err != nil {
			return err
		}
	}
	return nil
}

func txEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an existing transaction",
		Long:  `Change the fields given as flags; everything else is kept.`,
		Example: `  pocket tx edit 3f2c... --amount 14.20
  pocket tx edit 3f2c... --income=false --category Food`,
		Args: cobra.ExactArgs(1),
		RunE: runTxEdit,
	}
	addTxFlags(cmd)
	return cmd
}

func runTxEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}

	existing, err := store.GetTransaction(ctx, args[0])
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewUserError(fmt.Sprintf("No transaction with ID %s", args[0]), err)
		}
		return err
	}
	txn := *existing
	flags := cmd.Flags()

	if flags.Changed("title") {
		txn.Title, _ = flags.GetString("title")
		txn.Title = strings.TrimSpace(txn.Title)
	}
	if flags.Changed("amount") {
		raw, _ := flags.GetString("amount")
		if txn.Amount, err = parseAmount(raw); err != nil {
			return common.NewUserError("Invalid amount", err)
		}
	}
	if flags.Changed("date") {
		raw, _ := flags.GetString("date")
		if txn.Date, err = parseDate(raw); err != nil {
			return common.NewUserError("Invalid date", err)
		}
	}
	if flags.Changed("notes") {
		txn.Notes, _ = flags.GetString("notes")
	}
	if flags.Changed("income") {
		income, _ := flags.GetBool("income")
		txn.IsExpense = !income
	}

	if flags.Changed("category") || flags.Changed("income") {
		name := txn.Category
		if flags.Changed("category") {
			name, _ = flags.GetString("category")
		}
		category, cerr := resolveCategory(ctx, store, cli.NewPrompter(stdin, out), name, txn.IsExpense)
		if cerr != nil {
			return cerr
		}
		txn.Category = category.Name
	}

	if err := txn.Validate(); err != nil {
		return common.NewUserError("Transaction is not valid", err)
	}
	if err := store.UpsertTransaction(ctx, txn); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Updated %s", txn.Title)))
	_, err = checkBudget(ctx, out, store)
	return err
}

func txDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Args:    cobra.ExactArgs(1),
		RunE:    runTxDelete,
	}
	cmd.Flags().BoolP("yes", "y", false, "skip confirmation")
	return cmd
}

func runTxDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	id := args[0]

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		txn, gerr := store.GetTransaction(ctx, id)
		if gerr != nil {
			if errors.Is(gerr, common.ErrNotFound) {
				return common.NewUserError(fmt.Sprintf("No transaction with ID %s", id), gerr)
			}
			return gerr
		}
		ok, perr := cli.NewPrompter(stdin, out).Confirm(ctx, fmt.Sprintf("Delete %q from %s?", txn.Title, txn.Date))
		if perr != nil {
			return perr
		}
		if !ok {
			fmt.Fprintln(out, cli.FormatInfo("Nothing deleted"))
			return nil
		}
	}

	if err := store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	fmt.Fprintln(out, cli.FormatSuccess("Transaction deleted"))

	_, err = checkBudget(ctx, out, store)
	return err
}

func txListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions for a month",
		Args:    cobra.NoArgs,
		RunE:    runTxList,
	}
	addMonthFlags(cmd)
	cmd.Flags().Bool("all", false, "list every transaction regardless of month")
	return cmd
}

func runTxList(cmd *cobra.Command, _ []string) error {
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
	code, err := store.GetCurrency(ctx)
	if err != nil {
		return fmt.Errorf("failed to load currency: %w", err)
	}

	var transactions []model.Transaction
	if all, _ := cmd.Flags().GetBool("all"); all {
		if transactions, err = store.ListTransactions(ctx); err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
	} else {
		if transactions, err = engine.New(store).MonthlyTransactions(ctx, month, year); err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
	}

	if len(transactions) == 0 {
		fmt.Fprintln(out, cli.FormatInfo("No transactions recorded"))
		return nil
	}

	printTransactions(out, transactions, code)
	return nil
}

func printTransactions(w io.Writer, transactions []model.Transaction, code string) {
	fmt.Fprintf(w, "%s\n", cli.TableHeaderStyle.Render(
		fmt.Sprintf("%-12s  %-24s  %-16s  %14s  %s", "Date", "Title", "Category", "Amount", "ID")))
	for _, txn := range transactions {
		fmt.Fprintf(w, "%-12s  %-24s  %-16s  %14s  %s\n",
			txn.Date.String(),
			truncate(txn.Title, 24),
			truncate(txn.Category, 16),
			cli.FormatAmount(currency.Format(txn.Amount, code), txn.IsExpense),
			cli.SubtleStyle.Render(txn.ID))
	}
}

// resolveCategory finds the named category of the right kind, or asks the
// user to pick one when name is empty.
func resolveCategory(ctx context.Context, store service.CategoryStore, prompter *cli.Prompter, name string, isExpense bool) (model.Category, error) {
	categories, err := store.ListCategories(ctx)
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to load categories: %w", err)
	}

	kind := model.CategoryTypeIncome
	if isExpense {
		kind = model.CategoryTypeExpense
	}
	candidates := model.FilterCategories(categories, kind)

	if strings.TrimSpace(name) == "" {
		return prompter.ChooseCategory(ctx, candidates)
	}

	for _, c := range candidates {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return model.Category{}, common.NewUserError(
		fmt.Sprintf("No %s category named %q (see 'pocket categories list')", kind, name),
		common.ErrNotFound)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
