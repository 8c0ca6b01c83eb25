package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Veraticus/pocketledger/internal/alert"
	"github.com/Veraticus/pocketledger/internal/calendar"
	"github.com/Veraticus/pocketledger/internal/cli"
	"github.com/Veraticus/pocketledger/internal/common"
	"github.com/Veraticus/pocketledger/internal/config"
	"github.com/Veraticus/pocketledger/internal/engine"
	"github.com/Veraticus/pocketledger/internal/model"
	"github.com/Veraticus/pocketledger/internal/service"
	"github.com/Veraticus/pocketledger/internal/storage"
)

var (
	appConfig *config.Config
	provider  *storage.Provider

	// Replaced in tests.
	stdin io.Reader = os.Stdin
	now             = time.Now
)

// useConfig records the loaded configuration and prepares the storage provider.
func useConfig(cfg *config.Config) {
	appConfig = cfg
	if provider == nil {
		provider = storage.NewProvider(cfg.DatabasePath)
	}
}

// currentConfig returns the loaded configuration, loading it if a command
// runs without the root pre-run hook.
func currentConfig() (*config.Config, error) {
	if appConfig != nil {
		return appConfig, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	appConfig = cfg
	return cfg, nil
}

// initStorage returns the shared storage, opening and migrating it on first use.
func initStorage(ctx context.Context) (service.Storage, error) {
	if provider == nil {
		cfg, err := currentConfig()
		if err != nil {
			return nil, err
		}
		provider = storage.NewProvider(cfg.DatabasePath)
	}

	store, err := provider.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	return store, nil
}

func closeStorage() error {
	if provider == nil {
		return nil
	}
	return provider.Close()
}

// addMonthFlags registers --month (1-12) and --year.
func addMonthFlags(cmd *cobra.Command) {
	cmd.Flags().Int("month", 0, "month (1-12, default: current month)")
	cmd.Flags().Int("year", 0, "year (default: current year)")
}

// resolveMonth reads --month and --year and returns a zero-based month.
func resolveMonth(cmd *cobra.Command) (month, year int, err error) {
	current := now()
	month, year = calendar.MonthOf(current), current.Year()

	if m, _ := cmd.Flags().GetInt("month"); m != 0 {
		if m < 1 || m > 12 {
			return 0, 0, common.NewUserError("Month must be between 1 and 12", model.ErrInvalidMonth)
		}
		month = m - 1
	}
	if y, _ := cmd.Flags().GetInt("year"); y != 0 {
		year = y
	}
	return month, year, nil
}

// parseAmount parses a positive decimal amount.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", common.ErrInvalidInput, s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, model.ErrInvalidAmount
	}
	return amount, nil
}

// parseDate accepts "today", "yesterday" or any layout model.ParseDate knows.
func parseDate(s string) (model.Date, error) {
	current := now()
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return model.NewDate(current), nil
	case "yesterday":
		return model.NewDate(current.AddDate(0, 0, -1)), nil
	}
	date, ok := model.ParseDate(strings.TrimSpace(s))
	if !ok {
		return model.Date{}, fmt.Errorf("%w: %q (use YYYY-MM-DD)", model.ErrInvalidDate, s)
	}
	return date, nil
}

func printNotification(w io.Writer, n *alert.Notification) {
	message := fmt.Sprintf("%s: %s", n.Title, n.Text)
	switch n.Kind {
	case alert.KindBudgetExceeded:
		fmt.Fprintln(w, cli.FormatError(message))
	case alert.KindBudgetWarning:
		fmt.Fprintln(w, cli.FormatWarning(message))
	default:
		fmt.Fprintln(w, cli.FormatInfo(message))
	}
}

// checkBudget runs the budget check for the current month and prints any
// notification it produces.
func checkBudget(ctx context.Context, w io.Writer, store service.Storage) (*alert.Check, error) {
	check, err := alert.NewChecker(engine.New(store), store).Check(ctx, now())
	if err != nil {
		return nil, err
	}
	if check.Notification != nil {
		printNotification(w, check.Notification)
	}
	return check, nil
}
