package alert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/pocketledger/internal/calendar"
	"github.com/Veraticus/pocketledger/internal/model"
)

// ExpenseTotaler sums expenses for a month.
type ExpenseTotaler interface {
	TotalExpense(ctx context.Context, month, year int) (decimal.Decimal, error)
}

// SettingsReader reads the budget and user settings.
type SettingsReader interface {
	GetBudget(ctx context.Context) (*model.Budget, error)
	GetPreferences(ctx context.Context) (model.Preferences, error)
}

// Check is the outcome of one scheduled budget check.
type Check struct {
	Notification *Notification
	Budget       *model.Budget
	TotalExpense decimal.Decimal
	Result       Result
	Month        int
	Year         int
}

// Checker runs the periodic budget check a scheduler would trigger.
type Checker struct {
	totals   ExpenseTotaler
	settings SettingsReader
}

// NewChecker creates a checker.
func NewChecker(totals ExpenseTotaler, settings SettingsReader) *Checker {
	return &Checker{totals: totals, settings: settings}
}

// Check evaluates the budget for the month containing now.
func (c *Checker) Check(ctx context.Context, now time.Time) (*Check, error) {
	month, year := calendar.MonthOf(now), now.Year()

	budget, err := c.settings.GetBudget(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}
	prefs, err := c.settings.GetPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	check := &Check{Month: month, Year: year, Budget: budget, TotalExpense: decimal.Zero}
	if !budget.IsActiveFor(month, year) {
		slog.Debug("No active budget", "month", month, "year", year)
		return check, nil
	}

	if check.TotalExpense, err = c.totals.TotalExpense(ctx, month, year); err != nil {
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}

	check.Result = EvaluateBudget(budget, month, year, check.TotalExpense)
	check.Notification = Notify(check.Result, prefs)

	slog.Debug("Budget checked",
		"month", month,
		"year", year,
		"status", check.Result.Status.String(),
		"notify", check.Notification != nil)
	return check, nil
}
