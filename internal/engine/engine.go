// Package engine derives monthly aggregates from the ledger: filtered
// transactions, category spending, income and expense totals, and budget
// standing.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/pocketledger/internal/calendar"
	"github.com/Veraticus/pocketledger/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Reader is the slice of storage the engine needs.
type Reader interface {
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	GetBudget(ctx context.Context) (*model.Budget, error)
	Snapshot(ctx context.Context) (*model.Ledger, error)
}

// Engine computes monthly aggregates on top of a Reader.
type Engine struct {
	store Reader
}

// New creates a new aggregation engine.
func New(store Reader) *Engine {
	return &Engine{store: store}
}

// MonthlyTransactions returns the transactions dated within the month, in
// storage order. Transactions with unusable dates are skipped.
func (e *Engine) MonthlyTransactions(ctx context.Context, month, year int) ([]model.Transaction, error) {
	transactions, err := e.store.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return FilterMonth(transactions, month, year), nil
}

// CategorySpending returns expense totals for the month keyed by the
// category name recorded on each transaction.
func (e *Engine) CategorySpending(ctx context.Context, month, year int) (map[string]decimal.Decimal, error) {
	monthly, err := e.MonthlyTransactions(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return SpendingByCategory(monthly), nil
}

// TotalIncome sums the month's non-expense transactions.
func (e *Engine) TotalIncome(ctx context.Context, month, year int) (decimal.Decimal, error) {
	monthly, err := e.MonthlyTransactions(ctx, month, year)
	if err != nil {
		return decimal.Zero, err
	}
	income, _ := Totals(monthly)
	return income, nil
}

// TotalExpense sums the month's expense transactions.
func (e *Engine) TotalExpense(ctx context.Context, month, year int) (decimal.Decimal, error) {
	monthly, err := e.MonthlyTransactions(ctx, month, year)
	if err != nil {
		return decimal.Zero, err
	}
	_, expense := Totals(monthly)
	return expense, nil
}

// IsOverBudget reports whether the month's expenses exceed the active
// budget. Without an active budget it is false.
func (e *Engine) IsOverBudget(ctx context.Context, month, year int) (bool, error) {
	budget, expense, err := e.budgetAndExpense(ctx, month, year)
	if err != nil || budget == nil {
		return false, err
	}
	return expense.GreaterThan(budget.Amount), nil
}

// BudgetRemainingPercentage returns the share of the active budget still
// available, clamped to [0, 100]. Without an active budget, or with a zero
// budget amount, it is 0.
func (e *Engine) BudgetRemainingPercentage(ctx context.Context, month, year int) (float64, error) {
	budget, expense, err := e.budgetAndExpense(ctx, month, year)
	if err != nil || budget == nil {
		return 0, err
	}
	return RemainingPercentage(budget.Amount, expense), nil
}

// budgetAndExpense returns the budget only when it is active for the month.
func (e *Engine) budgetAndExpense(ctx context.Context, month, year int) (*model.Budget, decimal.Decimal, error) {
	budget, err := e.store.GetBudget(ctx)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to load budget: %w", err)
	}
	if !budget.IsActiveFor(month, year) {
		slog.Debug("No active budget", "month", month, "year", year)
		return nil, decimal.Zero, nil
	}

	expense, err := e.TotalExpense(ctx, month, year)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return budget, expense, nil
}

// FilterMonth returns the transactions dated within the month.
func FilterMonth(transactions []model.Transaction, month, year int) []model.Transaction {
	monthly := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		when, ok := t.Date.Time()
		if !ok {
			continue
		}
		if calendar.Contains(month, year, when) {
			monthly = append(monthly, t)
		}
	}
	return monthly
}

// SpendingByCategory groups expense amounts by category name.
func SpendingByCategory(transactions []model.Transaction) map[string]decimal.Decimal {
	spending := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if !t.IsExpense {
			continue
		}
		spending[t.Category] = spending[t.Category].Add(t.Amount)
	}
	return spending
}

// Totals returns income and expense sums. Each transaction counts toward
// exactly one of them.
func Totals(transactions []model.Transaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, t := range transactions {
		if t.IsExpense {
			expense = expense.Add(t.Amount)
		} else {
			income = income.Add(t.Amount)
		}
	}
	return income, expense
}

// RemainingPercentage returns (amount - expense) / amount * 100 clamped to
// [0, 100], or 0 for a zero amount.
func RemainingPercentage(amount, expense decimal.Decimal) float64 {
	if amount.IsZero() {
		return 0
	}
	pct := amount.Sub(expense).Div(amount).Mul(hundred)
	return clampPercent(pct).InexactFloat64()
}

// UsedPercentage returns the whole-number share of amount already spent,
// clamped to [0, 100], or 0 for a zero amount.
func UsedPercentage(amount, expense decimal.Decimal) int {
	if amount.IsZero() {
		return 0
	}
	pct := expense.Div(amount).Mul(hundred)
	return int(clampPercent(pct).IntPart())
}

func clampPercent(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
