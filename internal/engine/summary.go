package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/pocketledger/internal/alert"
	"github.com/Veraticus/pocketledger/internal/calendar"
	"github.com/Veraticus/pocketledger/internal/model"
)

// CategoryAmount is the spending recorded against one category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// MonthlySummary contains every aggregate shown for one month.
type MonthlySummary struct {
	Income              decimal.Decimal
	Expense             decimal.Decimal
	Balance             decimal.Decimal
	Remaining           decimal.Decimal // budget minus expense; negative when over
	Budget              *model.Budget   // nil unless active for the month
	Label               string
	CurrencyCode        string
	Transactions        []model.Transaction
	Categories          []CategoryAmount
	Alert               alert.Result
	RemainingPercentage float64
	UsedPercentage      int
	Month               int
	Year                int
	OverBudget          bool
}

// Summary computes the month's aggregates from a single snapshot, so every
// figure reflects the same state.
func (e *Engine) Summary(ctx context.Context, month, year int) (*MonthlySummary, error) {
	ledger, err := e.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	monthly := FilterMonth(ledger.Transactions, month, year)
	income, expense := Totals(monthly)

	summary := &MonthlySummary{
		Month:        month,
		Year:         year,
		Label:        calendar.MonthYearLabel(month, year),
		CurrencyCode: ledger.Preferences.CurrencyCode,
		Transactions: monthly,
		Income:       income,
		Expense:      expense,
		Balance:      income.Sub(expense),
		Categories:   sortedSpending(SpendingByCategory(monthly)),
		Alert:        alert.EvaluateBudget(ledger.Budget, month, year, expense),
	}

	if ledger.Budget.IsActiveFor(month, year) {
		summary.Budget = ledger.Budget
		summary.OverBudget = expense.GreaterThan(ledger.Budget.Amount)
		summary.Remaining = ledger.Budget.Amount.Sub(expense)
		summary.RemainingPercentage = RemainingPercentage(ledger.Budget.Amount, expense)
		summary.UsedPercentage = UsedPercentage(ledger.Budget.Amount, expense)
	}

	return summary, nil
}

// sortedSpending orders categories by amount, largest first, then by name.
func sortedSpending(spending map[string]decimal.Decimal) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(spending))
	for name, amount := range spending {
		out = append(out, CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return out
}
