package testutil

import "github.com/Veraticus/pocketledger/internal/model"

// Fixture is a named, reusable set of ledger contents.
type Fixture interface {
	Name() string
	Apply(b *LedgerBuilder) *LedgerBuilder
}

type fixture struct {
	apply func(b *LedgerBuilder) *LedgerBuilder
	name  string
}

func (f *fixture) Name() string                          { return f.name }
func (f *fixture) Apply(b *LedgerBuilder) *LedgerBuilder { return f.apply(b) }

// Predefined fixtures for common test scenarios.
var (
	// FixtureMarch2024 is a month with a 1000 budget, 850 spent and one
	// salary payment: the budget is in the warning band.
	FixtureMarch2024 Fixture = &fixture{
		name: "March 2024",
		apply: func(b *LedgerBuilder) *LedgerBuilder {
			return b.
				WithBudget("1000", 2, 2024).
				WithIncome("Salary", "3000", "Salary", model.Day(2024, 2, 1)).
				WithExpense("Rent", "600", "Bills", model.Day(2024, 2, 3)).
				WithExpense("Groceries", "200", "Food", model.Day(2024, 2, 10)).
				WithExpense("Bus pass", "50", "Transport", model.Day(2024, 2, 31))
		},
	}

	// FixtureQuarter spreads transactions over February to April 2024
	// with no budget.
	FixtureQuarter Fixture = &fixture{
		name: "Q1 2024",
		apply: func(b *LedgerBuilder) *LedgerBuilder {
			return b.
				WithExpense("Late February", "40", "Food", model.Day(2024, 1, 29)).
				WithExpense("Early March", "25", "Food", model.Day(2024, 2, 1)).
				WithExpense("Early April", "70", "Shopping", model.Day(2024, 3, 1)).
				WithIncome("Gift", "100", "Gifts", model.Day(2024, 2, 14))
		},
	}
)
