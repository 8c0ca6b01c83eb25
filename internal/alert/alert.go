// Package alert decides whether a budget warning, budget exceeded or daily
// reminder notification should fire, and with what values. It never
// delivers anything itself.
package alert

import (
	"github.com/shopspring/decimal"

	"github.com/Veraticus/pocketledger/internal/model"
)

// Status classifies spending against an active budget.
type Status int

const (
	// StatusSafe means at least 20% of the budget is left.
	StatusSafe Status = iota
	// StatusWarning means less than 20% of the budget is left.
	StatusWarning
	// StatusExceeded means spending is above the budget.
	StatusExceeded
)

func (s Status) String() string {
	switch s {
	case StatusWarning:
		return "warning"
	case StatusExceeded:
		return "exceeded"
	default:
		return "safe"
	}
}

// WarningRatio is the share of the budget below which a warning fires.
var WarningRatio = decimal.RequireFromString("0.2")

// Result is the outcome of a budget evaluation. Remaining is set for
// warnings, Overage for exceeded budgets. Both are zero when Safe.
type Result struct {
	Remaining decimal.Decimal
	Overage   decimal.Decimal
	Status    Status
}

// ShouldAlert reports whether the result carries an alert payload.
func (r Result) ShouldAlert() bool {
	return r.Status != StatusSafe
}

// Evaluate classifies totalExpense against a budget amount.
func Evaluate(amount, totalExpense decimal.Decimal) Result {
	remaining := amount.Sub(totalExpense)

	switch {
	case totalExpense.GreaterThan(amount):
		return Result{Status: StatusExceeded, Overage: remaining.Neg()}
	case remaining.LessThan(amount.Mul(WarningRatio)):
		return Result{Status: StatusWarning, Remaining: remaining}
	default:
		return Result{Status: StatusSafe}
	}
}

// EvaluateBudget evaluates the budget for the given month. A nil budget, or
// one set for a different month, is always Safe.
func EvaluateBudget(budget *model.Budget, month, year int, totalExpense decimal.Decimal) Result {
	if !budget.IsActiveFor(month, year) {
		return Result{Status: StatusSafe}
	}
	return Evaluate(budget.Amount, totalExpense)
}
