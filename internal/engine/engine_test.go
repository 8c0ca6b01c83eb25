package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pocketledger/internal/alert"
	"github.com/Veraticus/pocketledger/internal/model"
)

// memoryReader is an in-memory Reader for tests.
type memoryReader struct {
	err    error
	budget *model.Budget
	txns   []model.Transaction
}

func (m *memoryReader) ListTransactions(context.Context) ([]model.Transaction, error) {
	return m.txns, m.err
}

func (m *memoryReader) GetBudget(context.Context) (*model.Budget, error) {
	return m.budget, m.err
}

func (m *memoryReader) Snapshot(context.Context) (*model.Ledger, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &model.Ledger{
		Transactions: m.txns,
		Budget:       m.budget,
		Preferences:  model.DefaultPreferences(),
	}, nil
}

func txn(title, amount, category string, date model.Date, isExpense bool) model.Transaction {
	return model.NewTransaction(title, decimal.RequireFromString(amount), category, date, isExpense, "")
}

func march2024Budget() *model.Budget {
	return &model.Budget{Amount: decimal.NewFromInt(1000), Month: 2, Year: 2024}
}

func marchLedger(expenses ...string) []model.Transaction {
	txns := []model.Transaction{
		txn("Salary", "3000", "Salary", model.Day(2024, 2, 1), false),
		txn("February rent", "900", "Bills", model.Day(2024, 1, 28), true),
	}
	for i, amount := range expenses {
		txns = append(txns, txn("Expense", amount, "Food", model.Day(2024, 2, i+2), true))
	}
	return txns
}

func TestEngine_MonthlyTransactions(t *testing.T) {
	ctx := context.Background()
	march := model.Day(2024, 2, 15)
	corrupt := model.Transaction{}
	require.NoError(t, corrupt.Date.UnmarshalJSON([]byte(`"not a date"`)))
	corrupt.ID = "corrupt"
	corrupt.IsExpense = true
	corrupt.Amount = decimal.NewFromInt(99)

	lastInstant := model.NewDate(time.Date(2024, time.March, 31, 23, 59, 59, 999999999, time.Local))
	nextMonth := model.NewDate(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local))

	reader := &memoryReader{txns: []model.Transaction{
		txn("in", "10", "Food", march, true),
		corrupt,
		txn("edge", "1", "Food", lastInstant, true),
		txn("april", "5", "Food", nextMonth, true),
	}}

	got, err := New(reader).MonthlyTransactions(ctx, 2, 2024)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "in", got[0].Title)
	assert.Equal(t, "edge", got[1].Title)
}

func TestEngine_CategorySpending(t *testing.T) {
	ctx := context.Background()
	day := model.Day(2024, 2, 10)
	reader := &memoryReader{txns: []model.Transaction{
		txn("Lunch", "12.10", "Food", day, true),
		txn("Dinner", "30.20", "Food", day, true),
		txn("Bus", "2.70", "Transport", day, true),
		txn("Salary", "2000", "Salary", day, false),
		txn("Old label", "5", "Deleted Category", day, true),
	}}
	engine := New(reader)

	spending, err := engine.CategorySpending(ctx, 2, 2024)
	require.NoError(t, err)
	require.Len(t, spending, 3)
	assert.Equal(t, "42.3", spending["Food"].String(), "decimal sums must not drift")
	assert.Equal(t, "2.7", spending["Transport"].String())
	assert.Equal(t, "5", spending["Deleted Category"].String())
	_, hasIncome := spending["Salary"]
	assert.False(t, hasIncome)

	sum := decimal.Zero
	for _, amount := range spending {
		sum = sum.Add(amount)
	}
	expense, err := engine.TotalExpense(ctx, 2, 2024)
	require.NoError(t, err)
	assert.True(t, sum.Equal(expense))
}

func TestEngine_CategorySpending_OrderIndependent(t *testing.T) {
	ctx := context.Background()
	txns := marchLedger("10", "20.5", "30")
	reversed := make([]model.Transaction, len(txns))
	for i, record := range txns {
		reversed[len(txns)-1-i] = record
	}

	a, err := New(&memoryReader{txns: txns}).CategorySpending(ctx, 2, 2024)
	require.NoError(t, err)
	b, err := New(&memoryReader{txns: reversed}).CategorySpending(ctx, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, a["Food"].String(), b["Food"].String())
}

func TestEngine_Totals(t *testing.T) {
	ctx := context.Background()
	engine := New(&memoryReader{txns: marchLedger("100", "250")})

	income, err := engine.TotalIncome(ctx, 2, 2024)
	require.NoError(t, err)
	assert.True(t, income.Equal(decimal.NewFromInt(3000)))

	expense, err := engine.TotalExpense(ctx, 2, 2024)
	require.NoError(t, err)
	assert.True(t, expense.Equal(decimal.NewFromInt(350)))

	empty, err := engine.TotalIncome(ctx, 6, 2024)
	require.NoError(t, err)
	assert.True(t, empty.IsZero())
}

func TestEngine_BudgetScenarios(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		budget        *model.Budget
		name          string
		expenses      []string
		month         int
		wantOver      bool
		wantRemaining float64
		wantStatus    alert.Status
	}{
		{
			name:          "warning at 850 of 1000",
			budget:        march2024Budget(),
			expenses:      []string{"500", "350"},
			month:         2,
			wantOver:      false,
			wantRemaining: 15,
			wantStatus:    alert.StatusWarning,
		},
		{
			name:          "exceeded at 1200 of 1000",
			budget:        march2024Budget(),
			expenses:      []string{"1200"},
			month:         2,
			wantOver:      true,
			wantRemaining: 0,
			wantStatus:    alert.StatusExceeded,
		},
		{
			name:          "safe at 400 of 1000",
			budget:        march2024Budget(),
			expenses:      []string{"400"},
			month:         2,
			wantOver:      false,
			wantRemaining: 60,
			wantStatus:    alert.StatusSafe,
		},
		{
			name:          "no budget for april",
			budget:        march2024Budget(),
			expenses:      []string{"5000"},
			month:         3,
			wantOver:      false,
			wantRemaining: 0,
			wantStatus:    alert.StatusSafe,
		},
		{
			name:          "zero budget amount",
			budget:        &model.Budget{Amount: decimal.Zero, Month: 2, Year: 2024},
			expenses:      nil,
			month:         2,
			wantOver:      false,
			wantRemaining: 0,
			wantStatus:    alert.StatusSafe,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := New(&memoryReader{budget: tt.budget, txns: marchLedger(tt.expenses...)})

			over, err := engine.IsOverBudget(ctx, tt.month, 2024)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOver, over)

			remaining, err := engine.BudgetRemainingPercentage(ctx, tt.month, 2024)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantRemaining, remaining, 1e-9)

			summary, err := engine.Summary(ctx, tt.month, 2024)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, summary.Alert.Status)
			assert.Equal(t, tt.wantOver, summary.OverBudget)
		})
	}
}

func TestEngine_Summary(t *testing.T) {
	ctx := context.Background()
	engine := New(&memoryReader{budget: march2024Budget(), txns: marchLedger("500", "350")})

	summary, err := engine.Summary(ctx, 2, 2024)
	require.NoError(t, err)

	assert.Equal(t, "March 2024", summary.Label)
	assert.Equal(t, "USD", summary.CurrencyCode)
	assert.Len(t, summary.Transactions, 3)
	assert.True(t, summary.Income.Equal(decimal.NewFromInt(3000)))
	assert.True(t, summary.Expense.Equal(decimal.NewFromInt(850)))
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(2150)))
	require.NotNil(t, summary.Budget)
	assert.Equal(t, 85, summary.UsedPercentage)
	assert.InDelta(t, 15.0, summary.RemainingPercentage, 1e-9)
	assert.True(t, summary.Alert.Remaining.Equal(decimal.NewFromInt(150)))

	require.Len(t, summary.Categories, 1)
	assert.Equal(t, "Food", summary.Categories[0].Name)
}

func TestEngine_Summary_Remaining(t *testing.T) {
	tests := []struct {
		name          string
		expenses      []string
		wantRemaining int64
		wantStatus    alert.Status
	}{
		{name: "safe", expenses: []string{"100"}, wantRemaining: 900, wantStatus: alert.StatusSafe},
		{name: "untouched", expenses: nil, wantRemaining: 1000, wantStatus: alert.StatusSafe},
		{name: "warning", expenses: []string{"850"}, wantRemaining: 150, wantStatus: alert.StatusWarning},
		{name: "exceeded", expenses: []string{"850", "350"}, wantRemaining: -200, wantStatus: alert.StatusExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := New(&memoryReader{budget: march2024Budget(), txns: marchLedger(tt.expenses...)})

			summary, err := engine.Summary(context.Background(), 2, 2024)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, summary.Alert.Status)
			assert.True(t, summary.Remaining.Equal(decimal.NewFromInt(tt.wantRemaining)),
				"remaining = %s", summary.Remaining)
		})
	}
}

func TestEngine_Summary_InactiveBudgetIsHidden(t *testing.T) {
	engine := New(&memoryReader{budget: march2024Budget(), txns: marchLedger()})

	summary, err := engine.Summary(context.Background(), 1, 2024)
	require.NoError(t, err)
	assert.Nil(t, summary.Budget)
	assert.Zero(t, summary.UsedPercentage)
	assert.True(t, summary.Expense.Equal(decimal.NewFromInt(900)))
	assert.True(t, summary.Remaining.IsZero())
}

func TestEngine_PropagatesStoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk unplugged")
	engine := New(&memoryReader{err: boom})

	_, err := engine.TotalExpense(ctx, 2, 2024)
	assert.ErrorIs(t, err, boom)
	_, err = engine.IsOverBudget(ctx, 2, 2024)
	assert.ErrorIs(t, err, boom)
	_, err = engine.Summary(ctx, 2, 2024)
	assert.ErrorIs(t, err, boom)
}

func TestSortedSpending(t *testing.T) {
	got := sortedSpending(map[string]decimal.Decimal{
		"Bills":     decimal.NewFromInt(50),
		"Food":      decimal.NewFromInt(120),
		"Transport": decimal.NewFromInt(50),
	})

	require.Len(t, got, 3)
	assert.Equal(t, "Food", got[0].Name)
	assert.Equal(t, "Bills", got[1].Name)
	assert.Equal(t, "Transport", got[2].Name)
}

func TestUsedPercentage(t *testing.T) {
	tests := []struct {
		amount  string
		expense string
		want    int
	}{
		{amount: "1000", expense: "850", want: 85},
		{amount: "1000", expense: "1200", want: 100},
		{amount: "300", expense: "100", want: 33},
		{amount: "1000", expense: "-50", want: 0},
		{amount: "0", expense: "10", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.amount+"/"+tt.expense, func(t *testing.T) {
			got := UsedPercentage(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.expense))
			assert.Equal(t, tt.want, got)
		})
	}
}
