package testutil

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/pocketledger/internal/model"
	"github.com/Veraticus/pocketledger/internal/service"
)

// LedgerBuilder collects ledger contents fluently and writes them through
// the store's public operations.
type LedgerBuilder struct {
	budget       *model.Budget
	prefs        *model.Preferences
	transactions []model.Transaction
	categories   []model.Category
	err          error
}

// NewLedgerBuilder returns an empty builder. Building it yields the
// default categories and preferences.
func NewLedgerBuilder() *LedgerBuilder {
	return &LedgerBuilder{}
}

// WithExpense adds an expense. amount must be a decimal string.
func (b *LedgerBuilder) WithExpense(title, amount, category string, date model.Date) *LedgerBuilder {
	return b.withTransaction(title, amount, category, date, true)
}

// WithIncome adds an income transaction.
func (b *LedgerBuilder) WithIncome(title, amount, category string, date model.Date) *LedgerBuilder {
	return b.withTransaction(title, amount, category, date, false)
}

// WithTransaction adds a fully specified transaction as is.
func (b *LedgerBuilder) WithTransaction(txn model.Transaction) *LedgerBuilder {
	b.transactions = append(b.transactions, txn)
	return b
}

func (b *LedgerBuilder) withTransaction(title, amount, category string, date model.Date, isExpense bool) *LedgerBuilder {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		b.fail(fmt.Errorf("transaction %q: invalid amount %q: %w", title, amount, err))
		return b
	}
	return b.WithTransaction(model.NewTransaction(title, value, category, date, isExpense, ""))
}

// WithCategory adds a category after the defaults.
func (b *LedgerBuilder) WithCategory(name, hex string, isExpense bool) *LedgerBuilder {
	color, err := model.ParseColor(hex)
	if err != nil {
		b.fail(fmt.Errorf("category %q: %w", name, err))
		return b
	}
	b.categories = append(b.categories, model.Category{
		ID:        model.NewID(),
		Name:      name,
		Color:     color,
		IsExpense: isExpense,
	})
	return b
}

// WithBudget sets the monthly budget. month is 0-11.
func (b *LedgerBuilder) WithBudget(amount string, month, year int) *LedgerBuilder {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		b.fail(fmt.Errorf("budget: invalid amount %q: %w", amount, err))
		return b
	}
	b.budget = &model.Budget{Amount: value, Month: month, Year: year}
	return b
}

// WithCurrency sets the currency code.
func (b *LedgerBuilder) WithCurrency(code string) *LedgerBuilder {
	prefs := b.preferences()
	prefs.CurrencyCode = code
	return b
}

// WithNotifications sets both notification switches.
func (b *LedgerBuilder) WithNotifications(notify, remind bool) *LedgerBuilder {
	prefs := b.preferences()
	prefs.NotificationsEnabled = notify
	prefs.ReminderEnabled = remind
	return b
}

// WithFixture applies a predefined fixture.
func (b *LedgerBuilder) WithFixture(fixture Fixture) *LedgerBuilder {
	return fixture.Apply(b)
}

func (b *LedgerBuilder) preferences() *model.Preferences {
	if b.prefs == nil {
		prefs := model.DefaultPreferences()
		b.prefs = &prefs
	}
	return b.prefs
}

func (b *LedgerBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build writes the collected contents to store and returns the resulting
// snapshot.
func (b *LedgerBuilder) Build(ctx context.Context, store service.Storage) (*model.Ledger, error) {
	if b.err != nil {
		return nil, b.err
	}

	// Listing seeds the defaults before any custom category lands.
	if _, err := store.ListCategories(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}
	for _, c := range b.categories {
		if err := store.UpsertCategory(ctx, c); err != nil {
			return nil, fmt.Errorf("failed to add category %q: %w", c.Name, err)
		}
	}
	for _, txn := range b.transactions {
		if err := store.UpsertTransaction(ctx, txn); err != nil {
			return nil, fmt.Errorf("failed to add transaction %q: %w", txn.Title, err)
		}
	}
	if b.budget != nil {
		if err := store.SetBudget(ctx, *b.budget); err != nil {
			return nil, fmt.Errorf("failed to set budget: %w", err)
		}
	}
	if b.prefs != nil {
		if err := store.SetCurrency(ctx, b.prefs.CurrencyCode); err != nil {
			return nil, fmt.Errorf("failed to set currency: %w", err)
		}
		if err := store.SetNotificationPreferences(ctx, b.prefs.NotificationsEnabled, b.prefs.ReminderEnabled); err != nil {
			return nil, fmt.Errorf("failed to set notifications: %w", err)
		}
	}

	return store.Snapshot(ctx)
}
