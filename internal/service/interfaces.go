// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/pocketledger/internal/model"
)

// TransactionStore persists the transaction collection.
type TransactionStore interface {
	UpsertTransaction(ctx context.Context, txn model.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
}

// CategoryStore persists the category collection.
type CategoryStore interface {
	UpsertCategory(ctx context.Context, category model.Category) error
	ListCategories(ctx context.Context) ([]model.Category, error)
}

// BudgetStore persists the single monthly budget.
type BudgetStore interface {
	SetBudget(ctx context.Context, budget model.Budget) error
	GetBudget(ctx context.Context) (*model.Budget, error)
}

// PreferenceStore persists the user settings.
type PreferenceStore interface {
	SetCurrency(ctx context.Context, code string) error
	GetCurrency(ctx context.Context) (string, error)
	SetNotificationPreferences(ctx context.Context, notify, remind bool) error
	GetNotificationPreferences(ctx context.Context) (notify, remind bool, err error)
	GetPreferences(ctx context.Context) (model.Preferences, error)
}

// SnapshotStore reads and replaces the whole ledger atomically.
type SnapshotStore interface {
	Snapshot(ctx context.Context) (*model.Ledger, error)
	Restore(ctx context.Context, ledger *model.Ledger) error
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	TransactionStore
	CategoryStore
	BudgetStore
	PreferenceStore
	SnapshotStore

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
