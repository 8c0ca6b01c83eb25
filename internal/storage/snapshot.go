package storage

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Veraticus/pocketledger/internal/model"
)

// Snapshot reads every slot inside one transaction. A store that has never
// held categories is seeded first, the same as ListCategories.
func (s *SQLiteStorage) Snapshot(ctx context.Context) (*model.Ledger, error) {
	ledger := &model.Ledger{}
	var seeded bool
	err := s.view(ctx, func(q queryer) error {
		var err error
		if ledger.Transactions, err = loadTransactions(ctx, q); err != nil {
			return err
		}
		if ledger.Categories, err = loadCategories(ctx, q); err != nil {
			return err
		}
		if seeded, err = loadSeeded(ctx, q); err != nil {
			return err
		}
		if ledger.Budget, err = loadBudget(ctx, q); err != nil {
			return err
		}
		ledger.Preferences, err = loadPreferences(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(ledger.Categories) == 0 && !seeded {
		if ledger.Categories, err = s.seedCategories(ctx); err != nil {
			return nil, err
		}
	}
	return ledger, nil
}

// Restore replaces every slot with the ledger's contents in one transaction.
// On error nothing is changed.
func (s *SQLiteStorage) Restore(ctx context.Context, ledger *model.Ledger) error {
	if err := validateLedger(ledger); err != nil {
		return err
	}

	transactions := ledger.Transactions
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	categories := ledger.Categories
	if categories == nil {
		categories = []model.Category{}
	}

	return s.update(ctx, func(tx *sql.Tx) error {
		if err := writeSlot(ctx, tx, slotTransactions, transactions); err != nil {
			return err
		}
		if err := writeSlot(ctx, tx, slotCategories, categories); err != nil {
			return err
		}
		if err := writeSlot(ctx, tx, slotCategoriesSeeded, true); err != nil {
			return err
		}

		if ledger.Budget == nil {
			if err := deleteSlot(ctx, tx, slotBudget); err != nil {
				return err
			}
		} else if err := writeSlot(ctx, tx, slotBudget, ledger.Budget); err != nil {
			return err
		}

		if err := writeSlot(ctx, tx, slotCurrency, ledger.Preferences.CurrencyCode); err != nil {
			return err
		}
		if err := writeSlot(ctx, tx, slotEnableNotifications, ledger.Preferences.NotificationsEnabled); err != nil {
			return err
		}
		if err := writeSlot(ctx, tx, slotEnableReminder, ledger.Preferences.ReminderEnabled); err != nil {
			return err
		}

		slog.Info("Restored ledger",
			"transactions", len(transactions),
			"categories", len(categories),
			"budget", ledger.Budget != nil)
		return nil
	})
}
