package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/pocketledger/internal/common"
	"github.com/Veraticus/pocketledger/internal/model"
)

// UpsertTransaction replaces the transaction with the same ID in place, or
// appends it when the ID is new. The whole collection is persisted.
func (s *SQLiteStorage) UpsertTransaction(ctx context.Context, txn model.Transaction) error {
	if err := validateString(txn.ID, "transaction.ID"); err != nil {
		return err
	}

	return s.update(ctx, func(tx *sql.Tx) error {
		transactions, err := loadTransactions(ctx, tx)
		if err != nil {
			return err
		}

		replaced := false
		for i := range transactions {
			if transactions[i].ID == txn.ID {
				transactions[i] = txn
				replaced = true
				break
			}
		}
		if !replaced {
			transactions = append(transactions, txn)
		}

		if err := writeSlot(ctx, tx, slotTransactions, transactions); err != nil {
			return err
		}

		slog.Debug("saved transaction", "id", txn.ID, "replaced", replaced)
		return nil
	})
}

// DeleteTransaction removes every transaction with the given ID. Deleting
// an unknown ID is a no-op.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateString(id, "id"); err != nil {
		return err
	}

	return s.update(ctx, func(tx *sql.Tx) error {
		transactions, err := loadTransactions(ctx, tx)
		if err != nil {
			return err
		}

		kept := transactions[:0]
		for _, t := range transactions {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(transactions) {
			return nil
		}

		slog.Debug("deleted transaction", "id", id)
		return writeSlot(ctx, tx, slotTransactions, kept)
	})
}

// ListTransactions returns every transaction in storage order.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := s.view(ctx, func(q queryer) error {
		var err error
		transactions, err = loadTransactions(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("retrieved transactions", "count", len(transactions))
	return transactions, nil
}

// GetTransaction returns the transaction with the given ID.
func (s *SQLiteStorage) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	transactions, err := s.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	for i := range transactions {
		if transactions[i].ID == id {
			return &transactions[i], nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
}

// loadTransactions reads the transaction slot, never returning nil.
func loadTransactions(ctx context.Context, q queryer) ([]model.Transaction, error) {
	transactions, err := loadSlot[[]model.Transaction](ctx, q, slotTransactions)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	return transactions, nil
}
