package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Slot keys. Each holds one JSON-encoded value.
const (
	slotTransactions        = "transactions"
	slotCategories          = "categories"
	slotBudget              = "budget"
	slotCurrency            = "currency"
	slotEnableNotifications = "enable_notifications"
	slotEnableReminder      = "enable_reminder"
	slotCategoriesSeeded    = "categories_seeded"
)

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// readSlot returns the raw JSON of a slot and whether it exists.
func readSlot(ctx context.Context, q queryer, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return value, true, nil
}

// loadSlot decodes a slot into a fresh T. A missing slot yields the zero
// value. Corrupt JSON is logged and also yields the zero value, so read
// paths stay available when a slot is damaged.
func loadSlot[T any](ctx context.Context, q queryer, key string) (T, error) {
	var zero T
	raw, found, err := readSlot(ctx, q, key)
	if err != nil || !found {
		return zero, err
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		slog.WarnContext(ctx, "Ignoring corrupt slot",
			"slot", key,
			"error", err)
		return zero, nil
	}
	return value, nil
}

// writeSlot encodes value and stores it under key.
func writeSlot(ctx context.Context, q queryer, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", key, err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

// deleteSlot removes a slot. Deleting a missing slot is not an error.
func deleteSlot(ctx context.Context, q queryer, key string) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}
