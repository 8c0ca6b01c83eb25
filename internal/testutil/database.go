// Package testutil provides test utilities for the pocket ledger: isolated
// databases and a fluent builder for ledger contents.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/pocketledger/internal/model"
	"github.com/Veraticus/pocketledger/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage *storage.SQLiteStorage
	Ledger  *model.Ledger
	t       *testing.T
}

// SetupTestDB creates a migrated database in the test's temp directory and
// fills it from the builder. Cleanup is registered with t.
//
// Example:
//
//	db := testutil.SetupTestDB(t, testutil.NewLedgerBuilder().
//		WithFixture(testutil.FixtureMarch2024).
//		WithExpense("Laptop", "350", "Shopping", model.Day(2024, 2, 20)))
func SetupTestDB(t *testing.T, builder *LedgerBuilder) *TestDB {
	t.Helper()
	return setup(t, filepath.Join(t.TempDir(), "pocket.db"), builder)
}

// SetupMemoryDB is SetupTestDB on an in-memory database.
func SetupMemoryDB(t *testing.T, builder *LedgerBuilder) *TestDB {
	t.Helper()
	return setup(t, storage.MemoryPath, builder)
}

func setup(t *testing.T, path string, builder *LedgerBuilder) *TestDB {
	t.Helper()

	ctx := context.Background()
	store, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	// Register cleanup
	t.Cleanup(func() {
		_ = store.Close()
	})

	if builder == nil {
		builder = NewLedgerBuilder()
	}
	ledger, err := builder.Build(ctx, store)
	if err != nil {
		t.Fatalf("failed to build ledger: %v", err)
	}

	return &TestDB{
		Storage: store,
		Ledger:  ledger,
		t:       t,
	}
}

// MustFindTransaction returns the built transaction with the given title or
// fails the test.
func (db *TestDB) MustFindTransaction(title string) model.Transaction {
	db.t.Helper()
	for _, txn := range db.Ledger.Transactions {
		if txn.Title == title {
			return txn
		}
	}
	db.t.Fatalf("transaction %q not found in test data", title)
	return model.Transaction{}
}

// Reload returns a fresh snapshot of what the database holds now.
func (db *TestDB) Reload() *model.Ledger {
	db.t.Helper()
	ledger, err := db.Storage.Snapshot(context.Background())
	if err != nil {
		db.t.Fatalf("failed to snapshot test database: %v", err)
	}
	return ledger
}
