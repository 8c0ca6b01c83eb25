package testutil

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pocketledger/internal/model"
)

func TestSetupTestDB_EmptyBuilder(t *testing.T) {
	db := SetupTestDB(t, nil)

	assert.Empty(t, db.Ledger.Transactions)
	assert.Nil(t, db.Ledger.Budget)
	assert.Len(t, db.Ledger.Categories, len(model.DefaultCategories()))
	assert.Equal(t, model.DefaultPreferences(), db.Ledger.Preferences)
}

func TestSetupTestDB_Fixture(t *testing.T) {
	db := SetupMemoryDB(t, NewLedgerBuilder().
		WithFixture(FixtureMarch2024).
		WithCategory("Pets", "#795548", true).
		WithCurrency("EUR").
		WithNotifications(true, false))

	assert.Len(t, db.Ledger.Transactions, 4)
	require.NotNil(t, db.Ledger.Budget)
	assert.True(t, db.Ledger.Budget.Amount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 2, db.Ledger.Budget.Month)
	assert.Len(t, db.Ledger.Categories, len(model.DefaultCategories())+1)
	assert.Equal(t, "EUR", db.Ledger.Preferences.CurrencyCode)
	assert.True(t, db.Ledger.Preferences.NotificationsEnabled)
	assert.False(t, db.Ledger.Preferences.ReminderEnabled)

	rent := db.MustFindTransaction("Rent")
	assert.True(t, rent.IsExpense)
	assert.Equal(t, "Bills", rent.Category)
}

func TestSetupTestDB_ReloadSeesLaterWrites(t *testing.T) {
	db := SetupTestDB(t, NewLedgerBuilder().WithFixture(FixtureQuarter))

	gift := db.MustFindTransaction("Gift")
	require.NoError(t, db.Storage.DeleteTransaction(context.Background(), gift.ID))

	assert.Len(t, db.Reload().Transactions, len(db.Ledger.Transactions)-1)
}

func TestLedgerBuilder_InvalidInput(t *testing.T) {
	tests := []struct {
		builder *LedgerBuilder
		name    string
	}{
		{name: "bad amount", builder: NewLedgerBuilder().WithExpense("Lunch", "twelve", "Food", model.Day(2024, 0, 1))},
		{name: "bad budget", builder: NewLedgerBuilder().WithBudget("lots", 0, 2024)},
		{name: "bad color", builder: NewLedgerBuilder().WithCategory("Pets", "brown", true)},
		{name: "unsupported currency", builder: NewLedgerBuilder().WithCurrency("XYZ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := SetupMemoryDB(t, nil)
			_, err := tt.builder.Build(context.Background(), db.Storage)
			assert.Error(t, err)
		})
	}
}
