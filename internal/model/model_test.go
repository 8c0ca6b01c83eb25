package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	valid := NewTransaction("Lunch", decimal.RequireFromString("12.50"), "Food", NewDate(time.Now()), true, "")

	tests := []struct {
		wantErr error
		mutate  func(*Transaction)
		name    string
	}{
		{name: "valid", mutate: func(*Transaction) {}},
		{name: "missing id", mutate: func(t *Transaction) { t.ID = "" }, wantErr: ErrMissingID},
		{name: "blank title", mutate: func(t *Transaction) { t.Title = "   " }, wantErr: ErrEmptyTitle},
		{name: "zero amount", mutate: func(t *Transaction) { t.Amount = decimal.Zero }, wantErr: ErrInvalidAmount},
		{name: "negative amount", mutate: func(t *Transaction) { t.Amount = decimal.NewFromInt(-5) }, wantErr: ErrInvalidAmount},
		{name: "no category", mutate: func(t *Transaction) { t.Category = "" }, wantErr: ErrEmptyCategory},
		{name: "invalid date", mutate: func(t *Transaction) { t.Date = Date{} }, wantErr: ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid
			tt.mutate(&txn)
			err := txn.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewTransaction_AssignsUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		txn := NewTransaction("t", decimal.NewFromInt(1), "Food", NewDate(time.Now()), true, "")
		require.NotEmpty(t, txn.ID)
		require.False(t, seen[txn.ID], "duplicate id %s", txn.ID)
		seen[txn.ID] = true
	}
}

func TestTransaction_JSONFieldNames(t *testing.T) {
	txn := Transaction{
		ID:        "abc",
		Title:     "Salary",
		Amount:    decimal.RequireFromString("2500.00"),
		Category:  "Salary",
		Date:      NewDate(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
		IsExpense: false,
		Notes:     "march",
	}

	data, err := json.Marshal(txn)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "abc",
		"title": "Salary",
		"amount": "2500",
		"category": "Salary",
		"date": "2024-03-01T09:00:00Z",
		"isExpense": false,
		"notes": "march"
	}`, string(data))
}

func TestBudget_IsActiveFor(t *testing.T) {
	b := &Budget{Amount: decimal.NewFromInt(1000), Month: 2, Year: 2024}

	assert.True(t, b.IsActiveFor(2, 2024))
	assert.False(t, b.IsActiveFor(3, 2024))
	assert.False(t, b.IsActiveFor(2, 2023))

	var none *Budget
	assert.False(t, none.IsActiveFor(2, 2024))
}

func TestBudget_Validate(t *testing.T) {
	assert.NoError(t, Budget{Amount: decimal.NewFromInt(1), Month: 0, Year: 2024}.Validate())
	assert.ErrorIs(t, Budget{Amount: decimal.Zero, Month: 0}.Validate(), ErrInvalidAmount)
	assert.ErrorIs(t, Budget{Amount: decimal.NewFromInt(1), Month: 12}.Validate(), ErrInvalidMonth)
	assert.ErrorIs(t, Budget{Amount: decimal.NewFromInt(1), Month: -1}.Validate(), ErrInvalidMonth)
}

func TestColor_JSON(t *testing.T) {
	t.Run("hex round trip", func(t *testing.T) {
		c := MustParseColor("#FF5722")
		assert.Equal(t, Color{R: 0xFF, G: 0x57, B: 0x22}, c)

		data, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Equal(t, `"#ff5722"`, string(data))

		var decoded Color
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, c, decoded)
	})

	t.Run("packed argb integer", func(t *testing.T) {
		var c Color
		// 0xFFFF5722 as a signed 32-bit integer.
		require.NoError(t, json.Unmarshal([]byte(`-43230`), &c))
		assert.Equal(t, Color{R: 0xFF, G: 0x57, B: 0x22}, c)
	})

	t.Run("invalid hex", func(t *testing.T) {
		var c Color
		assert.Error(t, json.Unmarshal([]byte(`"purple"`), &c))
	})
}

func TestDefaultCategories(t *testing.T) {
	defaults := DefaultCategories()
	require.Len(t, defaults, 9)
	assert.Len(t, FilterCategories(defaults, CategoryTypeExpense), 6)
	assert.Len(t, FilterCategories(defaults, CategoryTypeIncome), 3)

	ids := make(map[string]bool)
	for _, c := range defaults {
		assert.False(t, ids[c.ID], "duplicate id %s", c.ID)
		ids[c.ID] = true
	}
}

func TestIsSupportedCurrency(t *testing.T) {
	for _, code := range SupportedCurrencies {
		assert.True(t, IsSupportedCurrency(code))
	}
	assert.False(t, IsSupportedCurrency("CHF"))
	assert.False(t, IsSupportedCurrency("usd"))
}
