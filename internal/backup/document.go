// Package backup exports the whole ledger to a JSON document and restores
// it again. Imports are all-or-nothing: a document is fully validated
// before anything in the store changes.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/pocketledger/internal/model"
)

// ErrInvalidDocument is returned for a backup that is not well formed.
var ErrInvalidDocument = errors.New("invalid backup document")

// Field is a document value that remembers whether its key was present
// and whether it held JSON null.
type Field[T any] struct {
	Value   T
	Present bool
	Null    bool
}

// Set returns a present field holding v.
func Set[T any](v T) Field[T] {
	return Field[T]{Value: v, Present: true}
}

// UnmarshalJSON records presence before decoding the value.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Present = true
	f.Null = bytes.Equal(bytes.TrimSpace(data), []byte("null"))
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON writes the bare value.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Value)
}

// Document is the backup file format. Keys mirror the stored slots.
type Document struct {
	Transactions        Field[[]model.Transaction] `json:"transactions"`
	Categories          Field[[]model.Category]    `json:"categories"`
	Budget              Field[*model.Budget]       `json:"budget"`
	Currency            Field[string]              `json:"currency"`
	EnableNotifications Field[bool]                `json:"enable_notifications"`
	EnableReminder      Field[bool]                `json:"enable_reminder"`
}

// NewDocument builds a document from a ledger snapshot.
func NewDocument(ledger *model.Ledger) *Document {
	transactions := ledger.Transactions
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	categories := ledger.Categories
	if categories == nil {
		categories = []model.Category{}
	}

	return &Document{
		Transactions:        Set(transactions),
		Categories:          Set(categories),
		Budget:              Set(ledger.Budget),
		Currency:            Set(ledger.Preferences.CurrencyCode),
		EnableNotifications: Set(ledger.Preferences.NotificationsEnabled),
		EnableReminder:      Set(ledger.Preferences.ReminderEnabled),
	}
}

// Validate checks that every key is present and well typed. Every problem
// found is reported, wrapped in ErrInvalidDocument.
func (d *Document) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	var problems []string
	need := func(key string, present, null, nullable bool) bool {
		switch {
		case !present:
			problems = append(problems, fmt.Sprintf("missing %q", key))
			return false
		case null && !nullable:
			problems = append(problems, fmt.Sprintf("%q must not be null", key))
			return false
		}
		return true
	}

	if need("transactions", d.Transactions.Present, d.Transactions.Null, false) {
		problems = append(problems, checkTransactionIDs(d.Transactions.Value)...)
	}
	if need("categories", d.Categories.Present, d.Categories.Null, false) {
		problems = append(problems, checkCategoryIDs(d.Categories.Value)...)
	}
	if need("budget", d.Budget.Present, d.Budget.Null, true) && d.Budget.Value != nil {
		if m := d.Budget.Value.Month; m < 0 || m > 11 {
			problems = append(problems, fmt.Sprintf("budget month %d out of range", m))
		}
	}
	if need("currency", d.Currency.Present, d.Currency.Null, false) &&
		!model.IsSupportedCurrency(d.Currency.Value) {
		problems = append(problems, fmt.Sprintf("unsupported currency %q", d.Currency.Value))
	}
	need("enable_notifications", d.EnableNotifications.Present, d.EnableNotifications.Null, false)
	need("enable_reminder", d.EnableReminder.Present, d.EnableReminder.Null, false)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(problems, "; "))
	}
	return nil
}

// Ledger converts a validated document into a snapshot for restore.
func (d *Document) Ledger() *model.Ledger {
	return &model.Ledger{
		Transactions: d.Transactions.Value,
		Categories:   d.Categories.Value,
		Budget:       d.Budget.Value,
		Preferences: model.Preferences{
			CurrencyCode:         d.Currency.Value,
			NotificationsEnabled: d.EnableNotifications.Value,
			ReminderEnabled:      d.EnableReminder.Value,
		},
	}
}

func checkTransactionIDs(transactions []model.Transaction) []string {
	var problems []string
	seen := make(map[string]bool, len(transactions))
	for i, t := range transactions {
		switch {
		case t.ID == "":
			problems = append(problems, fmt.Sprintf("transaction %d has no id", i))
		case seen[t.ID]:
			problems = append(problems, fmt.Sprintf("duplicate transaction id %q", t.ID))
		}
		seen[t.ID] = true
	}
	return problems
}

func checkCategoryIDs(categories []model.Category) []string {
	var problems []string
	seen := make(map[string]bool, len(categories))
	for i, c := range categories {
		switch {
		case c.ID == "":
			problems = append(problems, fmt.Sprintf("category %d has no id", i))
		case seen[c.ID]:
			problems = append(problems, fmt.Sprintf("duplicate category id %q", c.ID))
		}
		seen[c.ID] = true
	}
	return problems
}
