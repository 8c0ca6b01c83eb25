package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction validation errors.
var (
	ErrEmptyTitle          = errors.New("title cannot be empty")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrEmptyCategory       = errors.New("category cannot be empty")
	ErrInvalidDate         = errors.New("invalid date")
	ErrMissingID           = errors.New("missing ID")
	ErrInvalidMonth        = errors.New("month must be between 0 and 11")
	ErrUnsupportedCurrency = errors.New("unsupported currency code")
)

// Transaction represents a single income or expense entry in the ledger.
type Transaction struct {
	Date      Date            `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Category  string          `json:"category"` // Category name, not ID
	Notes     string          `json:"notes"`
	IsExpense bool            `json:"isExpense"`
}

// NewTransaction creates a transaction with a freshly assigned ID.
func NewTransaction(title string, amount decimal.Decimal, category string, date Date, isExpense bool, notes string) Transaction {
	return Transaction{
		ID:        NewID(),
		Title:     title,
		Amount:    amount,
		Category:  category,
		Date:      date,
		IsExpense: isExpense,
		Notes:     notes,
	}
}

// NewID returns a new opaque unique identifier.
func NewID() string {
	return uuid.NewString()
}

// Validate checks the business rules a caller should enforce before
// handing the transaction to the store. The store itself accepts any
// structurally valid record.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if !t.Date.Valid() {
		return ErrInvalidDate
	}
	return nil
}
