package model

import (
	"github.com/shopspring/decimal"
)

// Budget is the single monthly spending limit. Month is 0-11.
type Budget struct {
	Amount decimal.Decimal `json:"amount"`
	Month  int             `json:"month"`
	Year   int             `json:"year"`
}

// IsActiveFor reports whether the budget applies to the given month.
func (b *Budget) IsActiveFor(month, year int) bool {
	return b != nil && b.Month == month && b.Year == year
}

// Validate checks the rules a caller should enforce before saving.
func (b Budget) Validate() error {
	if !b.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if b.Month < 0 || b.Month > 11 {
		return ErrInvalidMonth
	}
	return nil
}
