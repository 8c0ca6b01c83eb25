// Package storage provides the data persistence layer for the ledger.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/pocketledger/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrInvalidLedger = errors.New("invalid ledger snapshot")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateCurrency ensures the code is one of the selectable currencies.
func validateCurrency(code string) error {
	if !model.IsSupportedCurrency(code) {
		return fmt.Errorf("%w: %q", model.ErrUnsupportedCurrency, code)
	}
	return nil
}

// validateLedger checks the structural shape of a snapshot before a restore.
// Business rules (positive amounts, known categories) are not checked here.
func validateLedger(ledger *model.Ledger) error {
	if ledger == nil {
		return fmt.Errorf("%w: ledger", ErrNilParameter)
	}
	if err := validateCurrency(ledger.Preferences.CurrencyCode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLedger, err)
	}
	return nil
}
