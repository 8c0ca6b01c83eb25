package model

import "slices"

// DefaultCurrency is used until the user picks another one.
const DefaultCurrency = "USD"

// SupportedCurrencies is the fixed set of selectable currency codes.
var SupportedCurrencies = []string{"USD", "EUR", "GBP", "JPY", "INR", "LKR"}

// IsSupportedCurrency reports whether code is in SupportedCurrencies.
func IsSupportedCurrency(code string) bool {
	return slices.Contains(SupportedCurrencies, code)
}

// Preferences holds the process-wide user settings.
type Preferences struct {
	CurrencyCode         string
	NotificationsEnabled bool
	ReminderEnabled      bool
}

// DefaultPreferences returns the settings of a fresh ledger.
func DefaultPreferences() Preferences {
	return Preferences{CurrencyCode: DefaultCurrency}
}

// Ledger is a complete snapshot of the stored state.
type Ledger struct {
	Budget       *Budget
	Transactions []Transaction
	Categories   []Category
	Preferences  Preferences
}
