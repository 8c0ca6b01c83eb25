package storage

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Veraticus/pocketledger/internal/model"
)

// SetCurrency persists the display currency. Codes outside
// model.SupportedCurrencies are rejected.
func (s *SQLiteStorage) SetCurrency(ctx context.Context, code string) error {
	if err := validateCurrency(code); err != nil {
		return err
	}

	return s.update(ctx, func(tx *sql.Tx) error {
		if err := writeSlot(ctx, tx, slotCurrency, code); err != nil {
			return err
		}
		slog.Debug("saved currency", "code", code)
		return nil
	})
}

// GetCurrency returns the display currency, model.DefaultCurrency when unset.
func (s *SQLiteStorage) GetCurrency(ctx context.Context) (string, error) {
	prefs, err := s.GetPreferences(ctx)
	if err != nil {
		return "", err
	}
	return prefs.CurrencyCode, nil
}

// SetNotificationPreferences persists both notification switches together.
func (s *SQLiteStorage) SetNotificationPreferences(ctx context.Context, notify, remind bool) error {
	return s.update(ctx, func(tx *sql.Tx) error {
		if err := writeSlot(ctx, tx, slotEnableNotifications, notify); err != nil {
			return err
		}
		if err := writeSlot(ctx, tx, slotEnableReminder, remind); err != nil {
			return err
		}
		slog.Debug("saved notification preferences", "notify", notify, "remind", remind)
		return nil
	})
}

// GetNotificationPreferences returns the budget-alert and daily-reminder
// switches. Both default to false.
func (s *SQLiteStorage) GetNotificationPreferences(ctx context.Context) (notify, remind bool, err error) {
	prefs, err := s.GetPreferences(ctx)
	if err != nil {
		return false, false, err
	}
	return prefs.NotificationsEnabled, prefs.ReminderEnabled, nil
}

// GetPreferences returns all user settings with defaults applied.
func (s *SQLiteStorage) GetPreferences(ctx context.Context) (model.Preferences, error) {
	var prefs model.Preferences
	err := s.view(ctx, func(q queryer) error {
		var err error
		prefs, err = loadPreferences(ctx, q)
		return err
	})
	return prefs, err
}

func loadPreferences(ctx context.Context, q queryer) (model.Preferences, error) {
	prefs := model.DefaultPreferences()

	code, err := loadSlot[string](ctx, q, slotCurrency)
	if err != nil {
		return prefs, err
	}
	switch {
	case code == "":
	case model.IsSupportedCurrency(code):
		prefs.CurrencyCode = code
	default:
		slog.WarnContext(ctx, "Ignoring unsupported stored currency",
			"code", code,
			"fallback", prefs.CurrencyCode)
	}

	if prefs.NotificationsEnabled, err = loadSlot[bool](ctx, q, slotEnableNotifications); err != nil {
		return prefs, err
	}
	if prefs.ReminderEnabled, err = loadSlot[bool](ctx, q, slotEnableReminder); err != nil {
		return prefs, err
	}
	return prefs, nil
}
