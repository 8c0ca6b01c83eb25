package alert

import (
	"fmt"

	"github.com/Veraticus/pocketledger/internal/currency"
	"github.com/Veraticus/pocketledger/internal/model"
)

// Kind identifies a notification so a notifier can replace rather than
// stack repeated alerts.
type Kind int

// Notification kinds.
const (
	KindBudgetWarning Kind = iota + 1
	KindBudgetExceeded
	KindExpenseReminder
)

func (k Kind) String() string {
	switch k {
	case KindBudgetWarning:
		return "budget_warning"
	case KindBudgetExceeded:
		return "budget_exceeded"
	case KindExpenseReminder:
		return "expense_reminder"
	default:
		return "unknown"
	}
}

// Notification is what an external notifier should show.
type Notification struct {
	Title string
	Text  string
	Kind  Kind
}

// Notify turns a budget result into a notification. It returns nil when the
// result is Safe or the user has budget notifications turned off.
func Notify(result Result, prefs model.Preferences) *Notification {
	if !prefs.NotificationsEnabled {
		return nil
	}

	switch result.Status {
	case StatusWarning:
		return &Notification{
			Kind:  KindBudgetWarning,
			Title: "Budget Warning",
			Text: fmt.Sprintf("You're approaching your monthly budget limit. Remaining: %s",
				currency.Format(result.Remaining, prefs.CurrencyCode)),
		}
	case StatusExceeded:
		return &Notification{
			Kind:  KindBudgetExceeded,
			Title: "Budget Exceeded",
			Text: fmt.Sprintf("You've exceeded your monthly budget by %s",
				currency.Format(result.Overage, prefs.CurrencyCode)),
		}
	default:
		return nil
	}
}

// Reminder returns the daily expense reminder, or nil when reminders are off.
func Reminder(prefs model.Preferences) *Notification {
	if !prefs.ReminderEnabled {
		return nil
	}
	return &Notification{
		Kind:  KindExpenseReminder,
		Title: "Expense Reminder",
		Text:  "Don't forget to record your daily expenses",
	}
}
