package storage

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Veraticus/pocketledger/internal/model"
)

// SetBudget replaces the single stored budget.
func (s *SQLiteStorage) SetBudget(ctx context.Context, budget model.Budget) error {
	return s.update(ctx, func(tx *sql.Tx) error {
		if err := writeSlot(ctx, tx, slotBudget, budget); err != nil {
			return err
		}
		slog.Debug("saved budget",
			"amount", budget.Amount.String(),
			"month", budget.Month,
			"year", budget.Year)
		return nil
	})
}

// GetBudget returns the stored budget, or nil when none has been set.
func (s *SQLiteStorage) GetBudget(ctx context.Context) (*model.Budget, error) {
	var budget *model.Budget
	err := s.view(ctx, func(q queryer) error {
		var err error
		budget, err = loadBudget(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	return budget, nil
}

// loadBudget decodes the budget slot. A JSON null is the same as no budget.
func loadBudget(ctx context.Context, q queryer) (*model.Budget, error) {
	budget, err := loadSlot[*model.Budget](ctx, q, slotBudget)
	return budget, err
}
