package storage

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/Veraticus/pocketledger/internal/model"
)

// UpsertCategory replaces the category with the same ID in place, or
// appends it when the ID is new.
func (s *SQLiteStorage) UpsertCategory(ctx context.Context, category model.Category) error {
	if err := validateString(category.ID, "category.ID"); err != nil {
		return err
	}

	return s.update(ctx, func(tx *sql.Tx) error {
		categories, err := loadCategories(ctx, tx)
		if err != nil {
			return err
		}

		replaced := false
		for i := range categories {
			if categories[i].ID == category.ID {
				categories[i] = category
				replaced = true
				break
			}
		}
		if !replaced {
			categories = append(categories, category)
		}

		if err := writeSlot(ctx, tx, slotCategories, categories); err != nil {
			return err
		}
		// Once the user has touched categories the defaults must never reappear.
		if err := writeSlot(ctx, tx, slotCategoriesSeeded, true); err != nil {
			return err
		}

		slog.Debug("saved category", "id", category.ID, "name", category.Name, "replaced", replaced)
		return nil
	})
}

// ListCategories returns every category in storage order. The first call on
// a store that has never held categories seeds the default set.
func (s *SQLiteStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	var (
		categories []model.Category
		seeded     bool
	)
	err := s.view(ctx, func(q queryer) error {
		var err error
		if categories, err = loadCategories(ctx, q); err != nil {
			return err
		}
		seeded, err = loadSeeded(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}

	if len(categories) > 0 || seeded {
		return categories, nil
	}

	return s.seedCategories(ctx)
}

// seedCategories writes the default set unless another caller got there
// first. The check is repeated under the write lock.
func (s *SQLiteStorage) seedCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := s.update(ctx, func(tx *sql.Tx) error {
		var err error
		if categories, err = loadCategories(ctx, tx); err != nil {
			return err
		}
		seeded, err := loadSeeded(ctx, tx)
		if err != nil {
			return err
		}
		if len(categories) > 0 || seeded {
			return nil
		}

		categories = model.DefaultCategories()
		if err := writeSlot(ctx, tx, slotCategories, categories); err != nil {
			return err
		}
		if err := writeSlot(ctx, tx, slotCategoriesSeeded, true); err != nil {
			return err
		}

		slog.Info("Seeded default categories", "count", len(categories))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// loadCategories reads the category slot, never returning nil.
func loadCategories(ctx context.Context, q queryer) ([]model.Category, error) {
	categories, err := loadSlot[[]model.Category](ctx, q, slotCategories)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return categories, nil
}

func loadSeeded(ctx context.Context, q queryer) (bool, error) {
	seeded, err := loadSlot[bool](ctx, q, slotCategoriesSeeded)
	return seeded, err
}
