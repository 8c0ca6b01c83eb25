package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/Veraticus/pocketledger/internal/common"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 1

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies all pending database migrations.
//
// Migrations run on the storage's own connection so in-memory databases
// see the schema. The migrate instance is deliberately not closed: its
// driver would close the shared *sql.DB.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to verify schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("%w: schema version %d is dirty", common.ErrDatabaseCorrupted, version)
	}
	if version != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, version)
	}

	slog.Debug("Database schema is current", "version", version)
	return nil
}

// SchemaVersion reports the applied schema version without migrating.
// A database that was never migrated reports version 0.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (version uint, dirty bool, err error) {
	if err := validateContext(ctx); err != nil {
		return 0, false, err
	}

	err = s.view(ctx, func(q queryer) error {
		row := q.QueryRowContext(ctx, `SELECT version, dirty FROM schema_migrations LIMIT 1`)
		if scanErr := row.Scan(&version, &dirty); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) || strings.Contains(scanErr.Error(), "no such table") {
				version, dirty = 0, false
				return nil
			}
			return scanErr
		}
		return nil
	})
	if err != nil {
		return 0, false, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, dirty, nil
}
