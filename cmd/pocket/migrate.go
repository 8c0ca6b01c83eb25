package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pocketledger/internal/cli"
	"github.com/Veraticus/pocketledger/internal/storage"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

Every command migrates on first use; this command is for checking or
preparing a database ahead of time.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Show current migration status without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	status, _ := cmd.Flags().GetBool("status")

	cfg, err := currentConfig()
	if err != nil {
		return err
	}

	slog.Debug("Starting database migration", "database", cfg.DatabasePath, "status_only", status)

	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if !status {
		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	version, dirty, err := store.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, cli.FormatTitle("Database Migration Status"))
	fmt.Fprintf(out, "Database:        %s\n", store.Path())
	fmt.Fprintf(out, "Current version: %d\n", version)
	fmt.Fprintf(out, "Latest version:  %d\n", storage.ExpectedSchemaVersion)

	switch {
	case dirty:
		fmt.Fprintln(out, cli.FormatError("Schema is dirty; a migration failed part way"))
	case version < storage.ExpectedSchemaVersion:
		fmt.Fprintln(out, cli.FormatWarning("Migrations pending; run 'pocket migrate'"))
	default:
		fmt.Fprintln(out, cli.FormatSuccess("Database schema is current"))
	}
	return nil
}
