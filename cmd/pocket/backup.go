package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pocketledger/internal/backup"
	"github.com/Veraticus/pocketledger/internal/cli"
	"github.com/Veraticus/pocketledger/internal/common"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import the whole ledger as JSON",
		Long: `Export every transaction, category, the budget and settings to a
JSON file, or replace the ledger with the contents of one.`,
	}

	cmd.AddCommand(backupExportCmd())
	cmd.AddCommand(backupImportCmd())

	return cmd
}

func backupExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Write a backup file",
		Long: `Write a backup file. Without a path the file goes to the backup
directory (backup.dir) with a timestamped name. Use "-" for stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			codec := backup.New(store)

			if len(args) == 1 && args[0] == "-" {
				return codec.Write(ctx, cmd.OutOrStdout())
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, cerr := currentConfig()
				if cerr != nil {
					return cerr
				}
				path = filepath.Join(cfg.BackupDir, fmt.Sprintf("pocket-backup-%s.json", now().Format("20060102-150405")))
			}

			if err := codec.ExportFile(ctx, path); err != nil {
				return fmt.Errorf("failed to export backup: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Backup written to %s", path)))
			return nil
		},
	}
}

func backupImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Replace the ledger with a backup file",
		Long: `Replace every transaction, category, the budget and settings with
the contents of a backup file. The file is checked completely first; if
anything is missing or malformed nothing is changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			path := args[0]

			if _, err := os.Stat(path); err != nil {
				return common.NewUserError(fmt.Sprintf("Cannot read %s", path), err)
			}

			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				ok, err := cli.NewPrompter(stdin, out).Confirm(ctx, "This replaces all current data. Continue?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, cli.FormatInfo("Import cancelled"))
					return nil
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			if err := backup.New(store).ImportFile(ctx, path); err != nil {
				if errors.Is(err, backup.ErrInvalidDocument) {
					return common.NewUserError("Backup file is not valid; nothing was imported", err)
				}
				return fmt.Errorf("failed to import backup: %w", err)
			}

			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %s", path)))

			_, err = checkBudget(ctx, out, store)
			return err
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "skip confirmation")
	return cmd
}
