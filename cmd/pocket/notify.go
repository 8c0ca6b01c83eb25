package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pocketledger/internal/cli"
	"github.com/Veraticus/pocketledger/internal/common"
)

func notifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Configure budget notifications and the daily reminder",
	}

	set := &cobra.Command{
		Use:     "set",
		Short:   "Turn budget notifications or the daily reminder on or off",
		Example: `  pocket notify set --budget=true --reminder=false`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()
			if !flags.Changed("budget") && !flags.Changed("reminder") {
				return common.NewUserError("Pass --budget and/or --reminder", common.ErrInvalidInput)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			notify, remind, err := store.GetNotificationPreferences(ctx)
			if err != nil {
				return fmt.Errorf("failed to load preferences: %w", err)
			}
			if flags.Changed("budget") {
				notify, _ = flags.GetBool("budget")
			}
			if flags.Changed("reminder") {
				remind, _ = flags.GetBool("reminder")
			}
			if err := store.SetNotificationPreferences(ctx, notify, remind); err != nil {
				return fmt.Errorf("failed to save preferences: %w", err)
			}

			printNotifyPreferences(cmd, notify, remind)
			return nil
		},
	}
	set.Flags().Bool("budget", false, "budget warning and exceeded notifications")
	set.Flags().Bool("reminder", false, "daily expense reminder")
	cmd.AddCommand(set)

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show notification settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			notify, remind, err := store.GetNotificationPreferences(ctx)
			if err != nil {
				return fmt.Errorf("failed to load preferences: %w", err)
			}
			printNotifyPreferences(cmd, notify, remind)
			return nil
		},
	})

	return cmd
}

func printNotifyPreferences(cmd *cobra.Command, notify, remind bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Budget notifications: %s\n", onOff(notify))
	fmt.Fprintf(out, "Daily reminder:       %s\n", onOff(remind))
}

func onOff(enabled bool) string {
	if enabled {
		return cli.SuccessStyle.Render("on")
	}
	return cli.SubtleStyle.Render("off")
}
