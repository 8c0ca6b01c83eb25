package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pocketledger/internal/alert"
	"github.com/Veraticus/pocketledger/internal/calendar"
	"github.com/Veraticus/pocketledger/internal/cli"
)

func alertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Run the budget check and daily reminder",
		Long: `Run the checks a scheduler (cron, systemd timer) would trigger.

'check' evaluates this month's spending against the budget and prints a
warning when less than 20% remains or the budget is exceeded.
'remind' prints the daily expense reminder when it is enabled.`,
	}

	cmd.AddCommand(alertsCheckCmd())
	cmd.AddCommand(alertsRemindCmd())

	return cmd
}

func alertsCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check this month's spending against the budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			check, err := checkBudget(ctx, out, store)
			if err != nil {
				return err
			}

			quiet, _ := cmd.Flags().GetBool("quiet")
			if check.Notification != nil || quiet {
				return nil
			}

			label := calendar.MonthYearLabel(check.Month, check.Year)
			switch {
			case !check.Budget.IsActiveFor(check.Month, check.Year):
				fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("No budget set for %s", label)))
			case check.Result.Status == alert.StatusSafe:
				fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Spending for %s is within budget", label)))
			default:
				fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Budget is %s but notifications are off", check.Result.Status)))
			}
			return nil
		},
	}
	cmd.Flags().BoolP("quiet", "q", false, "print nothing unless a notification fires")
	return cmd
}

func alertsRemindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Print the daily expense reminder if enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			prefs, err := store.GetPreferences(ctx)
			if err != nil {
				return fmt.Errorf("failed to load preferences: %w", err)
			}
			if n := alert.Reminder(prefs); n != nil {
				printNotification(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
