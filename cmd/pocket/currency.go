package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Veraticus/pocketledger/internal/cli"
	"github.com/Veraticus/pocketledger/internal/common"
	"github.com/Veraticus/pocketledger/internal/currency"
	"github.com/Veraticus/pocketledger/internal/model"
)

func currencyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "currency",
		Short: "Choose the display currency",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current and available currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			current, err := store.GetCurrency(ctx)
			if err != nil {
				return fmt.Errorf("failed to load currency: %w", err)
			}

			out := cmd.OutOrStdout()
			sample := decimal.NewFromFloat(1234.5)
			for _, code := range currency.Available() {
				line := fmt.Sprintf("    %-3s  %s", code, cli.SubtleStyle.Render(currency.Format(sample, code)))
				if code == current {
					line = cli.BoldStyle.Render(fmt.Sprintf("  %s %-3s", cli.SuccessIcon, code)) + "  " + currency.Format(sample, code)
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <code>",
		Short:     "Set the display currency",
		Args:      cobra.ExactArgs(1),
		ValidArgs: model.SupportedCurrencies,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			code := strings.ToUpper(strings.TrimSpace(args[0]))
			if !model.IsSupportedCurrency(code) {
				return common.NewUserError(
					fmt.Sprintf("Unsupported currency %q (choose one of %s)", args[0], strings.Join(currency.Available(), ", ")),
					model.ErrUnsupportedCurrency)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			if err := store.SetCurrency(ctx, code); err != nil {
				return fmt.Errorf("failed to save currency: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Currency set to %s (%s)", code, currency.Symbol(code))))
			return nil
		},
	})

	return cmd
}
