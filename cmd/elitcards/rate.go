package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"elitcards/pkg/shop"
)

func newRateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rate [usd-to-ghs]",
		Short: "Show or set the USD to GHS exchange rate",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				rate, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("rate %q: %w", args[0], shop.ErrInvalidRate)
				}
				if err := c.app.Accounts.SetExchangeRate(cmd.Context(), rate); err != nil {
					return err
				}
			}
			rate, err := c.app.Accounts.ExchangeRate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "1 USD = %s GHS\n", strconv.FormatFloat(rate, 'f', -1, 64))
			return nil
		},
	}
}
