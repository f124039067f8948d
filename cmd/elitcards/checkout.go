package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"elitcards/pkg/checkout"
)

func newCheckoutCmd(c *cli) *cobra.Command {
	var email, screenshot string
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Confirm a mobile-money payment with a screenshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var body []byte
			if screenshot != "" {
				b, err := os.ReadFile(screenshot)
				if err != nil {
					return err
				}
				body = b
			}
			conf, err := c.app.Checkout.Confirm(cmd.Context(), checkout.Request{Email: email, Screenshot: body})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Payment submitted. Reference %s\n", conf.Reference)
			fmt.Fprintf(out, "Total %s (GHS %s), confirmation goes to %s\n", conf.TotalUSD, conf.TotalLocal, conf.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email for the confirmation")
	cmd.Flags().StringVar(&screenshot, "screenshot", "", "image file of the transfer")
	cmd.MarkFlagRequired("email")
	return cmd
}
