package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"elitcards/pkg/cart"
	"elitcards/pkg/shop"
)

func newProductsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the card catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireLogin(cmd); err != nil {
				return err
			}
			products, err := c.app.Catalog.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCARD\tNUMBER\tLIMIT\tPRICE")
			for _, p := range products {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Number, p.Limit, cart.FormatUSD(cart.Price(p)))
			}
			return tw.Flush()
		},
	}
}

func newProductCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireLogin(cmd); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p, err := c.app.Catalog.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			local, err := c.app.Cart.ToLocalCurrency(cmd.Context(), cart.Price(p))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", p.Title)
			fmt.Fprintf(out, "  number: %s\n", p.Number)
			fmt.Fprintf(out, "  limit:  %s\n", p.Limit)
			fmt.Fprintf(out, "  price:  %s (GHS %s)\n", cart.FormatUSD(cart.Price(p)), local)
			return nil
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("product id %q: %w", s, shop.ErrInvalidInput)
	}
	return id, nil
}

// requireLogin mirrors the storefront rule that browsing needs a session.
func (c *cli) requireLogin(cmd *cobra.Command) error {
	_, ok, err := c.app.Accounts.CurrentUser(cmd.Context())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: run `elitcards login` first", shop.ErrUnauthenticated)
	}
	return nil
}
