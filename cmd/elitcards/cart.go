package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCartCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireLogin(cmd); err != nil {
				return err
			}
			return c.printCart(cmd)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <id>",
			Short: "Add one unit of a card",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.requireLogin(cmd); err != nil {
					return err
				}
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := c.app.Cart.Add(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Item added to cart")
				return c.printCart(cmd)
			},
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove a card line",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.requireLogin(cmd); err != nil {
					return err
				}
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := c.app.Cart.Remove(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Item removed from cart")
				return c.printCart(cmd)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.app.Cart.Clear(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
				return nil
			},
		},
	)
	return cmd
}

func (c *cli) printCart(cmd *cobra.Command) error {
	sum, err := c.app.Cart.Summary(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if sum.Count == 0 {
		fmt.Fprintln(out, "Your cart is empty")
		return nil
	}
	for _, item := range sum.Items {
		fmt.Fprintf(out, "  [%d] %s\n", item.Product.ID, item)
	}
	fmt.Fprintf(out, "%d item(s), subtotal %s (GHS %s)\n", sum.Count, sum.SubtotalUSD, sum.SubtotalLocal)
	return nil
}
