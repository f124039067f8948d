package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"elitcards/pkg/shop"
)

var validate = validator.New()

// registration carries the same rules as the API sign-up form.
type registration struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Confirm  string `validate:"required"`
}

func newRegisterCmd(c *cli) *cobra.Command {
	var name, email, password, confirm string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := registration{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email), Password: password, Confirm: confirm}
			if err := validate.Struct(form); err != nil {
				return fmt.Errorf("%w: %v", shop.ErrInvalidInput, err)
			}
			u, err := c.app.Accounts.SignUp(cmd.Context(), form.Name, form.Email, form.Password, form.Confirm)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registration successful. Welcome, %s\n", firstName(u.Name))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation")
	for _, f := range []string{"name", "email", "password", "confirm"} {
		cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newLoginCmd(c *cli) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := c.app.Accounts.Login(cmd.Context(), email, password)
			if errors.Is(err, shop.ErrNotFound) {
				return errors.New("invalid email or password")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Login successful. Welcome back, %s\n", firstName(u.Name))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Accounts.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out successfully")
			return nil
		},
	}
}

func newWhoamiCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok, err := c.app.Accounts.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "Not logged in")
				return nil
			}
			fmt.Fprintf(out, "%s <%s>, member since %s\n", u.Name, u.Email, joinedOn(u.JoinDate))
			return nil
		},
	}
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return name
}

func joinedOn(joinDate string) string {
	t, err := time.Parse(time.RFC3339, joinDate)
	if err != nil {
		return joinDate
	}
	return t.Format("2 Jan 2006")
}
