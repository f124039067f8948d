package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"elitcards/pkg/app"
	"elitcards/pkg/config"
	"elitcards/pkg/logger"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	c := &cli{}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	err := root.Execute()
	if c.app != nil {
		if cerr := c.app.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// cli carries the opened app from the root command to its subcommands.
type cli struct {
	configPath string
	backend    string
	sqlitePath string
	verbose    bool
	app        *app.App
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "elitcards",
		Short:         "ElitCards storefront in the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.open(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&c.backend, "backend", "", "state backend: sqlite, memory, redis or postgres (default sqlite)")
	root.PersistentFlags().StringVar(&c.sqlitePath, "sqlite-path", "", "SQLite state file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose output")

	root.AddCommand(
		newProductsCmd(c),
		newProductCmd(c),
		newCartCmd(c),
		newRegisterCmd(c),
		newLoginCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newRateCmd(c),
		newCheckoutCmd(c),
	)
	return root
}

func (c *cli) open(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	switch {
	case c.backend != "":
		cfg.Backend = c.backend
	case c.configPath == "" && os.Getenv("ELITCARDS_BACKEND") == "":
		cfg.Backend = "sqlite"
	}
	if c.sqlitePath != "" {
		cfg.SQLitePath = c.sqlitePath
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if !c.verbose && level < logger.LevelWarn {
		level = logger.LevelWarn
	}
	log := logger.New(os.Stderr, level, "elitcards-cli", nil)

	c.app, err = app.Open(ctx, cfg, log)
	return err
}
