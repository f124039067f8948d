// Package app assembles the store and its accessors from configuration.
// Both the HTTP API and the terminal client start through Open.
package app

import (
	"context"
	"fmt"

	"elitcards/pkg/account"
	"elitcards/pkg/cart"
	"elitcards/pkg/catalog"
	"elitcards/pkg/checkout"
	"elitcards/pkg/config"
	"elitcards/pkg/logger"
	"elitcards/pkg/store"
	"elitcards/pkg/store/memory"
	"elitcards/pkg/store/postgres"
	"elitcards/pkg/store/redis"
	"elitcards/pkg/store/sqlite"
)

// App holds the initialized state container and every accessor over it.
type App struct {
	Store    *store.Store
	Catalog  *catalog.Catalog
	Cart     *cart.Manager
	Accounts *account.Manager
	Checkout *checkout.Service
}

// Open connects the configured backend, seeds missing slots and builds the
// accessors.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	backend, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	verifier, err := account.VerifierFor(cfg.PasswordScheme)
	if err != nil {
		backend.Close()
		return nil, err
	}

	var receipts checkout.ReceiptStore = checkout.NewMemoryReceipts()
	if cfg.ReceiptsBucket != "" {
		s3r, err := checkout.DialS3Receipts(ctx, cfg.ReceiptsBucket)
		if err != nil {
			backend.Close()
			return nil, fmt.Errorf("receipts bucket: %w", err)
		}
		receipts = s3r
	}

	return New(ctx, backend, log,
		[]store.Option{store.WithCorruptPolicy(store.ParseCorruptPolicy(cfg.OnCorrupt))},
		[]account.Option{account.WithVerifier(verifier)},
		receipts,
	)
}

// New builds an App over an already opened backend.
func New(ctx context.Context, backend store.Backend, log *logger.Logger, storeOpts []store.Option, accountOpts []account.Option, receipts checkout.ReceiptStore) (*App, error) {
	s := store.New(backend, append([]store.Option{store.WithLogger(log)}, storeOpts...)...)
	if err := s.Initialize(ctx); err != nil {
		s.Close()
		return nil, err
	}

	cat := catalog.New(s)
	c := cart.New(s, cat)
	a := account.New(s, accountOpts...)
	return &App{
		Store:    s,
		Catalog:  cat,
		Cart:     c,
		Accounts: a,
		Checkout: checkout.New(c, a, receipts, log),
	}, nil
}

// Close releases the backend.
func (a *App) Close() error {
	return a.Store.Close()
}

// OpenBackend opens the backend named by cfg.Backend.
func OpenBackend(ctx context.Context, cfg *config.Config) (store.Backend, error) {
	switch cfg.Backend {
	case "", "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath)
	case "redis":
		return redis.Dial(ctx, cfg.RedisAddr, cfg.RedisPrefix)
	case "postgres":
		return postgres.Open(ctx, cfg.DatabaseURL)
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}
