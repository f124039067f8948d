// Package postgres stores slots in a PostgreSQL table.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/lib/pq"

	"elitcards/pkg/store"
)

// Schema is applied by Migrate.
const Schema = "CREATE TABLE IF NOT EXISTS slots (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMPTZ NOT NULL DEFAULT now())"

// Backend persists slots in PostgreSQL.
type Backend struct {
	db *sql.DB
}

// New wraps db. The caller must ensure the slots table exists, see Migrate.
func New(db *sql.DB) *Backend {
	return &Backend{db: db}
}

// Open connects to dsn and creates the slots table.
func Open(ctx context.Context, dsn string) (*Backend, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	b := New(db)
	if err := b.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

// Migrate creates the slots table if needed.
func (b *Backend) Migrate(ctx context.Context) error {
	_, err := b.db.ExecContext(ctx, Schema)
	return err
}

// Get retrieves a slot value.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := b.db.QueryRowContext(ctx, "SELECT value FROM slots WHERE key=$1", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrMissing
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// Set upserts a slot value.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.db.ExecContext(ctx,
		"INSERT INTO slots (key,value,updated_at) VALUES ($1,$2,now()) ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=now()",
		key, string(value))
	return err
}

// Delete removes a slot.
func (b *Backend) Delete(ctx context.Context, key string) error {
	_, err := b.db.ExecContext(ctx, "DELETE FROM slots WHERE key=$1", key)
	return err
}

// Close closes the connection pool.
func (b *Backend) Close() error {
	return b.db.Close()
}
