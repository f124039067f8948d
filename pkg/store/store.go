// Package store persists storefront state in five named slots on top of a
// pluggable key-value Backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"elitcards/pkg/logger"
	"elitcards/pkg/shop"
)

// Slot names one unit of persisted state.
type Slot string

const (
	SlotProducts     Slot = "products"
	SlotCart         Slot = "cart"
	SlotUsers        Slot = "users"
	SlotCurrentUser  Slot = "currentUser"
	SlotExchangeRate Slot = "exchangeRate"
)

// Slots lists every slot the store manages.
var Slots = []Slot{SlotProducts, SlotCart, SlotUsers, SlotCurrentUser, SlotExchangeRate}

// ErrMissing is returned by a Backend when a key has never been written or
// was deleted.
var ErrMissing = errors.New("slot missing")

// Backend is raw byte storage keyed by slot name.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// CorruptPolicy decides what Read does with a slot that fails to decode.
type CorruptPolicy int

const (
	// ReturnDefault substitutes the zero value and logs a warning.
	ReturnDefault CorruptPolicy = iota
	// Raise returns an error wrapping shop.ErrCorruptState.
	Raise
)

// ParseCorruptPolicy maps "raise" to Raise and anything else to
// ReturnDefault.
func ParseCorruptPolicy(s string) CorruptPolicy {
	if s == "raise" {
		return Raise
	}
	return ReturnDefault
}

// Store is the single state container handed to the catalog, cart and
// account accessors.
//
// Mutations of one slot go through Update and are serialized by mu, so a
// read-modify-write is atomic within this process. Nothing coordinates
// separate processes sharing a backend: concurrent writers there are
// last-write-wins per slot.
type Store struct {
	backend   Backend
	onCorrupt CorruptPolicy
	log       *logger.Logger
	mu        sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithCorruptPolicy sets the policy applied to undecodable slots.
func WithCorruptPolicy(p CorruptPolicy) Option {
	return func(s *Store) { s.onCorrupt = p }
}

// WithLogger sets the logger used to report corrupt slots.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns a Store over backend. Call Initialize before first use.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Initialize writes seed data into every absent slot. Slots that already
// exist are left untouched, so calling it on every start is safe.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeds := []struct {
		slot  Slot
		value any
	}{
		{SlotProducts, SeedProducts()},
		{SlotCart, []shop.CartLine{}},
		{SlotUsers, SeedUsers()},
		{SlotExchangeRate, shop.ExchangeRate{USDToLocal: DefaultExchangeRate}},
	}
	for _, seed := range seeds {
		_, err := s.backend.Get(ctx, string(seed.slot))
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrMissing) {
			return fmt.Errorf("initialize %s: %w", seed.slot, err)
		}
		if err := s.write(ctx, seed.slot, seed.value); err != nil {
			return fmt.Errorf("initialize %s: %w", seed.slot, err)
		}
		s.log.Debug(ctx, "seeded slot", "slot", seed.slot)
	}
	return nil
}

// Read decodes slot into a fresh T. A missing slot yields the zero value and
// found=false. A corrupt slot is handled according to the store's
// CorruptPolicy.
func Read[T any](ctx context.Context, s *Store, slot Slot) (v T, found bool, err error) {
	raw, err := s.backend.Get(ctx, string(slot))
	if errors.Is(err, ErrMissing) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("read %s: %w", slot, err)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		if s.onCorrupt == Raise {
			return zero, false, fmt.Errorf("read %s: %w: %v", slot, shop.ErrCorruptState, err)
		}
		s.log.Warn(ctx, "corrupt slot replaced with default", "slot", slot, "error", err)
		return zero, false, nil
	}
	return v, true, nil
}

// Write replaces slot with the JSON encoding of v.
func (s *Store) Write(ctx context.Context, slot Slot, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, slot, v)
}

// Remove deletes slot entirely.
func (s *Store) Remove(ctx context.Context, slot Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Delete(ctx, string(slot)); err != nil {
		return fmt.Errorf("remove %s: %w", slot, err)
	}
	return nil
}

// Update reads slot, applies fn and writes the result back while holding
// the store lock. If fn returns an error nothing is written.
func Update[T any](ctx context.Context, s *Store, slot Slot, fn func(T) (T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, _, err := Read[T](ctx, s, slot)
	if err != nil {
		return err
	}
	next, err := fn(cur)
	if err != nil {
		return err
	}
	return s.write(ctx, slot, next)
}

func (s *Store) write(ctx context.Context, slot Slot, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", slot, err)
	}
	if err := s.backend.Set(ctx, string(slot), raw); err != nil {
		return fmt.Errorf("write %s: %w", slot, err)
	}
	return nil
}
