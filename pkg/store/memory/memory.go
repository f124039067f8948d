// Package memory implements an in-memory slot backend.
package memory

import (
	"context"
	"sync"

	"elitcards/pkg/store"
)

// Backend keeps slots in a map. Its contents vanish with the process.
type Backend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// New creates an empty in-memory backend.
func New() *Backend {
	return &Backend{slots: make(map[string][]byte)}
}

// Get returns a copy of the stored value.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.slots[key]
	if !ok {
		return nil, store.ErrMissing
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slots[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (b *Backend) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.slots, key)
	return nil
}

// Close is a no-op.
func (b *Backend) Close() error { return nil }
