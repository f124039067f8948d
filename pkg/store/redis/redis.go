// Package redis stores slots as plain Redis string keys.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"elitcards/pkg/store"
)

// Backend maps every slot to "<prefix>:<slot>". Keys carry no TTL.
type Backend struct {
	client *redis.Client
	prefix string
}

// New wraps an existing client.
func New(client *redis.Client, prefix string) *Backend {
	return &Backend{client: client, prefix: prefix}
}

// Dial connects to addr (host:port or a redis:// URL) and pings it.
func Dial(ctx context.Context, addr, prefix string) (*Backend, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{Addr: addr}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return New(client, prefix), nil
}

func (b *Backend) key(slot string) string {
	if b.prefix == "" {
		return slot
	}
	return b.prefix + ":" + slot
}

// Get returns the value stored under key.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrMissing
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

// Set writes key without expiry.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	return b.client.Set(ctx, b.key(key), string(value), 0).Err()
}

// Delete removes key.
func (b *Backend) Delete(ctx context.Context, key string) error {
	return b.client.Del(ctx, b.key(key)).Err()
}

// Close closes the client.
func (b *Backend) Close() error {
	return b.client.Close()
}
