// Package catalog answers read-only product queries.
package catalog

import (
	"context"
	"fmt"

	"elitcards/pkg/shop"
	"elitcards/pkg/store"
)

// Catalog reads products from the store on every call.
type Catalog struct {
	store *store.Store
}

// New returns a Catalog over s.
func New(s *store.Store) *Catalog {
	return &Catalog{store: s}
}

// List returns all products in persisted order.
func (c *Catalog) List(ctx context.Context) ([]shop.Product, error) {
	return c.store.Products(ctx)
}

// Get returns the product with the given id or shop.ErrNotFound.
func (c *Catalog) Get(ctx context.Context, id int) (shop.Product, error) {
	products, err := c.store.Products(ctx)
	if err != nil {
		return shop.Product{}, err
	}
	if p, ok := Find(products, id); ok {
		return p, nil
	}
	return shop.Product{}, fmt.Errorf("product %d: %w", id, shop.ErrNotFound)
}

// Find scans products for id.
func Find(products []shop.Product, id int) (shop.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return shop.Product{}, false
}
