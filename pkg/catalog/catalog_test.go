package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elitcards/pkg/shop"
	"elitcards/pkg/store"
	"elitcards/pkg/store/memory"
)

func newCatalog(t *testing.T) (*Catalog, *store.Store) {
	t.Helper()
	s := store.New(memory.New())
	require.NoError(t, s.Initialize(context.Background()))
	return New(s), s
}

func TestGetReturnsEveryListedProduct(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	products, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 6)

	for _, p := range products {
		got, err := c.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestGetUnknownProduct(t *testing.T) {
	c, _ := newCatalog(t)

	_, err := c.Get(context.Background(), 42)
	assert.ErrorIs(t, err, shop.ErrNotFound)
}

func TestListPreservesOrder(t *testing.T) {
	ctx := context.Background()
	c, s := newCatalog(t)

	custom := []shop.Product{{ID: 30, Title: "c"}, {ID: 10, Title: "a"}, {ID: 20, Title: "b"}}
	require.NoError(t, s.Write(ctx, store.SlotProducts, custom))

	got, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}
