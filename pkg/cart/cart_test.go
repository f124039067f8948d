package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elitcards/pkg/catalog"
	"elitcards/pkg/shop"
	"elitcards/pkg/store"
	"elitcards/pkg/store/memory"
)

func newManager(t *testing.T) (*Manager, *store.Store) {
	t.Helper()
	s := store.New(memory.New())
	require.NoError(t, s.Initialize(context.Background()))
	return New(s, catalog.New(s)), s
}

func TestAddTwiceMergesLine(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	require.NoError(t, m.Add(ctx, 3))
	require.NoError(t, m.Add(ctx, 3))

	lines, err := m.Lines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []shop.CartLine{{ProductID: 3, Quantity: 2}}, lines)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	require.NoError(t, m.Add(ctx, 5))
	require.NoError(t, m.Add(ctx, 1))
	require.NoError(t, m.Add(ctx, 5))

	lines, _ := m.Lines(ctx)
	assert.Equal(t, []shop.CartLine{{ProductID: 5, Quantity: 2}, {ProductID: 1, Quantity: 1}}, lines)
}

func TestAddUnknownProduct(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	assert.ErrorIs(t, m.Add(ctx, 99), shop.ErrNotFound)
	n, _ := m.Count(ctx)
	assert.Zero(t, n)
}

func TestRemoveDropsWholeLine(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	require.NoError(t, m.Add(ctx, 2))
	require.NoError(t, m.Add(ctx, 2))
	require.NoError(t, m.Add(ctx, 4))
	require.NoError(t, m.Remove(ctx, 2))

	lines, _ := m.Lines(ctx)
	assert.Equal(t, []shop.CartLine{{ProductID: 4, Quantity: 1}}, lines)

	require.NoError(t, m.Remove(ctx, 2), "second removal is a no-op")
	lines, _ = m.Lines(ctx)
	assert.Len(t, lines, 1)
}

func TestCountSumsQuantities(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	n, err := m.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	for _, id := range []int{1, 1, 2, 6, 6, 6} {
		require.NoError(t, m.Add(ctx, id))
	}
	n, err = m.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestSubtotal(t *testing.T) {
	ctx := context.Background()
	m, s := newManager(t)

	require.NoError(t, s.SetCart(ctx, []shop.CartLine{{ProductID: 1, Quantity: 2}}))

	sub, err := m.Subtotal(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("599.98").Equal(sub), "got %s", sub)
}

func TestSubtotalIgnoresMissingProducts(t *testing.T) {
	ctx := context.Background()
	m, s := newManager(t)

	require.NoError(t, s.SetCart(ctx, []shop.CartLine{{ProductID: 2, Quantity: 1}, {ProductID: 77, Quantity: 3}}))

	sub, err := m.Subtotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, "199.99", sub.StringFixed(2))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	require.NoError(t, m.Add(ctx, 1))
	require.NoError(t, m.Clear(ctx))

	lines, err := m.Lines(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)
	n, _ := m.Count(ctx)
	assert.Zero(t, n)
}

func TestToLocalCurrency(t *testing.T) {
	ctx := context.Background()
	m, s := newManager(t)

	got, err := m.ToLocalCurrency(ctx, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, "1250.00", got)

	require.NoError(t, s.SetExchangeRate(ctx, 10.5))
	got, err = m.ToLocalCurrency(ctx, decimal.RequireFromString("0.05"))
	require.NoError(t, err)
	assert.Equal(t, "0.53", got, "0.525 rounds half up")
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$299.99", FormatUSD(decimal.RequireFromString("299.99")))
	assert.Equal(t, "$5.00", FormatUSD(decimal.NewFromInt(5)))
	assert.Equal(t, "$0.13", FormatUSD(decimal.RequireFromString("0.125")))
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	require.NoError(t, m.Add(ctx, 1))
	require.NoError(t, m.Add(ctx, 1))
	require.NoError(t, m.Add(ctx, 2))

	sum, err := m.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, sum.Items, 2)
	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, "$799.97", sum.SubtotalUSD)
	assert.Equal(t, "9999.63", sum.SubtotalLocal)
	assert.Equal(t, "599.98", sum.Items[0].LineTotal.StringFixed(2))
}
