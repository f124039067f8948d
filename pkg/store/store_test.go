package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elitcards/pkg/shop"
	"elitcards/pkg/store"
	"elitcards/pkg/store/memory"
)

func newStore(t *testing.T, opts ...store.Option) (*store.Store, *memory.Backend) {
	t.Helper()
	b := memory.New()
	s := store.New(b, opts...)
	require.NoError(t, s.Initialize(context.Background()))
	return s, b
}

func TestInitializeSeedsSlots(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	products, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 6)
	assert.Equal(t, "Elite Visa Black Card", products[0].Title)

	users, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	cart, err := s.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
	assert.NotNil(t, cart)

	_, ok, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	rate, err := s.ExchangeRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.DefaultExchangeRate, rate)
}

func TestInitializeDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	s, b := newStore(t)

	require.NoError(t, s.SetCart(ctx, []shop.CartLine{{ProductID: 2, Quantity: 3}}))
	require.NoError(t, s.SetExchangeRate(ctx, 14))
	require.NoError(t, s.SetUsers(ctx, []shop.User{{Name: "Solo", Email: "solo@x.com"}}))

	require.NoError(t, store.New(b).Initialize(ctx))

	cart, _ := s.Cart(ctx)
	assert.Equal(t, []shop.CartLine{{ProductID: 2, Quantity: 3}}, cart)
	rate, _ := s.ExchangeRate(ctx)
	assert.Equal(t, 14.0, rate)
	users, _ := s.Users(ctx)
	assert.Len(t, users, 1)
}

func TestRoundTripEverySlot(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	products := []shop.Product{{ID: 9, Title: "Test", Number: "XXXX 0000", Limit: "$1", Price: 12.34, Image: "x.png"}}
	require.NoError(t, s.Write(ctx, store.SlotProducts, products))
	gotProducts, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, gotProducts)

	lines := []shop.CartLine{{ProductID: 1, Quantity: 2}, {ProductID: 3, Quantity: 1}}
	require.NoError(t, s.SetCart(ctx, lines))
	gotLines, err := s.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, lines, gotLines)

	users := []shop.User{{Name: "Jane", Email: "jane@x.com", Password: "pw", JoinDate: "2024-05-01T10:00:00.000Z"}}
	require.NoError(t, s.SetUsers(ctx, users))
	gotUsers, err := s.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, gotUsers)

	require.NoError(t, s.SetCurrentUser(ctx, &users[0]))
	cur, ok, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, users[0], cur)

	require.NoError(t, s.SetExchangeRate(ctx, 11.75))
	rate, err := s.ExchangeRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 11.75, rate)
}

func TestSetCurrentUserNilRemovesSlot(t *testing.T) {
	ctx := context.Background()
	s, b := newStore(t)

	require.NoError(t, s.SetCurrentUser(ctx, &shop.User{Email: "a@b.c"}))
	require.NoError(t, s.SetCurrentUser(ctx, nil))

	_, err := b.Get(ctx, string(store.SlotCurrentUser))
	assert.ErrorIs(t, err, store.ErrMissing)
}

func TestCorruptSlotReturnsDefault(t *testing.T) {
	ctx := context.Background()
	s, b := newStore(t)

	require.NoError(t, b.Set(ctx, string(store.SlotCart), []byte("{not json")))
	require.NoError(t, b.Set(ctx, string(store.SlotExchangeRate), []byte("nope")))

	cart, err := s.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)

	rate, err := s.ExchangeRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.DefaultExchangeRate, rate)
}

func TestCorruptSlotRaises(t *testing.T) {
	ctx := context.Background()
	s, b := newStore(t, store.WithCorruptPolicy(store.Raise))

	require.NoError(t, b.Set(ctx, string(store.SlotUsers), []byte(`{"name":`)))

	_, err := s.Users(ctx)
	assert.ErrorIs(t, err, shop.ErrCorruptState)
}

func TestUpdateAbortsOnError(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)
	boom := errors.New("boom")

	err := store.Update(ctx, s, store.SlotCart, func(lines []shop.CartLine) ([]shop.CartLine, error) {
		return append(lines, shop.CartLine{ProductID: 1, Quantity: 1}), boom
	})
	assert.ErrorIs(t, err, boom)

	cart, _ := s.Cart(ctx)
	assert.Empty(t, cart)
}

func TestParseCorruptPolicy(t *testing.T) {
	assert.Equal(t, store.Raise, store.ParseCorruptPolicy("raise"))
	assert.Equal(t, store.ReturnDefault, store.ParseCorruptPolicy("default"))
	assert.Equal(t, store.ReturnDefault, store.ParseCorruptPolicy(""))
}
