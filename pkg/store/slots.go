package store

import (
	"context"

	"elitcards/pkg/shop"
)

// Products returns the catalog in persisted order.
func (s *Store) Products(ctx context.Context) ([]shop.Product, error) {
	products, _, err := Read[[]shop.Product](ctx, s, SlotProducts)
	if products == nil {
		products = []shop.Product{}
	}
	return products, err
}

// Cart returns the persisted cart lines.
func (s *Store) Cart(ctx context.Context) ([]shop.CartLine, error) {
	lines, _, err := Read[[]shop.CartLine](ctx, s, SlotCart)
	if lines == nil {
		lines = []shop.CartLine{}
	}
	return lines, err
}

// SetCart replaces the whole cart.
func (s *Store) SetCart(ctx context.Context, lines []shop.CartLine) error {
	if lines == nil {
		lines = []shop.CartLine{}
	}
	return s.Write(ctx, SlotCart, lines)
}

// Users returns every registered user.
func (s *Store) Users(ctx context.Context) ([]shop.User, error) {
	users, _, err := Read[[]shop.User](ctx, s, SlotUsers)
	if users == nil {
		users = []shop.User{}
	}
	return users, err
}

// SetUsers replaces the user directory.
func (s *Store) SetUsers(ctx context.Context, users []shop.User) error {
	if users == nil {
		users = []shop.User{}
	}
	return s.Write(ctx, SlotUsers, users)
}

// CurrentUser returns the session user. ok is false when nobody is logged
// in. A JSON null in the slot counts as logged out.
func (s *Store) CurrentUser(ctx context.Context) (u shop.User, ok bool, err error) {
	ptr, _, err := Read[*shop.User](ctx, s, SlotCurrentUser)
	if err != nil || ptr == nil {
		return shop.User{}, false, err
	}
	return *ptr, true, nil
}

// SetCurrentUser stores u as the session user; nil removes the slot.
func (s *Store) SetCurrentUser(ctx context.Context, u *shop.User) error {
	if u == nil {
		return s.Remove(ctx, SlotCurrentUser)
	}
	return s.Write(ctx, SlotCurrentUser, u)
}

// ExchangeRate returns the USD to local currency multiplier, falling back
// to DefaultExchangeRate when the slot is missing or unusable.
func (s *Store) ExchangeRate(ctx context.Context) (float64, error) {
	rate, found, err := Read[shop.ExchangeRate](ctx, s, SlotExchangeRate)
	if err != nil {
		return 0, err
	}
	if !found || rate.USDToLocal == 0 {
		return DefaultExchangeRate, nil
	}
	return rate.USDToLocal, nil
}

// SetExchangeRate replaces the exchange rate slot. Validation is the
// caller's job.
func (s *Store) SetExchangeRate(ctx context.Context, rate float64) error {
	return s.Write(ctx, SlotExchangeRate, shop.ExchangeRate{USDToLocal: rate})
}
