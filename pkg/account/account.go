// Package account registers and authenticates users, tracks the single
// current session and owns the exchange rate setting.
package account

import (
	"context"
	"fmt"
	"math"
	"time"

	"elitcards/pkg/shop"
	"elitcards/pkg/store"
)

// State is the session state.
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged-in"
	}
	return "logged-out"
}

// joinDateLayout matches JavaScript's Date.toISOString.
const joinDateLayout = "2006-01-02T15:04:05.000Z"

// Manager is the session and account accessor.
type Manager struct {
	store    *store.Store
	verifier CredentialVerifier
	now      func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithVerifier replaces the default plaintext verifier.
func WithVerifier(v CredentialVerifier) Option {
	return func(m *Manager) { m.verifier = v }
}

// WithClock overrides time.Now for join dates.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// New returns a Manager over s.
func New(s *store.Store, opts ...Option) *Manager {
	m := &Manager{store: s, verifier: Plaintext{}, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Users returns the user directory.
func (m *Manager) Users(ctx context.Context) ([]shop.User, error) {
	return m.store.Users(ctx)
}

// Find returns the user whose email and password both match, or
// shop.ErrNotFound. Email comparison is exact and case-sensitive.
func (m *Manager) Find(ctx context.Context, email, password string) (shop.User, error) {
	users, err := m.store.Users(ctx)
	if err != nil {
		return shop.User{}, err
	}
	for _, u := range users {
		if u.Email == email && m.verifier.Verify(u.Password, password) {
			return u, nil
		}
	}
	return shop.User{}, fmt.Errorf("user %s: %w", email, shop.ErrNotFound)
}

// Exists reports whether email is registered.
func (m *Manager) Exists(ctx context.Context, email string) (bool, error) {
	users, err := m.store.Users(ctx)
	if err != nil {
		return false, err
	}
	return hasEmail(users, email), nil
}

// Register appends a new user stamped with the current time. The duplicate
// check and the append happen in one store update. Register does not log
// the user in.
func (m *Manager) Register(ctx context.Context, name, email, password string) (shop.User, error) {
	sealed, err := m.verifier.Seal(password)
	if err != nil {
		return shop.User{}, err
	}
	u := shop.User{
		Name:     name,
		Email:    email,
		Password: sealed,
		JoinDate: m.now().UTC().Format(joinDateLayout),
	}
	err = store.Update(ctx, m.store, store.SlotUsers, func(users []shop.User) ([]shop.User, error) {
		if hasEmail(users, email) {
			return nil, fmt.Errorf("register %s: %w", email, shop.ErrDuplicateEmail)
		}
		return append(users, u), nil
	})
	if err != nil {
		return shop.User{}, err
	}
	return u, nil
}

// CurrentUser returns the logged in user; ok is false when logged out.
func (m *Manager) CurrentUser(ctx context.Context) (shop.User, bool, error) {
	return m.store.CurrentUser(ctx)
}

// SetCurrentUser stores u as the session user. nil ends the session by
// removing the slot.
func (m *Manager) SetCurrentUser(ctx context.Context, u *shop.User) error {
	return m.store.SetCurrentUser(ctx, u)
}

// State reports whether a session exists.
func (m *Manager) State(ctx context.Context) (State, error) {
	_, ok, err := m.store.CurrentUser(ctx)
	if err != nil {
		return LoggedOut, err
	}
	if ok {
		return LoggedIn, nil
	}
	return LoggedOut, nil
}

// Login finds the user and makes it current.
func (m *Manager) Login(ctx context.Context, email, password string) (shop.User, error) {
	u, err := m.Find(ctx, email, password)
	if err != nil {
		return shop.User{}, err
	}
	if err := m.store.SetCurrentUser(ctx, &u); err != nil {
		return shop.User{}, err
	}
	return u, nil
}

// SignUp checks the password confirmation, registers the user and logs
// them in.
func (m *Manager) SignUp(ctx context.Context, name, email, password, confirm string) (shop.User, error) {
	if password != confirm {
		return shop.User{}, shop.ErrPasswordMismatch
	}
	u, err := m.Register(ctx, name, email, password)
	if err != nil {
		return shop.User{}, err
	}
	if err := m.store.SetCurrentUser(ctx, &u); err != nil {
		return shop.User{}, err
	}
	return u, nil
}

// Logout ends the session. Logging out while logged out is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.SetCurrentUser(ctx, nil)
}

// ExchangeRate returns the USD to local currency multiplier.
func (m *Manager) ExchangeRate(ctx context.Context) (float64, error) {
	return m.store.ExchangeRate(ctx)
}

// SetExchangeRate replaces the rate. Zero, negative, NaN and infinite
// values are rejected with shop.ErrInvalidRate.
func (m *Manager) SetExchangeRate(ctx context.Context, rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%v: %w", rate, shop.ErrInvalidRate)
	}
	return m.store.SetExchangeRate(ctx, rate)
}

func hasEmail(users []shop.User, email string) bool {
	for _, u := range users {
		if u.Email == email {
			return true
		}
	}
	return false
}
