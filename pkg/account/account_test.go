package account

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"elitcards/pkg/shop"
	"elitcards/pkg/store"
	"elitcards/pkg/store/memory"
)

var fixedNow = time.Date(2026, 3, 4, 5, 6, 7, 891_000_000, time.UTC)

func newManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()
	s := store.New(memory.New())
	require.NoError(t, s.Initialize(context.Background()))
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(s, opts...)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	before, _ := m.Users(ctx)

	u, err := m.Register(ctx, "Jane", "jane@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04T05:06:07.891Z", u.JoinDate)

	_, err = m.Register(ctx, "Jane Again", "jane@x.com", "other")
	assert.ErrorIs(t, err, shop.ErrDuplicateEmail)

	after, _ := m.Users(ctx)
	assert.Len(t, after, len(before)+1)
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	_, err := m.Register(ctx, "Jane", "jane@x.com", "pw")
	require.NoError(t, err)

	state, err := m.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, LoggedOut, state)
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	u, err := m.Find(ctx, "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", u.Name)

	_, err = m.Find(ctx, "john@example.com", "wrong")
	assert.ErrorIs(t, err, shop.ErrNotFound)

	_, err = m.Find(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, shop.ErrNotFound)

	_, err = m.Find(ctx, "John@Example.com", "password123")
	assert.ErrorIs(t, err, shop.ErrNotFound, "emails are case-sensitive")
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	ok, err := m.Exists(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.Exists(ctx, "JANE@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionTransitions(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	state, _ := m.State(ctx)
	assert.Equal(t, LoggedOut, state)

	u, err := m.Login(ctx, "jane@example.com", "password123")
	require.NoError(t, err)
	state, _ = m.State(ctx)
	assert.Equal(t, LoggedIn, state)

	cur, ok, err := m.CurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, u, cur)

	require.NoError(t, m.Logout(ctx))
	_, ok, err = m.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Logout(ctx))
}

func TestLoginFailureKeepsLoggedOut(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	_, err := m.Login(ctx, "jane@example.com", "nope")
	assert.ErrorIs(t, err, shop.ErrNotFound)

	state, _ := m.State(ctx)
	assert.Equal(t, LoggedOut, state)
}

func TestSetCurrentUser(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	u := shop.User{Name: "Kofi", Email: "kofi@x.com", Password: "pw", JoinDate: "2024-01-01T00:00:00.000Z"}
	require.NoError(t, m.SetCurrentUser(ctx, &u))
	got, ok, err := m.CurrentUser(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, u, got)

	require.NoError(t, m.SetCurrentUser(ctx, nil))
	_, ok, err = m.CurrentUser(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	_, err := m.SignUp(ctx, "Ama", "ama@x.com", "pw1", "pw2")
	assert.ErrorIs(t, err, shop.ErrPasswordMismatch)
	ok, _ := m.Exists(ctx, "ama@x.com")
	assert.False(t, ok)

	u, err := m.SignUp(ctx, "Ama", "ama@x.com", "pw1", "pw1")
	require.NoError(t, err)
	cur, ok, _ := m.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, u, cur)

	_, err = m.SignUp(ctx, "Ama", "ama@x.com", "pw1", "pw1")
	assert.ErrorIs(t, err, shop.ErrDuplicateEmail)
}

func TestBcryptVerifier(t *testing.T) {
	ctx := context.Background()
	m := newManager(t, WithVerifier(Bcrypt{Cost: bcrypt.MinCost}))

	u, err := m.Register(ctx, "Yaw", "yaw@x.com", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", u.Password)

	_, err = m.Find(ctx, "yaw@x.com", "s3cret")
	assert.NoError(t, err)
	_, err = m.Find(ctx, "yaw@x.com", "wrong")
	assert.ErrorIs(t, err, shop.ErrNotFound)
}

func TestVerifierFor(t *testing.T) {
	v, err := VerifierFor("")
	require.NoError(t, err)
	assert.IsType(t, Plaintext{}, v)

	v, err = VerifierFor("bcrypt")
	require.NoError(t, err)
	assert.IsType(t, Bcrypt{}, v)

	_, err = VerifierFor("md5")
	assert.Error(t, err)
}

func TestExchangeRate(t *testing.T) {
	ctx := context.Background()
	m := newManager(t)

	rate, err := m.ExchangeRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12.5, rate)

	require.NoError(t, m.SetExchangeRate(ctx, 13.2))
	rate, _ = m.ExchangeRate(ctx)
	assert.Equal(t, 13.2, rate)

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, m.SetExchangeRate(ctx, bad), shop.ErrInvalidRate)
	}
	rate, _ = m.ExchangeRate(ctx)
	assert.Equal(t, 13.2, rate)
}
