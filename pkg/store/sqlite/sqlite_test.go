package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elitcards/pkg/store"
)

func openTestBackend(t *testing.T) (*Backend, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile", "elitcards.db")
	b, err := Open(path)
	require.NoError(t, err)
	return b, path
}

func TestBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	b, _ := openTestBackend(t)
	defer b.Close()

	_, err := b.Get(ctx, "users")
	assert.ErrorIs(t, err, store.ErrMissing)

	require.NoError(t, b.Set(ctx, "users", []byte(`[{"name":"a"}]`)))
	require.NoError(t, b.Set(ctx, "users", []byte(`[{"name":"b"}]`)))

	got, err := b.Get(ctx, "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"b"}]`, string(got))

	require.NoError(t, b.Delete(ctx, "users"))
	_, err = b.Get(ctx, "users")
	assert.ErrorIs(t, err, store.ErrMissing)
}

func TestStateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	b, path := openTestBackend(t)

	s := store.New(b)
	require.NoError(t, s.Initialize(ctx))
	require.NoError(t, s.SetExchangeRate(ctx, 15))
	require.NoError(t, b.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	s = store.New(reopened)
	require.NoError(t, s.Initialize(ctx))
	rate, err := s.ExchangeRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15.0, rate)
}
