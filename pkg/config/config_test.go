package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Backend)
	assert.Equal(t, ":8443", cfg.Addr)
	assert.Equal(t, "plaintext", cfg.PasswordScheme)
	assert.Equal(t, 1.0, cfg.OTELSampling)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "elitcards.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: sqlite\nsqlite_path: /tmp/x.db\non_corrupt: raise\n"), 0o644))
	t.Setenv("ELITCARDS_BACKEND", "redis")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Backend, "environment wins over file")
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	assert.Equal(t, "raise", cfg.OnCorrupt)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ELITCARDS_LOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("ELITCARDS_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}
