package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	tokens := NewTokenFile(path)
	assert.Empty(t, tokens.Current())

	require.NoError(t, tokens.Save("my-token"))
	assert.Equal(t, "my-token", tokens.Current())

	// A fresh instance reads the persisted value back.
	reloaded := NewTokenFile(path)
	assert.Equal(t, "my-token", reloaded.Current())
}

func TestTokenFileClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	tokens := NewTokenFile(path)
	require.NoError(t, tokens.Save("my-token"))

	require.NoError(t, tokens.Clear())
	assert.Empty(t, tokens.Current())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-clear session is fine.
	require.NoError(t, tokens.Clear())
}

func TestTokenFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	tokens := NewTokenFile(path)
	require.NoError(t, tokens.Save("my-token"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
