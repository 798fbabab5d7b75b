package credentials

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")

	store, err := NewFileStore(path, internal.NopLogger{})
	assert.NoError(t, err)
	assert.Empty(t, store.AccessToken())
	assert.Equal(t, "light", store.Theme())

	assert.NoError(t, store.SetTokens("access-1", "refresh-1"))
	assert.NoError(t, store.SetTheme("dark"))

	// A fresh store over the same file sees the persisted state.
	reopened, err := NewFileStore(path, internal.NopLogger{})
	assert.NoError(t, err)
	assert.Equal(t, "access-1", reopened.AccessToken())
	assert.Equal(t, "refresh-1", reopened.RefreshToken())
	assert.Equal(t, "dark", reopened.Theme())
}

func TestFileStore_EmptyRefreshKeepsOld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	store, err := NewFileStore(path, internal.NopLogger{})
	assert.NoError(t, err)

	assert.NoError(t, store.SetTokens("access-1", "refresh-1"))
	assert.NoError(t, store.SetTokens("access-2", ""))
	assert.Equal(t, "access-2", store.AccessToken())
	assert.Equal(t, "refresh-1", store.RefreshToken())
}

func TestFileStore_ClearKeepsTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.json")
	store, err := NewFileStore(path, internal.NopLogger{})
	assert.NoError(t, err)

	assert.NoError(t, store.SetTokens("access", "refresh"))
	assert.NoError(t, store.SetTheme("dark"))
	assert.NoError(t, store.Clear())

	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	assert.Equal(t, "dark", store.Theme())

	reopened, err := NewFileStore(path, internal.NopLogger{})
	assert.NoError(t, err)
	assert.Empty(t, reopened.AccessToken())
	assert.Equal(t, "dark", reopened.Theme())
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()
	assert.NoError(t, store.SetTokens("a", "r"))
	assert.Equal(t, "a", store.AccessToken())
	assert.Equal(t, "r", store.RefreshToken())
	assert.NoError(t, store.Clear())
	assert.Empty(t, store.AccessToken())
	assert.Equal(t, "light", store.Theme())
}
