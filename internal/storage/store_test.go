package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetMissingKey(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "store.json"))

	_, ok := store.Get("nothing")
	assert.False(t, ok)
}

func TestStore_SetAndGet(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "store.json"))

	require.NoError(t, store.Set("greeting", map[string]string{"hello": "world"}))

	raw, ok := store.Get("greeting")
	require.True(t, ok)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "world", decoded["hello"])
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	first := NewFileStore(path)
	require.NoError(t, first.Set("count", 42))

	second := NewFileStore(path)
	raw, ok := second.Get("count")
	require.True(t, ok)
	assert.Equal(t, "42", string(raw))
}

func TestStore_MalformedFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewFileStore(path)
	_, ok := store.Get("anything")
	assert.False(t, ok)

	// The store stays usable after the bad read
	require.NoError(t, store.Set("k", "v"))
	_, ok = store.Get("k")
	assert.True(t, ok)
}

func TestStore_Delete(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "store.json"))

	require.NoError(t, store.Set("k", "v"))
	require.NoError(t, store.Delete("k"))
	_, ok := store.Get("k")
	assert.False(t, ok)

	// Deleting a missing key is a no-op
	require.NoError(t, store.Delete("k"))
}
