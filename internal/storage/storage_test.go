package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewName(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	a := store.NewName(".PNG")
	b := store.NewName(".png")

	assert.True(t, strings.HasSuffix(a, ".png"), "extension is lowercased and preserved: %s", a)
	assert.NotEqual(t, a, b)
}

func TestPathIgnoresDirectoryComponents(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(store.Dir(), "a.jpg"), store.Path("../../etc/a.jpg"))
}

func TestRemoveMissingFileIsQuiet(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	store.Remove("does-not-exist.jpg")
}

func TestRemoveWithSiblings(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	touch(t, store.Path("123-abc.jpg"))
	touch(t, store.Path("123-abc.png"))
	touch(t, store.Path("123-abc.webp"))
	touch(t, store.Path("456-def.png"))

	store.RemoveWithSiblings("123-abc.jpg")

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "456-def.png", entries[0].Name())
}

func TestSweepOrphans(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	touch(t, store.Path("kept.jpg"))
	touch(t, store.Path("orphan-1.jpg"))
	touch(t, store.Path("orphan-2.png"))

	removed, err := store.SweepOrphans([]string{"/uploads/kept.jpg"})
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept.jpg", entries[0].Name())
}
