package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"health-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_StoreResolveDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	name, err := store.Store("u1", "../../etc/Report.PDF", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.NotContains(t, name, "Report")
	assert.Equal(t, name, filepath.Base(name))

	path, err := store.Resolve(name)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, store.Delete(name))
	_, err = store.Resolve(name)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	// already gone
	assert.NoError(t, store.Delete(name))
}

func TestLocalStore_UniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	a, err := store.Store("u1", "a.png", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := store.Store("u1", "a.png", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestLocalStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	_, err = store.Store("u1", "x.txt", strings.NewReader("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStore_ResolveRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../secret", "a/b", ".hidden"} {
		_, err := store.Resolve(name)
		assert.ErrorIs(t, err, entities.ErrNotFound, name)
	}
}

func TestExtension(t *testing.T) {
	cases := map[string]string{
		"photo.JPG":      ".jpg",
		"archive.tar.gz": ".gz",
		"noext":          "",
		"weird.p$p":      "",
		"dir/file.pdf":   ".pdf",
	}
	for in, want := range cases {
		assert.Equal(t, want, extension(in), in)
	}
}
