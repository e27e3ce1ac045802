package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/manex-cli/internal/core/domain"
)

func newTestCache(t *testing.T) *PageCache {
	t.Helper()
	cache, err := NewPageCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestPageCache_MissThenHit(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	page := domain.Page{Name: "ls", Section: "1"}

	_, ok, err := cache.Get(ctx, page)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Put(ctx, page, "LS(1) rendered text"))

	content, ok, err := cache.Get(ctx, page)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "LS(1) rendered text", content)
}

func TestPageCache_PutReplaces(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	page := domain.Page{Name: "ls", Section: "1"}

	require.NoError(t, cache.Put(ctx, page, "old"))
	require.NoError(t, cache.Put(ctx, page, "new"))

	content, ok, err := cache.Get(ctx, page)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", content)
}

func TestPageCache_SectionsAreDistinct(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, domain.Page{Name: "printf", Section: "1"}, "shell builtin"))
	require.NoError(t, cache.Put(ctx, domain.Page{Name: "printf", Section: "3"}, "libc function"))

	content, ok, err := cache.Get(ctx, domain.Page{Name: "printf", Section: "3"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "libc function", content)
}

func TestPageCache_Purge(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, domain.Page{Name: "ls", Section: "1"}, "text"))
	require.NoError(t, cache.Purge(ctx))

	_, ok, err := cache.Get(ctx, domain.Page{Name: "ls", Section: "1"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewPageCache_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")
	cache, err := NewPageCache(path)
	require.NoError(t, err)
	defer cache.Close()
	assert.Equal(t, path, cache.Path())
}
