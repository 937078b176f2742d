package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
	"github.com/tejashwikalptaru/aboutdocs/internal/logger"
)

// Helper to create a test content cache
func newTestContentCache() *ContentCache {
	return NewContentCache(logger.NewTestLogger())
}

func TestContentCache_PutAndGet(t *testing.T) {
	cache := newTestContentCache()

	content := domain.RenderedContent{
		Kind: domain.KindHTML,
		Body: "<html><body><h1>Title</h1>\n</body></html>",
		Path: "/opt/app/README.md",
	}

	stored := cache.Put("README.md", content)
	require.True(t, stored)

	loaded, ok := cache.Get("README.md")
	require.True(t, ok)
	assert.Equal(t, content, loaded)
	assert.Equal(t, 1, cache.Len())
}

func TestContentCache_GetMissing(t *testing.T) {
	cache := newTestContentCache()

	_, ok := cache.Get("CHANGELOG.md")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestContentCache_FirstPutWins(t *testing.T) {
	cache := newTestContentCache()

	first := domain.RenderedContent{Kind: domain.KindPlainText, Body: "first"}
	second := domain.RenderedContent{Kind: domain.KindPlainText, Body: "second"}

	assert.True(t, cache.Put("LICENSE.txt", first))
	assert.False(t, cache.Put("LICENSE.txt", second))

	loaded, ok := cache.Get("LICENSE.txt")
	require.True(t, ok)
	assert.Equal(t, "first", loaded.Body)
}

func TestContentCache_Clear(t *testing.T) {
	cache := newTestContentCache()
	cache.Put("a", domain.RenderedContent{Body: "a"})
	cache.Put("b", domain.RenderedContent{Body: "b"})
	require.Equal(t, 2, cache.Len())

	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("a")
	assert.False(t, ok)

	// Cleared keys can be stored again
	assert.True(t, cache.Put("a", domain.RenderedContent{Body: "again"}))
}

func TestContentCache_ConcurrentAccess(t *testing.T) {
	cache := newTestContentCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("doc-%d.md", n%5)
			cache.Put(key, domain.RenderedContent{Body: key})
			_, _ = cache.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, cache.Len())
}
