// Package memory provides in-memory repository implementations.
package memory

import (
	"log/slog"
	"sync"

	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
	"github.com/tejashwikalptaru/aboutdocs/internal/ports"
)

// ContentCache implements ports.ContentCache with a map keyed by document name.
//
// Entries are written once: a document's view is never refreshed after it has
// been rendered, so a second Put for the same key is dropped.
//
// Thread-safe: All operations protected by sync.RWMutex.
type ContentCache struct {
	entries map[string]domain.RenderedContent
	mu      sync.RWMutex
	logger  *slog.Logger
}

// NewContentCache creates an empty content cache.
func NewContentCache(logger *slog.Logger) *ContentCache {
	return &ContentCache{
		entries: make(map[string]domain.RenderedContent),
		logger:  logger,
	}
}

// Get returns the content stored under key.
func (c *ContentCache) Get(key string) (domain.RenderedContent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	content, ok := c.entries[key]
	return content, ok
}

// Put stores content under key unless the key is already present.
func (c *ContentCache) Put(key string, content domain.RenderedContent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.logger.Debug("content already cached", slog.String("key", key))
		return false
	}

	c.entries[key] = content
	return true
}

// Len returns the number of cached documents.
func (c *ContentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Clear drops every cached document. The shell calls it when the dialog closes.
func (c *ContentCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]domain.RenderedContent)
}

// Verify ContentCache implements the ContentCache interface
var _ ports.ContentCache = (*ContentCache)(nil)
