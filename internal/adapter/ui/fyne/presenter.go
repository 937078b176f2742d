// Package fyne provides Fyne UI adapter implementations.
// This package implements the About dialog shell using the Fyne toolkit.
package fyne

import (
	"log/slog"
	"sync"

	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
	"github.com/tejashwikalptaru/aboutdocs/internal/ports"
)

// AboutPresenter coordinates between the document service and the About window.
//
// Each document is rendered the first time its tab is selected. The result is kept
// in the content cache for as long as the dialog lives and the tab is never refreshed.
//
// Thread-safety: All operations are thread-safe via sync.Mutex.
type AboutPresenter struct {
	// Dependencies
	logger    *slog.Logger
	documents ports.DocumentRenderer
	cache     ports.ContentCache

	// UI view
	view ports.AboutView

	// Concurrency control
	mu           sync.Mutex
	shutdownOnce sync.Once
}

// NewAboutPresenter creates a new presenter.
func NewAboutPresenter(
	logger *slog.Logger,
	documents ports.DocumentRenderer,
	cache ports.ContentCache,
	view ports.AboutView,
) *AboutPresenter {
	return &AboutPresenter{
		logger:    logger,
		documents: documents,
		cache:     cache,
		view:      view,
	}
}

// OnTabSelected loads the document of a newly selected tab.
// Tabs whose document is already cached are left as they are.
func (p *AboutPresenter) OnTabSelected(ref domain.DocumentReference) {
	if ref.Name == "" {
		return
	}

	p.mu.Lock()
	if _, cached := p.cache.Get(ref.Key()); cached {
		p.mu.Unlock()
		return
	}
	content := p.documents.Render(ref)
	p.cache.Put(ref.Key(), content)
	p.mu.Unlock()

	p.logger.Debug("document loaded into tab",
		slog.String("name", ref.Name),
		slog.String("kind", content.Kind.String()))

	p.view.ShowDocument(ref, content)
}

// ResolveResource forwards resource references from the view to the document service.
func (p *AboutPresenter) ResolveResource(source string) (string, bool) {
	return p.documents.ResolveResource(source)
}

// Content returns the cached content of ref, if it has been loaded.
func (p *AboutPresenter) Content(ref domain.DocumentReference) (domain.RenderedContent, bool) {
	return p.cache.Get(ref.Key())
}

// Shutdown releases every rendered document. Safe to call multiple times.
func (p *AboutPresenter) Shutdown() {
	p.shutdownOnce.Do(func() {
		p.cache.Clear()
		p.logger.Debug("presenter shut down")
	})
}
