// Package ports define repository interfaces for data persistence abstraction.
// These interfaces enable the repository pattern and allow swapping storage mechanisms.
package ports

import (
	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
)

// ContentCache holds rendered documents for the lifetime of their display slot.
// It belongs to the shell; the render service itself keeps no state between calls.
// Nothing is persisted: documents are re-read each time the dialog is opened.
//
// Thread-safety: Implementations must be thread-safe.
type ContentCache interface {
	// Get retrieves the content stored under key.
	// If nothing was stored, returns (zero value, false).
	Get(key string) (domain.RenderedContent, bool)

	// Put stores content under key.
	// If an entry with the same key exists, it is kept and this is a no-op.
	//
	// Returns true if the content was stored.
	Put(key string, content domain.RenderedContent) bool

	// Len returns the number of stored documents.
	Len() int

	// Clear removes every stored document.
	Clear()
}
