// Package ports define the document pipeline interfaces.
// These interfaces keep the render service independent of the filesystem,
// the Markdown engine and the shell that displays the result.
package ports

import (
	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
)

// DocumentLocator maps logical document names to absolute filesystem paths.
//
// Implementations are anchored at a base directory fixed at construction time.
// Resolve must be pure: no I/O, no errors, the same output for the same input.
type DocumentLocator interface {
	// Resolve joins fileName onto the base directory and normalizes the result.
	// The returned path is absolute even when no such file exists.
	Resolve(fileName string) string

	// Locate resolves ref and reports whether a file exists at the resulting path.
	Locate(ref domain.DocumentReference) domain.ResolvedDocument

	// BaseDir returns the absolute base directory.
	BaseDir() string
}

// MarkdownConverter turns Markdown source into an HTML fragment.
//
// Implementations must follow the CommonMark dialect.
type MarkdownConverter interface {
	// Convert returns the HTML fragment for source, without any envelope.
	Convert(source string) (string, error)
}

// ResourceResolver is invoked by a rendering surface for every embedded resource
// reference (image source, linked asset) while it lays out rendered HTML.
//
// It returns the substituted reference and true, or "" and false to let the
// surface fall back to its default resolution.
type ResourceResolver func(source string) (string, bool)
