// Package domain contains core models and logic with no external dependencies.
// This package defines the fundamental entities of the About dialog's document pipeline.
package domain

// DocumentReference identifies a bundled documentation file by its logical name.
// It is created by the shell when a tab is added and never modified afterwards.
type DocumentReference struct {
	// Name is the logical file name relative to the base directory (e.g. "README.md")
	Name string

	// Tag is an opaque identifier owned by the caller (the shell uses it as the tab title)
	Tag string
}

// NewDocumentReference creates a reference whose tag equals its name.
func NewDocumentReference(name string) DocumentReference {
	return DocumentReference{Name: name, Tag: name}
}

// Key returns the identifier used to cache the rendered content of this document.
func (r DocumentReference) Key() string {
	return r.Name
}

// ResolvedDocument is the on-disk location of a DocumentReference.
// It is derived on demand and never cached.
type ResolvedDocument struct {
	// Path is always absolute and cleaned, even if the file does not exist
	Path string

	// Exists reports whether a file was found at Path
	Exists bool
}

// ContentKind tells the shell which widget can display a RenderedContent.
type ContentKind int

const (
	// KindPlainText is shown verbatim in a read-only text area
	KindPlainText ContentKind = iota

	// KindHTML is shown in an HTML (or rich text) view
	KindHTML
)

// String returns a human-readable representation of the content kind.
func (k ContentKind) String() string {
	switch k {
	case KindPlainText:
		return "text"
	case KindHTML:
		return "html"
	default:
		return "unknown"
	}
}

// RenderedContent is the displayable form of a document.
// Rendering always produces one, even when the document is missing.
type RenderedContent struct {
	// Kind selects the view used to display Body
	Kind ContentKind

	// Body is the HTML document or the plain text
	Body string

	// Path is the absolute path the content was rendered from
	Path string

	// Source holds the normalized Markdown for KindHTML content, empty otherwise.
	// Views without an HTML engine lay the document out from it.
	Source string
}

// IsHTML reports whether the content must be shown in an HTML view.
func (c RenderedContent) IsHTML() bool {
	return c.Kind == KindHTML
}

// ProductInfo is the metadata shown in the About dialog header.
type ProductInfo struct {
	// Name is the product name, used in the window title
	Name string

	// Version is the informational version string
	Version string

	// Copyright is the legal copyright line
	Copyright string

	// Website is the product home page, empty to hide the link
	Website string

	// Description is a short Markdown blurb shown under the product name
	Description string
}

// Title returns the dialog title for this product.
func (p ProductInfo) Title() string {
	return "About " + p.Name
}

// VersionLabel returns the version caption shown in the header.
func (p ProductInfo) VersionLabel() string {
	return "Version " + p.Version
}
