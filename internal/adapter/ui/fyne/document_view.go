package fyne

import (
	"path/filepath"

	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
	"github.com/tejashwikalptaru/aboutdocs/internal/ports"
)

// newDocumentView builds the widget that displays rendered content.
//
// Fyne has no HTML view, so HTML content is laid out as rich text from its
// Markdown source, with every image passed through resolve on the way.
// Plain text goes into a read-only, word-wrapped, scrolling text area.
func newDocumentView(content domain.RenderedContent, resolve ports.ResourceResolver, parser MarkdownParser) fyneapp.CanvasObject {
	if !content.IsHTML() {
		entry := widget.NewMultiLineEntry()
		entry.Wrapping = fyneapp.TextWrapWord
		entry.SetText(content.Body)
		entry.Disable()
		return entry
	}

	var rich *widget.RichText
	if parser != nil {
		rich = widget.NewRichText(layoutMarkdown(parser, content.Source, resolve)...)
	} else {
		rich = widget.NewRichTextFromMarkdown(content.Source)
	}
	rich.Wrapping = fyneapp.TextWrapWord

	return container.NewVScroll(rich)
}

// resourceURI turns a resolved reference into a URI. Absolute filesystem paths
// become file URIs.
func resourceURI(ref string) fyneapp.URI {
	if filepath.IsAbs(ref) {
		return storage.NewFileURI(ref)
	}
	if uri, err := storage.ParseURI(ref); err == nil {
		return uri
	}
	return storage.NewFileURI(ref)
}
