// Package ports define the UI interface for view abstraction.
// This interface allows the presenter to update the UI without depending on Fyne directly.
package ports

import (
	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
)

// AboutView is the interface for the About dialog's view layer.
// This abstracts the Fyne window and allows the presenter to be tested without a real UI.
//
// The presenter asks the document service for content and hands the result to the view.
// Missing or degraded documents still arrive here: their content is the notice or the
// raw text that replaced the rendering.
//
// Thread-safety: All methods must be called from the main UI thread.
type AboutView interface {
	// ShowDocument places rendered content into the tab of ref.
	// It is called at most once per document for the lifetime of the dialog.
	ShowDocument(ref domain.DocumentReference, content domain.RenderedContent)
}

// DocumentRenderer is the part of the document service the dialog depends on.
type DocumentRenderer interface {
	// Render produces the displayable content of ref. It never fails:
	// problems are reported inside the returned content.
	Render(ref domain.DocumentReference) domain.RenderedContent

	// ResolveResource maps an embedded resource reference to its display location.
	// ok is false when the reference is left unchanged.
	ResolveResource(source string) (resolved string, ok bool)
}
