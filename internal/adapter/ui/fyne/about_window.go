package fyne

import (
	"log/slog"
	"net/url"
	"sync"

	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
	"github.com/tejashwikalptaru/aboutdocs/internal/ports"
)

const (
	WIDTH  = 640
	HEIGHT = 520
)

// AboutWindow shows product metadata and one tab per bundled document.
//
// The AboutWindow follows the MVP pattern:
// - It's a "dumb view" that just displays data
// - Rendering and caching decisions are in the AboutPresenter
// - Tab selection is forwarded to the AboutPresenter
type AboutWindow struct {
	app    fyneapp.App
	window fyneapp.Window

	// UI components
	nameLabel      *widget.Label
	versionLabel   *widget.Label
	copyrightLabel *widget.Label
	websiteLink    *widget.Hyperlink
	tabs           *container.AppTabs
	closeButton    *widget.Button

	// State
	product    domain.ProductInfo
	documents  []domain.DocumentReference
	tabsByName map[string]*container.TabItem
	parser     MarkdownParser
	links      *LinkOpener

	// Event subscriptions
	eventBus      ports.EventBus
	subscriptions []domain.SubscriptionID

	// Lifecycle management
	closeOnce sync.Once

	// Presenter (set after construction)
	presenter *AboutPresenter
}

// NewAboutWindow creates the About window with an empty tab per document.
func NewAboutWindow(
	app fyneapp.App,
	product domain.ProductInfo,
	documents []domain.DocumentReference,
	parser MarkdownParser,
	eventBus ports.EventBus,
	logger *slog.Logger,
) *AboutWindow {
	w := &AboutWindow{
		app:        app,
		product:    product,
		documents:  documents,
		tabsByName: make(map[string]*container.TabItem, len(documents)),
		parser:     parser,
		eventBus:   eventBus,
	}

	w.window = app.NewWindow(product.Title())
	w.links = NewLinkOpener(app, w.window, logger)

	w.buildUI()

	w.window.Resize(fyneapp.NewSize(WIDTH, HEIGHT))
	w.window.CenterOnScreen()

	w.subscribeToEvents()
	w.window.SetOnClosed(w.unsubscribeFromEvents)

	return w
}

// SetPresenter connects the presenter to this view.
// This must be called before showing the window.
func (w *AboutWindow) SetPresenter(presenter *AboutPresenter) {
	w.presenter = presenter
	w.tabs.OnSelected = w.onTabSelected
}

// buildUI constructs the UI components.
func (w *AboutWindow) buildUI() {
	bold := fyneapp.TextStyle{Bold: true}
	w.nameLabel = widget.NewLabelWithStyle(w.product.Name, fyneapp.TextAlignLeading, bold)
	w.versionLabel = widget.NewLabelWithStyle(w.product.VersionLabel(), fyneapp.TextAlignLeading, bold)
	w.copyrightLabel = widget.NewLabel(w.product.Copyright)

	header := container.NewVBox(w.nameLabel, w.versionLabel, w.copyrightLabel)
	if w.product.Description != "" {
		blurb := widget.NewRichTextFromMarkdown(w.product.Description)
		blurb.Wrapping = fyneapp.TextWrapWord
		header.Add(blurb)
	}

	// Documents, one tab each; content is created on first selection
	w.tabs = container.NewAppTabs()
	for _, ref := range w.documents {
		item := container.NewTabItem(ref.Tag, widget.NewLabel(""))
		w.tabsByName[ref.Name] = item
		w.tabs.Append(item)
	}

	// Footer
	w.closeButton = widget.NewButton("Close", func() {
		w.Close()
	})
	footer := container.NewBorder(nil, nil, nil, w.closeButton)
	if u, err := url.Parse(w.product.Website); err == nil && w.product.Website != "" {
		w.websiteLink = widget.NewHyperlink(w.product.Website, u)
		w.websiteLink.OnTapped = func() {
			w.links.Open(w.product.Website)
		}
		footer = container.NewBorder(nil, nil, w.websiteLink, w.closeButton)
	}

	w.window.SetContent(container.NewPadded(container.NewBorder(header, footer, nil, nil, w.tabs)))
}

// onTabSelected forwards tab selection to the presenter.
func (w *AboutWindow) onTabSelected(item *container.TabItem) {
	if w.presenter == nil || item == nil {
		return
	}
	if ref, ok := w.referenceFor(item); ok {
		w.presenter.OnTabSelected(ref)
	}
}

// referenceFor maps a tab back to its document.
func (w *AboutWindow) referenceFor(item *container.TabItem) (domain.DocumentReference, bool) {
	for _, ref := range w.documents {
		if w.tabsByName[ref.Name] == item {
			return ref, true
		}
	}
	return domain.DocumentReference{}, false
}

// subscribeToEvents marks tabs whose document could not be rendered normally.
// Only events about this window's own documents are delivered.
func (w *AboutWindow) subscribeToEvents() {
	if w.eventBus == nil {
		return
	}
	for _, eventType := range []domain.EventType{domain.EventDocumentMissing, domain.EventDocumentDegraded} {
		id := w.eventBus.SubscribeFiltered(eventType, w.ownsDocument, w.onDocumentProblem)
		w.subscriptions = append(w.subscriptions, id)
	}
}

// ownsDocument accepts events whose document has a tab in this window.
func (w *AboutWindow) ownsDocument(event domain.Event) bool {
	_, ok := w.tabsByName[problemReference(event).Name]
	return ok
}

// problemReference returns the document a missing or degraded event is about.
func problemReference(event domain.Event) domain.DocumentReference {
	switch e := event.(type) {
	case domain.DocumentMissingEvent:
		return e.Reference
	case domain.DocumentDegradedEvent:
		return e.Reference
	}
	return domain.DocumentReference{}
}

// unsubscribeFromEvents drops all event subscriptions of this window.
func (w *AboutWindow) unsubscribeFromEvents() {
	if w.eventBus == nil {
		return
	}
	for _, id := range w.subscriptions {
		w.eventBus.Unsubscribe(id)
	}
	w.subscriptions = nil
}

func (w *AboutWindow) onDocumentProblem(event domain.Event) {
	item := w.tabsByName[problemReference(event).Name]
	item.Icon = theme.WarningIcon()
	w.tabs.Refresh()
}

// Show loads the selected document and shows the window.
func (w *AboutWindow) Show() {
	w.loadSelected()
	w.window.Show()
}

// ShowAndRun loads the selected document, shows the window and runs the application.
func (w *AboutWindow) ShowAndRun() {
	w.loadSelected()
	w.window.ShowAndRun()
}

func (w *AboutWindow) loadSelected() {
	if selected := w.tabs.Selected(); selected != nil {
		w.onTabSelected(selected)
	}
}

// Close closes the window. It's safe to call multiple times (idempotent).
func (w *AboutWindow) Close() {
	w.closeOnce.Do(func() {
		w.unsubscribeFromEvents()
		w.window.Close()
	})
}

// GetWindow returns the underlying Fyne window.
func (w *AboutWindow) GetWindow() fyneapp.Window {
	return w.window
}

// AboutView interface implementation

// ShowDocument places rendered content into the tab of ref.
func (w *AboutWindow) ShowDocument(ref domain.DocumentReference, content domain.RenderedContent) {
	item, ok := w.tabsByName[ref.Name]
	if !ok {
		return
	}

	var resolve ports.ResourceResolver
	if w.presenter != nil {
		resolve = w.presenter.ResolveResource
	}

	pathLabel := widget.NewLabelWithStyle(content.Path, fyneapp.TextAlignLeading, fyneapp.TextStyle{Italic: true})
	pathLabel.Truncation = fyneapp.TextTruncateEllipsis

	item.Content = container.NewBorder(pathLabel, nil, nil, nil, newDocumentView(content, resolve, w.parser))
	w.tabs.Refresh()
}

// Verify AboutView implementation
var _ ports.AboutView = (*AboutWindow)(nil)
