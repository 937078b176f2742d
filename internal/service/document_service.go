// Package service provides the document pipeline of the About dialog.
package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
	"github.com/tejashwikalptaru/aboutdocs/internal/ports"
)

const (
	// shieldsPrefix marks vector badge images served by shields.io.
	shieldsPrefix = "https://img.shields.io/"

	// rasterShieldsPrefix serves the same badges as PNG.
	rasterShieldsPrefix = "https://raster.shields.io/"

	// localResourcePrefix marks assets stored next to the documents.
	localResourcePrefix = "res/"

	// markdownExt is the only extension rendered as HTML.
	markdownExt = ".md"

	htmlOpen  = "<html><body>"
	htmlClose = "</body></html>"
)

// DocumentService renders bundled documents for display.
//
// Rendering never fails: a missing, unreadable or unconvertible document degrades
// to plain text describing the problem. The service holds no state between calls;
// caching rendered content is the caller's job.
type DocumentService struct {
	// Dependencies (injected)
	logger    *slog.Logger
	locator   ports.DocumentLocator
	converter ports.MarkdownConverter
	bus       ports.EventBus
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	logger *slog.Logger,
	locator ports.DocumentLocator,
	converter ports.MarkdownConverter,
	bus ports.EventBus,
) *DocumentService {
	logger.Debug("document service initialized", slog.String("base_dir", locator.BaseDir()))

	return &DocumentService{
		logger:    logger,
		locator:   locator,
		converter: converter,
		bus:       bus,
	}
}

// Locate resolves ref against the base directory.
func (s *DocumentService) Locate(ref domain.DocumentReference) domain.ResolvedDocument {
	return s.locator.Locate(ref)
}

// Render resolves ref and renders the document found there.
func (s *DocumentService) Render(ref domain.DocumentReference) domain.RenderedContent {
	s.logger.Debug("loading document", slog.String("name", ref.Name))
	return s.render(ref, s.locator.Locate(ref))
}

// RenderPath renders the document at an already resolved absolute path.
func (s *DocumentService) RenderPath(path string) domain.RenderedContent {
	ref := domain.NewDocumentReference(filepath.Base(path))
	info, err := os.Stat(path)
	return s.render(ref, domain.ResolvedDocument{Path: path, Exists: err == nil && !info.IsDir()})
}

func (s *DocumentService) render(ref domain.DocumentReference, doc domain.ResolvedDocument) domain.RenderedContent {
	if !doc.Exists {
		docErr := domain.NewDocumentError("locate", doc.Path, "cannot find file", domain.ErrDocumentNotFound)
		s.logger.Warn("document not found", slog.Any("error", docErr))
		s.bus.Publish(domain.NewDocumentMissingEvent(ref, doc.Path, docErr))
		return domain.RenderedContent{
			Kind: domain.KindPlainText,
			Body: fmt.Sprintf("Cannot find file '%s'", doc.Path),
			Path: doc.Path,
		}
	}

	data, err := os.ReadFile(doc.Path)
	if err != nil {
		docErr := domain.NewDocumentError("read", doc.Path, "cannot read file", fmt.Errorf("%w: %w", domain.ErrDocumentUnreadable, err))
		s.logger.Warn("document unreadable", slog.Any("error", docErr))
		s.bus.Publish(domain.NewDocumentDegradedEvent(ref, doc.Path, docErr))
		return domain.RenderedContent{
			Kind: domain.KindPlainText,
			Body: fmt.Sprintf("Cannot read file '%s': %v", doc.Path, err),
			Path: doc.Path,
		}
	}

	text := NormalizeLineEndings(string(data))

	if Classify(doc.Path) == domain.KindPlainText {
		s.bus.Publish(domain.NewDocumentRenderedEvent(ref, doc.Path, domain.KindPlainText))
		return domain.RenderedContent{
			Kind: domain.KindPlainText,
			Body: text,
			Path: doc.Path,
		}
	}

	fragment, err := s.convert(text)
	if err != nil {
		docErr := domain.NewDocumentError("convert", doc.Path, "showing source instead", err)
		s.logger.Warn("markdown conversion failed", slog.Any("error", docErr))
		s.bus.Publish(domain.NewDocumentDegradedEvent(ref, doc.Path, docErr))
		return domain.RenderedContent{
			Kind: domain.KindPlainText,
			Body: text,
			Path: doc.Path,
		}
	}

	s.bus.Publish(domain.NewDocumentRenderedEvent(ref, doc.Path, domain.KindHTML))
	return domain.RenderedContent{
		Kind:   domain.KindHTML,
		Body:   WrapHTML(fragment),
		Path:   doc.Path,
		Source: text,
	}
}

// convert runs the Markdown converter, turning a panic into an error.
func (s *DocumentService) convert(text string) (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", domain.ErrConversionFailed, r)
		}
	}()
	return s.converter.Convert(text)
}

// ResolveResource substitutes a resource reference met while laying out rendered HTML.
//
// Badges from img.shields.io are redirected to their rasterized PNG equivalent and
// "res/" paths are anchored at the base directory. Any other reference returns false,
// leaving it to the rendering surface's default resolution. No I/O is performed.
func (s *DocumentService) ResolveResource(source string) (string, bool) {
	var resolved string

	switch {
	case hasPrefixFold(source, shieldsPrefix):
		resolved = rasterShieldsPrefix + source[len(shieldsPrefix):] + ".png"
	case hasPrefixFold(source, localResourcePrefix):
		resolved = s.locator.Resolve(source)
	default:
		return "", false
	}

	s.logger.Debug("resource rewritten",
		slog.String("source", source),
		slog.String("resolved", resolved))
	if s.bus.HasSubscribers(domain.EventResourceRewritten) {
		s.bus.Publish(domain.NewResourceRewrittenEvent(source, resolved))
	}

	return resolved, true
}

// Resolver returns ResolveResource as a callback for rendering surfaces.
func (s *DocumentService) Resolver() ports.ResourceResolver {
	return s.ResolveResource
}

// NormalizeLineEndings converts LF line endings to CRLF when the text contains
// no carriage return at all. Mixed or CRLF text is returned unchanged.
func NormalizeLineEndings(text string) string {
	if strings.Contains(text, "\n") && !strings.Contains(text, "\r") {
		return strings.ReplaceAll(text, "\n", "\r\n")
	}
	return text
}

// Classify decides how a document is displayed from its file extension.
func Classify(path string) domain.ContentKind {
	if strings.EqualFold(filepath.Ext(path), markdownExt) {
		return domain.KindHTML
	}
	return domain.KindPlainText
}

// WrapHTML places an HTML fragment inside an explicit html/body envelope.
// Some HTML views lay out incorrectly without a body element.
func WrapHTML(fragment string) string {
	return htmlOpen + fragment + htmlClose
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
