// Package markdown provides the CommonMark converter built on goldmark.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
	"github.com/tejashwikalptaru/aboutdocs/internal/ports"
)

// Converter renders CommonMark documents to HTML fragments.
// No extensions are enabled so the output follows the CommonMark dialect only.
type Converter struct {
	md        goldmark.Markdown
	hardWraps bool
}

// Option configures a Converter.
type Option func(*options)

type options struct {
	hardWraps bool
	headingID bool
}

// WithHardWraps renders soft line breaks as <br>.
func WithHardWraps() Option {
	return func(o *options) { o.hardWraps = true }
}

// WithHeadingIDs adds generated id attributes to headings.
func WithHeadingIDs() Option {
	return func(o *options) { o.headingID = true }
}

// NewConverter creates a converter. Raw HTML embedded in documents is passed
// through, as CommonMark requires.
func NewConverter(opts ...Option) *Converter {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	rendererOpts := []goldmark.Option{
		goldmark.WithRendererOptions(html.WithUnsafe()),
	}
	if o.hardWraps {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithHardWraps()))
	}
	if o.headingID {
		rendererOpts = append(rendererOpts, goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	}

	return &Converter{md: goldmark.New(rendererOpts...), hardWraps: o.hardWraps}
}

// HardWraps reports whether soft line breaks are rendered as line breaks.
func (c *Converter) HardWraps() bool {
	return c.hardWraps
}

// Convert returns the HTML fragment for source.
func (c *Converter) Convert(source string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrConversionFailed, err)
	}
	return buf.String(), nil
}

// Parse returns the document tree of source together with the bytes its
// segments point into. Views that lay Markdown out themselves walk this tree.
func (c *Converter) Parse(source string) (ast.Node, []byte) {
	src := []byte(source)
	return c.md.Parser().Parse(text.NewReader(src)), src
}

// HTMLImage is an <img> tag found in raw HTML.
type HTMLImage struct {
	Source string
	Alt    string
}

// HTMLImages returns every <img> tag with a src attribute in raw, in document order.
// Documents embed raw HTML mostly to centre a logo or a row of badges.
func HTMLImages(raw []byte) []HTMLImage {
	var images []HTMLImage

	z := xhtml.NewTokenizer(bytes.NewReader(raw))
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return images
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			tok := z.Token()
			if tok.DataAtom != atom.Img {
				continue
			}
			var img HTMLImage
			for _, attr := range tok.Attr {
				switch strings.ToLower(attr.Key) {
				case "src":
					img.Source = attr.Val
				case "alt":
					img.Alt = attr.Val
				}
			}
			if img.Source != "" {
				images = append(images, img)
			}
		}
	}
}

// RawHTML returns the HTML carried by an HTML block or inline raw HTML node.
// Other nodes yield nil.
func RawHTML(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer

	switch node := n.(type) {
	case *ast.HTMLBlock:
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(source))
		}
		if node.HasClosure() {
			buf.Write(node.ClosureLine.Value(source))
		}
	case *ast.RawHTML:
		for i := 0; i < node.Segments.Len(); i++ {
			seg := node.Segments.At(i)
			buf.Write(seg.Value(source))
		}
	default:
		return nil
	}

	return buf.Bytes()
}

// Verify Converter implements the MarkdownConverter interface
var _ ports.MarkdownConverter = (*Converter)(nil)
