package fyne

import (
	"net/url"
	"strings"

	fyneapp "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/yuin/goldmark/ast"

	"github.com/tejashwikalptaru/aboutdocs/internal/adapter/markdown"
	"github.com/tejashwikalptaru/aboutdocs/internal/ports"
)

// MarkdownParser produces the CommonMark document tree the view lays out.
type MarkdownParser interface {
	Parse(source string) (ast.Node, []byte)
}

// hardWrapper is implemented by parsers configured to keep soft line breaks.
type hardWrapper interface {
	HardWraps() bool
}

// richTextStyleMinorHeading is used for headings below level 2.
var richTextStyleMinorHeading = widget.RichTextStyle{
	ColorName: theme.ColorNameForeground,
	SizeName:  theme.SizeNameText,
	TextStyle: fyneapp.TextStyle{Bold: true},
}

// markdownLayout turns a goldmark tree into RichText segments.
//
// Every image reference, whether Markdown or an <img> tag in raw HTML, is passed
// through resolve as the node is met, so each segment gets the resolution of
// its own reference.
type markdownLayout struct {
	source    []byte
	resolve   ports.ResourceResolver
	hardWraps bool
}

// layoutMarkdown parses source and returns its segments.
func layoutMarkdown(parser MarkdownParser, source string, resolve ports.ResourceResolver) []widget.RichTextSegment {
	doc, src := parser.Parse(source)
	l := &markdownLayout{source: src, resolve: resolve}
	if hw, ok := parser.(hardWrapper); ok {
		l.hardWraps = hw.HardWraps()
	}
	return l.blocks(doc)
}

// blocks lays out the block children of parent.
func (l *markdownLayout) blocks(parent ast.Node) []widget.RichTextSegment {
	var out []widget.RichTextSegment
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, l.block(n)...)
	}
	return out
}

func (l *markdownLayout) block(n ast.Node) []widget.RichTextSegment {
	switch node := n.(type) {
	case *ast.Heading:
		style := richTextStyleMinorHeading
		switch node.Level {
		case 1:
			style = widget.RichTextStyleHeading
		case 2:
			style = widget.RichTextStyleSubHeading
		}
		var images []widget.RichTextSegment
		heading := &widget.TextSegment{Style: style, Text: l.plainText(node, &images)}
		return append([]widget.RichTextSegment{heading}, images...)

	case *ast.Paragraph, *ast.TextBlock:
		return l.paragraph(node)

	case *ast.Blockquote:
		var out []widget.RichTextSegment
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			var images []widget.RichTextSegment
			quote := &widget.TextSegment{Style: widget.RichTextStyleBlockquote, Text: l.plainText(child, &images)}
			out = append(out, quote)
			out = append(out, images...)
		}
		return out

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return []widget.RichTextSegment{
			&widget.TextSegment{Style: widget.RichTextStyleCodeBlock, Text: l.lines(node)},
		}

	case *ast.List:
		list := &widget.ListSegment{Ordered: node.IsOrdered()}
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			list.Items = append(list.Items, l.blocks(item)...)
		}
		return []widget.RichTextSegment{list}

	case *ast.ThematicBreak:
		return []widget.RichTextSegment{&widget.SeparatorSegment{}}

	case *ast.HTMLBlock:
		return l.htmlImages(node)

	default:
		return l.blocks(node)
	}
}

// paragraph lays out inline content. Images end the current run of text and
// become blocks of their own.
func (l *markdownLayout) paragraph(n ast.Node) []widget.RichTextSegment {
	var out []widget.RichTextSegment
	var run []widget.RichTextSegment

	flush := func() {
		if len(run) > 0 {
			out = append(out, &widget.ParagraphSegment{Texts: run})
			run = nil
		}
	}

	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		var images []widget.RichTextSegment
		inline := l.inline(child, &images)
		if inline != nil {
			run = append(run, inline)
		}
		if len(images) > 0 {
			flush()
			out = append(out, images...)
		}
		if text, ok := child.(*ast.Text); ok && (text.HardLineBreak() || l.hardWraps && text.SoftLineBreak()) {
			flush()
		}
	}
	flush()

	return out
}

// inline returns the segment for one inline node. Images found inside it,
// including inside links, are appended to images.
func (l *markdownLayout) inline(n ast.Node, images *[]widget.RichTextSegment) widget.RichTextSegment {
	switch node := n.(type) {
	case *ast.Text:
		txt := clean(node.Segment.Value(l.source))
		if node.SoftLineBreak() {
			txt += " "
		}
		return &widget.TextSegment{Style: widget.RichTextStyleInline, Text: txt}

	case *ast.String:
		return &widget.TextSegment{Style: widget.RichTextStyleInline, Text: clean(node.Value)}

	case *ast.CodeSpan:
		return &widget.TextSegment{Style: widget.RichTextStyleCodeInline, Text: l.plainText(node, images)}

	case *ast.Emphasis:
		style := widget.RichTextStyleEmphasis
		if node.Level >= 2 {
			style = widget.RichTextStyleStrong
		}
		return &widget.TextSegment{Style: style, Text: l.plainText(node, images)}

	case *ast.Link:
		label := l.plainText(node, images)
		u, err := url.Parse(string(node.Destination))
		if label == "" {
			return nil
		}
		if err != nil {
			return &widget.TextSegment{Style: widget.RichTextStyleInline, Text: label}
		}
		return &widget.HyperlinkSegment{Text: label, URL: u}

	case *ast.AutoLink:
		link := string(node.URL(l.source))
		if u, err := url.Parse(link); err == nil {
			return &widget.HyperlinkSegment{Text: string(node.Label(l.source)), URL: u}
		}
		return &widget.TextSegment{Style: widget.RichTextStyleInline, Text: link}

	case *ast.Image:
		*images = append(*images, l.image(string(node.Destination), string(node.Title)))
		return nil

	case *ast.RawHTML:
		*images = append(*images, l.htmlImages(node)...)
		return nil

	default:
		return &widget.TextSegment{Style: widget.RichTextStyleInline, Text: l.plainText(node, images)}
	}
}

// plainText flattens the text below n, collecting images on the way.
func (l *markdownLayout) plainText(n ast.Node, images *[]widget.RichTextSegment) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			b.WriteString(clean(node.Segment.Value(l.source)))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.WriteString(clean(node.Value))
		case *ast.Image:
			*images = append(*images, l.image(string(node.Destination), string(node.Title)))
		case *ast.RawHTML:
			*images = append(*images, l.htmlImages(node)...)
		default:
			b.WriteString(l.plainText(node, images))
		}
	}
	return strings.TrimSpace(b.String())
}

// lines joins the raw lines of a code block.
func (l *markdownLayout) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.WriteString(clean(seg.Value(l.source)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// htmlImages emits a segment for every <img> tag in an HTML node.
// The rest of the markup is not displayed.
func (l *markdownLayout) htmlImages(n ast.Node) []widget.RichTextSegment {
	var out []widget.RichTextSegment
	for _, img := range markdown.HTMLImages(markdown.RawHTML(n, l.source)) {
		out = append(out, l.image(img.Source, img.Alt))
	}
	return out
}

// image builds an image segment for ref, substituted by the resolver when it claims it.
func (l *markdownLayout) image(ref, title string) widget.RichTextSegment {
	target := ref
	if l.resolve != nil {
		if resolved, ok := l.resolve(ref); ok {
			target = resolved
		}
	}
	return &widget.ImageSegment{
		Source:    resourceURI(target),
		Title:     title,
		Alignment: fyneapp.TextAlignCenter,
	}
}

// clean drops carriage returns left by CRLF line endings.
func clean(b []byte) string {
	return strings.ReplaceAll(string(b), "\r", "")
}
