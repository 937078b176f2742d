package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/ast"
)

func TestConverter_Heading(t *testing.T) {
	html, err := NewConverter().Convert("# Title")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Title</h1>\n", html)
}

func TestConverter_CRLFInput(t *testing.T) {
	html, err := NewConverter().Convert("# Title\r\n\r\nSome *text*.\r\n")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<em>text</em>")
}

func TestConverter_RawHTMLPassesThrough(t *testing.T) {
	html, err := NewConverter().Convert("<p align=\"center\">logo</p>\n")
	require.NoError(t, err)
	assert.Contains(t, html, `<p align="center">logo</p>`)
}

func TestConverter_NoGFMExtensions(t *testing.T) {
	// Strikethrough is a GFM extension, not CommonMark
	html, err := NewConverter().Convert("~~gone~~")
	require.NoError(t, err)
	assert.Equal(t, "<p>~~gone~~</p>\n", html)
}

func TestConverter_Options(t *testing.T) {
	html, err := NewConverter(WithHeadingIDs()).Convert("# Change Log")
	require.NoError(t, err)
	assert.Equal(t, "<h1 id=\"change-log\">Change Log</h1>\n", html)

	html, err = NewConverter(WithHardWraps()).Convert("one\ntwo")
	require.NoError(t, err)
	assert.Equal(t, "<p>one<br>\ntwo</p>\n", html)
}

func TestConverter_Parse(t *testing.T) {
	doc, src := NewConverter().Parse("# Project\n\n![logo](res/logo.png)\n")

	var destinations []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if img, ok := n.(*ast.Image); ok && entering {
			destinations = append(destinations, string(img.Destination))
		}
		return ast.WalkContinue, nil
	})

	assert.Equal(t, []string{"res/logo.png"}, destinations)
	assert.Equal(t, "# Project\n\n![logo](res/logo.png)\n", string(src))
}

func TestHTMLImages(t *testing.T) {
	raw := []byte(`<p align="center"><IMG SRC="res/logo.png" alt="Logo"><img alt="no source"><img src='https://img.shields.io/badge/x.svg'/></p>`)

	images := HTMLImages(raw)

	require.Len(t, images, 2)
	assert.Equal(t, HTMLImage{Source: "res/logo.png", Alt: "Logo"}, images[0])
	assert.Equal(t, "https://img.shields.io/badge/x.svg", images[1].Source)
	assert.Empty(t, HTMLImages([]byte("<p>no images</p>")))
}

func TestRawHTML(t *testing.T) {
	source := "<p align=\"center\">\n<img src=\"res/logo.png\">\n</p>\n\nText with <img src=\"res/inline.png\"> inside.\n"
	doc, src := NewConverter().Parse(source)

	var blocks, inlines []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.HTMLBlock:
			blocks = append(blocks, string(RawHTML(n, src)))
		case *ast.RawHTML:
			inlines = append(inlines, string(RawHTML(n, src)))
		}
		return ast.WalkContinue, nil
	})

	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], `<img src="res/logo.png">`)
	assert.Equal(t, []string{`<img src="res/inline.png">`}, inlines)
	assert.Nil(t, RawHTML(doc, src))
}
