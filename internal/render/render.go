package render

import (
	"bytes"
	"strings"

	"github.com/fivenightsatbothra-commits/MD-Blog/internal/model"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// tocMaxLevel: only h1-h3 make it into the table of contents.
const tocMaxLevel = 3

// Renderer converts article markdown into an HTML fragment plus the table
// of contents collected from its headings. A Renderer is stateless across
// calls; Render returns both outputs instead of accumulating anything.
type Renderer struct {
	md goldmark.Markdown
}

func New() *Renderer {
	base := []goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,
			// Unrecognized language tokens fall back to plain text; a fence
			// never fails the render.
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	}

	// The admonition renderer needs the blockquote's inner paragraphs already
	// rendered before it can inspect them, so it carries a plain renderer
	// (same extensions, no blockquote override) for the inner content.
	inner := goldmark.New(base...)
	opts := append(base[:len(base):len(base)],
		goldmark.WithRendererOptions(renderer.WithNodeRenderers(
			util.Prioritized(newAdmonitionRenderer(inner), 100),
		)),
	)

	return &Renderer{md: goldmark.New(opts...)}
}

// Render converts body markdown into HTML. Headings get an id attribute
// derived from their text; headings of level 1-3 are collected into the
// returned table of contents in document order. Duplicate heading texts
// produce colliding anchors; that is not guarded here.
func (r *Renderer) Render(source []byte) (string, []model.HeadingEntry, error) {
	doc := r.md.Parser().Parse(text.NewReader(source))

	var toc []model.HeadingEntry
	err := gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		headingText := nodeText(h, source)
		anchor := Anchor(headingText)
		h.SetAttributeString("id", []byte(anchor))
		if h.Level <= tocMaxLevel {
			toc = append(toc, model.HeadingEntry{Anchor: anchor, Text: headingText, Level: h.Level})
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return "", nil, err
	}

	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		return "", nil, err
	}
	return buf.String(), toc, nil
}

// nodeText collects the raw source text of a node's inline content.
func nodeText(n gmast.Node, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			sb.Write(t.Segment.Value(source))
		case *gmast.String:
			sb.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return sb.String()
}
