package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// calloutStyle is the icon and color class pair for one admonition type.
type calloutStyle struct {
	Icon  string
	Color string
}

var calloutStyles = map[string]calloutStyle{
	"note":      {Icon: "ℹ️", Color: "blue"},
	"tip":       {Icon: "💡", Color: "green"},
	"important": {Icon: "📣", Color: "purple"},
	"warning":   {Icon: "⚠️", Color: "yellow"},
	"caution":   {Icon: "🔥", Color: "red"},
}

var (
	firstParagraphRE   = regexp.MustCompile(`(?s)^\s*<p>(.*?)</p>\s*`)
	admonitionMarkerRE = regexp.MustCompile(`(?i)^\[!(NOTE|TIP|IMPORTANT|WARNING|CAUTION)\][^\n]*`)
)

// admonitionRenderer replaces the default blockquote rendering. It renders
// the blockquote's children with the inner renderer first, then inspects the
// resulting HTML: a first paragraph starting with an [!TYPE] marker turns the
// quote into a styled callout, anything else is emitted as a plain
// blockquote. Detection over rendered paragraphs is deliberate; it relies on
// paragraph rendering being deterministic and running before this hook.
type admonitionRenderer struct {
	inner goldmark.Markdown
}

func newAdmonitionRenderer(inner goldmark.Markdown) renderer.NodeRenderer {
	return &admonitionRenderer{inner: inner}
}

func (r *admonitionRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(gmast.KindBlockquote, r.renderBlockquote)
}

func (r *admonitionRenderer) renderBlockquote(w util.BufWriter, source []byte, node gmast.Node, entering bool) (gmast.WalkStatus, error) {
	if !entering {
		return gmast.WalkContinue, nil
	}

	var innerBuf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if err := r.inner.Renderer().Render(&innerBuf, source, c); err != nil {
			return gmast.WalkStop, err
		}
	}
	innerHTML := innerBuf.String()

	if loc := firstParagraphRE.FindStringSubmatchIndex(innerHTML); loc != nil {
		paragraph := innerHTML[loc[2]:loc[3]]
		if m := admonitionMarkerRE.FindStringSubmatch(paragraph); m != nil {
			// The marker paragraph is dropped; the rest of the quote is the
			// callout body.
			writeCallout(w, m[1], innerHTML[loc[1]:])
			return gmast.WalkSkipChildren, nil
		}
	}

	_, _ = w.WriteString("<blockquote>\n")
	_, _ = w.WriteString(innerHTML)
	_, _ = w.WriteString("</blockquote>\n")
	return gmast.WalkSkipChildren, nil
}

// writeCallout emits the callout container. title keeps the marker's original
// case; the style lookup falls back to the note pair rather than failing on
// an unknown type.
func writeCallout(w util.BufWriter, title, body string) {
	style, ok := calloutStyles[strings.ToLower(title)]
	if !ok {
		style = calloutStyles["note"]
	}

	_, _ = w.WriteString(`<div class="callout callout-` + style.Color + "\">\n")
	_, _ = w.WriteString(`<p class="callout-title"><span class="callout-icon">` + style.Icon + `</span><strong>` + title + "</strong></p>\n")
	_, _ = w.WriteString(body)
	_, _ = w.WriteString("</div>\n")
}
