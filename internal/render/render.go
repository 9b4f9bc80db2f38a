// Package render converts markdown document bodies to HTML.
//
// Heading anchors are generated through the shared slug package, so IDs
// assigned here are identical to the ones the heading indexer catalogues.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/docsmith/internal/slug"
)

// Renderer wraps a configured goldmark instance. Safe for concurrent use;
// per-document state lives in the parse context.
type Renderer struct {
	md goldmark.Markdown
}

// New builds the project renderer: GFM tables and strikethrough, footnotes
// (whose fn:/fnref: anchors the link checker recognizes), explicit `{#id}`
// heading attributes, auto heading IDs via the shared slug rule, and raw
// HTML passthrough for the heading elements the indexer emits.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Footnote),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithHeadingAttribute(),
			),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts a markdown body (frontmatter already removed) to HTML.
func (r *Renderer) Render(body string) (string, error) {
	ctx := parser.NewContext(parser.WithIDs(newSlugIDs()))
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf, parser.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderInline renders a single line of markdown in restricted no-block
// mode, for heading titles and sidebar labels. The input is rendered as a
// paragraph and the wrapping <p> element is stripped.
func (r *Renderer) RenderInline(text string) (string, error) {
	out, err := r.Render(text)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return out, nil
}

// slugIDs implements parser.IDs on top of slug.Make, with the usual -1, -2
// suffixing for repeated heading text within one document.
type slugIDs struct {
	used map[string]bool
}

func newSlugIDs() *slugIDs {
	return &slugIDs{used: make(map[string]bool)}
}

func (s *slugIDs) Generate(value []byte, _ gmast.NodeKind) []byte {
	id := slug.Make(string(value))
	if id == "" {
		id = "heading"
	}
	if !s.used[id] {
		s.used[id] = true
		return []byte(id)
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", id, i)
		if !s.used[candidate] {
			s.used[candidate] = true
			return []byte(candidate)
		}
	}
}

func (s *slugIDs) Put(value []byte) {
	s.used[string(value)] = true
}
