// Package headings scans a document body for section markers, assigns each
// one an anchor ID, and builds the two-level tree the sidebar is rendered
// from.
package headings

import (
	"fmt"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docsmith/internal/render"
	"git.home.luguber.info/inful/docsmith/internal/slug"
)

// Heading is one indexed section title.
type Heading struct {
	Text  string // raw title text, inline markup not yet rendered
	ID    string // anchor identifier, explicit or slug-derived
	Level int    // 1 or 2
}

// Section is a level-1 heading together with the level-2 headings that
// follow it, in document order.
type Section struct {
	Heading
	Children []Heading
}

// Result holds the rewritten body and the sidebar tree for one document.
type Result struct {
	Body string
	Tree []Section
	// Warnings lists structural problems, populated only when the indexer
	// runs with warnings enabled. Advisory; generation never fails on them.
	Warnings []string
}

// markerRe matches a level-1 or level-2 section marker line, with an
// optional explicit `{#id}` anchor override.
var markerRe = regexp.MustCompile(`^(#{1,2})\s+(\S.*?)(?:\s*\{#([A-Za-z][A-Za-z0-9._:-]*)\})?\s*$`)

// Indexer rewrites section markers into anchored heading elements.
type Indexer struct {
	renderer *render.Renderer
}

// New returns an indexer that renders heading titles with r.
func New(r *render.Renderer) *Indexer {
	return &Indexer{renderer: r}
}

// Index performs a single linear pass over body. Marker lines become <h2>
// and <h3> elements carrying their anchor ID; everything else is preserved
// byte-for-byte. Markers inside fenced code blocks are ordinary content, as
// are malformed markers (no title text). Running Index on its own output is
// a no-op: emitted heading elements do not match the marker syntax.
func (ix *Indexer) Index(body string, warnings bool) (Result, error) {
	lines := strings.Split(body, "\n")
	res := Result{}
	fence := "" // opening fence marker while inside a fenced code block

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if fence == "" {
			switch {
			case strings.HasPrefix(trimmed, "```"):
				fence = "```"
				continue
			case strings.HasPrefix(trimmed, "~~~"):
				fence = "~~~"
				continue
			}
		} else {
			if strings.HasPrefix(trimmed, fence) {
				fence = ""
			}
			continue
		}

		m := markerRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		h := Heading{
			Text:  m[2],
			Level: len(m[1]),
			ID:    m[3],
		}
		if h.ID == "" {
			h.ID = slug.Make(h.Text)
		}

		title, err := ix.renderer.RenderInline(h.Text)
		if err != nil {
			return Result{}, fmt.Errorf("rendering heading %q: %w", h.Text, err)
		}

		tag := "h2"
		if h.Level == 2 {
			tag = "h3"
		}
		// The trailing newline closes the raw-HTML block: without it a
		// non-blank successor line would be absorbed into the block and
		// its markdown never rendered.
		lines[i] = fmt.Sprintf("<%s id=%q>%s</%s>\n", tag, h.ID, title, tag)

		switch h.Level {
		case 1:
			res.Tree = append(res.Tree, Section{Heading: h})
		case 2:
			if len(res.Tree) == 0 {
				// No parent section yet: the anchor stays valid in
				// the page but the sidebar has nowhere to hang it.
				if warnings {
					res.Warnings = append(res.Warnings,
						fmt.Sprintf("subsection %q has no preceding section, omitted from index", h.Text))
				}
				continue
			}
			last := &res.Tree[len(res.Tree)-1]
			last.Children = append(last.Children, h)
		}
	}

	res.Body = strings.Join(lines, "\n")
	return res, nil
}
