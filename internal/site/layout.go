package site

import (
	"html/template"

	"git.home.luguber.info/inful/docsmith/internal/headings"
	"git.home.luguber.info/inful/docsmith/internal/render"
)

// layoutData feeds the page layout template.
type layoutData struct {
	SiteTitle       string
	SiteDescription string
	Title           string
	Content         template.HTML
	Sidebar         []sidebarSection
}

type sidebarEntry struct {
	ID    string
	Label template.HTML
}

type sidebarSection struct {
	sidebarEntry
	Children []sidebarEntry
}

// pageLayout wraps rendered content in the site chrome. The sidebar links
// into the page by anchor fragment; the footer's back-to-top link targets
// the reserved "top" anchor the layout itself defines.
var pageLayout = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} &mdash; {{.SiteTitle}}</title>
{{- if .SiteDescription}}
<meta name="description" content="{{.SiteDescription}}">
{{- end}}
</head>
<body>
<a id="top"></a>
{{- if .Sidebar}}
<nav class="sidebar">
<ul>
{{- range .Sidebar}}
<li><a href="#{{.ID}}">{{.Label}}</a>
{{- if .Children}}
<ul>
{{- range .Children}}
<li><a href="#{{.ID}}">{{.Label}}</a></li>
{{- end}}
</ul>
{{- end}}
</li>
{{- end}}
</ul>
</nav>
{{- end}}
<main>
<h1>{{.Title}}</h1>
{{.Content}}
</main>
<footer><a href="#top">Back to top</a></footer>
</body>
</html>
`))

// buildSidebar converts a heading tree into template data, rendering each
// label through the restricted inline renderer so titles may carry inline
// markup.
func buildSidebar(tree []headings.Section, r *render.Renderer) ([]sidebarSection, error) {
	var sections []sidebarSection
	for _, sec := range tree {
		entry, err := newSidebarEntry(sec.Heading, r)
		if err != nil {
			return nil, err
		}
		s := sidebarSection{sidebarEntry: entry}
		for _, child := range sec.Children {
			childEntry, err := newSidebarEntry(child, r)
			if err != nil {
				return nil, err
			}
			s.Children = append(s.Children, childEntry)
		}
		sections = append(sections, s)
	}
	return sections, nil
}

func newSidebarEntry(h headings.Heading, r *render.Renderer) (sidebarEntry, error) {
	label, err := r.RenderInline(h.Text)
	if err != nil {
		return sidebarEntry{}, err
	}
	return sidebarEntry{ID: h.ID, Label: template.HTML(label)}, nil
}
