package linkcheck

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// anchorTags are the elements whose id attributes define in-page anchors:
// the heading set, plus the elements the footnote renderer attaches IDs to
// (sup for the reference mark, li and p for the note body).
var anchorTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"sup": true, "li": true, "p": true,
}

// ExtractAnchors collects the anchor IDs a page defines, in document order,
// together with a duplicate-ID warning for every repeated occurrence.
func ExtractAnchors(page string) (*AnchorSet, []Warning, error) {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing HTML: %w", err)
	}

	anchors := NewAnchorSet()
	var warnings []Warning

	walk(root, func(n *html.Node) {
		if !anchorTags[n.Data] {
			return
		}
		id := attr(n, "id")
		if id == "" {
			return
		}
		if !anchors.Add(id) {
			warnings = append(warnings, Warning{Kind: KindDuplicateID, Anchor: id})
		}
	})
	return anchors, warnings, nil
}

// ExtractReferences collects the fragment identifiers of all same-page
// links, in document order. The layout's reserved back-to-top target is
// excluded from checking.
func ExtractReferences(page string) ([]string, error) {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var refs []string
	walk(root, func(n *html.Node) {
		if n.Data != "a" {
			return
		}
		href := attr(n, "href")
		if !strings.HasPrefix(href, "#") {
			return
		}
		frag := strings.TrimPrefix(href, "#")
		if frag == "" || frag == reservedTarget {
			return
		}
		refs = append(refs, frag)
	})
	return refs, nil
}

// walk visits element nodes depth-first, which matches document order.
func walk(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}
