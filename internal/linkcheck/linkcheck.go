// Package linkcheck verifies the referential integrity of one rendered HTML
// page: every in-page fragment link should point at an anchor the page
// actually defines, and no anchor ID should be defined twice.
//
// The checker is advisory. It never modifies the page and never fails a
// build by itself; it produces structured warnings and leaves policy to the
// caller.
package linkcheck

import (
	"fmt"

	"git.home.luguber.info/inful/docsmith/internal/textdist"
)

// reservedTarget is the layout's back-to-top link target. It is provided by
// the page chrome rather than the content, so references to it are never
// reported.
const reservedTarget = "top"

// Kind classifies a warning.
type Kind int

const (
	// KindDuplicateID reports an anchor ID defined more than once.
	KindDuplicateID Kind = iota
	// KindBrokenLink reports a fragment reference with no matching anchor.
	KindBrokenLink
)

// String returns the machine-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindDuplicateID:
		return "duplicate-id"
	case KindBrokenLink:
		return "broken-link"
	default:
		return "unknown"
	}
}

// Warning is one link-integrity finding.
type Warning struct {
	Kind       Kind
	Anchor     string // the duplicated ID, or the unresolved fragment
	Suggestion string // closest defined anchor for broken links, "" when none exist
}

// String renders the warning as its report line.
func (w Warning) String() string {
	switch w.Kind {
	case KindDuplicateID:
		return "DUPLICATE ID: " + w.Anchor
	case KindBrokenLink:
		if w.Suggestion == "" {
			return "BROKEN LINK: #" + w.Anchor
		}
		return fmt.Sprintf("BROKEN LINK: #%s, perhaps you meant #%s.", w.Anchor, w.Suggestion)
	default:
		return "UNKNOWN WARNING: " + w.Anchor
	}
}

// AnchorSet holds the anchor IDs one page defines, in document order. On a
// duplicate definition the first occurrence wins for lookups.
type AnchorSet struct {
	ordered []string
	seen    map[string]bool
}

// NewAnchorSet returns an empty set.
func NewAnchorSet() *AnchorSet {
	return &AnchorSet{seen: make(map[string]bool)}
}

// Add records an anchor. It reports false when id was already present.
func (s *AnchorSet) Add(id string) bool {
	if s.seen[id] {
		return false
	}
	s.seen[id] = true
	s.ordered = append(s.ordered, id)
	return true
}

// Contains reports whether id is defined.
func (s *AnchorSet) Contains(id string) bool {
	return s.seen[id]
}

// Anchors returns the defined IDs in document order.
func (s *AnchorSet) Anchors() []string {
	return s.ordered
}

// Len returns the number of distinct anchors.
func (s *AnchorSet) Len() int {
	return len(s.ordered)
}

// Check cross-references the anchors and fragment links of one rendered
// page. Duplicate IDs produce one warning per repeated occurrence; each
// unresolved reference produces a warning carrying the closest defined
// anchor by edit distance (ties keep the anchor defined earliest in the
// page, so output is deterministic). The only error path is an unparseable
// input, which the tolerant HTML parser essentially never produces.
func Check(page string) ([]Warning, error) {
	anchors, warnings, err := ExtractAnchors(page)
	if err != nil {
		return nil, err
	}
	refs, err := ExtractReferences(page)
	if err != nil {
		return nil, err
	}

	for _, ref := range refs {
		if anchors.Contains(ref) {
			continue
		}
		w := Warning{Kind: KindBrokenLink, Anchor: ref}
		if sugg, ok := textdist.Closest(ref, anchors.Anchors()); ok {
			w.Suggestion = sugg
		}
		warnings = append(warnings, w)
	}
	return warnings, nil
}
