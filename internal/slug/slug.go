// Package slug derives URL-safe anchor identifiers from heading text.
//
// This is the single source of the heading-to-ID rule. Both the heading
// indexer and the markdown renderer's ID generator call Make, so the anchors
// catalogued for the sidebar always match the anchors present in the
// rendered page.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining marks after NFD decomposition, so accented
// letters fold to their base form ("Résumé" -> "Resume").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts heading text into its anchor identifier: accents folded,
// lower-cased, punctuation dropped, words joined by "-".
func Make(text string) string {
	folded, _, err := transform.String(stripMarks, text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingSep = true
		default:
			// Punctuation is dropped without forcing a separator,
			// so "it's" slugs to "its", not "it-s".
		}
	}
	return b.String()
}
