package linkcheck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractAnchors_HeadingsAndFootnotes(t *testing.T) {
	page := `<html><body>
<h2 id="overview">Overview</h2>
<h3 id="setup">Setup</h3>
<p>text<sup id="fnref:1"><a href="#fn:1">1</a></sup></p>
<ol><li id="fn:1"><p>the note</p></li></ol>
</body></html>`

	anchors, warnings, err := ExtractAnchors(page)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, []string{"overview", "setup", "fnref:1", "fn:1"}, anchors.Anchors())
}

func TestExtractAnchors_DuplicateWarningPerOccurrence(t *testing.T) {
	page := `<h3 id="intro">a</h3><p>x</p><h3 id="intro">b</h3>`
	anchors, warnings, err := ExtractAnchors(page)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, Warning{Kind: KindDuplicateID, Anchor: "intro"}, warnings[0])
	require.Equal(t, 1, anchors.Len())

	// A third occurrence is reported again, not deduplicated.
	page += `<h3 id="intro">c</h3>`
	_, warnings, err = ExtractAnchors(page)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
}

func TestExtractAnchors_IgnoresNonAnchorElements(t *testing.T) {
	page := `<div id="layout"><span id="badge">x</span><h2 id="real">t</h2></div>`
	anchors, _, err := ExtractAnchors(page)
	require.NoError(t, err)
	require.Equal(t, []string{"real"}, anchors.Anchors())
}

func TestExtractReferences_DocumentOrderAndReservedTarget(t *testing.T) {
	page := `<a href="#second">s</a><a href="#top">up</a><a href="#first">f</a><a href="https://example.com/#x">ext</a>`
	refs, err := ExtractReferences(page)
	require.NoError(t, err)
	require.Equal(t, []string{"second", "first"}, refs)
}

func TestCheck_BrokenLinkWithSuggestion(t *testing.T) {
	page := `<h2 id="installation">i</h2><h2 id="configuration">c</h2>
<a href="#instalation">typo</a>`

	warnings, err := Check(page)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, KindBrokenLink, warnings[0].Kind)
	require.Equal(t, "instalation", warnings[0].Anchor)
	require.Equal(t, "installation", warnings[0].Suggestion)
	require.Equal(t, "BROKEN LINK: #instalation, perhaps you meant #installation.", warnings[0].String())
}

func TestCheck_ReservedTargetNeverReported(t *testing.T) {
	warnings, err := Check(`<a href="#top">back to top</a>`)
	require.NoError(t, err)
	require.Empty(t, warnings)
}

func TestCheck_EmptyPage(t *testing.T) {
	warnings, err := Check(`<html><body><p>nothing here</p></body></html>`)
	require.NoError(t, err)
	require.Empty(t, warnings)
}

func TestCheck_NoAnchorsOmitsSuggestion(t *testing.T) {
	warnings, err := Check(`<a href="#missing">x</a>`)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, "", warnings[0].Suggestion)
	require.Equal(t, "BROKEN LINK: #missing", warnings[0].String())
}

func TestCheck_ResolvedLinksProduceNoWarnings(t *testing.T) {
	page := `<h2 id="usage">u</h2><a href="#usage">see usage</a>`
	warnings, err := Check(page)
	require.NoError(t, err)
	require.Empty(t, warnings)
}

func TestCheck_SuggestionTieIsFirstDefined(t *testing.T) {
	// Both anchors are distance 1 from the reference; the one defined
	// first in the page wins.
	page := `<h2 id="cab">1</h2><h2 id="car">2</h2><a href="#cat">x</a>`
	warnings, err := Check(page)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, "cab", warnings[0].Suggestion)
}

func TestWarningString_Duplicate(t *testing.T) {
	w := Warning{Kind: KindDuplicateID, Anchor: "intro"}
	require.Equal(t, "DUPLICATE ID: intro", w.String())
}
