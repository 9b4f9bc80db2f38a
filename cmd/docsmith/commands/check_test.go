package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsmith/internal/linkcheck"
	"git.home.luguber.info/inful/docsmith/internal/site"
)

func sampleResults() []site.PageWarnings {
	return []site.PageWarnings{
		{
			Path: "guide.html",
			Warnings: []linkcheck.Warning{
				{Kind: linkcheck.KindBrokenLink, Anchor: "instalation", Suggestion: "installation"},
				{Kind: linkcheck.KindDuplicateID, Anchor: "intro"},
			},
		},
	}
}

func TestFormatResults_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatResults(&buf, "text", sampleResults(), 3))

	out := buf.String()
	require.Contains(t, out, "guide.html: BROKEN LINK: #instalation, perhaps you meant #installation.")
	require.Contains(t, out, "guide.html: DUPLICATE ID: intro")
	require.Contains(t, out, "3 pages checked, 2 warnings")
}

func TestFormatResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatResults(&buf, "json", sampleResults(), 3))

	var out []checkOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)
	require.Equal(t, "broken-link", out[0].Kind)
	require.Equal(t, "installation", out[0].Suggestion)
	require.Equal(t, "duplicate-id", out[1].Kind)
	require.Empty(t, out[1].Suggestion)
}

func TestFormatResults_JSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatResults(&buf, "json", nil, 0))
	require.Equal(t, "[]\n", buf.String())
}

func TestPrintBuildWarnings(t *testing.T) {
	report := &site.Report{
		Pages: []site.PageReport{
			{
				OutputPath:    "page.html",
				IndexWarnings: []string{`subsection "Early" has no preceding section, omitted from index`},
				LinkWarnings:  []linkcheck.Warning{{Kind: linkcheck.KindBrokenLink, Anchor: "missing"}},
			},
		},
	}

	var buf bytes.Buffer
	printBuildWarnings(&buf, report)
	require.Contains(t, buf.String(), `page.html: subsection "Early"`)
	require.Contains(t, buf.String(), "page.html: BROKEN LINK: #missing")
}
