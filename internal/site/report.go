package site

import (
	"time"

	"git.home.luguber.info/inful/docsmith/internal/linkcheck"
)

// PageReport holds everything the build observed about one generated page.
type PageReport struct {
	OutputPath string
	// LinkWarnings are the link-integrity findings for the final HTML.
	LinkWarnings []linkcheck.Warning
	// IndexWarnings are structural notes from the heading indexer.
	IndexWarnings []string
}

// HasWarnings reports whether the page produced any advisory output.
func (p PageReport) HasWarnings() bool {
	return len(p.LinkWarnings) > 0 || len(p.IndexWarnings) > 0
}

// Report summarizes one build.
type Report struct {
	BuildID       string
	PagesRendered int
	PagesSkipped  int
	AssetsCopied  int
	Duration      time.Duration
	// Pages lists only the pages that produced warnings, in output order.
	Pages []PageReport
}

// WarningCount returns the total number of link warnings across all pages.
func (r *Report) WarningCount() int {
	count := 0
	for _, p := range r.Pages {
		count += len(p.LinkWarnings)
	}
	return count
}
