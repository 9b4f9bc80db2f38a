// Package site orchestrates documentation builds: discovery, heading
// indexing, markdown rendering, layout, asset copying, and the advisory
// link-integrity check over the final HTML.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docsmith/internal/config"
	"git.home.luguber.info/inful/docsmith/internal/docs"
	"git.home.luguber.info/inful/docsmith/internal/headings"
	"git.home.luguber.info/inful/docsmith/internal/linkcheck"
	"git.home.luguber.info/inful/docsmith/internal/metrics"
	"git.home.luguber.info/inful/docsmith/internal/render"
)

// Generator builds a documentation site from a source directory.
type Generator struct {
	cfg       *config.Config
	outputDir string
	renderer  *render.Renderer
	indexer   *headings.Indexer
	recorder  metrics.Recorder
	force     bool
}

// NewGenerator creates a generator writing to outputDir.
func NewGenerator(cfg *config.Config, outputDir string) *Generator {
	r := render.New()
	return &Generator{
		cfg:       cfg,
		outputDir: filepath.Clean(outputDir),
		renderer:  r,
		indexer:   headings.New(r),
		recorder:  metrics.NoopRecorder{},
	}
}

// SetRecorder injects a metrics recorder (optional). Returns the generator
// for chaining.
func (g *Generator) SetRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		g.recorder = metrics.NoopRecorder{}
		return g
	}
	g.recorder = r
	return g
}

// SetForce makes the next build regenerate every page regardless of
// staleness.
func (g *Generator) SetForce(force bool) *Generator {
	g.force = force
	return g
}

// Build generates the site. Pages are independent, so stale ones are
// rendered by a bounded worker pool. The returned report carries the
// advisory warnings; only I/O and template failures are errors.
func (g *Generator) Build() (*Report, error) {
	start := time.Now()
	report := &Report{BuildID: uuid.NewString()}
	logger := slog.With("build_id", report.BuildID)

	logger.Info("Starting site generation",
		"source", g.cfg.Source.Directory,
		"output", g.outputDir)

	if g.cfg.Output.Clean {
		if err := os.RemoveAll(g.outputDir); err != nil {
			return nil, fmt.Errorf("cleaning output directory: %w", err)
		}
	}
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	pages, assets, err := docs.Discover(g.cfg.Source.Directory)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		logger.Warn("No documentation files found", "source", g.cfg.Source.Directory)
	}

	if err := g.renderPages(pages, report, logger); err != nil {
		return nil, err
	}
	if err := g.copyAssets(assets, report); err != nil {
		return nil, err
	}

	report.Duration = time.Since(start)
	g.recorder.ObserveBuildDuration(report.Duration)
	g.recorder.IncPagesRendered(report.PagesRendered)
	g.recorder.IncAssetsCopied(report.AssetsCopied)

	logger.Info("Site generation complete",
		"pages", report.PagesRendered,
		"skipped", report.PagesSkipped,
		"assets", report.AssetsCopied,
		"warnings", report.WarningCount(),
		"duration", report.Duration)
	return report, nil
}

// renderPages fans stale pages out over a worker pool. Page state is
// document-scoped, so no synchronization is needed beyond collecting
// results.
func (g *Generator) renderPages(pages []docs.Page, report *Report, logger *slog.Logger) error {
	concurrency := runtime.NumCPU()
	if concurrency > len(pages) {
		concurrency = len(pages)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	tasks := make(chan docs.Page)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	worker := func() {
		defer wg.Done()
		for page := range tasks {
			pr, err := g.buildPage(page)
			mu.Lock()
			switch {
			case err != nil:
				if firstErr == nil {
					firstErr = fmt.Errorf("building %s: %w", page.RelativePath, err)
				}
			default:
				report.PagesRendered++
				if pr.HasWarnings() {
					report.Pages = append(report.Pages, pr)
				}
			}
			mu.Unlock()
		}
	}

	wg.Add(concurrency)
	for range concurrency {
		go worker()
	}
	for _, page := range pages {
		outPath := filepath.Join(g.outputDir, page.OutputPath)
		if !g.force && !g.cfg.Output.Clean && !docs.IsStale(page.Path, outPath) {
			mu.Lock()
			report.PagesSkipped++
			mu.Unlock()
			logger.Debug("Page up to date", "page", page.RelativePath)
			continue
		}
		tasks <- page
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}

	// Workers finish in arbitrary order; keep the report deterministic.
	sort.Slice(report.Pages, func(i, j int) bool {
		return report.Pages[i].OutputPath < report.Pages[j].OutputPath
	})

	g.recordWarnings(report)
	return nil
}

// buildPage renders one source document into a final HTML page and, when
// warnings are enabled, runs the link checker over the result.
func (g *Generator) buildPage(page docs.Page) (PageReport, error) {
	pr := PageReport{OutputPath: page.OutputPath}

	content, err := os.ReadFile(page.Path)
	if err != nil {
		return pr, err
	}
	_, body := docs.SplitFrontmatter(string(content))

	indexed, err := g.indexer.Index(body, g.cfg.WarningsEnabled())
	if err != nil {
		return pr, err
	}
	pr.IndexWarnings = indexed.Warnings

	rendered, err := g.renderer.Render(indexed.Body)
	if err != nil {
		return pr, err
	}

	sidebar, err := buildSidebar(indexed.Tree, g.renderer)
	if err != nil {
		return pr, err
	}

	var buf bytes.Buffer
	err = pageLayout.Execute(&buf, layoutData{
		SiteTitle:       g.cfg.Site.Title,
		SiteDescription: g.cfg.Site.Description,
		Title:           page.Title,
		Content:         template.HTML(rendered),
		Sidebar:         sidebar,
	})
	if err != nil {
		return pr, fmt.Errorf("executing layout: %w", err)
	}

	outPath := filepath.Join(g.outputDir, page.OutputPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return pr, err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return pr, err
	}

	if g.cfg.WarningsEnabled() {
		warnings, err := linkcheck.Check(buf.String())
		if err != nil {
			return pr, err
		}
		pr.LinkWarnings = warnings
	}
	return pr, nil
}

// copyAssets mirrors non-markdown files into the output tree, skipping
// up-to-date copies.
func (g *Generator) copyAssets(assets []docs.Asset, report *Report) error {
	for _, asset := range assets {
		dst := filepath.Join(g.outputDir, asset.RelativePath)
		if !g.force && !g.cfg.Output.Clean && !docs.IsStale(asset.Path, dst) {
			continue
		}
		if err := copyFile(asset.Path, dst); err != nil {
			return fmt.Errorf("copying asset %s: %w", asset.RelativePath, err)
		}
		report.AssetsCopied++
	}
	return nil
}

func (g *Generator) recordWarnings(report *Report) {
	for _, pr := range report.Pages {
		for _, w := range pr.LinkWarnings {
			switch w.Kind {
			case linkcheck.KindDuplicateID:
				g.recorder.IncWarnings("duplicate_id", 1)
			case linkcheck.KindBrokenLink:
				g.recorder.IncWarnings("broken_link", 1)
			}
		}
		g.recorder.IncWarnings("index", len(pr.IndexWarnings))
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
