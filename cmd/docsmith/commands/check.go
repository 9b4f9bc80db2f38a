package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"git.home.luguber.info/inful/docsmith/internal/config"
	"git.home.luguber.info/inful/docsmith/internal/site"
)

// CheckCmd implements the 'check' command: a standalone link-integrity pass
// over an already-generated site.
type CheckCmd struct {
	Path   string `arg:"" optional:"" help:"Directory of generated HTML to check (defaults to the configured output directory)"`
	Format string `short:"f" default:"text" enum:"text,json" help:"Output format (text or json)"`
	Quiet  bool   `short:"q" help:"Suppress output, only set the exit code"`
}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	dir := c.Path
	if dir == "" {
		cfg, err := config.Load(root.Config)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dir = cfg.Output.Directory
	}

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", dir)
	}

	results, checked, err := site.CheckDir(dir)
	if err != nil {
		return fmt.Errorf("checking links: %w", err)
	}

	if !c.Quiet {
		if err := formatResults(os.Stdout, c.Format, results, checked); err != nil {
			return err
		}
	}

	// Warnings are advisory for builds, but the standalone checker signals
	// them for CI pipelines.
	if len(results) > 0 {
		os.Exit(1)
	}
	return nil
}

// checkOutput is the JSON shape of one finding.
type checkOutput struct {
	Page       string `json:"page"`
	Kind       string `json:"kind"`
	Anchor     string `json:"anchor"`
	Suggestion string `json:"suggestion,omitempty"`
}

func formatResults(w io.Writer, format string, results []site.PageWarnings, checked int) error {
	if format == "json" {
		out := make([]checkOutput, 0)
		for _, page := range results {
			for _, warning := range page.Warnings {
				out = append(out, checkOutput{
					Page:       page.Path,
					Kind:       warning.Kind.String(),
					Anchor:     warning.Anchor,
					Suggestion: warning.Suggestion,
				})
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	total := 0
	for _, page := range results {
		for _, warning := range page.Warnings {
			fmt.Fprintf(w, "%s: %s\n", page.Path, warning)
			total++
		}
	}
	fmt.Fprintf(w, "%d pages checked, %d warnings\n", checked, total)
	return nil
}
