// Package commands implements the docsmith CLI commands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docsmith/internal/site"
)

// Global holds state shared across subcommands. Logging goes through the
// slog default, configured once in AfterApply.
type Global struct{}

// CLI is the root command definition and global flags.
type CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"docsmith.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build BuildCmd `cmd:"" help:"Generate the documentation site"`
	Check CheckCmd `cmd:"" help:"Check link integrity of an already-generated site"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
	Serve ServeCmd `cmd:"" help:"Serve the site and rebuild on source changes"`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// printBuildWarnings writes a build report's advisory findings to w, one
// line per warning, grouped by page.
func printBuildWarnings(w io.Writer, report *site.Report) {
	for _, page := range report.Pages {
		for _, iw := range page.IndexWarnings {
			fmt.Fprintf(w, "%s: %s\n", page.OutputPath, iw)
		}
		for _, lw := range page.LinkWarnings {
			fmt.Fprintf(w, "%s: %s\n", page.OutputPath, lw)
		}
	}
}
