package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/docsmith/internal/config"
	"git.home.luguber.info/inful/docsmith/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory for the generated site (overrides config)"`
	Force  bool   `short:"f" help:"Regenerate all pages regardless of modification time"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	outputDir := cfg.Output.Directory
	if b.Output != "" {
		outputDir = b.Output
	}

	report, err := site.NewGenerator(cfg, outputDir).SetForce(b.Force).Build()
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	printBuildWarnings(os.Stdout, report)
	return nil
}
