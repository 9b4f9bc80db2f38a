package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsmith/cmd/docsmith/commands"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("docsmith"),
		kong.Description("Generate a linked documentation site from markdown sources."),
		kong.UsageOnError(),
	)

	global := &commands.Global{}
	ctx.FatalIfErrorf(ctx.Run(global, &cli))
}
