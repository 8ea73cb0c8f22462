package main

import (
	"github.com/alecthomas/kong"

	"github.com/smithytools/smithyforge/cmd/smithyforge/commands"
	"github.com/smithytools/smithyforge/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("smithyforge"),
		kong.Description("Builds Smithy models through the smithy CLI and stages projection artifacts for packaging."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{}, &cli)
	ctx.FatalIfErrorf(err)
}
