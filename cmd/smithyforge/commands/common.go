package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/smithytools/smithyforge/internal/config"
	"github.com/smithytools/smithyforge/internal/invocation"
	"github.com/smithytools/smithyforge/internal/logfields"
	"github.com/smithytools/smithyforge/internal/runner"
	"github.com/smithytools/smithyforge/internal/staging"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"smithyforge.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Run the smithy build for all configured projections"`
	Stage StageCmd `cmd:"" help:"Stage projection artifacts into a packaging resource layout"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
	Watch WatchCmd `cmd:"" help:"Rebuild whenever model sources or build configs change"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel honors the verbose flag and the SMITHYFORGE_LOG_LEVEL
// environment variable (debug|info|warn|error); the flag wins.
func parseLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(os.Getenv("SMITHYFORGE_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RunBuild resolves the invocation from cfg and executes the external tool.
// Shared by the build and watch commands.
func RunBuild(ctx context.Context, cfg config.BuildConfiguration) error {
	inv, err := invocation.Resolve(cfg)
	if err != nil {
		return err
	}

	slog.Info("Running smithy build",
		logfields.Tool(cfg.Tool),
		logfields.Severity(cfg.Severity.String()),
		logfields.Path(cfg.OutputDir))
	slog.Debug("Resolved invocation", logfields.Args(inv.Args()))

	return runner.Run(ctx, inv)
}

// RunStage stages the configured projection out of the build output tree.
// An empty name gets a fresh UUID so concurrent stagings never collide.
func RunStage(cfg config.BuildConfiguration, projectionName, stagingRoot, name string) error {
	if projectionName == "" {
		projectionName = cfg.Staging.Projection
	}
	if stagingRoot == "" {
		stagingRoot = cfg.Staging.Root
	}
	if name == "" {
		name = uuid.New().String()
	}

	return staging.Stage(staging.Request{
		InputDir:    cfg.OutputDir,
		Projection:  projectionName,
		Primary:     cfg.SourceProjection,
		StagingRoot: stagingRoot,
		Name:        name,
	})
}
