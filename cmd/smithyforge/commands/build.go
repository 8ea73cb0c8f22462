package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/smithytools/smithyforge/internal/config"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Override the projection output directory"`
	Severity    string `help:"Override the minimum reported validation severity (NOTE|WARNING|DANGER|ERROR)"`
	Stage       bool   `help:"Stage the source projection after a successful build"`
	StagingName string `name:"staging-name" help:"Per-invocation staging name (defaults to a random UUID)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if b.Output != "" {
		cfg.OutputDir = b.Output
	}
	if b.Severity != "" {
		sev, ok := config.ParseSeverity(b.Severity)
		if !ok {
			slog.Warn("Ignoring invalid --severity value", "value", b.Severity)
		} else {
			cfg.Severity = sev
		}
	}

	if err := RunBuild(context.Background(), *cfg); err != nil {
		return err
	}

	if b.Stage {
		return RunStage(*cfg, "", "", b.StagingName)
	}
	return nil
}
