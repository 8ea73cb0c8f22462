package commands

import (
	"fmt"
	"log/slog"

	"github.com/smithytools/smithyforge/internal/config"
	"github.com/smithytools/smithyforge/internal/workspace"
)

// StageCmd implements the 'stage' command.
type StageCmd struct {
	Input      string `short:"i" help:"Projection output directory to stage from (defaults to the configured output)"`
	Projection string `short:"p" help:"Projection to stage (defaults to the primary source projection)"`
	Root       string `short:"r" help:"Staging root directory (defaults to the configured staging root)"`
	Name       string `short:"n" help:"Per-invocation staging name (defaults to a random UUID)"`
	Temp       bool   `help:"Stage into an ephemeral timestamped workspace instead of the configured root"`
}

func (s *StageCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if s.Input != "" {
		cfg.OutputDir = s.Input
	}

	stagingRoot := s.Root
	if s.Temp {
		ws := workspace.NewManager("")
		if err := ws.Create(); err != nil {
			return err
		}
		// Deliberately not cleaned up: the staged tree is the deliverable.
		stagingRoot = ws.GetPath()
	}

	if err := RunStage(*cfg, s.Projection, stagingRoot, s.Name); err != nil {
		return err
	}
	slog.Info("Staging complete")
	return nil
}
