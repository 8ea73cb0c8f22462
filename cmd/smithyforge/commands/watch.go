package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/smithytools/smithyforge/internal/config"
	"github.com/smithytools/smithyforge/internal/watch"
)

// WatchCmd implements the 'watch' command: rebuild on model or config change.
type WatchCmd struct {
	Stage bool `help:"Also stage the source projection after each successful build"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	paths := make([]string, 0, len(cfg.ModelSources)+len(cfg.ConfigFiles)+1)
	paths = append(paths, root.Config)
	paths = append(paths, cfg.ConfigFiles...)
	paths = append(paths, cfg.ModelSources...)

	rebuild := func(ctx context.Context) error {
		// Reload so config edits take effect on the next cycle.
		current, err := config.Load(root.Config)
		if err != nil {
			return err
		}
		if err := RunBuild(ctx, *current); err != nil {
			return err
		}
		if w.Stage {
			return RunStage(*current, "", "", "")
		}
		return nil
	}

	watcher, err := watch.New(paths, rebuild)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
