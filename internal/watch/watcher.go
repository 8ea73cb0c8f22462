// Package watch re-runs the build whenever model sources or build configs
// change on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/smithytools/smithyforge/internal/logfields"
	"github.com/smithytools/smithyforge/internal/util/sets"
)

// RebuildFunc performs one full resolve/run/stage cycle.
type RebuildFunc func(ctx context.Context) error

// Watcher monitors model source paths and config files and triggers
// debounced rebuilds.
type Watcher struct {
	paths        []string
	rebuild      RebuildFunc
	watcher      *fsnotify.Watcher
	triggerChan  chan struct{}
	debounceTime time.Duration
}

// New creates a watcher over the given file and directory paths. Paths that
// do not exist are skipped with a warning; a watcher over zero usable paths
// is an error.
func New(paths []string, rebuild RebuildFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		rebuild:      rebuild,
		watcher:      fsw,
		triggerChan:  make(chan struct{}, 1),
		debounceTime: 500 * time.Millisecond,
	}

	// Watch directories rather than files directly; editors replace files
	// on save, which breaks per-file watches.
	dirs := sets.New[string]()
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil {
			slog.Warn("Skipping missing watch path", logfields.Path(p))
			continue
		}
		if info.IsDir() {
			dirs.Add(abs)
		} else {
			dirs.Add(filepath.Dir(abs))
		}
		w.paths = append(w.paths, abs)
	}

	if len(w.paths) == 0 {
		fsw.Close()
		return nil, fmt.Errorf("no usable paths to watch")
	}

	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return w, nil
}

// Run blocks, rebuilding on changes, until ctx is cancelled. An initial
// build runs before watching begins so the output is never stale.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.rebuild(ctx); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	}

	go w.eventLoop(ctx)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.triggerChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounceTime, func() {
				slog.Info("Change detected, rebuilding")
				if err := w.rebuild(ctx); err != nil {
					slog.Error("Rebuild failed", logfields.Error(err))
				}
			})
		}
	}
}

func (w *Watcher) eventLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.trigger()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Watcher error", logfields.Error(err))
		}
	}
}

// relevant reports whether name equals a watched file or falls under a
// watched directory.
func (w *Watcher) relevant(name string) bool {
	for _, p := range w.paths {
		if name == p {
			return true
		}
		rel, err := filepath.Rel(p, name)
		if err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
			return true
		}
	}
	return false
}

func (w *Watcher) trigger() {
	select {
	case w.triggerChan <- struct{}{}:
	default:
		// Rebuild already pending
	}
}
