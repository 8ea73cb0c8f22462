// Package staging relocates projection artifacts produced by a smithy build
// into a packaging-ready resource layout.
package staging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/smithytools/smithyforge/internal/config"
	forgeerrors "github.com/smithytools/smithyforge/internal/errors"
	"github.com/smithytools/smithyforge/internal/logfields"
	"github.com/smithytools/smithyforge/internal/projection"
)

// Request describes one staging invocation. Requests with distinct
// Root/Name pairs are safe to run concurrently; sharing both is
// last-writer-wins on the copy.
type Request struct {
	// InputDir is the projection output root produced by the build step.
	InputDir string
	// Projection to stage. Empty defaults to the primary projection.
	Projection string
	// Primary is the projection treated as the source projection, allowed
	// to be legitimately absent. Empty defaults to the reserved name.
	Primary string
	// StagingRoot is the directory the staged layout is created under.
	StagingRoot string
	// Name uniquely identifies this invocation and namespaces its temp dir.
	Name string
}

// Stage copies the sources-plugin artifacts for the requested projection
// into the staging resource layout.
//
// A missing primary projection is a valid state (a module may produce no
// model artifacts) and stages nothing with a warning. A missing explicitly
// requested projection is a configuration mismatch and fails.
func Stage(req Request) error {
	primary := req.Primary
	if primary == "" {
		primary = config.SourceProjection
	}
	proj := req.Projection
	if proj == "" {
		proj = primary
	}

	sources := projection.SourcesDir(req.InputDir, proj)
	info, err := os.Stat(sources)
	if err != nil || !info.IsDir() {
		if proj == primary {
			slog.Warn("No Smithy model files were found", logfields.Path(sources))
			return nil
		}
		return forgeerrors.MissingProjection(proj, sources)
	}

	dest := projection.ResourceTempDir(req.StagingRoot, req.Name)
	slog.Info("Copying smithy models to staging",
		logfields.Projection(proj),
		logfields.StagingDir(dest))

	if err := copyDir(sources, dest); err != nil {
		return forgeerrors.StagingCopyError(sources, dest, err)
	}
	return nil
}

// copyDir recursively copies a directory tree. Existing destination files
// are overwritten; unrelated pre-existing staging content is left alone.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file from src to dst
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = srcFile.Close()
	}()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = dstFile.Close()
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.Chmod(dst, srcInfo.Mode())
}
