// Package invocation assembles the normalized argument list for one
// external smithy build invocation from a resolved BuildConfiguration.
package invocation

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/smithytools/smithyforge/internal/config"
	forgeerrors "github.com/smithytools/smithyforge/internal/errors"
)

// Flag spellings recognized by the external smithy CLI. The resolver owns
// the full serialization order so no caller can reorder flags by
// construction-order side effects.
const (
	flagDiscoverClasspath = "--discover-classpath"
	flagClasspath         = "--classpath"
	flagProjectionTags    = "--projection-tags"
	flagAllowUnknown      = "--allow-unknown-traits"
	flagOutput            = "--output"
	flagProjectionSource  = "--projection-source"
	flagConfig            = "--config"
	flagDiscover          = "--discover"
	flagSeverity          = "--severity"
)

// ResolvedInvocation is an immutable description of one external process
// invocation: the ordered argument list plus the execution context required
// to launch it. Produced fresh per Resolve call and never mutated after.
type ResolvedInvocation struct {
	args       []string
	classpath  []string
	workingDir string
	tool       string
	fork       bool
}

// Args returns a defensive copy of the ordered argument list.
func (r *ResolvedInvocation) Args() []string {
	return append([]string(nil), r.args...)
}

// ExecutionClasspath returns a copy of the classpath entries the tool needs
// to load plugins and models.
func (r *ResolvedInvocation) ExecutionClasspath() []string {
	return append([]string(nil), r.classpath...)
}

func (r *ResolvedInvocation) WorkingDir() string { return r.workingDir }
func (r *ResolvedInvocation) Tool() string       { return r.tool }
func (r *ResolvedInvocation) Fork() bool         { return r.fork }

// Resolve validates cfg and serializes it into a ResolvedInvocation.
//
// It fails with a configuration error when the config-file set is non-empty
// but none of the files exist: that state signals a misconfiguration, not an
// absence of work. An explicitly empty set is a deliberate opt-out and
// proceeds without config arguments. Output order is stable for identical
// input; the host build system relies on that for cache reproducibility.
func Resolve(cfg config.BuildConfiguration) (*ResolvedInvocation, error) {
	existingConfigs := filterExisting(cfg.ConfigFiles)
	if len(cfg.ConfigFiles) > 0 && len(existingConfigs) == 0 {
		return nil, forgeerrors.NoBuildConfigs(cfg.ConfigFiles)
	}

	args := make([]string, 0, 16+len(existingConfigs)+len(cfg.ModelSources)+len(cfg.ExtraArgs))

	if len(cfg.DiscoveryClasspath) > 0 {
		args = append(args, flagDiscoverClasspath, joinClasspath(cfg.DiscoveryClasspath))
	}
	if len(cfg.ExecutionClasspath) > 0 {
		args = append(args, flagClasspath, joinClasspath(cfg.ExecutionClasspath))
	}
	if len(cfg.ProjectionSourceTags) > 0 {
		args = append(args, flagProjectionTags, strings.Join(cfg.ProjectionSourceTags, ","))
	}
	if cfg.AllowUnknownTraits {
		args = append(args, flagAllowUnknown)
	}
	args = append(args, flagOutput, cfg.OutputDir)
	args = append(args, flagProjectionSource, cfg.SourceProjection)

	for _, cf := range existingConfigs {
		args = append(args, flagConfig, cf)
	}

	// Model sources are best-effort includes; missing paths are dropped
	// rather than failing the build.
	args = append(args, filterExisting(cfg.ModelSources)...)

	// The tool additionally scans classpaths for models. Always on.
	args = append(args, flagDiscover, "true")

	args = append(args, cfg.ExtraArgs...)

	// Severity goes last so generic extra args cannot override it.
	args = append(args, flagSeverity, cfg.Severity.String())

	return &ResolvedInvocation{
		args:       args,
		classpath:  append([]string(nil), cfg.ExecutionClasspath...),
		workingDir: cfg.WorkingDir,
		tool:       cfg.Tool,
		fork:       cfg.Fork,
	}, nil
}

// filterExisting returns the paths that exist on disk, preserving order.
func filterExisting(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func joinClasspath(entries []string) string {
	return strings.Join(entries, string(filepath.ListSeparator))
}
