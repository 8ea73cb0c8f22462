// Package runner launches the external smithy CLI for a resolved invocation.
package runner

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	forgeerrors "github.com/smithytools/smithyforge/internal/errors"
	"github.com/smithytools/smithyforge/internal/invocation"
	"github.com/smithytools/smithyforge/internal/logfields"
)

// classpathEnv is consumed by the smithy CLI launcher to locate plugin and
// model jars.
const classpathEnv = "SMITHY_CLASSPATH"

// buildCommand is the CLI subcommand every resolved invocation targets.
const buildCommand = "build"

// Run executes the smithy build described by inv and blocks until it exits.
//
// Two observable outcomes: nil on exit code 0, a tool-failure error
// otherwise. The error carries the resolved argument list and exit status so
// the invocation can be reproduced verbatim. No retry happens at this layer;
// a failed build is deterministic until configuration changes.
//
// The fork flag selects output handling: a forked build captures combined
// output and logs it on completion, a non-forked build inherits the parent's
// stdout/stderr for interactive use. Both are subprocesses.
func Run(ctx context.Context, inv *invocation.ResolvedInvocation) error {
	args := append([]string{buildCommand}, inv.Args()...)

	cmd := exec.CommandContext(ctx, inv.Tool(), args...)
	cmd.Dir = inv.WorkingDir()
	cmd.Env = buildEnv(inv.ExecutionClasspath())

	slog.Debug("Executing smithy build",
		logfields.Tool(inv.Tool()),
		logfields.Args(args))

	var captured bytes.Buffer
	if inv.Fork() {
		cmd.Stdout = &captured
		cmd.Stderr = &captured
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if inv.Fork() && captured.Len() > 0 {
		slog.Info("smithy build output", "output", strings.TrimRight(captured.String(), "\n"))
	}
	if err != nil {
		return forgeerrors.ToolFailure(args, exitCode(err), err)
	}
	return nil
}

// buildEnv extends the parent environment with the execution classpath.
func buildEnv(classpath []string) []string {
	env := os.Environ()
	if len(classpath) > 0 {
		env = append(env, classpathEnv+"="+strings.Join(classpath, string(filepath.ListSeparator)))
	}
	return env
}

// exitCode extracts the process exit status; -1 covers signals and
// start failures.
func exitCode(err error) int {
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	return -1
}
