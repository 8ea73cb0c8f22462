package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyProjection = "projection"
	KeyPlugin     = "plugin"
	KeyPath       = "path"
	KeyConfig     = "config"
	KeyArgs       = "args"
	KeyExitCode   = "exit_code"
	KeyTool       = "tool"
	KeySeverity   = "severity"
	KeyStagingDir = "staging_dir"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Projection(name string) slog.Attr { return slog.String(KeyProjection, name) }
func Plugin(name string) slog.Attr     { return slog.String(KeyPlugin, name) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Config(p string) slog.Attr        { return slog.String(KeyConfig, p) }
func Args(args []string) slog.Attr     { return slog.Any(KeyArgs, args) }
func ExitCode(code int) slog.Attr      { return slog.Int(KeyExitCode, code) }
func Tool(name string) slog.Attr       { return slog.String(KeyTool, name) }
func Severity(s string) slog.Attr      { return slog.String(KeySeverity, s) }
func StagingDir(p string) slog.Attr    { return slog.String(KeyStagingDir, p) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
