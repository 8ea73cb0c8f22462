package errors

import "strings"

// Convenience constructors for the error kinds the resolver, stager, and
// runner surface. Each carries enough context for a user to fix their
// configuration without re-running in a debug mode.

// Configuration errors

// NoBuildConfigs signals that the build config set was non-empty but none of
// the referenced files exist. An explicitly empty set never reaches here.
func NoBuildConfigs(requested []string) *ForgeError {
	return New(CategoryConfig, SeverityFatal,
		"no smithy-build configs found; if this was intentional, set config_files to an empty list").
		WithContext("requested", requested)
}

func ConfigNotFound(path string) *ForgeError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(reason string, cause error) *ForgeError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("reason", reason)
}

func ValidationFailed(field, reason string) *ForgeError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Staging errors

// MissingProjection signals that an explicitly requested projection has no
// sources output under the build directory.
func MissingProjection(projection, path string) *ForgeError {
	return New(CategoryProjection, SeverityFatal,
		"projection `"+projection+"` not found or does not contain any models; "+
			"is this projection defined in your smithy-build.json file?").
		WithContext("projection", projection).
		WithContext("path", path)
}

func StagingCopyError(src, dst string, cause error) *ForgeError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "staging copy failed").
		WithContext("source", src).
		WithContext("destination", dst)
}

// External tool errors

// ToolFailure signals a non-zero or exceptional exit from the invoked
// compiler. The resolved argument list and exit status travel with the error
// so the failing invocation can be reproduced verbatim.
func ToolFailure(args []string, exitCode int, cause error) *ForgeError {
	return Wrap(cause, CategoryTool, SeverityFatal, "smithy build failed").
		WithContext("args", strings.Join(args, " ")).
		WithContext("exit_code", exitCode)
}

// Predicates matching the error kinds above.

func IsConfiguration(err error) bool     { return IsCategory(err, CategoryConfig) }
func IsMissingProjection(err error) bool { return IsCategory(err, CategoryProjection) }
func IsToolFailure(err error) bool       { return IsCategory(err, CategoryTool) }
