// Package config loads the declarative smithyforge.yaml document and
// resolves it into an immutable BuildConfiguration value.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	forgeerrors "github.com/smithytools/smithyforge/internal/errors"
	"github.com/smithytools/smithyforge/internal/util/sets"
)

// Load reads, expands, and resolves the configuration document at
// configPath. All defaulting happens here so downstream consumers see a
// fully resolved value and never re-apply conventions.
func Load(configPath string) (*BuildConfiguration, error) {
	// Load .env file if it exists; missing .env is not an error.
	_ = godotenv.Load()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, forgeerrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, forgeerrors.ConfigInvalid("unreadable config file", err)
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var fc fileConfig
	if err := yaml.Unmarshal([]byte(expanded), &fc); err != nil {
		return nil, forgeerrors.ConfigInvalid("unmarshal failed", err)
	}

	return resolve(fc)
}

// resolve applies defaults and validates enum fields.
func resolve(fc fileConfig) (*BuildConfiguration, error) {
	cfg := &BuildConfiguration{
		ModelSources:       fc.Models,
		DiscoveryClasspath: fc.DiscoveryClasspath,
		ExecutionClasspath: fc.ExecutionClasspath,
		SourceProjection:   fc.SourceProjection,
		OutputDir:          fc.Output,
		AllowUnknownTraits: fc.AllowUnknownTraits,
		ExtraArgs:          fc.ExtraArgs,
		Tool:               fc.Tool,
		Fork:               fc.Fork,
		WorkingDir:         fc.WorkingDir,
		Staging:            fc.Staging,
	}

	// Tri-state: absent config_files defaults to the conventional file name;
	// an explicit empty list opts out of configs entirely and survives as an
	// empty (non-nil) slice.
	switch {
	case fc.ConfigFiles == nil:
		cfg.ConfigFiles = []string{DefaultConfigFile}
	default:
		cfg.ConfigFiles = append([]string{}, *fc.ConfigFiles...)
	}

	// Tags are a set to the external tool but order still matters for
	// reproducible argument assembly.
	cfg.ProjectionSourceTags = sets.DedupePreserving(fc.ProjectionTags)

	if cfg.SourceProjection == "" {
		cfg.SourceProjection = SourceProjection
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Tool == "" {
		cfg.Tool = DefaultTool
	}
	if cfg.Staging.Root == "" {
		cfg.Staging.Root = "build"
	}

	if fc.Severity == "" {
		cfg.Severity = SeverityWarning
	} else {
		sev, ok := ParseSeverity(fc.Severity)
		if !ok {
			return nil, forgeerrors.ValidationFailed("severity",
				fmt.Sprintf("unknown severity %q (one of NOTE, WARNING, DANGER, ERROR)", fc.Severity))
		}
		cfg.Severity = sev
	}

	return cfg, nil
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := fileConfig{
		Output:           DefaultOutputDir,
		SourceProjection: SourceProjection,
		Severity:         string(SeverityWarning),
		ConfigFiles:      &[]string{DefaultConfigFile},
		Models:           []string{"model/"},
		Staging:          StagingConfig{Root: "build"},
	}

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	header := "# smithyforge configuration\n# Paths support ${ENV_VAR} expansion.\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
