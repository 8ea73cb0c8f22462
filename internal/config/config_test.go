package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forgeerrors "github.com/smithytools/smithyforge/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smithyforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "output: out\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{DefaultConfigFile}, cfg.ConfigFiles, "unset config_files should default")
	assert.Equal(t, SourceProjection, cfg.SourceProjection)
	assert.Equal(t, SeverityWarning, cfg.Severity)
	assert.Equal(t, DefaultTool, cfg.Tool)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "build", cfg.Staging.Root)
}

func TestLoad_ExplicitlyEmptyConfigFiles(t *testing.T) {
	path := writeConfig(t, "config_files: []\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.ConfigFiles)
	assert.Empty(t, cfg.ConfigFiles, "explicit empty list must stay empty, not be defaulted")
}

func TestLoad_PopulatedConfigFilesPreserveOrder(t *testing.T) {
	path := writeConfig(t, "config_files:\n  - b.json\n  - a.json\n  - b.json\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"b.json", "a.json", "b.json"}, cfg.ConfigFiles)
}

func TestLoad_TagsDeduplicatedPreservingOrder(t *testing.T) {
	path := writeConfig(t, "projection_tags: [beta, alpha, beta, gamma]\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"beta", "alpha", "gamma"}, cfg.ProjectionSourceTags)
}

func TestLoad_SeverityParsing(t *testing.T) {
	tests := []struct {
		raw     string
		want    Severity
		wantErr bool
	}{
		{"NOTE", SeverityNote, false},
		{"warning", SeverityWarning, false},
		{" danger ", SeverityDanger, false},
		{"ERROR", SeverityError, false},
		{"LOUD", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			path := writeConfig(t, "severity: \""+tc.raw+"\"\n")
			cfg, err := Load(path)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, forgeerrors.IsCategory(err, forgeerrors.CategoryValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Severity)
		})
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("SMITHYFORGE_TEST_OUT", "expanded-out")
	path := writeConfig(t, "output: ${SMITHYFORGE_TEST_OUT}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded-out", cfg.OutputDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, forgeerrors.IsConfiguration(err))
}

func TestSeverity_AtLeast(t *testing.T) {
	assert.True(t, SeverityError.AtLeast(SeverityNote))
	assert.True(t, SeverityWarning.AtLeast(SeverityWarning))
	assert.False(t, SeverityNote.AtLeast(SeverityDanger))
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smithyforge.yaml")

	require.NoError(t, Init(path, false))

	// Second init without force must refuse to overwrite.
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultConfigFile}, cfg.ConfigFiles)
	assert.Equal(t, SeverityWarning, cfg.Severity)
}
