package staging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forgeerrors "github.com/smithytools/smithyforge/internal/errors"
	"github.com/smithytools/smithyforge/internal/projection"
)

// layoutProjection creates <input>/<proj>/sources populated with files.
func layoutProjection(t *testing.T, input, proj string, files map[string]string) {
	t.Helper()
	sources := projection.SourcesDir(input, proj)
	for name, content := range files {
		path := filepath.Join(sources, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	require.NoError(t, os.MkdirAll(sources, 0o755))
}

func TestStage_MissingPrimaryProjectionIsNoOp(t *testing.T) {
	input := t.TempDir()
	stagingRoot := t.TempDir()

	err := Stage(Request{InputDir: input, StagingRoot: stagingRoot, Name: "t1"})
	require.NoError(t, err)

	// Nothing was staged.
	_, statErr := os.Stat(projection.ResourceTempDir(stagingRoot, "t1"))
	assert.True(t, os.IsNotExist(statErr), "no copy should occur for missing primary projection")
}

func TestStage_MissingExplicitProjectionFails(t *testing.T) {
	input := t.TempDir()

	err := Stage(Request{
		InputDir:    input,
		Projection:  "custom",
		StagingRoot: t.TempDir(),
		Name:        "t2",
	})
	require.Error(t, err)
	assert.True(t, forgeerrors.IsMissingProjection(err))
	assert.Contains(t, err.Error(), "custom")
}

func TestStage_CopiesAllFiles(t *testing.T) {
	input := t.TempDir()
	stagingRoot := t.TempDir()
	files := map[string]string{
		"main.smithy":          "namespace example",
		"manifest":             "main.smithy\nnested/extra.smithy",
		"nested/extra.smithy":  "namespace example.extra",
		"nested/deeper/a.json": `{"version":"2.0"}`,
	}
	layoutProjection(t, input, "source", files)

	require.NoError(t, Stage(Request{InputDir: input, StagingRoot: stagingRoot, Name: "jar"}))

	dest := projection.ResourceTempDir(stagingRoot, "jar")
	for name, content := range files {
		data, err := os.ReadFile(filepath.Join(dest, name))
		require.NoError(t, err, "staged file %s", name)
		assert.Equal(t, content, string(data), "content of %s", name)
	}
}

func TestStage_ExplicitProjection(t *testing.T) {
	input := t.TempDir()
	stagingRoot := t.TempDir()
	layoutProjection(t, input, "custom", map[string]string{"model.smithy": "namespace custom"})

	require.NoError(t, Stage(Request{
		InputDir:    input,
		Projection:  "custom",
		StagingRoot: stagingRoot,
		Name:        "jar",
	}))

	data, err := os.ReadFile(filepath.Join(projection.ResourceTempDir(stagingRoot, "jar"), "model.smithy"))
	require.NoError(t, err)
	assert.Equal(t, "namespace custom", string(data))
}

func TestStage_OverwritesWithoutDeletingUnrelated(t *testing.T) {
	input := t.TempDir()
	stagingRoot := t.TempDir()
	layoutProjection(t, input, "source", map[string]string{"a.smithy": "new"})

	dest := projection.ResourceTempDir(stagingRoot, "jar")
	require.NoError(t, os.MkdirAll(dest, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "a.smithy"), []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "keep.txt"), []byte("keep"), 0o644))

	require.NoError(t, Stage(Request{InputDir: input, StagingRoot: stagingRoot, Name: "jar"}))

	data, err := os.ReadFile(filepath.Join(dest, "a.smithy"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data), "destination files are overwritten")

	data, err = os.ReadFile(filepath.Join(dest, "keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data), "unrelated staging content survives")
}

func TestStage_DistinctNamesAreNamespaced(t *testing.T) {
	input := t.TempDir()
	stagingRoot := t.TempDir()
	layoutProjection(t, input, "source", map[string]string{"m.smithy": "x"})

	require.NoError(t, Stage(Request{InputDir: input, StagingRoot: stagingRoot, Name: "one"}))
	require.NoError(t, Stage(Request{InputDir: input, StagingRoot: stagingRoot, Name: "two"}))

	for _, name := range []string{"one", "two"} {
		_, err := os.Stat(filepath.Join(projection.ResourceTempDir(stagingRoot, name), "m.smithy"))
		assert.NoError(t, err, "staging %s", name)
	}
}

func TestStage_CustomPrimaryProjection(t *testing.T) {
	input := t.TempDir()

	// With "main" as the primary projection, its absence is a warning...
	err := Stage(Request{InputDir: input, Primary: "main", StagingRoot: t.TempDir(), Name: "t"})
	require.NoError(t, err)

	// ...while the reserved "source" name is now an explicit request.
	err = Stage(Request{InputDir: input, Projection: "source", Primary: "main", StagingRoot: t.TempDir(), Name: "t"})
	require.Error(t, err)
	assert.True(t, forgeerrors.IsMissingProjection(err))
}

func TestStage_SourcesPathIsFileNotDir(t *testing.T) {
	input := t.TempDir()
	// Create the sources path as a regular file; must behave like "missing".
	sources := projection.SourcesDir(input, "custom")
	require.NoError(t, os.MkdirAll(filepath.Dir(sources), 0o755))
	require.NoError(t, os.WriteFile(sources, []byte("not a dir"), 0o644))

	err := Stage(Request{InputDir: input, Projection: "custom", StagingRoot: t.TempDir(), Name: "t"})
	require.Error(t, err)
	assert.True(t, forgeerrors.IsMissingProjection(err))
}
