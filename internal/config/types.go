package config

// Reserved names shared with the external smithy CLI. Both sides must agree
// on these byte-for-byte.
const (
	// SourceProjection is the projection treated as primary. It is allowed
	// to be legitimately absent from build output.
	SourceProjection = "source"

	// SourcesPlugin is the plugin whose artifacts hold the projected model
	// sources staged for packaging.
	SourcesPlugin = "sources"

	// DefaultConfigFile is the build config assumed when config_files is
	// left unset.
	DefaultConfigFile = "smithy-build.json"

	// DefaultOutputDir mirrors the smithy CLI's projection output default.
	DefaultOutputDir = "build/smithyprojections"

	// DefaultTool is the compiler binary resolved from PATH.
	DefaultTool = "smithy"
)

// BuildConfiguration is the fully resolved input to the invocation resolver.
// It is constructed once by Load (or by hand in tests) and read-only
// thereafter; resolution over it is a pure function apart from file
// existence checks.
type BuildConfiguration struct {
	// ConfigFiles lists smithy-build config documents. An empty slice is a
	// deliberate opt-out (the "explicitly empty" state): Load defaults an
	// unset field to [DefaultConfigFile], so by the time a
	// BuildConfiguration exists, empty always means opted out.
	ConfigFiles []string

	// ModelSources are file or directory paths containing model files.
	// Non-existent entries are dropped silently at resolve time.
	ModelSources []string

	DiscoveryClasspath []string
	ExecutionClasspath []string

	// ProjectionSourceTags select which classpath entries' models are
	// aggregated into the source projection. Opaque to this layer.
	ProjectionSourceTags []string

	SourceProjection   string
	Severity           Severity
	OutputDir          string
	AllowUnknownTraits bool

	// ExtraArgs are appended verbatim before the severity pair.
	ExtraArgs []string

	// Tool and Fork describe how the external compiler is launched.
	Tool       string
	Fork       bool
	WorkingDir string

	// Staging carries defaults for the artifact staging step.
	Staging StagingConfig
}

// StagingConfig holds the staging defaults from the config document.
type StagingConfig struct {
	// Root is the staging root; defaults to "build".
	Root string `yaml:"root,omitempty"`
	// Projection overrides the projection to stage; empty means the
	// primary (source) projection.
	Projection string `yaml:"projection,omitempty"`
}

// fileConfig is the on-disk YAML shape. ConfigFiles is a pointer so the
// unset/empty/populated tri-state survives unmarshalling: nil means the key
// was absent, a non-nil empty slice means an explicit empty list.
type fileConfig struct {
	Tool               string        `yaml:"tool,omitempty"`
	Fork               bool          `yaml:"fork,omitempty"`
	WorkingDir         string        `yaml:"working_dir,omitempty"`
	Output             string        `yaml:"output,omitempty"`
	SourceProjection   string        `yaml:"source_projection,omitempty"`
	Severity           string        `yaml:"severity,omitempty"`
	AllowUnknownTraits bool          `yaml:"allow_unknown_traits,omitempty"`
	ConfigFiles        *[]string     `yaml:"config_files,omitempty"`
	Models             []string      `yaml:"models,omitempty"`
	DiscoveryClasspath []string      `yaml:"discovery_classpath,omitempty"`
	ExecutionClasspath []string      `yaml:"execution_classpath,omitempty"`
	ProjectionTags     []string      `yaml:"projection_tags,omitempty"`
	ExtraArgs          []string      `yaml:"extra_args,omitempty"`
	Staging            StagingConfig `yaml:"staging,omitempty"`
}
