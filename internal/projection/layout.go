// Package projection encodes the output-directory contract shared with the
// external smithy CLI: every plugin writes its artifacts under
// <outputDir>/<projectionName>/<pluginName>.
package projection

import "path/filepath"

// PluginDir derives the artifact directory for one projection/plugin pair.
// The join must stay byte-for-byte compatible with the external tool's own
// derivation; do not normalize or clean beyond filepath.Join semantics.
func PluginDir(root, projection, plugin string) string {
	return filepath.Join(root, projection, plugin)
}

// SourcesDir is PluginDir for the reserved "sources" plugin, the tree the
// stager relocates into packaging resources.
func SourcesDir(root, projection string) string {
	return PluginDir(root, projection, "sources")
}

// Staging layout under a staging root. The temp dir is the fine-grained copy
// target; its two ancestors are declared as coarse whole-directory outputs by
// the host build system.
//
//	<root>/tmp/staging-<name>            MetaInfDir
//	<root>/tmp/staging-<name>/META-INF   StagingDir
//	<root>/tmp/staging-<name>/META-INF/smithy  ResourceTempDir
func ResourceTempDir(root, name string) string {
	return filepath.Join(root, "tmp", "staging-"+name, "META-INF", "smithy")
}

// StagingDir returns the parent of the resource temp dir.
func StagingDir(root, name string) string {
	return filepath.Dir(ResourceTempDir(root, name))
}

// MetaInfDir returns the grandparent of the resource temp dir.
func MetaInfDir(root, name string) string {
	return filepath.Dir(StagingDir(root, name))
}
