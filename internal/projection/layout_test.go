package projection

import (
	"path/filepath"
	"testing"
)

func TestPluginDir(t *testing.T) {
	tests := []struct {
		name       string
		root       string
		projection string
		plugin     string
		want       string
	}{
		{"source sources", "build/smithyprojections", "source", "sources",
			filepath.Join("build/smithyprojections", "source", "sources")},
		{"custom plugin", "/out", "custom", "openapi",
			filepath.Join("/out", "custom", "openapi")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PluginDir(tc.root, tc.projection, tc.plugin); got != tc.want {
				t.Errorf("PluginDir() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSourcesDir(t *testing.T) {
	want := PluginDir("/out", "source", "sources")
	if got := SourcesDir("/out", "source"); got != want {
		t.Errorf("SourcesDir() = %q, want %q", got, want)
	}
}

func TestStagingNesting(t *testing.T) {
	root := "/build"
	name := "jar-staging-1"

	temp := ResourceTempDir(root, name)
	staging := StagingDir(root, name)
	metaInf := MetaInfDir(root, name)

	if filepath.Dir(temp) != staging {
		t.Errorf("StagingDir should be temp's parent: %q vs %q", staging, temp)
	}
	if filepath.Dir(staging) != metaInf {
		t.Errorf("MetaInfDir should be staging's parent: %q vs %q", metaInf, staging)
	}
	if filepath.Base(temp) != "smithy" || filepath.Base(staging) != "META-INF" {
		t.Errorf("unexpected leaf names: %q / %q", temp, staging)
	}
	if filepath.Base(metaInf) != "staging-"+name {
		t.Errorf("metaInf leaf should carry the invocation name: %q", metaInf)
	}
}

func TestStagingNamesDoNotCollide(t *testing.T) {
	a := ResourceTempDir("/build", "a")
	b := ResourceTempDir("/build", "b")
	if a == b {
		t.Error("distinct invocation names must derive distinct temp dirs")
	}
}
