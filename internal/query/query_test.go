package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/monoref/monoref/internal/manifest"
)

type fakeSource struct {
	manifests []*manifest.PackageManifest
	err       error
}

func (f fakeSource) PackageManifestsByName() (map[string]*manifest.PackageManifest, error) {
	if f.err != nil {
		return nil, f.err
	}
	return manifest.ByName(f.manifests)
}

func withDeps(m *manifest.PackageManifest, deps ...string) *manifest.PackageManifest {
	m.Dependencies = make(map[string]string, len(deps))
	for _, d := range deps {
		m.Dependencies[d] = "*"
	}
	return m
}

func testSource() fakeSource {
	return fakeSource{manifests: []*manifest.PackageManifest{
		withDeps(manifest.New("@acme/app", "apps/app"), "@acme/ui", "@acme/core", "react"),
		withDeps(manifest.New("@acme/ui", "packages/ui"), "@acme/core"),
		manifest.New("@acme/core", "packages/core"),
	}}
}

func TestInternalDependencies(t *testing.T) {
	tests := []struct {
		format Format
		want   map[string][]string
	}{
		{
			format: FormatName,
			want: map[string][]string{
				"@acme/app":  {"@acme/core", "@acme/ui"},
				"@acme/ui":   {"@acme/core"},
				"@acme/core": {},
			},
		},
		{
			format: FormatPath,
			want: map[string][]string{
				"apps/app":      {"packages/core", "packages/ui"},
				"packages/ui":   {"packages/core"},
				"packages/core": {},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, err := InternalDependencies(testSource(), tt.format)
			if err != nil {
				t.Fatalf("InternalDependencies error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInternalDependencies_SourceError(t *testing.T) {
	cause := errors.New("no workspaces")
	_, err := InternalDependencies(fakeSource{err: cause}, FormatName)
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	for _, want := range []Format{FormatName, FormatPath} {
		got, err := ParseFormat(want.String())
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", want, got, err, want)
		}
	}
	if _, err := ParseFormat("json"); err == nil {
		t.Error("expected error for unknown format")
	}
}
