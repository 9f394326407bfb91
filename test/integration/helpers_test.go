//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// layout selects which file declares the workspace globs.
type layout int

const (
	layoutNpm layout = iota
	layoutLerna
	layoutPnpm
)

func (l layout) String() string {
	switch l {
	case layoutLerna:
		return "lerna"
	case layoutPnpm:
		return "pnpm"
	default:
		return "npm"
	}
}

// setupMonorepo creates a synthetic monorepo with two package groups:
//
//	packages/core
//	packages/utils -> core
//	packages/ui    -> core, utils, react (external)
//	apps/web       -> ui, utils, core (dev)
//
// Every package has a tsconfig.json without references. Returns the root.
func setupMonorepo(t *testing.T, l layout) string {
	t.Helper()
	root := t.TempDir()

	switch l {
	case layoutNpm:
		writeFile(t, filepath.Join(root, "package.json"), `{"name": "acme", "private": true, "workspaces": ["packages/*", "apps/*"]}`)
	case layoutLerna:
		writeFile(t, filepath.Join(root, "package.json"), `{"name": "acme", "private": true}`)
		writeFile(t, filepath.Join(root, "lerna.json"), `{"version": "independent", "packages": ["packages/*", "apps/*"]}`)
	case layoutPnpm:
		writeFile(t, filepath.Join(root, "package.json"), `{"name": "acme", "private": true}`)
		writeFile(t, filepath.Join(root, "pnpm-workspace.yaml"), "packages:\n  - 'packages/*'\n  - 'apps/*'\n  - '!**/test/**'\n")
	}

	writePackage(t, root, "packages/core", `{"name": "@acme/core", "version": "1.0.0"}`)
	writePackage(t, root, "packages/utils", `{"name": "@acme/utils", "version": "1.0.0", "dependencies": {"@acme/core": "^1.0.0"}}`)
	writePackage(t, root, "packages/ui", `{
  "name": "@acme/ui",
  "version": "1.0.0",
  "dependencies": {"@acme/utils": "^1.0.0", "react": "^18.0.0"},
  "peerDependencies": {"@acme/core": "^1.0.0"}
}`)
	writePackage(t, root, "apps/web", `{
  "name": "@acme/web",
  "private": true,
  "dependencies": {"@acme/ui": "^1.0.0", "@acme/utils": "^1.0.0"},
  "devDependencies": {"@acme/core": "^1.0.0"}
}`)

	// Never a workspace member.
	writeFile(t, filepath.Join(root, "node_modules", "react", "package.json"), `{"name": "react", "version": "18.2.0"}`)

	return root
}

// writePackage creates package.json and a tsconfig.json without references.
func writePackage(t *testing.T, root, dir, manifest string) {
	t.Helper()
	writeFile(t, filepath.Join(root, dir, "package.json"), manifest)
	writeFile(t, filepath.Join(root, dir, "tsconfig.json"), `{
  "extends": "../../tsconfig.base.json",
  "compilerOptions": {"composite": true, "outDir": "dist"},
  "include": ["src"]
}`)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readReferences returns the reference paths of a configuration file, in
// file order.
func readReferences(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var doc struct {
		References []struct {
			Path string `json:"path"`
		} `json:"references"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	paths := []string{}
	for _, ref := range doc.References {
		paths = append(paths, ref.Path)
	}
	return paths
}

// snapshot reads every tsconfig.json under root, keyed by relative path.
func snapshot(t *testing.T, root string) map[string][]byte {
	t.Helper()
	files := make(map[string][]byte)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && d.Name() == "node_modules" {
			return filepath.SkipDir
		}
		if d.IsDir() || d.Name() != "tsconfig.json" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		files[filepath.ToSlash(rel)] = data
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}

// assertSameFiles fails if the two snapshots differ.
func assertSameFiles(t *testing.T, before, after map[string][]byte) {
	t.Helper()
	if len(before) != len(after) {
		t.Errorf("got %d configuration files, want %d", len(after), len(before))
	}
	for path, data := range before {
		if !bytes.Equal(data, after[path]) {
			t.Errorf("%s changed:\nbefore:\n%s\nafter:\n%s", path, data, after[path])
		}
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
