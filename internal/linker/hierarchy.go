package linker

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/monoref/monoref/internal/manifest"
	"github.com/monoref/monoref/internal/tsconfig"
)

// Hierarchy maps every directory that is an ancestor of an internal package
// to the distinct path segments directly below it. The monorepo root is "".
type Hierarchy map[string][]string

// Directories returns the hierarchy keys sorted.
func (h Hierarchy) Directories() []string {
	dirs := make([]string, 0, len(h))
	for dir := range h {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// keyChildrenByParent folds package directories into a Hierarchy. A package
// at a/b/c contributes "a" under "", "b" under "a" and "c" under "a/b".
func keyChildrenByParent(manifests []*manifest.PackageManifest) Hierarchy {
	hierarchy := make(Hierarchy)
	for _, m := range manifests {
		dir := m.Directory()
		if dir == "" {
			continue
		}

		pathSoFar := ""
		for _, component := range strings.Split(dir, "/") {
			if !utf8.ValidString(component) {
				panic(fmt.Sprintf("package directory %q is not valid UTF-8", dir))
			}

			children := hierarchy[pathSoFar]
			if !contains(children, component) {
				hierarchy[pathSoFar] = append(children, component)
			}
			pathSoFar = path.Join(pathSoFar, component)
		}
	}
	return hierarchy
}

// createProjectReferences builds references sorted by path, so the files
// they are written to stay stable under version control.
func createProjectReferences(paths []string) []tsconfig.ProjectReference {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	refs := make([]tsconfig.ProjectReference, 0, len(sorted))
	for _, p := range sorted {
		refs = append(refs, tsconfig.ProjectReference{Path: p})
	}
	return refs
}

// relativePath returns the slash separated path from one package directory
// to another, e.g. "../bar" from packages/foo to packages/bar. The root
// directory is "".
func relativePath(from, to string) string {
	rel, err := filepath.Rel(filepath.FromSlash(from), filepath.FromSlash(to))
	if err != nil {
		panic(fmt.Sprintf("unable to calculate a relative path from %q to %q: %v", from, to, err))
	}
	rel = path.Clean(filepath.ToSlash(rel))
	if !utf8.ValidString(rel) {
		panic(fmt.Sprintf("relative path from %q to %q is not valid UTF-8", from, to))
	}
	return rel
}

// contains checks if a string slice contains a value.
func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
