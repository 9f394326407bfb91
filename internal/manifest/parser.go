package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// InvalidManifestError reports a package.json that failed validation.
type InvalidManifestError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidManifestError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			parts = append(parts, issue.Path+": "+issue.Message)
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return fmt.Sprintf("invalid manifest %s: %s", e.Path, strings.Join(parts, "; "))
}

// ParseFile reads and validates <root>/<directory>/package.json. directory
// is relative to root and may use either separator; it is stored slash
// separated.
func ParseFile(root, directory string) (*PackageManifest, error) {
	dir := path.Clean(filepath.ToSlash(directory))
	if dir == "." {
		dir = ""
	}
	file := filepath.Join(root, filepath.FromSlash(dir), FileName)

	data, err := readFile(file)
	if err != nil {
		return nil, err
	}

	m, err := Parse(data, file)
	if err != nil {
		return nil, err
	}
	m.directory = dir
	return m, nil
}

// Parse validates and decodes package.json bytes. source is only used in
// error messages.
func Parse(data []byte, source string) (*PackageManifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidManifestError{Path: source, Issues: result.Issues}
	}

	var m PackageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", source, err)
	}
	return &m, nil
}

// ByName indexes manifests by package name. Two packages sharing a name is
// an error since dependency names could not be resolved unambiguously.
func ByName(manifests []*PackageManifest) (map[string]*PackageManifest, error) {
	byName := make(map[string]*PackageManifest, len(manifests))
	for _, m := range manifests {
		if prev, ok := byName[m.Name]; ok {
			return nil, fmt.Errorf("package name %q is declared by both %q and %q",
				m.Name, prev.Directory(), m.Directory())
		}
		byName[m.Name] = m
	}
	return byName, nil
}

// InternalDependencies returns the manifests of every declared dependency
// that is an internal package according to lookup, across all dependency
// kinds. The result is deduplicated and sorted by package name. A package
// listing itself is ignored.
func (m *PackageManifest) InternalDependencies(lookup map[string]*PackageManifest) []*PackageManifest {
	seen := make(map[string]bool)
	var deps []*PackageManifest
	for _, name := range m.DependencyNames() {
		if name == m.Name || seen[name] {
			continue
		}
		dep, ok := lookup[name]
		if !ok {
			continue
		}
		seen[name] = true
		deps = append(deps, dep)
	}

	sort.Slice(deps, func(i, j int) bool {
		return deps[i].Name < deps[j].Name
	})
	return deps
}

// readFile reads the contents of a file at the given path.
func readFile(file string) ([]byte, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", file, err)
	}
	return data, nil
}
