package query

import (
	"fmt"
	"sort"

	"github.com/monoref/monoref/internal/manifest"
)

// Format selects how packages are identified in query results.
type Format int

const (
	// FormatName identifies packages by their package.json name.
	FormatName Format = iota
	// FormatPath identifies packages by directory relative to the root.
	FormatPath
)

func (f Format) String() string {
	switch f {
	case FormatName:
		return "name"
	case FormatPath:
		return "path"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts "name" or "path" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "name":
		return FormatName, nil
	case "path":
		return FormatPath, nil
	default:
		return FormatName, fmt.Errorf("unknown format %q: expected name or path", s)
	}
}

// Source provides the internal packages of a monorepo.
type Source interface {
	PackageManifestsByName() (map[string]*manifest.PackageManifest, error)
}

// InternalDependencies maps every internal package to the sorted list of
// internal packages it depends on. Packages without internal dependencies
// map to an empty list.
func InternalDependencies(source Source, format Format) (map[string][]string, error) {
	lookup, err := source.PackageManifestsByName()
	if err != nil {
		return nil, fmt.Errorf("querying internal dependencies: %w", err)
	}

	key := identify(format)
	result := make(map[string][]string, len(lookup))
	for _, pkg := range lookup {
		deps := []string{}
		for _, dep := range pkg.InternalDependencies(lookup) {
			deps = append(deps, key(dep))
		}
		sort.Strings(deps)
		result[key(pkg)] = deps
	}
	return result, nil
}

func identify(format Format) func(*manifest.PackageManifest) string {
	if format == FormatPath {
		return func(m *manifest.PackageManifest) string { return m.Directory() }
	}
	return func(m *manifest.PackageManifest) string { return m.Name }
}
