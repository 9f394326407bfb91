package monorepo

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/monoref/monoref/internal/logging"
	"github.com/monoref/monoref/internal/manifest"
)

// Monorepo is the manifest source for one monorepo root. Package discovery
// runs at most once; later calls reuse the parsed manifests.
type Monorepo struct {
	root     string
	source   string
	include  []string
	exclude  []string
	logger   *zap.Logger
	packages []*manifest.PackageManifest
	loaded   bool
}

// FromDirectory reads the workspace declaration at root. Packages are not
// discovered until InternalPackageManifests is called.
func FromDirectory(root string, logger *zap.Logger) (*Monorepo, error) {
	patterns, source, err := readWorkspacePatterns(root)
	if err != nil {
		return nil, fmt.Errorf("reading monorepo manifest: %w", err)
	}

	m := &Monorepo{
		root:   root,
		source: source,
		logger: logging.OrNop(logger),
	}
	for _, p := range patterns {
		if neg, ok := strings.CutPrefix(p, "!"); ok {
			m.exclude = append(m.exclude, normalizePattern(neg))
			continue
		}
		m.include = append(m.include, normalizePattern(p))
	}

	m.logger.Debug("workspace patterns loaded",
		zap.String("source", source),
		zap.Strings("include", m.include),
		zap.Strings("exclude", m.exclude))
	return m, nil
}

// Root returns the monorepo root directory.
func (m *Monorepo) Root() string {
	return m.root
}

// Source returns the file the workspace globs were read from.
func (m *Monorepo) Source() string {
	return m.source
}

// InternalPackageManifests returns every internal package, sorted by
// directory.
func (m *Monorepo) InternalPackageManifests() ([]*manifest.PackageManifest, error) {
	if m.loaded {
		return m.packages, nil
	}

	dirs, err := m.packageDirectories()
	if err != nil {
		return nil, err
	}

	packages := make([]*manifest.PackageManifest, 0, len(dirs))
	for _, dir := range dirs {
		pkg, err := manifest.ParseFile(m.root, dir)
		if err != nil {
			return nil, fmt.Errorf("enumerating package manifests: %w", err)
		}
		m.logger.Debug("discovered package",
			zap.String("name", pkg.Name),
			zap.String("directory", pkg.Directory()))
		packages = append(packages, pkg)
	}

	m.packages = packages
	m.loaded = true
	return packages, nil
}

// PackageManifestsByName indexes the internal packages by package name.
func (m *Monorepo) PackageManifestsByName() (map[string]*manifest.PackageManifest, error) {
	packages, err := m.InternalPackageManifests()
	if err != nil {
		return nil, err
	}
	return manifest.ByName(packages)
}

// packageDirectories expands the include globs, drops excluded and
// node_modules directories, and returns the distinct matches sorted.
func (m *Monorepo) packageDirectories() ([]string, error) {
	fsys := workspaceFS{os.DirFS(m.root)}
	seen := make(map[string]bool)
	var dirs []string

	for _, pattern := range m.include {
		err := doublestar.GlobWalk(fsys, path.Join(pattern, manifest.FileName), func(match string, d fs.DirEntry) error {
			dir := path.Dir(match)
			if seen[dir] || inNodeModules(dir) {
				return nil
			}
			excluded, err := m.isExcluded(dir)
			if err != nil {
				return err
			}
			if excluded {
				return nil
			}
			seen[dir] = true
			dirs = append(dirs, dir)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("expanding workspace pattern %q: %w", pattern, err)
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// workspaceFS hides node_modules directories from directory listings, so
// "**" patterns never descend into installed dependencies.
type workspaceFS struct {
	fs.FS
}

func (w workspaceFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := fs.ReadDir(w.FS, name)
	if err != nil {
		return nil, err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.IsDir() && e.Name() == nodeModules {
			continue
		}
		kept = append(kept, e)
	}
	return kept, nil
}

func (m *Monorepo) isExcluded(dir string) (bool, error) {
	for _, pattern := range m.exclude {
		ok, err := doublestar.Match(pattern, dir)
		if err != nil {
			return false, fmt.Errorf("matching workspace exclusion %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

const nodeModules = "node_modules"

func inNodeModules(dir string) bool {
	for _, part := range strings.Split(dir, "/") {
		if part == nodeModules {
			return true
		}
	}
	return false
}

// normalizePattern turns "./packages/*/" into "packages/*".
func normalizePattern(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimPrefix(p, "./")
	return path.Clean(strings.TrimSuffix(p, "/"))
}
