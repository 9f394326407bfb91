package linker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/monoref/monoref/internal/logging"
	"github.com/monoref/monoref/internal/manifest"
	"github.com/monoref/monoref/internal/monorepo"
	"github.com/monoref/monoref/internal/tsconfig"
)

// ManifestSource enumerates the internal packages of a monorepo.
type ManifestSource interface {
	InternalPackageManifests() ([]*manifest.PackageManifest, error)
	PackageManifestsByName() (map[string]*manifest.PackageManifest, error)
}

// ConfigStore loads and persists TypeScript configuration files.
type ConfigStore interface {
	LoadParent(directory string) (*tsconfig.ParentConfig, error)
	LoadPackage(directory string) (*tsconfig.PackageConfig, error)
	Write(f tsconfig.File) error
}

// configFile is the part of both configuration kinds the reconcilers use.
type configFile interface {
	tsconfig.File
	Path() string
	References() ([]tsconfig.ProjectReference, error)
	SetReferences(refs []tsconfig.ProjectReference) error
}

// Options configures a Linker.
type Options struct {
	Action Action
	// Out receives lint reports. Defaults to os.Stdout.
	Out    io.Writer
	Logger *zap.Logger
}

// Summary lists what a run did, by configuration file path.
type Summary struct {
	Unchanged []string
	Updated   []string
	Divergent []string
}

func (s *Summary) record(path string, outcome Outcome) {
	switch outcome {
	case Unchanged:
		s.Unchanged = append(s.Unchanged, path)
	case Updated:
		s.Updated = append(s.Updated, path)
	case Divergent:
		s.Divergent = append(s.Divergent, path)
	}
}

// Linker reconciles project references for one monorepo.
type Linker struct {
	source ManifestSource
	store  ConfigStore
	action Action
	out    io.Writer
	logger *zap.Logger
}

// New returns a Linker reading packages from source and configuration files
// from store.
func New(source ManifestSource, store ConfigStore, opts Options) *Linker {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Linker{
		source: source,
		store:  store,
		action: opts.Action,
		out:    out,
		logger: logging.OrNop(opts.Logger),
	}
}

// LinkProjectReferences discovers the monorepo at root and links it with the
// given action. fileName is the configuration file name; empty means
// tsconfig.json.
func LinkProjectReferences(ctx context.Context, root, fileName string, opts Options) (*Summary, error) {
	repo, err := monorepo.FromDirectory(root, opts.Logger)
	if err != nil {
		return nil, &LinkError{Kind: KindEnumerateManifests, Err: err}
	}
	store := tsconfig.NewStore(root, fileName, opts.Logger)
	return New(repo, store, opts).Link(ctx)
}

// Link runs the children pass and then the dependencies pass. In lint mode
// every stale file is reported before ErrProjectReferencesOutOfDate is
// returned. Any I/O or parse failure stops the run with a *LinkError; files
// written before the failure stay written.
func (l *Linker) Link(ctx context.Context) (*Summary, error) {
	manifests, err := l.source.InternalPackageManifests()
	if err != nil {
		return nil, &LinkError{Kind: KindEnumerateManifests, Err: err}
	}
	lookup, err := l.source.PackageManifestsByName()
	if err != nil {
		return nil, &LinkError{Kind: KindEnumerateManifests, Err: err}
	}

	l.logger.Debug("linking project references",
		zap.Stringer("action", l.action),
		zap.Int("packages", len(manifests)))

	summary := &Summary{}
	childrenOK, err := l.linkChildrenPackages(ctx, manifests, summary)
	if err != nil {
		return summary, err
	}
	dependenciesOK, err := l.linkPackageDependencies(ctx, lookup, summary)
	if err != nil {
		return summary, err
	}

	if l.action == ActionLint && !(childrenOK && dependenciesOK) {
		return summary, ErrProjectReferencesOutOfDate
	}
	return summary, nil
}

// linkChildrenPackages gives every ancestor directory of an internal package
// a configuration referencing its immediate children, so the monorepo can be
// compiled from the top down. It reports false if any file diverged.
func (l *Linker) linkChildrenPackages(ctx context.Context, manifests []*manifest.PackageManifest, summary *Summary) (bool, error) {
	ok := true
	hierarchy := keyChildrenByParent(manifests)

	for _, directory := range hierarchy.Directories() {
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("linking children packages: %w", err)
		}

		desired := createProjectReferences(hierarchy[directory])
		cfg, err := l.store.LoadParent(directory)
		if err != nil {
			return false, &LinkError{Kind: KindReadConfig, Path: directory, Err: err}
		}

		outcome, err := l.reconcile(cfg, desired)
		if err != nil {
			return false, err
		}
		summary.record(cfg.Path(), outcome)
		if outcome == Divergent {
			ok = false
		}
	}
	return ok, nil
}

// linkPackageDependencies gives every internal package references to its
// internal dependencies, relative to its own directory. It reports false if
// any file diverged.
func (l *Linker) linkPackageDependencies(ctx context.Context, lookup map[string]*manifest.PackageManifest, summary *Summary) (bool, error) {
	ok := true

	names := make([]string, 0, len(lookup))
	for name := range lookup {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("linking package dependencies: %w", err)
		}

		pkg := lookup[name]
		var paths []string
		for _, dep := range pkg.InternalDependencies(lookup) {
			paths = append(paths, relativePath(pkg.Directory(), dep.Directory()))
		}
		desired := createProjectReferences(paths)

		cfg, err := l.store.LoadPackage(pkg.Directory())
		if err != nil {
			return false, &LinkError{Kind: KindReadConfig, Path: pkg.Directory(), Err: err}
		}

		outcome, err := l.reconcile(cfg, desired)
		if err != nil {
			return false, err
		}
		summary.record(cfg.Path(), outcome)
		if outcome == Divergent {
			ok = false
		}
	}
	return ok, nil
}

// reconcile decides the outcome for one file and carries it out: an update
// replaces the references and writes the file, a divergence is reported.
func (l *Linker) reconcile(cfg configFile, desired []tsconfig.ProjectReference) (Outcome, error) {
	current, err := cfg.References()
	if err != nil {
		return Unchanged, &LinkError{Kind: KindReadConfig, Path: cfg.Path(), Err: err}
	}

	outcome := decide(current, desired, l.action)
	l.logger.Debug("compared project references",
		zap.String("path", cfg.Path()),
		zap.Stringer("outcome", outcome),
		zap.Int("references", len(desired)))

	switch outcome {
	case Updated:
		if err := cfg.SetReferences(desired); err != nil {
			return outcome, &LinkError{Kind: KindWriteConfig, Path: cfg.Path(), Err: err}
		}
		if err := l.store.Write(cfg); err != nil {
			return outcome, &LinkError{Kind: KindWriteConfig, Path: cfg.Path(), Err: err}
		}
	case Divergent:
		if err := l.report(cfg.Path(), desired); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

func (l *Linker) report(path string, desired []tsconfig.ProjectReference) error {
	serialized, err := json.MarshalIndent(desired, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing project references for %s: %w", path, err)
	}
	if _, err := fmt.Fprintf(l.out, "File has out-of-date project references: %q, expecting:\n%s\n", path, serialized); err != nil {
		return fmt.Errorf("reporting %s: %w", path, err)
	}
	return nil
}
