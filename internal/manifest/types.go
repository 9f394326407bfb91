package manifest

// FileName is the manifest file every internal package carries.
const FileName = "package.json"

// PackageManifest is the subset of package.json that monoref reads.
type PackageManifest struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version,omitempty"`
	Private              bool              `json:"private,omitempty"`
	Dependencies         map[string]string `json:"dependencies,omitempty"`
	DevDependencies      map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies     map[string]string `json:"peerDependencies,omitempty"`
	OptionalDependencies map[string]string `json:"optionalDependencies,omitempty"`

	directory string
}

// New returns a manifest for a package named name at directory, relative to
// the monorepo root. Dependencies can be filled in afterwards.
func New(name, directory string) *PackageManifest {
	return &PackageManifest{Name: name, directory: directory}
}

// Directory returns the package directory relative to the monorepo root,
// slash separated (e.g., "packages/foo").
func (m *PackageManifest) Directory() string {
	return m.directory
}

// DependencyNames returns the names declared across every dependency kind,
// in no particular order and possibly with repeats.
func (m *PackageManifest) DependencyNames() []string {
	var names []string
	for _, deps := range []map[string]string{
		m.Dependencies,
		m.DevDependencies,
		m.PeerDependencies,
		m.OptionalDependencies,
	} {
		for name := range deps {
			names = append(names, name)
		}
	}
	return names
}

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/name", "/dependencies/foo")
	Message string // Human-readable error message
	Keyword string // Schema keyword location that failed
}
