package tsconfig

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	referencesKey = "references"
	filesKey      = "files"
)

// ProjectReference points from one TypeScript project to another.
type ProjectReference struct {
	Path string `json:"path"`
}

// Config is a loaded configuration file.
type Config struct {
	directory string
	path      string
	doc       *Document
}

// ParentConfig is the configuration file of a directory that groups child
// packages. Only its references are managed.
type ParentConfig struct {
	Config
}

// PackageConfig is the configuration file of an internal package. Only its
// references are managed; every other key is preserved.
type PackageConfig struct {
	Config
}

// File is implemented by both configuration kinds.
type File interface {
	file() *Config
}

func (c *Config) file() *Config { return c }

// Directory returns the directory holding the file, relative to the root.
func (c *Config) Directory() string {
	return c.directory
}

// Path returns the file path relative to the monorepo root, slash separated.
func (c *Config) Path() string {
	return c.path
}

// Document returns the underlying document.
func (c *Config) Document() *Document {
	return c.doc
}

// References decodes the references field. A missing or null field is an
// empty list.
func (c *Config) References() ([]ProjectReference, error) {
	raw, ok := c.doc.Get(referencesKey)
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	var refs []ProjectReference
	if err := json.Unmarshal(raw, &refs); err != nil {
		return nil, fmt.Errorf("%s: references is not a list of project references: %w", c.path, err)
	}
	for i, ref := range refs {
		if ref.Path == "" {
			return nil, fmt.Errorf("%s: references[%d] has no path", c.path, i)
		}
	}
	return refs, nil
}

// SetReferences replaces the references field, leaving every other key as
// it was.
func (c *Config) SetReferences(refs []ProjectReference) error {
	if refs == nil {
		refs = []ProjectReference{}
	}
	return c.doc.Set(referencesKey, refs)
}

// defaultParentDocument is used for a parent directory without a
// configuration file: a solution-style config that compiles nothing itself.
func defaultParentDocument() *Document {
	doc := NewDocument()
	doc.setRaw(filesKey, json.RawMessage("[]"))
	doc.setRaw(referencesKey, json.RawMessage("[]"))
	return doc
}
