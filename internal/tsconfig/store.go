package tsconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/monoref/monoref/internal/logging"
	"github.com/monoref/monoref/internal/platform"
)

// DefaultFileName is the configuration file name TypeScript looks for.
const DefaultFileName = "tsconfig.json"

// Store loads and writes configuration files below a monorepo root.
type Store struct {
	Root     string
	FileName string
	Logger   *zap.Logger
}

// NewStore returns a Store for root. An empty fileName means
// DefaultFileName.
func NewStore(root, fileName string, logger *zap.Logger) *Store {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Store{Root: root, FileName: fileName, Logger: logging.OrNop(logger)}
}

// LoadParent loads the configuration of a parent directory. A missing file
// yields an in-memory default that is only persisted by Write.
func (s *Store) LoadParent(directory string) (*ParentConfig, error) {
	cfg := s.newConfig(directory)
	doc, err := s.read(cfg.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger().Debug("parent config missing, using default", zap.String("path", cfg.path))
		cfg.doc = defaultParentDocument()
		return &ParentConfig{Config: cfg}, nil
	}
	if err != nil {
		return nil, err
	}
	cfg.doc = doc
	return &ParentConfig{Config: cfg}, nil
}

// LoadPackage loads the configuration of an internal package. The file must
// exist.
func (s *Store) LoadPackage(directory string) (*PackageConfig, error) {
	cfg := s.newConfig(directory)
	doc, err := s.read(cfg.path)
	if err != nil {
		return nil, err
	}
	cfg.doc = doc
	return &PackageConfig{Config: cfg}, nil
}

// Write persists a loaded configuration file.
func (s *Store) Write(f File) error {
	cfg := f.file()
	data, err := cfg.doc.MarshalIndent()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", cfg.path, err)
	}
	if err := platform.WriteFile(s.abs(cfg.path), data, 0644); err != nil {
		return err
	}
	s.logger().Info("wrote configuration", zap.String("path", cfg.path))
	return nil
}

func (s *Store) newConfig(directory string) Config {
	dir := path.Clean(filepath.ToSlash(directory))
	if dir == "." {
		dir = ""
	}
	return Config{
		directory: dir,
		path:      path.Join(dir, s.fileName()),
	}
}

func (s *Store) read(rel string) (*Document, error) {
	data, err := os.ReadFile(s.abs(rel))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rel, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", rel, err)
	}
	return doc, nil
}

func (s *Store) abs(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

func (s *Store) fileName() string {
	if s.FileName == "" {
		return DefaultFileName
	}
	return s.FileName
}

func (s *Store) logger() *zap.Logger {
	return logging.OrNop(s.Logger)
}
