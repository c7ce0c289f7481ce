package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/schema"
)

// extensions are probed in this order; the first existing file wins.
var extensions = []string{".yaml", ".yml", ".json"}

// Store implements ports.DefinitionStore over a directory of YAML or JSON
// files. The file name (without extension) is the definition name.
type Store struct {
	BasePath string
	format   string
}

type Option func(*Store)

// WithFormat selects the extension used by Save (".yaml" or ".json").
func WithFormat(ext string) Option {
	return func(s *Store) {
		s.format = ext
	}
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to the current directory.
func New(basePath string, opts ...Option) *Store {
	if basePath == "" {
		basePath = "."
	}
	s := &Store{BasePath: basePath, format: ".yaml"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("definition name cannot be empty")
	}
	if filepath.Base(name) != name || name == "." || name == ".." {
		return fmt.Errorf("invalid definition name %q", name)
	}
	return nil
}

// Get reads the named definition. The file name wins over any name inside the document.
func (s *Store) Get(ctx context.Context, name string) (*domain.Definition, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	for _, ext := range extensions {
		path := filepath.Join(s.BasePath, name+ext)
		def, err := schema.DecodeFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		def.Name = name
		return def, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrAutomatonNotFound, name)
}

// Save writes the definition atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) Save(ctx context.Context, def *domain.Definition) error {
	if def == nil {
		return fmt.Errorf("definition cannot be nil")
	}
	if err := checkName(def.Name); err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure definition directory: %w", err)
	}

	data, err := schema.Encode(def, s.format)
	if err != nil {
		return fmt.Errorf("failed to encode definition: %w", err)
	}

	destPath := filepath.Join(s.BasePath, def.Name+s.format)

	// Same directory as the destination, so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+def.Name+"-*"+s.format)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing definition for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	// Drop siblings in other formats so the name stays unambiguous.
	for _, ext := range extensions {
		if ext != s.format {
			_ = os.Remove(filepath.Join(s.BasePath, def.Name+ext))
		}
	}
	return nil
}

// Delete removes every file holding the named definition.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}

	for _, ext := range extensions {
		err := os.Remove(filepath.Join(s.BasePath, name+ext))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete definition file: %w", err)
		}
	}
	return nil
}

// List returns the names of all definitions in the directory, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}

	seen := make(map[string]string)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		fileName := entry.Name()
		ext := filepath.Ext(fileName)
		if entry.IsDir() || !isDefinitionExt(ext) || strings.HasPrefix(fileName, "tmp-") {
			continue
		}
		name := strings.TrimSuffix(fileName, ext)
		if existing, ok := seen[name]; ok {
			return nil, fmt.Errorf("collision detected: %q is defined in both %q and %q", name, existing, fileName)
		}
		seen[name] = fileName
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func isDefinitionExt(ext string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
