// Package adapter contains the filesystem, persistence and serialization
// adapters used by the turtle CLI.
package adapter

import (
	"os"
	"path/filepath"
	"sort"

	m "github.com/mouse-blink/turtle/internal/model"
)

// FSAdapter abstracts the filesystem operations the domain layer relies on
// when loading programs and grids, so parsing can be tested without disk access.
type FSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so callers can check existence.
	FileInfo(path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// Glob lists the files in dir matching pattern, sorted by name.
	Glob(dir m.Path, pattern string) ([]m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalFSAdapter implements FSAdapter on top of the os package.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// ReadFile implements FSAdapter.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile implements FSAdapter.
func (a *LocalFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo implements FSAdapter.
func (a *LocalFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// MkdirAll implements FSAdapter.
func (a *LocalFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o755)
}

// Glob implements FSAdapter.
func (a *LocalFSAdapter) Glob(dir m.Path, pattern string) ([]m.Path, error) {
	matches, err := filepath.Glob(filepath.Join(string(dir), pattern))
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)

	paths := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, m.Path(match))
	}

	return paths, nil
}

// JoinPath implements FSAdapter.
func (a *LocalFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
