package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/deflake/internal/model"
)

// FSAdapter abstracts the filesystem operations the domain layer relies on
// for scratch directories and suite discovery, so the filter loop can be
// tested without touching the disk.
type FSAdapter interface {
	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// RemoveAll removes a directory and all its contents.
	RemoveAll(path m.Path) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Glob expands a doublestar pattern (e.g. suites/**/*.yaml) into the
	// matching regular files, sorted. A pattern without meta characters is
	// returned as-is when the file exists.
	Glob(pattern string) ([]m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalFSAdapter is the os-backed FSAdapter.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// MkdirAll creates path with owner-only permissions.
func (a *LocalFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// RemoveAll removes a directory and all its contents.
func (a *LocalFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path comes from the operator's own suite globs
	return os.ReadFile(string(path))
}

// WriteFile writes content to path, creating its parent directory.
func (a *LocalFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// Glob expands pattern relative to the current directory.
func (a *LocalFSAdapter) Glob(pattern string) ([]m.Path, error) {
	pattern = expandHome(pattern)

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	sort.Strings(matches)

	out := make([]m.Path, 0, len(matches))
	for _, match := range matches {
		out = append(out, m.Path(match))
	}

	return out, nil
}

// JoinPath joins path elements into a single path.
func (a *LocalFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}

	return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(p, "~"), string(os.PathSeparator)))
}
