// Package fs provides file-based content sources and report sinks.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/htmlcheck"
)

// Ensure Store implements htmlcheck.FileStore at compile time.
var _ htmlcheck.FileStore = (*Store)(nil)

// Store reads and writes files relative to a base directory.
type Store struct {
	baseDir string
}

// NewStore creates a new Store. Relative paths are resolved against baseDir;
// an empty baseDir leaves them relative to the working directory.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Path resolves path against the base directory. Absolute paths are
// returned unchanged.
func (s *Store) Path(path string) string {
	if s.baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.baseDir, path)
}

// ReadFile returns the content of the file at path.
// Returns ENOTFOUND wrapping the *os.PathError if the file does not exist.
func (s *Store) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(s.Path(path))
	if errors.Is(err, os.ErrNotExist) {
		return "", htmlcheck.Errorf(htmlcheck.ENOTFOUND, "input file %q not found: %w", path, err)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteFile writes content to the file at path, creating or truncating it.
// Symlinks are followed and an existing file keeps its mode.
// The parent directory must exist.
func (s *Store) WriteFile(ctx context.Context, path string, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(s.Path(path), []byte(content), 0644)
}
