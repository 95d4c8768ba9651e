package htmlcheck

import (
	"context"
	"io"
)

// FileStore reads document content from files and writes reports to files.
type FileStore interface {
	// ReadFile returns the content of the file at path.
	// Returns ENOTFOUND if the file does not exist; the underlying
	// *fs.PathError remains reachable through errors.As.
	ReadFile(ctx context.Context, path string) (string, error)

	// WriteFile replaces the content of the file at path.
	WriteFile(ctx context.Context, path string, content string) error
}

// StreamStore reads document content from streams and writes reports to
// streams. Streams are owned by the caller and never closed.
type StreamStore interface {
	// ReadStream reads r until EOF and returns everything read.
	ReadStream(ctx context.Context, r io.Reader) (string, error)

	// WriteStream writes content to w.
	WriteStream(ctx context.Context, w io.Writer, content string) error
}
