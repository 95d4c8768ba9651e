package mock

import (
	"context"
	"io"

	"github.com/fwojciec/htmlcheck"
)

var _ htmlcheck.FileStore = (*FileStore)(nil)

// FileStore is a mock implementation of htmlcheck.FileStore.
type FileStore struct {
	ReadFileFn  func(ctx context.Context, path string) (string, error)
	WriteFileFn func(ctx context.Context, path string, content string) error
}

func (s *FileStore) ReadFile(ctx context.Context, path string) (string, error) {
	return s.ReadFileFn(ctx, path)
}

func (s *FileStore) WriteFile(ctx context.Context, path string, content string) error {
	return s.WriteFileFn(ctx, path, content)
}

var _ htmlcheck.StreamStore = (*StreamStore)(nil)

// StreamStore is a mock implementation of htmlcheck.StreamStore.
type StreamStore struct {
	ReadStreamFn  func(ctx context.Context, r io.Reader) (string, error)
	WriteStreamFn func(ctx context.Context, w io.Writer, content string) error
}

func (s *StreamStore) ReadStream(ctx context.Context, r io.Reader) (string, error) {
	return s.ReadStreamFn(ctx, r)
}

func (s *StreamStore) WriteStream(ctx context.Context, w io.Writer, content string) error {
	return s.WriteStreamFn(ctx, w, content)
}
