// Package stream provides io.Reader and io.Writer based content sources and
// report sinks.
package stream

import (
	"context"
	"io"

	"github.com/fwojciec/htmlcheck"
)

// Ensure Store implements htmlcheck.StreamStore at compile time.
var _ htmlcheck.StreamStore = (*Store)(nil)

// Store reads and writes caller-owned streams. It never closes them.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// ReadStream reads r until EOF. Reads block until the stream delivers data;
// ctx is only checked before reading starts.
func (s *Store) ReadStream(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteStream writes content to w in full.
func (s *Store) WriteStream(ctx context.Context, w io.Writer, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := io.WriteString(w, content)
	return err
}
