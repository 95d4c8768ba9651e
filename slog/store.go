package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlcheck"
)

// Ensure LoggingFileStore implements htmlcheck.FileStore.
var _ htmlcheck.FileStore = (*LoggingFileStore)(nil)

// LoggingFileStore wraps a FileStore with info-level logging of each call.
type LoggingFileStore struct {
	next   htmlcheck.FileStore
	logger *slog.Logger
}

// NewLoggingFileStore creates a new LoggingFileStore.
func NewLoggingFileStore(next htmlcheck.FileStore, logger *slog.Logger) *LoggingFileStore {
	return &LoggingFileStore{next: next, logger: logger}
}

// ReadFile delegates to the wrapped store and logs the operation.
func (s *LoggingFileStore) ReadFile(ctx context.Context, path string) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read file",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadFile(ctx, path)
}

// WriteFile delegates to the wrapped store and logs the operation.
func (s *LoggingFileStore) WriteFile(ctx context.Context, path string, content string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("write file",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteFile(ctx, path, content)
}

// Ensure LoggingStreamStore implements htmlcheck.StreamStore.
var _ htmlcheck.StreamStore = (*LoggingStreamStore)(nil)

// LoggingStreamStore wraps a StreamStore with info-level logging of each call.
type LoggingStreamStore struct {
	next   htmlcheck.StreamStore
	logger *slog.Logger
}

// NewLoggingStreamStore creates a new LoggingStreamStore.
func NewLoggingStreamStore(next htmlcheck.StreamStore, logger *slog.Logger) *LoggingStreamStore {
	return &LoggingStreamStore{next: next, logger: logger}
}

// ReadStream delegates to the wrapped store and logs the operation.
func (s *LoggingStreamStore) ReadStream(ctx context.Context, r io.Reader) (content string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read stream",
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadStream(ctx, r)
}

// WriteStream delegates to the wrapped store and logs the operation.
func (s *LoggingStreamStore) WriteStream(ctx context.Context, w io.Writer, content string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("write stream",
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteStream(ctx, w, content)
}
