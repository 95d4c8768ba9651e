package slog

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/htmlcheck"
)

// Ensure LoggingParser implements htmlcheck.Parser.
var _ htmlcheck.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with info-level logging of each call.
type LoggingParser struct {
	next   htmlcheck.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next htmlcheck.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse logs the size and hash of the content and delegates to the wrapped parser.
func (p *LoggingParser) Parse(content string) (doc htmlcheck.Document, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"bytes", len(content),
			"hash", strconv.FormatUint(xxhash.Sum64String(content), 16),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(content)
}
