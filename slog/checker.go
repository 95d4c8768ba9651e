// Package slog provides log/slog decorators for htmlcheck services.
package slog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/htmlcheck"
)

// Ensure LoggingChecker implements htmlcheck.Checker.
var _ htmlcheck.Checker = (*LoggingChecker)(nil)

// LoggingChecker wraps a Checker with logging of each detection run.
type LoggingChecker struct {
	next   htmlcheck.Checker
	logger *slog.Logger
}

// NewLoggingChecker creates a new LoggingChecker.
func NewLoggingChecker(next htmlcheck.Checker, logger *slog.Logger) *LoggingChecker {
	return &LoggingChecker{next: next, logger: logger}
}

// Detect delegates to the wrapped checker and logs the rule count, the
// number of failed rules and the duration.
func (c *LoggingChecker) Detect(ctx context.Context, descriptors []*htmlcheck.Descriptor) (report string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("detect",
			"rules", len(descriptors),
			"failed", countFailed(report),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Detect(ctx, descriptors)
}

// countFailed counts report lines other than the valid marker.
func countFailed(report string) int {
	if report == "" || report == htmlcheck.NoContent {
		return 0
	}
	n := 0
	for _, line := range strings.Split(report, "\n") {
		if line != htmlcheck.ValidLine {
			n++
		}
	}
	return n
}
