package htmlcheck

import (
	"context"
	"strings"
)

// NoContent is the report produced when the document is empty.
const NoContent = "No content."

// Checker runs a list of rules over the document of a configured session.
type Checker interface {
	// Detect evaluates descriptors in order and returns the report, one line
	// per descriptor. Returns NoContent without evaluating anything when the
	// document is empty. Returns EINVALID on the first malformed descriptor.
	Detect(ctx context.Context, descriptors []*Descriptor) (string, error)
}

// FormatReport joins the report lines of outcomes with single newlines,
// preserving order. There is no trailing newline.
func FormatReport(outcomes []*Outcome) string {
	lines := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		lines = append(lines, o.Line())
	}
	return strings.Join(lines, "\n")
}
