// Package detect provides the detection orchestrator. It validates a
// session's configuration, reads the document, evaluates rules in order and
// delivers the report.
package detect

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/htmlcheck"
	"github.com/google/uuid"
)

// Ensure Detector implements htmlcheck.Checker at compile time.
var _ htmlcheck.Checker = (*Detector)(nil)

// Detector runs rule lists over the document of one session. A session is
// one input/output pairing; Detect may be called repeatedly and each call
// replaces the stored report.
//
// Stream input is consumed once. A later Detect on the same session reads
// the drained reader and returns htmlcheck.NoContent; use file input, or a
// new Detector per stream, to check the same document again.
//
// A Detector is not safe for concurrent use.
type Detector struct {
	Files   htmlcheck.FileStore
	Streams htmlcheck.StreamStore
	Parser  htmlcheck.Parser

	// Console receives the report in htmlcheck.OutputConsole mode.
	// Defaults to os.Stdout.
	Console io.Writer

	id      string
	input   htmlcheck.Input
	output  htmlcheck.Output
	content string
	report  string
}

// NewDetector creates a Detector for the given session configuration.
// Configuration is validated on each Detect call.
func NewDetector(input htmlcheck.Input, output htmlcheck.Output) *Detector {
	return &Detector{
		id:     uuid.NewString(),
		input:  input,
		output: output,
	}
}

// ID returns the session identifier.
func (d *Detector) ID() string {
	return d.id
}

// Content returns the document content read by the last Detect call.
func (d *Detector) Content() string {
	return d.content
}

// Report returns the report built by the last successful Detect call.
func (d *Detector) Report() string {
	return d.report
}

// Detect evaluates descriptors against the session's document and delivers
// the report to the session's output.
//
// Descriptors are validated after the document is read and before it is
// parsed; the first malformed descriptor aborts the call. An empty document
// yields htmlcheck.NoContent and skips evaluation and delivery.
func (d *Detector) Detect(ctx context.Context, descriptors []*htmlcheck.Descriptor) (string, error) {
	d.report = ""

	if err := d.input.Validate(); err != nil {
		return "", err
	}
	if err := d.output.Validate(); err != nil {
		return "", err
	}

	content, err := d.read(ctx)
	if err != nil {
		return "", err
	}
	d.content = content

	if content == "" {
		d.report = htmlcheck.NoContent
		return d.report, nil
	}

	rules := make([]htmlcheck.Rule, 0, len(descriptors))
	for _, desc := range descriptors {
		rule, err := desc.Rule()
		if err != nil {
			return "", err
		}
		rules = append(rules, rule)
	}

	doc, err := d.Parser.Parse(content)
	if err != nil {
		return "", err
	}

	outcomes := make([]*htmlcheck.Outcome, 0, len(rules))
	for _, rule := range rules {
		outcome, err := rule.Evaluate(doc)
		if err != nil {
			return "", err
		}
		outcomes = append(outcomes, outcome)
	}
	report := htmlcheck.FormatReport(outcomes)

	if err := d.write(ctx, report); err != nil {
		return "", err
	}

	d.report = report
	return report, nil
}

func (d *Detector) read(ctx context.Context) (string, error) {
	switch d.input.Mode {
	case htmlcheck.InputFile:
		return d.Files.ReadFile(ctx, d.input.Path)
	case htmlcheck.InputStream:
		return d.Streams.ReadStream(ctx, d.input.Reader)
	default:
		return "", htmlcheck.Errorf(htmlcheck.EINVALID, "Wrong input parameters. Unknown input mode %q.", string(d.input.Mode))
	}
}

func (d *Detector) write(ctx context.Context, report string) error {
	switch d.output.Mode {
	case htmlcheck.OutputFile:
		return d.Files.WriteFile(ctx, d.output.Path, report)
	case htmlcheck.OutputStream:
		return d.Streams.WriteStream(ctx, d.output.Writer, report)
	case htmlcheck.OutputConsole:
		w := d.Console
		if w == nil {
			w = os.Stdout
		}
		_, err := fmt.Fprintln(w, report)
		return err
	default:
		return htmlcheck.Errorf(htmlcheck.EINVALID, "Wrong output parameters. Unknown output mode %q.", string(d.output.Mode))
	}
}
