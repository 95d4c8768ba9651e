package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmlcheck"
	"github.com/fwojciec/htmlcheck/detect"
	"github.com/fwojciec/htmlcheck/fs"
	"github.com/fwojciec/htmlcheck/goquery"
	hcslog "github.com/fwojciec/htmlcheck/slog"
	"github.com/fwojciec/htmlcheck/stream"
	"github.com/fwojciec/htmlcheck/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read when the input argument is "-".
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmlcheck"),
		kong.Description("Check the structure of an HTML document against a list of rules"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"default_input": htmlcheck.DefaultSourcePath},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Load rules before touching the document
	rules := htmlcheck.DefaultRules()
	if cli.Rules != "" {
		if rules, err = yaml.LoadFile(cli.Rules); err != nil {
			return err
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	d := detect.NewDetector(cli.input(m.Stdin), cli.output())
	logger = logger.With("session", d.ID())
	d.Files = hcslog.NewLoggingFileStore(fs.NewStore(cli.BaseDir), logger)
	d.Streams = hcslog.NewLoggingStreamStore(stream.NewStore(), logger)
	d.Parser = hcslog.NewLoggingParser(goquery.NewParser(), logger)
	d.Console = stdout

	checker := hcslog.NewLoggingChecker(d, logger)
	if _, err := checker.Detect(ctx, rules); err != nil {
		return err
	}
	return nil
}
