package main

import (
	"io"

	"github.com/fwojciec/htmlcheck"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Rules   string `short:"r" help:"YAML rule file (default: predefined SEO rules)"`
	Out     string `short:"o" help:"Write the report to this file instead of stdout"`
	BaseDir string `name:"base-dir" env:"HTMLCHECK_BASE_DIR" help:"Directory relative input and output paths are resolved against"`
	Verbose bool   `short:"v" help:"Log each step to stderr"`
	Input   string `arg:"" optional:"" help:"HTML file to check, or - to read standard input (default: ${default_input})"`
}

// input returns the session input for the Input argument.
func (c *CLI) input(stdin io.Reader) htmlcheck.Input {
	switch c.Input {
	case "":
		return htmlcheck.DefaultInput()
	case "-":
		return htmlcheck.Input{Mode: htmlcheck.InputStream, Reader: stdin}
	default:
		return htmlcheck.Input{Mode: htmlcheck.InputFile, Path: c.Input}
	}
}

// output returns the session output for the Out flag.
func (c *CLI) output() htmlcheck.Output {
	if c.Out != "" {
		return htmlcheck.Output{Mode: htmlcheck.OutputFile, Path: c.Out}
	}
	return htmlcheck.DefaultOutput()
}
