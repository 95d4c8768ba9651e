package htmlcheck

import "io"

// InputMode selects where document content is read from.
type InputMode string

// Supported input modes.
const (
	InputFile   InputMode = "file"
	InputStream InputMode = "stream"
)

// OutputMode selects where the report is delivered.
type OutputMode string

// Supported output modes.
const (
	OutputFile    OutputMode = "file"
	OutputStream  OutputMode = "stream"
	OutputConsole OutputMode = "console"
)

// DefaultSourcePath is the document checked when no input is configured,
// relative to the base directory.
const DefaultSourcePath = "static/index.html"

// Input configures the content source of a detection session.
// Path is the source for InputFile, Reader for InputStream.
type Input struct {
	Mode   InputMode
	Path   string
	Reader io.Reader
}

// DefaultInput returns an input reading DefaultSourcePath. The FileStore
// resolves it against its base directory.
func DefaultInput() Input {
	return Input{Mode: InputFile, Path: DefaultSourcePath}
}

// Validate returns EINVALID if the input lacks a mode or a source.
func (in *Input) Validate() error {
	switch in.Mode {
	case "":
		return Errorf(EINVALID, "Wrong input parameters. Input object requires mode and source keys.")
	case InputFile:
		if in.Path == "" {
			return Errorf(EINVALID, "Wrong input parameters. Input object requires mode and source keys.")
		}
	case InputStream:
		if in.Reader == nil {
			return Errorf(EINVALID, "Wrong input parameters. Input object requires mode and source keys.")
		}
	default:
		return Errorf(EINVALID, "Wrong input parameters. Unknown input mode %q.", string(in.Mode))
	}
	return nil
}

// Output configures the report destination of a detection session.
// Path is the destination for OutputFile, Writer for OutputStream.
// OutputConsole needs no destination.
type Output struct {
	Mode   OutputMode
	Path   string
	Writer io.Writer
}

// DefaultOutput returns an output echoing the report to the console.
func DefaultOutput() Output {
	return Output{Mode: OutputConsole}
}

// Validate returns EINVALID if the output lacks a mode, or lacks a
// destination for a mode that requires one.
func (out *Output) Validate() error {
	switch out.Mode {
	case "":
		return Errorf(EINVALID, "Wrong output parameters. Output object requires mode key.")
	case OutputFile:
		if out.Path == "" {
			return Errorf(EINVALID, "Wrong output parameters. This mode of output object requires destination key.")
		}
	case OutputStream:
		if out.Writer == nil {
			return Errorf(EINVALID, "Wrong output parameters. This mode of output object requires destination key.")
		}
	case OutputConsole:
	default:
		return Errorf(EINVALID, "Wrong output parameters. Unknown output mode %q.", string(out.Mode))
	}
	return nil
}
