package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/mdread/pkg/markdown"
)

var (
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	SetColorMode(ColorAuto)
}

// ColorMode controls when diagnostics on stderr are colored. Content is never colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses "auto", "always" or "never" (case-insensitive).
func ParseColorMode(s string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: must be auto, always or never", s)
	}
}

// SetColorMode enables or disables ANSI colors for subsequent output.
func SetColorMode(mode ColorMode) {
	var enabled bool
	switch mode {
	case ColorAlways:
		enabled = true
	case ColorNever:
	default:
		enabled = supportscolor.Stderr().SupportsColor
	}

	if enabled {
		red, dim, reset = "\033[31m", "\033[2m", "\033[0m"
	} else {
		red, dim, reset = "", "", ""
	}
}

// Printer writes command results. Content goes to Out, diagnostics to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
	// Binary is the program name used in usage hints.
	Binary string
}

// PrintContent writes file content verbatim.
func (p *Printer) PrintContent(content string) {
	_, _ = io.WriteString(p.Out, content)
}

// PrintError writes "Error: <message>" followed by a one-line hint.
func (p *Printer) PrintError(err error) {
	p.PrintErrorWithHint(err, Hint(err))
}

// PrintErrorWithHint is PrintError with a caller-chosen hint. An empty hint is omitted.
func (p *Printer) PrintErrorWithHint(err error, hint string) {
	fmt.Fprintf(p.Err, "%sError:%s %s\n", red, reset, err)
	if hint != "" {
		fmt.Fprintf(p.Err, "%sHint:%s %s\n", dim, reset, hint)
	}
}

// PrintUsageError reports invalid command-line arguments.
func (p *Printer) PrintUsageError(msg string) {
	fmt.Fprintf(p.Err, "%sError:%s Invalid arguments: %s\n", red, reset, msg)
	fmt.Fprintln(p.Err)
	fmt.Fprintf(p.Err, "Use '%s --help' for more information.\n", p.Binary)
}

// Hint returns a short suggestion for the given reader failure.
func Hint(err error) string {
	switch markdown.KindOf(err) {
	case markdown.KindInvalidPath:
		return "Please provide a valid file path."
	case markdown.KindFileNotFound:
		return "Make sure the file path is correct and the file exists."
	case markdown.KindNotAFile:
		return "The path points to a directory or special file, not a markdown file."
	case markdown.KindInvalidExtension:
		return "Markdown files must have a .md or .markdown extension."
	case markdown.KindFileTooLarge:
		return fmt.Sprintf("Files larger than %s are not supported.", markdown.FormatSize(markdown.MaxFileSize))
	case markdown.KindReadError:
		return "Check file permissions and ensure the file is accessible."
	default:
		return "An unexpected error occurred."
	}
}
