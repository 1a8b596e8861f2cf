// Package printer formats CLI output with colour.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.Bold)
	faint  = color.New(color.Faint)
)

// Printer writes formatted messages to an output and an error stream.
type Printer struct {
	out io.Writer
	err io.Writer
}

// New creates a Printer. Nil writers default to stdout and stderr.
func New(out, err io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if err == nil {
		err = os.Stderr
	}
	return &Printer{out: out, err: err}
}

// Out returns the output writer.
func (p *Printer) Out() io.Writer { return p.out }

// Success prints a success message in green with a checkmark prefix.
func (p *Printer) Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(p.out, msg)
}

// Info prints an informational message in the default colour.
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Warning prints a warning message in yellow.
func (p *Printer) Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "!") {
		msg = "! " + msg
	}
	yellow.Fprint(p.out, msg)
}

// Failure prints a failed item in red with a cross prefix.
func (p *Printer) Failure(format string, a ...any) {
	red.Fprintf(p.out, "✗ %s", fmt.Sprintf(format, a...))
}

// Step prints a step message with emphasis.
func (p *Printer) Step(format string, a ...any) {
	cyan.Fprintf(p.out, "→ %s", fmt.Sprintf(format, a...))
}

// Heading prints a bold line.
func (p *Printer) Heading(format string, a ...any) {
	bold.Fprintf(p.out, format+"\n", a...)
}

// Faint prints dimmed text.
func (p *Printer) Faint(format string, a ...any) {
	faint.Fprintf(p.out, format, a...)
}

// Error prints a formatted error with an explanation and suggestions to
// the error stream and returns a plain error for Cobra.
func (p *Printer) Error(title, explanation string, suggestions []string) error {
	red.Fprintf(p.err, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(p.err, "%s\n", explanation)
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(p.err, "\n")
		if len(suggestions) == 1 {
			fmt.Fprintf(p.err, "%s\n", suggestions[0])
		} else {
			fmt.Fprintf(p.err, "Either:\n")
			for i, suggestion := range suggestions {
				fmt.Fprintf(p.err, "  %d. %s\n", i+1, suggestion)
			}
		}
	}

	return fmt.Errorf("%s", title)
}
