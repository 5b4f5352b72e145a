// Package console prints the user-facing progress messages of the CLI.
// Diagnostic output goes through hclog instead.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const prefix = "[scalar]"

// dimIndent lines detail messages up under the text after the prefix.
var dimIndent = strings.Repeat(" ", len(prefix)+1)

// Printer writes styled, prefixed lines. Colours are dropped automatically
// when the writer is not a terminal.
type Printer struct {
	out    io.Writer
	prefix lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	err    lipgloss.Style
	dim    lipgloss.Style
	header lipgloss.Style
	quiet  bool
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		out:    w,
		prefix: r.NewStyle().Foreground(lipgloss.Color("4")),
		ok:     r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("3")),
		err:    r.NewStyle().Foreground(lipgloss.Color("1")),
		dim:    r.NewStyle().Faint(true),
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
	}
}

// SetQuiet suppresses everything except warnings, errors and their hints.
func (p *Printer) SetQuiet(quiet bool) {
	p.quiet = quiet
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) line(style lipgloss.Style, msg string) {
	fmt.Fprintf(p.out, "%s %s\n", p.prefix.Render(prefix), style.Render(msg))
}

// Info prints a plain message.
func (p *Printer) Info(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.prefix.Render(prefix), fmt.Sprintf(format, args...))
}

// Ok prints a success message.
func (p *Printer) Ok(format string, args ...any) {
	if p.quiet {
		return
	}
	p.line(p.ok, fmt.Sprintf(format, args...))
}

// Warn prints a warning.
func (p *Printer) Warn(format string, args ...any) {
	p.line(p.warn, fmt.Sprintf(format, args...))
}

// Error prints an error.
func (p *Printer) Error(format string, args ...any) {
	p.line(p.err, fmt.Sprintf(format, args...))
}

// Dim prints an indented detail line.
func (p *Printer) Dim(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s%s\n", dimIndent, p.dim.Render(fmt.Sprintf(format, args...)))
}

// Hint prints an indented detail line that belongs to a warning or error,
// so it is kept in quiet mode.
func (p *Printer) Hint(format string, args ...any) {
	fmt.Fprintf(p.out, "%s%s\n", dimIndent, p.dim.Render(fmt.Sprintf(format, args...)))
}

// Header prints a bold title preceded by a blank line.
func (p *Printer) Header(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "\n%s\n", p.header.Render("  "+msg))
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out)
}
