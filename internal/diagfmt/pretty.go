// Package diagfmt renders tokens and parse errors for people.
package diagfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser"
	"github.com/t14raptor/go-estree/parser/scanner"
)

// Printer writes diagnostics to w, optionally coloured.
type Printer struct {
	w io.Writer

	location *color.Color
	severity *color.Color
	message  *color.Color
	caret    *color.Color
}

// NewPrinter returns a Printer writing to w. Colour is forced on or off
// regardless of the terminal so output can be captured.
func NewPrinter(w io.Writer, useColor bool) *Printer {
	p := &Printer{
		w:        w,
		location: color.New(color.Bold),
		severity: color.New(color.FgRed, color.Bold),
		message:  color.New(color.Bold),
		caret:    color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.location, p.severity, p.message, p.caret} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Diagnostic prints
//
//	<path>:<line>:<col>: error: <message>
//
// followed by the source line holding start and a ^~~~ underline of
// [start, end) clipped to that line.
func (p *Printer) Diagnostic(path, src string, start, end ast.Idx, msg string) error {
	pos := Position(src, start)
	_, err := fmt.Fprintf(p.w, "%s %s %s\n",
		p.location.Sprintf("%s:%d:%d:", path, pos.Line, pos.Col),
		p.severity.Sprint("error:"),
		p.message.Sprint(msg))
	if err != nil {
		return err
	}

	line := []rune(lineAt(src, pos.Line))
	col := min(pos.Col-1, len(line))
	width := 1
	if end > start {
		width = int(end - start)
	}
	width = max(1, min(width, len(line)-col))

	_, err = fmt.Fprintf(p.w, "  %s\n  %s%s\n",
		string(line),
		pad(line[:col]),
		p.caret.Sprint(underline(line[col:min(col+width, len(line))])))
	return err
}

// Error prints err for the file at path. Errors without a span are printed
// on a single line.
func (p *Printer) Error(path, src string, err error) error {
	var lexErr scanner.Error
	if errors.As(err, &lexErr) {
		return p.Diagnostic(path, src, lexErr.Start, lexErr.End, lexErr.Message)
	}
	var synErr parser.SyntaxError
	if errors.As(err, &synErr) {
		return p.Diagnostic(path, src, synErr.Start, synErr.End, synErr.Message)
	}
	_, werr := fmt.Fprintf(p.w, "%s %s %s\n",
		p.location.Sprintf("%s:", path),
		p.severity.Sprint("error:"),
		p.message.Sprint(err.Error()))
	return werr
}

// pad returns blanks as wide as prefix. Tabs are kept so the caret lines up
// with the source line whatever the tab width.
func pad(prefix []rune) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

// underline returns ^ followed by ~ up to the display width of span.
func underline(span []rune) string {
	w := max(1, runewidth.StringWidth(string(span)))
	return "^" + strings.Repeat("~", w-1)
}
