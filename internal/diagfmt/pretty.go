// Package diagfmt formats diagnostics for terminal output.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"archdoc/internal/diag"
	"archdoc/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	noteColor = color.New(color.FgBlue)
)

// Pretty writes diagnostics in a human-readable form, one per block:
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//	    <source line>
//	    <caret underline>
//
// Callers are expected to Sort the bag first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	// Spanless diagnostics (load failures) have no file to point at.
	if d.Primary == (source.Span{}) {
		fmt.Fprintf(w, "%s [%s]: %s\n", sev, d.Code.ID(), d.Message)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeNote(w, n, fs, opts)
			}
		}
		return
	}

	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		displayPath(file, fs, opts.PathMode), start.Line, start.Col,
		sev, d.Code.ID(), d.Message)

	if opts.ShowSource {
		writeSourceContext(w, file, fs, d.Primary, d.Severity, opts)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			writeNote(w, n, fs, opts)
		}
	}
}

// writeSourceContext prints the first line the span touches and underlines
// the span's extent on it.
func writeSourceContext(w io.Writer, file *source.File, fs *source.FileSet, sp source.Span, sev diag.Severity, opts PrettyOpts) {
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	fmt.Fprintf(w, "    %s\n", line)

	prefix := prefixWidth(line, start.Col)
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = spanWidth(line, start.Col, end.Col)
	}
	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = severityColor(sev).Sprint(underline)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", prefix), underline)
}

func writeNote(w io.Writer, n diag.Note, fs *source.FileSet, opts PrettyOpts) {
	label := "note"
	if opts.Color {
		label = noteColor.Sprint(label)
	}
	if n.Span.Empty() {
		fmt.Fprintf(w, "    %s: %s\n", label, n.Msg)
		return
	}
	file := fs.Get(n.Span.File)
	start, _ := fs.Resolve(n.Span)
	fmt.Fprintf(w, "    %s: %s:%d:%d: %s\n",
		label, displayPath(file, fs, opts.PathMode), start.Line, start.Col, n.Msg)
}

// prefixWidth measures the display width of the line up to a 1-based column,
// so the caret lands under the right rune even with wide characters.
func prefixWidth(line string, col uint32) int {
	idx := int(col) - 1
	if idx > len(line) {
		idx = len(line)
	}
	return runewidth.StringWidth(line[:idx])
}

func spanWidth(line string, startCol, endCol uint32) int {
	s, e := int(startCol)-1, int(endCol)-1
	if s > len(line) {
		s = len(line)
	}
	if e > len(line) {
		e = len(line)
	}
	if e <= s {
		return 1
	}
	w := runewidth.StringWidth(line[s:e])
	if w < 1 {
		return 1
	}
	return w
}

func displayPath(file *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(filepath.FromSlash(file.Path)); err == nil {
			return filepath.ToSlash(abs)
		}
		return file.Path
	case PathModeBasename:
		return filepath.Base(file.Path)
	default:
		return file.RelPath(fs.BaseDir())
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
