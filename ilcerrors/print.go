package ilcerrors

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ilctools.dev/ilc/sourcemap"
)

// Print renders every diagnostic in d to w, in insertion order, using sm
// to resolve locations to paths and line/column positions and to fetch
// source excerpts. Mirrors cue/errors.Print's per-error rendering: a
// one-line header followed by a three-line source excerpt and an
// underline span.
func Print(w io.Writer, d *Diagnostics, sm *sourcemap.SourceMap) {
	p := message.NewPrinter(language.English)
	for _, diag := range d.Entries() {
		printOne(w, p, diag, sm)
	}
}

func printOne(w io.Writer, p *message.Printer, diag *Diagnostic, sm *sourcemap.SourceMap) {
	if diag.Loc.IsEmpty() {
		fmt.Fprintf(w, "%s: %s\n", diag.Kind, diag.Message)
		return
	}

	pos := sm.Position(diag.Loc.File, diag.Loc.Start)
	fmt.Fprintf(w, "%s: %s: %s\n", diag.Kind, pos, diag.Message)

	line := pos.Line
	width := digitWidth(line + 1)

	if prev := sm.Line(diag.Loc.File, line-1); prev != nil {
		printLine(w, p, width, line-1, prev, -1, -1)
	}

	cur := sm.Line(diag.Loc.File, line)
	endCol := pos.Column + (diag.Loc.End - diag.Loc.Start)
	printLine(w, p, width, line, cur, pos.Column, endCol)
	printUnderline(w, width, pos.Column, endCol)

	if next := sm.Line(diag.Loc.File, line+1); next != nil {
		printLine(w, p, width, line+1, next, -1, -1)
	}
}

func digitWidth(n int) int {
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	return w
}

func printLine(w io.Writer, p *message.Printer, width, lineNo int, text []byte, _, _ int) {
	p.Fprintf(w, "%*d | %s\n", width, lineNo, text)
}

func printUnderline(w io.Writer, width, startCol, endCol int) {
	pad := strings.Repeat(" ", width) + " | "
	fmt.Fprint(w, pad)
	if startCol > 1 {
		fmt.Fprint(w, strings.Repeat(" ", startCol-1))
	}
	n := endCol - startCol
	if n < 1 {
		n = 1
	}
	fmt.Fprintln(w, strings.Repeat("^", n))
}
