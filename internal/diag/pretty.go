package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/DavisPL/inlet/internal/source"
)

// PrettyOpts configures Pretty's rendering.
type PrettyOpts struct {
	// Color enables ANSI severity coloring via github.com/fatih/color.
	Color bool
}

// Pretty renders bag's diagnostics to w in a stable shape:
// "<path>:<line>:<col>: <SEV> <CODE>: <message>" followed by the offending
// source line and a caret underline. Callers should Sort the bag first
// for deterministic output.
func Pretty(w io.Writer, bag *Bag, files *source.Map, opts PrettyOpts) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	underlineColor := color.New(color.FgRed, color.Bold)

	prevNoColor := color.NoColor
	defer func() { color.NoColor = prevNoColor }()
	color.NoColor = !opts.Color

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w)
		}

		f := files.Get(d.File)

		var sevColored string
		switch d.Severity {
		case SevError:
			sevColored = errorColor.Sprint(d.Severity.String())
		case SevWarning:
			sevColored = warningColor.Sprint(d.Severity.String())
		default:
			sevColored = infoColor.Sprint(d.Severity.String())
		}

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			pathColor.Sprint(f.Path),
			d.Primary.From.Line,
			d.Primary.From.Column,
			sevColored,
			codeColor.Sprint(d.Code.ID()),
			d.Message,
		)

		line := f.GetLine(d.Primary.From.Line)
		fmt.Fprintf(w, "%d | %s\n", d.Primary.From.Line, line)

		gutterWidth := len(fmt.Sprintf("%d | ", d.Primary.From.Line))
		startCol := visualWidthUpTo(line, d.Primary.From.Column)
		endCol := visualWidthUpTo(line, d.Primary.To.Column)
		if d.Primary.To.Line > d.Primary.From.Line {
			endCol = visualWidthUpTo(line, runewidth.StringWidth(line)+1)
		}

		var underline strings.Builder
		for range gutterWidth {
			underline.WriteByte(' ')
		}
		for range startCol {
			underline.WriteByte(' ')
		}
		span := endCol - startCol
		if span <= 0 {
			underline.WriteByte('^')
		} else {
			for i := 0; i < span; i++ {
				if i == span-1 {
					underline.WriteByte('^')
				} else {
					underline.WriteByte('~')
				}
			}
		}
		fmt.Fprintln(w, underlineColor.Sprint(underline.String()))

		for _, note := range d.Notes {
			nf := files.Get(note.File)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				infoColor.Sprint("note"),
				pathColor.Sprint(nf.Path),
				note.Span.From.Line,
				note.Span.From.Column,
				note.Msg,
			)
		}
	}
}

// visualWidthUpTo computes the rune-width of line up to (1-based) column,
// accounting for wide runes, so carets line up under multi-byte source
// text.
func visualWidthUpTo(line string, column int) int {
	if column <= 1 {
		return 0
	}
	width, seen := 0, 0
	for _, r := range line {
		if seen >= column-1 {
			break
		}
		width += runewidth.RuneWidth(r)
		seen++
	}
	return width
}
