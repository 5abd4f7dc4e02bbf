// Package lexer turns Inlet source text into a token stream.
package lexer

import "github.com/DavisPL/inlet/internal/source"

// Cursor walks a sequence of Unicode scalars while tracking the current
// (line, column) position, operating over runes rather than byte
// offsets.
type Cursor struct {
	runes  []rune
	index  int
	line   int
	column int
}

// NewCursor creates a cursor positioned at the start of text.
func NewCursor(text string) *Cursor {
	return &Cursor{
		runes:  []rune(text),
		index:  0,
		line:   1,
		column: 1,
	}
}

// EOF reports whether the cursor has consumed all input.
func (c *Cursor) EOF() bool {
	return c.index >= len(c.runes)
}

// Peek returns the current rune without consuming it, or 0 at EOF.
func (c *Cursor) Peek() rune {
	return c.PeekAt(0)
}

// PeekAt returns the rune n positions ahead of the cursor, or 0 if that
// position is past the end of input.
func (c *Cursor) PeekAt(n int) rune {
	idx := c.index + n
	if idx < 0 || idx >= len(c.runes) {
		return 0
	}
	return c.runes[idx]
}

// Loc returns the cursor's current Location.
func (c *Cursor) Loc() source.Location {
	return source.Location{Line: c.line, Column: c.column}
}

// Bump consumes and returns the current rune, advancing line/column
// bookkeeping. Consecutive newlines each increment the line counter and
// reset the column, per spec.md §4.1.
func (c *Cursor) Bump() rune {
	if c.EOF() {
		return 0
	}
	r := c.runes[c.index]
	c.index++
	if r == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return r
}
