// Package ast defines Inlet's abstract syntax tree node types.
package ast

import "github.com/DavisPL/inlet/internal/source"

// Ident is a bare identifier: its raw spelling plus the span it was
// scanned from. Equality is structural on Raw (spec.md §3).
type Ident struct {
	Raw  string
	Span source.Span
}

// Equal reports structural equality on Raw.
func (i Ident) Equal(other Ident) bool {
	return i.Raw == other.Raw
}
