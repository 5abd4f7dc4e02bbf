package ast

import (
	"strings"

	"github.com/DavisPL/inlet/internal/source"
)

// Path is an ordered, non-empty sequence of identifiers plus a span
// (spec.md §3). Its canonical string form is its segments joined by "::".
type Path struct {
	Segments []Ident
	Span     source.Span
}

// String returns the canonical "::"-joined form.
func (p Path) String() string {
	raws := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		raws[i] = seg.Raw
	}
	return strings.Join(raws, "::")
}

// PathFromString builds a Path from its canonical string form by splitting
// on "::", attaching span to every synthesized segment and to the path
// itself. Used to construct fresh paths (e.g. a function's canonical path)
// outside of parsing.
func PathFromString(s string, span source.Span) Path {
	parts := strings.Split(s, "::")
	segments := make([]Ident, len(parts))
	for i, part := range parts {
		segments[i] = Ident{Raw: part, Span: span}
	}
	return Path{Segments: segments, Span: span}
}
