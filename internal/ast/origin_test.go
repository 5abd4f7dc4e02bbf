package ast_test

import (
	"testing"

	"github.com/DavisPL/inlet/internal/ast"
	"github.com/DavisPL/inlet/internal/source"
)

func path(s string) ast.Path {
	return ast.PathFromString(s, source.Zero)
}

func TestOriginSatisfiesReflexivity(t *testing.T) {
	if !ast.UniversalOrigin().Satisfies(ast.UniversalOrigin()) {
		t.Fatalf("Universal must satisfy Universal")
	}
	p := ast.ExactOrigin(path("a::b::c"))
	if !p.Satisfies(p) {
		t.Fatalf("Exact(p) must satisfy Exact(p)")
	}
}

func TestOriginSatisfiesTable(t *testing.T) {
	universal := ast.UniversalOrigin()
	abc := ast.ExactOrigin(path("a::b::c"))
	ab := ast.ExactOrigin(path("a::b"))
	abcVariant := ast.ExactOrigin(path("a::bc"))

	cases := []struct {
		name           string
		actual, expect ast.Origin
		want           bool
	}{
		{"universal satisfies universal", universal, universal, true},
		{"universal does not satisfy exact", universal, ab, false},
		{"exact satisfies universal", abc, universal, true},
		{"a::b::c satisfies a::b", abc, ab, true},
		{"a::b::c satisfies a::b::c", abc, abc, true},
		{"a::b does not satisfy a::b::c", ab, abc, false},
		// Documented non-segment-aligned-prefix behavior (spec.md §9): this
		// is the recorded language decision, not a bug.
		{"a::bc satisfies a::b (literal string prefix)", abcVariant, ab, true},
	}
	for _, c := range cases {
		if got := c.actual.Satisfies(c.expect); got != c.want {
			t.Errorf("%s: Satisfies() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestOriginString(t *testing.T) {
	if got := ast.UniversalOrigin().String(); got != "*" {
		t.Errorf("Universal.String() = %q, want %q", got, "*")
	}
	if got := ast.ExactOrigin(path("a::b")).String(); got != "a::b" {
		t.Errorf("Exact.String() = %q, want %q", got, "a::b")
	}
}

func TestOriginEqual(t *testing.T) {
	if !ast.ExactOrigin(path("a::b")).Equal(ast.ExactOrigin(path("a::b"))) {
		t.Fatalf("equal exact origins should compare equal")
	}
	if ast.ExactOrigin(path("a::b")).Equal(ast.ExactOrigin(path("a::c"))) {
		t.Fatalf("different exact origins should not compare equal")
	}
	if ast.UniversalOrigin().Equal(ast.ExactOrigin(path("a"))) {
		t.Fatalf("universal should never equal exact")
	}
}

func TestPathFromStringRoundTrip(t *testing.T) {
	p := path("crate::mod1::mod2::f")
	if len(p.Segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(p.Segments))
	}
	if got := p.String(); got != "crate::mod1::mod2::f" {
		t.Fatalf("String() = %q, want round-trip", got)
	}
}
