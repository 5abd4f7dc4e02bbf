package ast

import "github.com/DavisPL/inlet/internal/source"

// Expr is the tagged variant over expression shapes (spec.md §3): binary
// expressions, literals, paths used as values, and function calls. Every
// variant exposes its span uniformly through Span().
type Expr interface {
	Span() source.Span
	exprNode()
}

// BinOp is the operator of a BinExpr.
type BinOp uint8

const (
	// Add is '+'.
	Add BinOp = iota
	// Multiply is '*'.
	Multiply
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Multiply:
		return "*"
	default:
		return "?"
	}
}

// NumLitExpr is an integer literal used as an expression.
type NumLitExpr struct {
	Value int32
	Sp    source.Span
}

func (e *NumLitExpr) Span() source.Span { return e.Sp }
func (*NumLitExpr) exprNode()           {}

// UnitExpr is the unit literal `()`-equivalent, Unit(span) in spec.md §3.
// Inlet's grammar never produces it (there is no literal syntax for it),
// but it remains part of the Literal variant for forward compatibility
// with constructs that synthesize unit values.
type UnitExpr struct {
	Sp source.Span
}

func (e *UnitExpr) Span() source.Span { return e.Sp }
func (*UnitExpr) exprNode()           {}

// PathExpr is a Path used in value position.
type PathExpr struct {
	Path Path
	Sp   source.Span
}

func (e *PathExpr) Span() source.Span { return e.Sp }
func (*PathExpr) exprNode()           {}

// BinExpr is a binary expression over Add/Multiply.
type BinExpr struct {
	Lhs, Rhs Expr
	Op       BinOp
	Sp       source.Span
}

func (e *BinExpr) Span() source.Span { return e.Sp }
func (*BinExpr) exprNode()           {}

// CallExpr is a call to a ::-qualified function path with positional
// arguments.
type CallExpr struct {
	Callee Path
	Args   []Expr
	Sp     source.Span
}

func (e *CallExpr) Span() source.Span { return e.Sp }
func (*CallExpr) exprNode()           {}
