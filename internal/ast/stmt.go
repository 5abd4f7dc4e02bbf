package ast

import "github.com/DavisPL/inlet/internal/source"

// Stmt is the tagged variant over statement shapes (spec.md §3).
//
// The grammar also reserves a Claim(ident) statement form (spec.md §3,
// §9). Per the explicit design note — "Do not guess its intent; surface
// it as an explicit open question and omit it from the implementation
// until specified" — no Claim type is defined here, and no lexer, parser,
// or pass mentions it.
type Stmt interface {
	Span() source.Span
	stmtNode()
}

// LocalStmt is a let-binding: `let ident = expr;`.
type LocalStmt struct {
	Ident Ident
	Expr  Expr
	Sp    source.Span
}

func (s *LocalStmt) Span() source.Span { return s.Sp }
func (*LocalStmt) stmtNode()           {}

// ReturnStmt is `return expr;`.
type ReturnStmt struct {
	Expr Expr
	Sp   source.Span
}

func (s *ReturnStmt) Span() source.Span { return s.Sp }
func (*ReturnStmt) stmtNode()           {}

// Block is an ordered sequence of statements, each terminated by ';'.
type Block struct {
	Stmts []Stmt
	Sp    source.Span
}

func (b *Block) Span() source.Span { return b.Sp }
