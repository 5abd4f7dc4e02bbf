// Package visitor provides the uniform AST traversal framework used by all
// three semantic passes (spec.md §4.3). It is grounded on
// original_source/src/visit/mod.rs's Visit trait: for every node kind
// there is a dispatch hook (VisitX), and for every node kind with children
// a default-descent function (WalkX). Default dispatch calls the walker; a pass overrides only the
// hooks it cares about, optionally calling the matching WalkX to continue
// descent (pre-order work before the call, post-order work after).
package visitor

import "github.com/DavisPL/inlet/internal/ast"

// Visitor is the uniform interface over the AST. Embed Base to get
// default-descent behavior for every hook, then override the ones a pass
// needs.
type Visitor interface {
	VisitFile(f *ast.File)
	VisitItem(item ast.Item)
	VisitFnItem(fn *ast.FnItem)
	VisitModItem(m *ast.ModItem)
	VisitFnParam(p ast.FnParam)
	VisitBlock(b *ast.Block)
	VisitStmt(s ast.Stmt)
	VisitLocalStmt(s *ast.LocalStmt)
	VisitReturnStmt(s *ast.ReturnStmt)
	VisitExpr(e ast.Expr)
	VisitBinExpr(e *ast.BinExpr)
	VisitCallExpr(e *ast.CallExpr)
	VisitPathExpr(e *ast.PathExpr)
	VisitNumLitExpr(e *ast.NumLitExpr)
	VisitUnitExpr(e *ast.UnitExpr)
	VisitIdent(id ast.Ident)
	VisitOrigin(o ast.Origin)
}

// Base implements Visitor with every hook deferring to the matching
// WalkX function, continuing descent unchanged. The leaf hooks
// (VisitPathExpr, VisitNumLitExpr, VisitUnitExpr, VisitIdent,
// VisitOrigin) have no WalkX and do nothing. Self must be set to the
// embedding type (see NewBase) so that overridden hooks on the concrete
// visitor are reached during descent, the same "self-dispatch" shape
// original_source's blanket trait-default methods give for free in Rust.
type Base struct {
	Self Visitor
}

// NewBase wires a Base's self-reference. Call this from every concrete
// visitor's constructor: b.Base = visitor.NewBase(concreteVisitor).
func NewBase(self Visitor) Base {
	return Base{Self: self}
}

func (b *Base) VisitFile(f *ast.File)            { WalkFile(b.Self, f) }
func (b *Base) VisitItem(item ast.Item)          { WalkItem(b.Self, item) }
func (b *Base) VisitFnItem(fn *ast.FnItem)       { WalkFnItem(b.Self, fn) }
func (b *Base) VisitModItem(m *ast.ModItem)      { WalkModItem(b.Self, m) }
func (b *Base) VisitFnParam(p ast.FnParam)       { WalkFnParam(b.Self, p) }
func (b *Base) VisitBlock(bl *ast.Block)         { WalkBlock(b.Self, bl) }
func (b *Base) VisitStmt(s ast.Stmt)             { WalkStmt(b.Self, s) }
func (b *Base) VisitLocalStmt(s *ast.LocalStmt)  { WalkLocalStmt(b.Self, s) }
func (b *Base) VisitReturnStmt(s *ast.ReturnStmt) { WalkReturnStmt(b.Self, s) }
func (b *Base) VisitExpr(e ast.Expr)             { WalkExpr(b.Self, e) }
func (b *Base) VisitBinExpr(e *ast.BinExpr)      { WalkBinExpr(b.Self, e) }
func (b *Base) VisitCallExpr(e *ast.CallExpr)    { WalkCallExpr(b.Self, e) }
func (b *Base) VisitPathExpr(*ast.PathExpr)      {}
func (b *Base) VisitNumLitExpr(*ast.NumLitExpr)  {}
func (b *Base) VisitUnitExpr(*ast.UnitExpr)      {}
func (b *Base) VisitIdent(ast.Ident)             {}
func (b *Base) VisitOrigin(ast.Origin)           {}
