package visitor_test

import (
	"testing"

	"github.com/DavisPL/inlet/internal/ast"
	"github.com/DavisPL/inlet/internal/source"
	"github.com/DavisPL/inlet/internal/visitor"
)

// countingVisitor counts how many times each hook fires, overriding only
// VisitIdent and VisitCallExpr to prove that Base's default descent still
// reaches nested nodes untouched by the override.
type countingVisitor struct {
	visitor.Base
	idents int
	calls  int
}

func newCountingVisitor() *countingVisitor {
	cv := &countingVisitor{}
	cv.Base = visitor.NewBase(cv)
	return cv
}

func (cv *countingVisitor) VisitIdent(id ast.Ident) {
	cv.idents++
}

func (cv *countingVisitor) VisitCallExpr(e *ast.CallExpr) {
	cv.calls++
	cv.Base.VisitCallExpr(e) // continue descent into arguments
}

func sp() source.Span { return source.Span{} }

func buildSampleFile() *ast.File {
	// fn f(x: {a}) -> {*} { let y = g(x); return y; };
	callExpr := &ast.CallExpr{
		Callee: ast.PathFromString("g", sp()),
		Args:   []ast.Expr{&ast.PathExpr{Path: ast.PathFromString("x", sp()), Sp: sp()}},
		Sp:     sp(),
	}
	fn := &ast.FnItem{
		Ident: ast.Ident{Raw: "f", Span: sp()},
		Params: []ast.FnParam{
			{Ident: ast.Ident{Raw: "x", Span: sp()}, Origin: ast.ExactOrigin(ast.PathFromString("a", sp())), Sp: sp()},
		},
		RetOrigin: ast.UniversalOrigin(),
		Body: ast.Block{
			Stmts: []ast.Stmt{
				&ast.LocalStmt{Ident: ast.Ident{Raw: "y", Span: sp()}, Expr: callExpr, Sp: sp()},
				&ast.ReturnStmt{Expr: &ast.PathExpr{Path: ast.PathFromString("y", sp()), Sp: sp()}, Sp: sp()},
			},
			Sp: sp(),
		},
		Sp: sp(),
	}
	return &ast.File{Items: []ast.Item{fn}, Sp: sp()}
}

func TestBaseDefaultDescentReachesNestedNodes(t *testing.T) {
	cv := newCountingVisitor()
	file := buildSampleFile()
	cv.VisitFile(file)

	if cv.calls != 1 {
		t.Fatalf("expected 1 call expr visited, got %d", cv.calls)
	}
	// idents: fn ident(f), param ident(x), local ident(y), return's path
	// ident(y) is a PathExpr so not dispatched as a bare Ident — only fn
	// ident, param ident, and local ident go through VisitIdent.
	if cv.idents != 3 {
		t.Fatalf("expected 3 idents visited, got %d", cv.idents)
	}
}

func TestWalkModItemDescendsIntoNestedFile(t *testing.T) {
	inner := buildSampleFile()
	mod := &ast.ModItem{Ident: ast.Ident{Raw: "m", Span: sp()}, File: inner, Sp: sp()}
	outer := &ast.File{Items: []ast.Item{mod}, Sp: sp()}

	cv := newCountingVisitor()
	cv.VisitFile(outer)
	if cv.calls != 1 {
		t.Fatalf("expected descent into nested module's file to find 1 call expr, got %d", cv.calls)
	}
}
