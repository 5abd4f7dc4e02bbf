package parser_test

import (
	"testing"

	"github.com/DavisPL/inlet/internal/ast"
	"github.com/DavisPL/inlet/internal/lexer"
	"github.com/DavisPL/inlet/internal/parser"
)

func parseSrc(t *testing.T, src string) *ast.File {
	t.Helper()
	tokens, err := lexer.Lex(src)
	if err != nil {
		t.Fatalf("Lex() error = %v", err)
	}
	file, err := parser.Parse(0, tokens)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return file
}

func TestParseSimpleFn(t *testing.T) {
	file := parseSrc(t, "fn f() -> {*} { return 1; }")
	if len(file.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(file.Items))
	}
	fn, ok := file.Items[0].(*ast.FnItem)
	if !ok {
		t.Fatalf("expected *ast.FnItem, got %T", file.Items[0])
	}
	if fn.Ident.Raw != "f" {
		t.Fatalf("expected ident 'f', got %q", fn.Ident.Raw)
	}
	if !fn.RetOrigin.Universal {
		t.Fatalf("expected universal return origin")
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(fn.Body.Stmts))
	}
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", fn.Body.Stmts[0])
	}
	lit, ok := ret.Expr.(*ast.NumLitExpr)
	if !ok || lit.Value != 1 {
		t.Fatalf("expected NumLitExpr(1), got %+v", ret.Expr)
	}
}

func TestParseFnWithParamsAndExactOrigin(t *testing.T) {
	file := parseSrc(t, "fn f(x: {a}) -> {*} { return x; }")
	fn := file.Items[0].(*ast.FnItem)
	if len(fn.Params) != 1 {
		t.Fatalf("expected 1 param, got %d", len(fn.Params))
	}
	p := fn.Params[0]
	if p.Ident.Raw != "x" {
		t.Fatalf("expected param 'x', got %q", p.Ident.Raw)
	}
	if p.Origin.Universal || p.Origin.Path.String() != "a" {
		t.Fatalf("expected exact origin 'a', got %+v", p.Origin)
	}
}

func TestParseMultipleParams(t *testing.T) {
	file := parseSrc(t, "fn f(x: {a}, y: {b::c}) -> {*} { return x; }")
	fn := file.Items[0].(*ast.FnItem)
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if fn.Params[1].Origin.Path.String() != "b::c" {
		t.Fatalf("expected origin 'b::c', got %q", fn.Params[1].Origin.Path.String())
	}
}

func TestParseModNesting(t *testing.T) {
	file := parseSrc(t, "mod m { fn f() -> {*} { return 1; } }")
	mod, ok := file.Items[0].(*ast.ModItem)
	if !ok {
		t.Fatalf("expected *ast.ModItem, got %T", file.Items[0])
	}
	if mod.Ident.Raw != "m" {
		t.Fatalf("expected mod ident 'm', got %q", mod.Ident.Raw)
	}
	if len(mod.File.Items) != 1 {
		t.Fatalf("expected 1 nested item, got %d", len(mod.File.Items))
	}
}

func TestParseCallWithMultipleArgs(t *testing.T) {
	file := parseSrc(t, "fn f() -> {*} { return g(1, 2); }")
	fn := file.Items[0].(*ast.FnItem)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	call, ok := ret.Expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", ret.Expr)
	}
	if call.Callee.String() != "g" {
		t.Fatalf("expected callee 'g', got %q", call.Callee.String())
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
}

func TestParseExprPrecedence(t *testing.T) {
	file := parseSrc(t, "fn f() -> {*} { return 1 + 2 * 3; }")
	fn := file.Items[0].(*ast.FnItem)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	top, ok := ret.Expr.(*ast.BinExpr)
	if !ok || top.Op != ast.Add {
		t.Fatalf("expected top-level Add, got %+v", ret.Expr)
	}
	rhs, ok := top.Rhs.(*ast.BinExpr)
	if !ok || rhs.Op != ast.Multiply {
		t.Fatalf("expected '*' to bind tighter than '+', got rhs=%+v", top.Rhs)
	}
}

func TestParseExprLeftAssociative(t *testing.T) {
	file := parseSrc(t, "fn f() -> {*} { return 1 + 2 + 3; }")
	fn := file.Items[0].(*ast.FnItem)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	top := ret.Expr.(*ast.BinExpr)
	lhs, ok := top.Lhs.(*ast.BinExpr)
	if !ok {
		t.Fatalf("expected left-associative fold, lhs should itself be a BinExpr, got %+v", top.Lhs)
	}
	if _, ok := lhs.Lhs.(*ast.NumLitExpr); !ok {
		t.Fatalf("expected innermost lhs to be the first literal, got %+v", lhs.Lhs)
	}
}

func TestParseParenthesizedExpr(t *testing.T) {
	file := parseSrc(t, "fn f() -> {*} { return (1 + 2) * 3; }")
	fn := file.Items[0].(*ast.FnItem)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	top, ok := ret.Expr.(*ast.BinExpr)
	if !ok || top.Op != ast.Multiply {
		t.Fatalf("expected top-level Multiply forced by parens, got %+v", ret.Expr)
	}
	if _, ok := top.Lhs.(*ast.BinExpr); !ok {
		t.Fatalf("expected parenthesized Add as lhs, got %+v", top.Lhs)
	}
}

func TestParseLocalStmt(t *testing.T) {
	file := parseSrc(t, "fn f() -> {*} { let x = 1; return x; }")
	fn := file.Items[0].(*ast.FnItem)
	local, ok := fn.Body.Stmts[0].(*ast.LocalStmt)
	if !ok {
		t.Fatalf("expected *ast.LocalStmt, got %T", fn.Body.Stmts[0])
	}
	if local.Ident.Raw != "x" {
		t.Fatalf("expected ident 'x', got %q", local.Ident.Raw)
	}
}

func TestParseMissingArrowFails(t *testing.T) {
	tokens, err := lexer.Lex("fn f() {*} { return 1; }")
	if err != nil {
		t.Fatalf("Lex() error = %v", err)
	}
	if _, err := parser.Parse(0, tokens); err == nil {
		t.Fatalf("expected parse error for missing '->'")
	}
}

func TestParseUnterminatedBlockFails(t *testing.T) {
	tokens, err := lexer.Lex("fn f() -> {*} { return 1;")
	if err != nil {
		t.Fatalf("Lex() error = %v", err)
	}
	if _, err := parser.Parse(0, tokens); err == nil {
		t.Fatalf("expected parse error for missing closing brace")
	}
}

func TestParseMissingSemicolonFails(t *testing.T) {
	tokens, err := lexer.Lex("fn f() -> {*} { return 1 }")
	if err != nil {
		t.Fatalf("Lex() error = %v", err)
	}
	if _, err := parser.Parse(0, tokens); err == nil {
		t.Fatalf("expected parse error for missing ';'")
	}
}

func TestParseUnexpectedTopLevelFails(t *testing.T) {
	tokens, err := lexer.Lex("let x = 1;")
	if err != nil {
		t.Fatalf("Lex() error = %v", err)
	}
	if _, err := parser.Parse(0, tokens); err == nil {
		t.Fatalf("expected parse error for top-level statement")
	}
}

func TestParseSpanCoversWholeFn(t *testing.T) {
	file := parseSrc(t, "fn f() -> {*} { return 1; }")
	fn := file.Items[0].(*ast.FnItem)
	if fn.Sp.From.Line != 1 || fn.Sp.From.Column != 1 {
		t.Fatalf("expected fn span to start at 1:1, got %+v", fn.Sp.From)
	}
}
