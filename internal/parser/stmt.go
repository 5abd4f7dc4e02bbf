package parser

import (
	"github.com/DavisPL/inlet/internal/ast"
	"github.com/DavisPL/inlet/internal/diag"
	"github.com/DavisPL/inlet/internal/token"
)

// parseBlock parses `Block := Stmt ';' ... Stmt ';'`, a Local or Return
// per statement, each terminated by a semicolon (spec.md §4.2).
func (p *Parser) parseBlock() (*ast.Block, error) {
	p.start()
	var stmts []ast.Stmt
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Block{Stmts: stmts, Sp: p.finish()}, nil
}

// parseStmt parses `Stmt := 'let' Ident '=' Expr | 'return' Expr`.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.peek().Kind {
	case token.KwLet:
		return p.parseLocalStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	default:
		return nil, p.fail(diag.SynUnexpectedToken, "Expected 'let' or 'return', found '%s'", p.peek().Kind)
	}
}

func (p *Parser) parseLocalStmt() (*ast.LocalStmt, error) {
	p.start()
	if _, err := p.expect(token.KwLet); err != nil {
		return nil, err
	}
	ident, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Assign); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.LocalStmt{Ident: ident, Expr: expr, Sp: p.finish()}, nil
}

func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	p.start()
	if _, err := p.expect(token.KwReturn); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Expr: expr, Sp: p.finish()}, nil
}
