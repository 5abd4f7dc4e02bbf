package parser

import (
	"github.com/DavisPL/inlet/internal/ast"
	"github.com/DavisPL/inlet/internal/diag"
	"github.com/DavisPL/inlet/internal/token"
)

// parseExpr parses `Expr := Term ('+' Term)*`, left-associative
// (spec.md §4.2).
func (p *Parser) parseExpr() (ast.Expr, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.at(token.Plus) {
		p.advance()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinExpr{Lhs: lhs, Op: ast.Add, Rhs: rhs, Sp: lhs.Span().Cover(rhs.Span())}
	}
	return lhs, nil
}

// parseTerm parses `Term := Factor ('*' Factor)*`, left-associative and
// binding tighter than '+'.
func (p *Parser) parseTerm() (ast.Expr, error) {
	lhs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.at(token.Star) {
		p.advance()
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinExpr{Lhs: lhs, Op: ast.Multiply, Rhs: rhs, Sp: lhs.Span().Cover(rhs.Span())}
	}
	return lhs, nil
}

// parseFactor parses `Factor := NumLit | Path ('(' ArgList ')')? | '(' Expr ')'`.
func (p *Parser) parseFactor() (ast.Expr, error) {
	switch {
	case p.at(token.NumLit):
		p.start()
		tok := p.advance()
		return &ast.NumLitExpr{Value: tok.Value, Sp: p.finish()}, nil
	case p.at(token.LParen):
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return inner, nil
	case p.at(token.Ident):
		return p.parsePathOrCall()
	default:
		return nil, p.fail(diag.SynExpectExpression, "Expected an expression, found '%s'", p.peek().Kind)
	}
}

// parsePathOrCall parses `Path ('(' ArgList ')')?`.
func (p *Parser) parsePathOrCall() (ast.Expr, error) {
	p.start()
	path, err := p.parsePath()
	if err != nil {
		return nil, err
	}
	if !p.at(token.LParen) {
		return &ast.PathExpr{Path: path, Sp: p.finish()}, nil
	}
	p.advance()
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return &ast.CallExpr{Callee: path, Args: args, Sp: p.finish()}, nil
}

// parsePath parses `Path := Ident ('::' Ident)*`.
func (p *Parser) parsePath() (ast.Path, error) {
	p.start()
	first, err := p.parseIdent()
	if err != nil {
		return ast.Path{}, err
	}
	segments := []ast.Ident{first}
	for p.at(token.ColonColon) {
		p.advance()
		seg, err := p.parseIdent()
		if err != nil {
			return ast.Path{}, err
		}
		segments = append(segments, seg)
	}
	return ast.Path{Segments: segments, Span: p.finish()}, nil
}

// parseArgList parses `ArgList := ε | Expr (',' Expr)*`.
func (p *Parser) parseArgList() ([]ast.Expr, error) {
	if p.at(token.RParen) {
		return nil, nil
	}
	var args []ast.Expr
	arg, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	args = append(args, arg)
	for p.at(token.Comma) {
		p.advance()
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}
