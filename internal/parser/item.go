package parser

import (
	"github.com/DavisPL/inlet/internal/ast"
	"github.com/DavisPL/inlet/internal/diag"
	"github.com/DavisPL/inlet/internal/token"
)

// parseFile parses `File := Item*` (spec.md §4.2).
func (p *Parser) parseFile() (*ast.File, error) {
	p.start()
	var items []ast.Item
	for !p.at(token.EOF) {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &ast.File{Items: items, Sp: p.finish()}, nil
}

// parseItem parses `Item := FnItem | ModItem`.
func (p *Parser) parseItem() (ast.Item, error) {
	switch p.peek().Kind {
	case token.KwFn:
		return p.parseFnItem()
	case token.KwMod:
		return p.parseModItem()
	default:
		return nil, p.fail(diag.SynUnexpectedToken, "Expected 'fn' or 'mod', found '%s'", p.peek().Kind)
	}
}

// parseFnItem parses `'fn' Ident '(' ParamList ')' '->' Origin '{' Block '}'`.
func (p *Parser) parseFnItem() (*ast.FnItem, error) {
	p.start()
	if _, err := p.expect(token.KwFn); err != nil {
		return nil, err
	}
	ident, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Arrow); err != nil {
		return nil, err
	}
	retOrigin, err := p.parseOrigin()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.FnItem{Ident: ident, Params: params, Body: *body, RetOrigin: retOrigin, Sp: p.finish()}, nil
}

// parseModItem parses `'mod' Ident '{' File '}'`.
func (p *Parser) parseModItem() (*ast.ModItem, error) {
	p.start()
	if _, err := p.expect(token.KwMod); err != nil {
		return nil, err
	}
	ident, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	inner, err := p.parseNestedFile()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return &ast.ModItem{Ident: ident, File: inner, Sp: p.finish()}, nil
}

// parseNestedFile parses the items inside a `mod { ... }` body, stopping
// at the closing brace rather than EOF.
func (p *Parser) parseNestedFile() (*ast.File, error) {
	p.start()
	var items []ast.Item
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &ast.File{Items: items, Sp: p.finish()}, nil
}

// parseParamList parses `ε | Param (',' Param)*`.
func (p *Parser) parseParamList() ([]ast.FnParam, error) {
	if p.at(token.RParen) {
		return nil, nil
	}
	var params []ast.FnParam
	param, err := p.parseParam()
	if err != nil {
		return nil, err
	}
	params = append(params, param)
	for p.at(token.Comma) {
		p.advance()
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}

// parseParam parses `Ident ':' Origin`.
func (p *Parser) parseParam() (ast.FnParam, error) {
	p.start()
	ident, err := p.parseIdent()
	if err != nil {
		return ast.FnParam{}, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return ast.FnParam{}, err
	}
	origin, err := p.parseOrigin()
	if err != nil {
		return ast.FnParam{}, err
	}
	return ast.FnParam{Ident: ident, Origin: origin, Sp: p.finish()}, nil
}

// parseOrigin parses `'{' '*' '}' | '{' Path '}'`.
func (p *Parser) parseOrigin() (ast.Origin, error) {
	if _, err := p.expect(token.LBrace); err != nil {
		return ast.Origin{}, err
	}
	var origin ast.Origin
	if p.at(token.Star) {
		p.advance()
		origin = ast.UniversalOrigin()
	} else {
		path, err := p.parsePath()
		if err != nil {
			return ast.Origin{}, err
		}
		origin = ast.ExactOrigin(path)
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return ast.Origin{}, err
	}
	return origin, nil
}

// parseIdent parses a bare identifier token.
func (p *Parser) parseIdent() (ast.Ident, error) {
	p.start()
	tok, err := p.expect(token.Ident)
	if err != nil {
		return ast.Ident{}, err
	}
	return ast.Ident{Raw: tok.Text, Span: p.finish()}, nil
}
