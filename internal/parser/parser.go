// Package parser implements Inlet's recursive-descent parser: tokens to
// AST, built around a start/finish span-mark idiom covering the full
// grammar (parameters, Return, binary expressions with precedence,
// multi-argument calls).
package parser

import (
	"fmt"

	"github.com/DavisPL/inlet/internal/ast"
	"github.com/DavisPL/inlet/internal/diag"
	"github.com/DavisPL/inlet/internal/source"
	"github.com/DavisPL/inlet/internal/token"
)

// Error is a parse failure: single-shot and fatal for the file being
// parsed. It carries the diag.Diagnostic a caller can forward straight
// into a reporter or a rendered bag.
type Error struct {
	Diag diag.Diagnostic
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Diag.Primary, e.Diag.Message)
}

// Parser holds the state of one file's parse: the token stream, a cursor
// into it, and a stack of "start marks" recording where each in-progress
// production began.
type Parser struct {
	file     source.FileID
	tokens   []token.Token
	index    int
	starts   []source.Location
	lastSpan source.Span
}

// Parse parses the full token stream for file (as produced by
// lexer.Lex, including its trailing EOF token) into a File.
func Parse(file source.FileID, tokens []token.Token) (*ast.File, error) {
	p := &Parser{file: file, tokens: tokens}
	return p.parseFile()
}

func (p *Parser) peek() token.Token {
	if p.index >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.index]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	if tok.Kind != token.EOF {
		p.index++
	}
	p.lastSpan = tok.Span
	return tok
}

// start pushes the current token's starting location, marking the
// beginning of a production.
func (p *Parser) start() {
	p.starts = append(p.starts, p.peek().Span.From)
}

// finish pops the most recent start mark and combines it with the span
// of the last consumed token to produce the completed node's span.
func (p *Parser) finish() source.Span {
	from := p.starts[len(p.starts)-1]
	p.starts = p.starts[:len(p.starts)-1]
	to := p.lastSpan.To
	if !to.IsKnown() {
		to = from
	}
	return source.Span{From: from, To: to}
}

func (p *Parser) errSpan() source.Span {
	return source.Span{From: p.peek().Span.From, To: p.peek().Span.To}
}

func (p *Parser) fail(code diag.Code, format string, args ...any) error {
	return &Error{Diag: diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		File:     p.file,
		Primary:  p.errSpan(),
	}}
}

// expect advances past a token of kind k, or fails with a descriptive
// message naming what was expected and what was actually found.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.fail(diag.SynExpectToken, "Expected '%s' but found '%s'", k, p.peek().Kind)
}
