package lexer

import (
	"fmt"

	"github.com/DavisPL/inlet/internal/source"
	"github.com/DavisPL/inlet/internal/token"
)

// scanSymbol dispatches on a single punctuation/operator start character,
// per the grammar in spec.md §4.1: single-character tokens, '->' (which
// requires '>' after '-'), and ':'/'::' (one character of lookahead).
func (lx *Lexer) scanSymbol(start source.Location) (token.Token, error) {
	r := lx.cur.Bump()

	single := func(k token.Kind) (token.Token, error) {
		return token.Token{Kind: k, Text: string(r), Span: source.Span{From: start, To: lx.cur.Loc()}}, nil
	}

	switch r {
	case '+':
		return single(token.Plus)
	case '(':
		return single(token.LParen)
	case ')':
		return single(token.RParen)
	case '[':
		return single(token.LBracket)
	case ']':
		return single(token.RBracket)
	case '{':
		return single(token.LBrace)
	case '}':
		return single(token.RBrace)
	case '*':
		return single(token.Star)
	case ',':
		return single(token.Comma)
	case ';':
		return single(token.Semi)
	case '=':
		return single(token.Assign)
	case '-':
		if lx.cur.Peek() == '>' {
			lx.cur.Bump()
			return token.Token{Kind: token.Arrow, Text: "->", Span: source.Span{From: start, To: lx.cur.Loc()}}, nil
		}
		return token.Token{}, &Error{Reason: fmt.Sprintf("expected '->' but found %q", lx.cur.Peek()), At: lx.cur.Loc()}
	case ':':
		if lx.cur.Peek() == ':' {
			lx.cur.Bump()
			return token.Token{Kind: token.ColonColon, Text: "::", Span: source.Span{From: start, To: lx.cur.Loc()}}, nil
		}
		return single(token.Colon)
	default:
		return token.Token{}, &Error{Reason: fmt.Sprintf("unexpected character %q", r), At: start}
	}
}
