package lexer

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/DavisPL/inlet/internal/source"
	"github.com/DavisPL/inlet/internal/token"
)

// scanNumber consumes a digit run and parses it to an i32, per spec.md
// §4.1. A value that does not fit in an i32 is a lexical error.
func (lx *Lexer) scanNumber(start source.Location) (token.Token, error) {
	var raw []rune
	for !lx.cur.EOF() && unicode.IsDigit(lx.cur.Peek()) {
		raw = append(raw, lx.cur.Bump())
	}
	end := lx.cur.Loc()
	text := string(raw)

	value, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return token.Token{}, &Error{
			Reason: fmt.Sprintf("could not convert %q into a 32-bit integer", text),
			At:     start,
		}
	}
	return token.Token{
		Kind:  token.NumLit,
		Text:  text,
		Value: int32(value),
		Span:  source.Span{From: start, To: end},
	}, nil
}
