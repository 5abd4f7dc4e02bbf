package token

import "github.com/DavisPL/inlet/internal/source"

// Token is a single lexed token: its kind, the raw text it was scanned
// from (the identifier spelling or the literal's digits), and its span.
// NumLit additionally carries its parsed value.
type Token struct {
	Kind  Kind
	Text  string
	Value int32 // populated only for NumLit
	Span  source.Span
}

// IsKeyword reports whether the token's kind is one of the keyword kinds.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFn, KwMod, KwLet, KwReturn:
		return true
	default:
		return false
	}
}
