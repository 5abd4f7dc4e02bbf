package token_test

import (
	"testing"

	"github.com/DavisPL/inlet/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		text string
		kind token.Kind
		ok   bool
	}{
		{"fn", token.KwFn, true},
		{"mod", token.KwMod, true},
		{"let", token.KwLet, true},
		{"return", token.KwReturn, true},
		{"Fn", token.Invalid, false},
		{"function", token.Invalid, false},
		{"", token.Invalid, false},
	}
	for _, c := range cases {
		kind, ok := token.LookupKeyword(c.text)
		if ok != c.ok {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", c.text, ok, c.ok)
			continue
		}
		if ok && kind != c.kind {
			t.Errorf("LookupKeyword(%q) kind = %v, want %v", c.text, kind, c.kind)
		}
	}
}

func TestTokenIsKeyword(t *testing.T) {
	if (token.Token{Kind: token.KwLet}).IsKeyword() != true {
		t.Fatalf("KwLet should report IsKeyword")
	}
	if (token.Token{Kind: token.Ident}).IsKeyword() != false {
		t.Fatalf("Ident should not report IsKeyword")
	}
}
