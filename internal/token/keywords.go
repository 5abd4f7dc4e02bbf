package token

var keywords = map[string]Kind{
	"fn":     KwFn,
	"mod":    KwMod,
	"let":    KwLet,
	"return": KwReturn,
}

// LookupKeyword reports the Kind of ident if it names a keyword, and
// whether it does. Keywords are case-sensitive; only exact lowercase
// spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
