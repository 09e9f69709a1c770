package token

import (
	"derive-generator/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	// Spaced is true when whitespace or a comment precedes the token.
	Spaced bool
	// Joint is true for a Punct immediately followed by another Punct,
	// e.g. the first ':' of "::".
	Joint bool
}

// IsPunct reports whether the token is the given punctuation character.
func (t Token) IsPunct(ch byte) bool {
	return t.Kind == Punct && len(t.Text) == 1 && t.Text[0] == ch
}

// IsIdent reports whether the token is the given identifier.
func (t Token) IsIdent(name string) bool {
	return t.Kind == Ident && t.Text == name
}

// IsKeyword reports whether the token is a reserved word that can never be
// used as a plain identifier in a declaration.
func (t Token) IsKeyword() bool {
	if t.Kind != Ident {
		return false
	}

	_, ok := keywords[t.Text]

	return ok
}

var keywords = map[string]struct{}{
	"as": {}, "async": {}, "await": {}, "break": {}, "const": {}, "continue": {},
	"crate": {}, "dyn": {}, "else": {}, "enum": {}, "extern": {}, "false": {},
	"fn": {}, "for": {}, "if": {}, "impl": {}, "in": {}, "let": {}, "loop": {},
	"match": {}, "mod": {}, "move": {}, "mut": {}, "pub": {}, "ref": {},
	"return": {}, "self": {}, "Self": {}, "static": {}, "struct": {}, "super": {},
	"trait": {}, "true": {}, "type": {}, "unsafe": {}, "use": {}, "where": {},
	"while": {},
}
