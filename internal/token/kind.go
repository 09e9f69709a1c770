package token

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident is an identifier or keyword, including raw identifiers (r#type).
	Ident
	// Lifetime is a lifetime or loop label ('a, 'static).
	Lifetime

	// StringLit is a string literal, cooked or raw ("a", r#"a"#).
	StringLit
	// ByteStringLit is a byte string literal (b"a", br"a").
	ByteStringLit
	// CharLit is a character literal ('a').
	CharLit
	// ByteLit is a byte literal (b'a').
	ByteLit
	// NumberLit is an integer or float literal with optional suffix.
	NumberLit

	// Punct is a single punctuation character; multi-character operators
	// are sequences of joint Punct tokens.
	Punct

	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }
)

// IsLiteral reports whether the kind is a literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case StringLit, ByteStringLit, CharLit, ByteLit, NumberLit:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the kind opens a delimited group.
func (k Kind) IsOpen() bool {
	return k == LParen || k == LBracket || k == LBrace
}

// IsClose reports whether the kind closes a delimited group.
func (k Kind) IsClose() bool {
	return k == RParen || k == RBracket || k == RBrace
}

// Closer returns the closing kind matching an opening kind.
func (k Kind) Closer() Kind {
	switch k {
	case LParen:
		return RParen
	case LBracket:
		return RBracket
	case LBrace:
		return RBrace
	default:
		return Invalid
	}
}
