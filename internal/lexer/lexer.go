package lexer

import (
	"derive-generator/internal/diagnostic"
	"derive-generator/internal/source"
	"derive-generator/internal/token"
)

// Lexer turns Rust-like source text into tokens. Comments and whitespace are
// dropped; their presence is recorded in Token.Spaced. Doc comments become
// the tokens of #[doc = "..."] (or #![doc = "..."] for //! and /*!).
type Lexer struct {
	file    *source.File
	cursor  Cursor
	spaced  bool
	pending []token.Token
}

// New creates a lexer over file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Tokenize lexes the whole file. The returned slice always ends with EOF and
// has Joint set on every punctuation token glued to the next one.
func Tokenize(file *source.File) ([]token.Token, error) {
	lx := New(file)

	var toks []token.Token

	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.Kind == token.EOF {
			break
		}
	}

	for i := range len(toks) - 1 {
		if toks[i].Kind == token.Punct && toks[i+1].Kind == token.Punct && !toks[i+1].Spaced {
			toks[i].Joint = true
		}
	}

	return toks, nil
}

// Next returns the next significant token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() (token.Token, error) {
	if len(lx.pending) > 0 {
		tok := lx.pending[0]
		lx.pending = lx.pending[1:]

		return tok, nil
	}

	if err := lx.skipTrivia(); err != nil {
		return token.Token{}, err
	}

	spaced := lx.spaced
	lx.spaced = false

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.cursor.SpanFrom(lx.cursor.Off), Spaced: spaced}, nil
	}

	if lx.atDocComment() {
		return lx.scanDocComment(spaced)
	}

	tok, err := lx.scan()
	if err != nil {
		return token.Token{}, err
	}

	tok.Spaced = spaced
	tok.Text = lx.file.Text(tok.Span)

	return tok, nil
}

func (lx *Lexer) scan() (token.Token, error) {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	switch {
	case ch == 'r' && lx.atRawString(1):
		return lx.scanRawString(start, token.StringLit)
	case ch == 'b' && lx.cursor.PeekAt(1) == 'r' && lx.atRawString(2):
		lx.cursor.Bump()
		return lx.scanRawString(start, token.ByteStringLit)
	case ch == 'b' && lx.cursor.PeekAt(1) == '"':
		lx.cursor.Bump()
		return lx.scanString(start, token.ByteStringLit)
	case ch == 'b' && lx.cursor.PeekAt(1) == '\'':
		lx.cursor.Bump()
		return lx.scanQuote(start, token.ByteLit)
	case ch == 'r' && lx.cursor.PeekAt(1) == '#' && isIdentStartByte(lx.cursor.PeekAt(2)):
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.scanIdent()

		return token.Token{Kind: token.Ident, Span: lx.cursor.SpanFrom(start)}, nil
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		if !lx.scanIdent() {
			return token.Token{}, lx.errorf(start, "unknown character %q", lx.peekRune())
		}

		return token.Token{Kind: token.Ident, Span: lx.cursor.SpanFrom(start)}, nil
	case isDec(ch):
		lx.scanNumber()

		return token.Token{Kind: token.NumberLit, Span: lx.cursor.SpanFrom(start)}, nil
	case ch == '"':
		return lx.scanString(start, token.StringLit)
	case ch == '\'':
		return lx.scanQuote(start, token.CharLit)
	}

	if kind, ok := delimiters[ch]; ok {
		lx.cursor.Bump()
		return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start)}, nil
	}

	if isPunct(ch) {
		lx.cursor.Bump()
		return token.Token{Kind: token.Punct, Span: lx.cursor.SpanFrom(start)}, nil
	}

	return token.Token{}, lx.errorf(start, "unknown character %q", lx.peekRune())
}

var delimiters = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
}

func (lx *Lexer) errorf(start uint32, format string, args ...any) error {
	return diagnostic.Errorf(diagnostic.KindSyntax, lx.cursor.SpanFrom(start), format, args...)
}
