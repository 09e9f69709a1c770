package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"

	"derive-generator/internal/source"
	"derive-generator/internal/token"
	"derive-generator/utils"
)

const utf8RuneSelf = utf8.RuneSelf

// skipTrivia consumes whitespace, line comments and (nested) block comments.
// It stops in front of a doc comment.
func (lx *Lexer) skipTrivia() error {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()

		switch b := lx.cursor.Peek(); {
		case lx.atDocComment():
			return nil
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			lx.cursor.Bump()
		case b == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case b == '/' && lx.cursor.PeekAt(1) == '*':
			if err := lx.skipBlockComment(start); err != nil {
				return err
			}
		default:
			return nil
		}

		lx.spaced = true
	}

	return nil
}

// atDocComment reports whether the cursor is on ///, //!, /** or /*!.
// Four slashes, /*** and the empty /**/ are plain comments.
func (lx *Lexer) atDocComment() bool {
	c := &lx.cursor
	if c.Peek() != '/' {
		return false
	}

	third, fourth := c.PeekAt(2), c.PeekAt(3)

	switch c.PeekAt(1) {
	case '/':
		return third == '!' || third == '/' && fourth != '/'
	case '*':
		return third == '!' || third == '*' && fourth != '*' && fourth != '/'
	default:
		return false
	}
}

// scanDocComment returns the '#' of the doc attribute and queues the rest.
func (lx *Lexer) scanDocComment(spaced bool) (token.Token, error) {
	start := lx.cursor.Mark()
	inner := lx.cursor.PeekAt(2) == '!'

	var text string

	if lx.cursor.PeekAt(1) == '/' {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}

		text = strings.TrimSuffix(lx.file.Text(source.Span{Start: start + 3, End: lx.cursor.Off}), "\r")
	} else {
		if err := lx.skipBlockComment(start); err != nil {
			return token.Token{}, err
		}

		text = lx.file.Text(source.Span{Start: start + 3, End: lx.cursor.Off - 2})
	}

	span := lx.cursor.SpanFrom(start)

	toks := []token.Token{{Kind: token.Punct, Text: "#", Spaced: spaced}}
	if inner {
		toks = append(toks, token.Token{Kind: token.Punct, Text: "!"})
	}

	toks = append(toks,
		token.Token{Kind: token.LBracket, Text: "["},
		token.Token{Kind: token.Ident, Text: "doc"},
		token.Token{Kind: token.Punct, Text: "=", Spaced: true},
		token.Token{Kind: token.StringLit, Text: docLiteral(text), Spaced: true},
		token.Token{Kind: token.RBracket, Text: "]"},
	)

	for i := range toks {
		toks[i].Span = span
	}

	lx.pending = toks[1:]
	lx.spaced = true

	return toks[0], nil
}

// docLiteral quotes text as a Rust string literal.
func docLiteral(text string) string {
	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range text {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

func (lx *Lexer) skipBlockComment(start uint32) error {
	lx.cursor.Bump()
	lx.cursor.Bump()

	depth := 1
	for depth > 0 {
		if lx.cursor.EOF() {
			return lx.errorf(start, "unterminated block comment")
		}

		switch {
		case lx.cursor.Peek() == '/' && lx.cursor.PeekAt(1) == '*':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
		case lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth--
		default:
			lx.cursor.Bump()
		}
	}

	return nil
}

// scanIdent consumes an identifier; it reports false if the current rune
// cannot start one.
func (lx *Lexer) scanIdent() bool {
	r, _ := lx.peekRuneSize()
	if !isIdentStartRune(r) {
		return false
	}

	for !lx.cursor.EOF() {
		r, _ := lx.peekRuneSize()
		if !isIdentContinueRune(r) {
			break
		}

		lx.bumpRune()
	}

	return true
}

func (lx *Lexer) scanNumber() {
	seenDot := false

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		switch {
		case isIdentContinueByte(b):
			lx.cursor.Bump()
		case b == '.' && !seenDot && isDec(lx.cursor.PeekAt(1)):
			seenDot = true
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) scanString(start uint32, kind token.Kind) (token.Token, error) {
	lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '"':
			return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start)}, nil
		case '\\':
			lx.cursor.Bump()
		}
	}

	return token.Token{}, lx.errorf(start, "unterminated string literal")
}

// atRawString reports whether r / br at the cursor opens a raw string, the
// prefix being n bytes long.
func (lx *Lexer) atRawString(n uint32) bool {
	for lx.cursor.PeekAt(n) == '#' {
		n++
	}

	return lx.cursor.PeekAt(n) == '"'
}

func (lx *Lexer) scanRawString(start uint32, kind token.Kind) (token.Token, error) {
	lx.cursor.Bump() // 'r'

	hashes := 0
	for lx.cursor.Eat('#') {
		hashes++
	}

	lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}

		closing := 0
		for closing < hashes && lx.cursor.Peek() == '#' {
			lx.cursor.Bump()
			closing++
		}

		if closing == hashes {
			return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start)}, nil
		}
	}

	return token.Token{}, lx.errorf(start, "unterminated raw string literal")
}

// scanQuote handles everything that starts with a single quote: character
// and byte literals, lifetimes and labels.
func (lx *Lexer) scanQuote(start uint32, kind token.Kind) (token.Token, error) {
	lx.cursor.Bump() // opening '\''

	if lx.cursor.Peek() == '\\' {
		lx.cursor.Bump()

		if lx.cursor.Bump() == 'u' && lx.cursor.Peek() == '{' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '}' {
				lx.cursor.Bump()
			}

			lx.cursor.Bump()
		}

		for !lx.cursor.EOF() && lx.cursor.Peek() != '\'' && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}

		if !lx.cursor.Eat('\'') {
			return token.Token{}, lx.errorf(start, "unterminated character literal")
		}

		return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start)}, nil
	}

	r, size := lx.peekRuneSize()
	if size == 0 {
		return token.Token{}, lx.errorf(start, "unterminated character literal")
	}

	usize, err := safecast.Conv[uint32](size)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}

	if lx.cursor.PeekAt(usize) == '\'' {
		lx.bumpRune()
		lx.cursor.Bump()

		return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start)}, nil
	}

	if kind == token.CharLit && isIdentStartRune(r) {
		lx.scanIdent()
		return token.Token{Kind: token.Lifetime, Span: lx.cursor.SpanFrom(start)}, nil
	}

	return token.Token{}, lx.errorf(start, "unterminated character literal")
}

func (lx *Lexer) peekRuneSize() (rune, int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}

	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
		return rune(b), 1
	}

	return utf8.DecodeRune(lx.file.Content[lx.cursor.Off:lx.cursor.Limit])
}

func (lx *Lexer) peekRune() rune {
	r, _ := lx.peekRuneSize()
	return r
}

func (lx *Lexer) bumpRune() {
	_, size := lx.peekRuneSize()
	if size == 0 {
		return
	}

	usize, err := safecast.Conv[uint32](size)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}

	lx.cursor.Off += usize
}

func isIdentStartByte(b byte) bool {
	return b == '_' || utils.IsInRange('A', b, 'Z') || utils.IsInRange('a', b, 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return utils.IsInRange('0', b, '9') }

func isPunct(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '%', '^', '!', '&', '|', '=', '<', '>', '@',
		'.', ',', ';', ':', '#', '$', '?', '~', '\\':
		return true
	default:
		return false
	}
}
