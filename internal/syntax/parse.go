package syntax

import (
	"derive-generator/internal/diagnostic"
	"derive-generator/internal/lexer"
	"derive-generator/internal/source"
	"derive-generator/internal/token"
)

// Parse lexes file and groups the tokens into trees.
func Parse(file *source.File) (Stream, error) {
	toks, err := lexer.Tokenize(file)
	if err != nil {
		return nil, err
	}

	return Build(toks)
}

// ParseString is Parse over an in-memory source.
func ParseString(name, src string) (Stream, *source.File, error) {
	file := source.NewFileString(name, src)

	stream, err := Parse(file)
	if err != nil {
		return nil, file, err
	}

	return stream, file, nil
}

// Build groups an EOF-terminated token list into trees. Unbalanced or
// mismatched delimiters are syntax errors.
func Build(toks []token.Token) (Stream, error) {
	b := builder{toks: toks}

	stream, closer, err := b.stream(token.EOF)
	if err != nil {
		return nil, err
	}

	if closer.Kind != token.EOF {
		return nil, diagnostic.Errorf(diagnostic.KindSyntax, closer.Span, "unexpected closing delimiter %q", closer.Text)
	}

	return stream, nil
}

type builder struct {
	toks []token.Token
	pos  int
}

func (b *builder) next() token.Token {
	if b.pos >= len(b.toks) {
		return token.Token{Kind: token.EOF}
	}

	tok := b.toks[b.pos]
	if tok.Kind != token.EOF {
		b.pos++
	}

	return tok
}

// stream reads trees until a closing delimiter or EOF, which it returns.
func (b *builder) stream(want token.Kind) (Stream, token.Token, error) {
	var out Stream

	for {
		tok := b.next()

		switch {
		case tok.Kind == token.EOF:
			if want != token.EOF {
				return nil, tok, diagnostic.Errorf(diagnostic.KindSyntax, tok.Span, "unclosed delimiter")
			}

			return out, tok, nil
		case tok.Kind.IsClose():
			if tok.Kind != want {
				return nil, tok, diagnostic.Errorf(diagnostic.KindSyntax, tok.Span, "mismatched closing delimiter %q", tok.Text)
			}

			return out, tok, nil
		case tok.Kind.IsOpen():
			inner, closer, err := b.stream(tok.Kind.Closer())
			if err != nil {
				return nil, closer, err
			}

			out = append(out, Tree{
				Token: tok,
				Group: &Group{Delim: tok.Kind, Open: tok, Close: closer, Stream: inner},
			})
		default:
			out = append(out, Tree{Token: tok})
		}
	}
}
