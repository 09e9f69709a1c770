package syntax

import (
	"derive-generator/internal/diagnostic"
	"derive-generator/internal/source"
	"derive-generator/internal/token"
)

// Reader walks a stream one tree at a time.
type Reader struct {
	stream Stream
	pos    int
	// end is reported as the location of "unexpected end" errors.
	end source.Span
}

// NewReader creates a reader over s. end locates errors past the last tree;
// it is usually the closing delimiter of the enclosing group.
func NewReader(s Stream, end source.Span) *Reader {
	return &Reader{stream: s, end: end}
}

// Done reports whether every tree was consumed.
func (r *Reader) Done() bool {
	return r.pos >= len(r.stream)
}

// Peek returns the current tree without consuming it.
func (r *Reader) Peek() (Tree, bool) {
	return r.PeekAt(0)
}

// PeekAt looks n trees ahead.
func (r *Reader) PeekAt(n int) (Tree, bool) {
	if r.pos+n >= len(r.stream) {
		return Tree{}, false
	}

	return r.stream[r.pos+n], true
}

// Next consumes the current tree.
func (r *Reader) Next() (Tree, bool) {
	t, ok := r.Peek()
	if ok {
		r.pos++
	}

	return t, ok
}

// Rest returns the unconsumed trees and consumes them.
func (r *Reader) Rest() Stream {
	rest := r.stream[min(r.pos, len(r.stream)):]
	r.pos = len(r.stream)

	return rest
}

// Remaining returns the unconsumed trees without consuming them.
func (r *Reader) Remaining() Stream {
	return r.stream[min(r.pos, len(r.stream)):]
}

// EatIdent consumes the identifier name if it is next.
func (r *Reader) EatIdent(name string) bool {
	if t, ok := r.Peek(); ok && t.IsIdent(name) {
		r.pos++
		return true
	}

	return false
}

// EatPunct consumes the punctuation ch if it is next.
func (r *Reader) EatPunct(ch byte) bool {
	if t, ok := r.Peek(); ok && t.IsPunct(ch) {
		r.pos++
		return true
	}

	return false
}

// EatPunctSeq consumes a joint punctuation sequence such as "::".
func (r *Reader) EatPunctSeq(seq string) bool {
	if !r.Remaining().HasPrefixPunct(seq) {
		return false
	}

	r.pos += len(seq)

	return true
}

// EatGroup consumes a group opened by delim if it is next.
func (r *Reader) EatGroup(delim token.Kind) (*Group, bool) {
	if t, ok := r.Peek(); ok && t.IsGroup(delim) {
		r.pos++
		return t.Group, true
	}

	return nil, false
}

// ExpectIdent consumes any identifier.
func (r *Reader) ExpectIdent(what string) (token.Token, error) {
	t, ok := r.Peek()
	if !ok || t.Group != nil || t.Token.Kind != token.Ident {
		return token.Token{}, r.Errorf("expected %s", what)
	}

	r.pos++

	return t.Token, nil
}

// ExpectPunct consumes ch or fails.
func (r *Reader) ExpectPunct(ch byte) error {
	if !r.EatPunct(ch) {
		return r.Errorf("expected `%c`", ch)
	}

	return nil
}

// CollectUntil consumes trees up to (not including) the first top-level
// punctuation for which stop returns true. Angle brackets nest.
func (r *Reader) CollectUntil(stop func(Tree) bool) Stream {
	start := r.pos
	depth := 0

	for !r.Done() {
		t := r.stream[r.pos]

		switch {
		case t.IsPunct('<'):
			depth++
		case t.IsPunct('>') && depth > 0 && !r.stream.isArrowTail(r.pos):
			depth--
		case depth == 0 && stop(t):
			return r.stream[start:r.pos]
		}

		r.pos++
	}

	return r.stream[start:r.pos]
}

// Span returns the location of the current tree, or the end span.
func (r *Reader) Span() source.Span {
	if t, ok := r.Peek(); ok {
		return t.Span()
	}

	return r.end
}

// Errorf builds a syntax error located at the current tree.
func (r *Reader) Errorf(format string, args ...any) error {
	return diagnostic.Errorf(diagnostic.KindSyntax, r.Span(), format, args...)
}

// AngleGroup consumes <...> and returns the trees between the brackets.
func (r *Reader) AngleGroup() (Stream, error) {
	if !r.EatPunct('<') {
		return nil, r.Errorf("expected `<`")
	}

	start := r.pos
	depth := 1

	for !r.Done() {
		t := r.stream[r.pos]

		switch {
		case t.IsPunct('<'):
			depth++
		case t.IsPunct('>') && !r.stream.isArrowTail(r.pos):
			depth--
			if depth == 0 {
				inner := r.stream[start:r.pos]
				r.pos++

				return inner, nil
			}
		}

		r.pos++
	}

	return nil, r.Errorf("expected `>`")
}
