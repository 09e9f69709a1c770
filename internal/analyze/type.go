package analyze

import (
	"derive-generator/internal/common"
	"derive-generator/internal/diagnostic"
	"derive-generator/internal/syntax"
	"derive-generator/internal/token"
	"derive-generator/primitive"
)

// TypeKind represents the syntactic kind of a field type.
type TypeKind int

const (
	TypeKindOther     TypeKind = iota // arrays, slices, pointers, trait objects, fn pointers, (T)
	TypeKindPath                      // a::b::C<T>
	TypeKindTuple                     // (), (A,), (A, B)
	TypeKindReference                 // &'a T, &mut T
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindOther:
		return "other"
	case TypeKindPath:
		return "path"
	case TypeKindTuple:
		return "tuple"
	case TypeKindReference:
		return "reference"
	default:
		return common.UnknownStr
	}
}

// Type is a field type as written.
type Type struct {
	Kind   TypeKind
	Tokens syntax.Stream
	Elems  []Type // tuple elements

	// last indexes the identifier of the last path segment in Tokens.
	last int
}

// ParseType classifies a type stream. Only an empty stream is an error;
// anything that is not a path, tuple or reference is TypeKindOther.
func ParseType(s syntax.Stream) (Type, error) {
	if len(s) == 0 {
		return Type{}, diagnostic.Errorf(diagnostic.KindSyntax, s.Span(), "expected type")
	}

	t := Type{Kind: TypeKindOther, Tokens: s, last: -1}

	switch first := s[0]; {
	case len(s) == 1 && first.IsGroup(token.LParen):
		return parseTuple(t, first.Group)
	case first.IsPunct('&'):
		t.Kind = TypeKindReference
	default:
		if last, ok := pathLastSegment(s); ok {
			t.Kind = TypeKindPath
			t.last = last
		}
	}

	return t, nil
}

func parseTuple(t Type, g *syntax.Group) (Type, error) {
	parts := g.Stream.Split(',')
	_, trailing := trimTrailingComma(g.Stream)

	// (T) is a parenthesised type, not a one-element tuple.
	if len(parts) == 1 && !trailing {
		return t, nil
	}

	t.Kind = TypeKindTuple

	for _, part := range parts {
		elem, err := ParseType(part)
		if err != nil {
			return Type{}, err
		}

		t.Elems = append(t.Elems, elem)
	}

	return t, nil
}

// pathLastSegment checks that s is a whole path type and returns the index
// of its last segment identifier.
func pathLastSegment(s syntax.Stream) (int, bool) {
	i := 0

	switch {
	case s.HasPrefixPunct("::"):
		i = 2
	case s[0].IsPunct('<'):
		// <T as Trait>::Assoc
		end, ok := s.SkipAngle(0)
		if !ok || !s[end:].HasPrefixPunct("::") {
			return 0, false
		}

		i = end + 2
	}

	var last int

	for {
		if i >= len(s) || !isSegmentIdent(s[i]) {
			return 0, false
		}

		last = i
		i++

		if i < len(s) && s[i:].HasPrefixPunct("::") && i+2 < len(s) && s[i+2].IsPunct('<') {
			i += 2
		}

		if i < len(s) && s[i].IsPunct('<') {
			end, ok := s.SkipAngle(i)
			if !ok {
				return 0, false
			}

			i = end
		} else if i < len(s) && s[i].IsGroup(token.LParen) {
			// Fn(A) -> R: the rest is the return type.
			i++
			if i == len(s) || s[i:].HasPrefixPunct("->") {
				return last, true
			}

			return 0, false
		}

		if i == len(s) {
			return last, true
		}

		if !s[i:].HasPrefixPunct("::") {
			return 0, false
		}

		i += 2
	}
}

var nonPathKeywords = map[string]struct{}{
	"dyn": {}, "impl": {}, "fn": {}, "unsafe": {}, "extern": {}, "for": {},
}

func isSegmentIdent(t syntax.Tree) bool {
	if t.Group != nil || t.Token.Kind != token.Ident {
		return false
	}

	_, bad := nonPathKeywords[t.Token.Text]

	return !bad
}

// String renders the type as written.
func (t Type) String() string {
	return t.Tokens.String()
}

// Ident returns the type name when the type is a bare single identifier.
func (t Type) Ident() (string, bool) {
	if t.Kind != TypeKindPath || len(t.Tokens) != 1 {
		return "", false
	}

	return t.Tokens[0].Token.Text, true
}

// LastSegment returns the identifier of the last path segment.
func (t Type) LastSegment() (string, bool) {
	if t.Kind != TypeKindPath || t.last < 0 {
		return "", false
	}

	return t.Tokens[t.last].Token.Text, true
}

// WithSegmentSuffix renders the path with suffix appended to its last
// segment identifier: a::Child<T> + Record -> a::ChildRecord<T>.
func (t Type) WithSegmentSuffix(suffix string) (string, bool) {
	name, ok := t.LastSegment()
	if !ok {
		return "", false
	}

	tokens := make(syntax.Stream, len(t.Tokens))
	copy(tokens, t.Tokens)
	tokens[t.last].Token.Text = common.WithSuffix(name, suffix)

	return tokens.String(), true
}

// IsCopy reports whether values of the type are trivially copyable: a
// primitive scalar, the unit tuple, or a one-element tuple of such a type.
func (t Type) IsCopy() bool {
	switch t.Kind {
	case TypeKindTuple:
		switch len(t.Elems) {
		case 0:
			return true
		case 1:
			return t.Elems[0].IsCopy()
		default:
			return false
		}
	case TypeKindPath:
		name, ok := t.Ident()
		return ok && primitive.FromIdent(name).IsCopy()
	default:
		return false
	}
}
