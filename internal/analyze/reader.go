package analyze

import (
	"strings"

	"derive-generator/internal/diagnostic"
	"derive-generator/internal/source"
	"derive-generator/internal/syntax"
	"derive-generator/internal/token"
)

// ReadItem reads exactly one struct or enum declaration from s. Any other
// item kind fails with an unsupported item error.
func ReadItem(s syntax.Stream) (*Declaration, error) {
	r := syntax.NewReader(s, endOf(s))

	attrs, err := readAttributes(r)
	if err != nil {
		return nil, err
	}

	decl := &Declaration{Attrs: attrs, Span: s.Span()}

	if decl.Vis, err = readVisibility(r); err != nil {
		return nil, err
	}

	switch {
	case r.EatIdent("struct"):
		decl.Kind = ItemStruct
	case r.EatIdent("enum"):
		decl.Kind = ItemEnum
	default:
		return nil, diagnostic.Errorf(diagnostic.KindUnsupportedItem, r.Span(), "Unsupported item")
	}

	name, err := r.ExpectIdent("item name")
	if err != nil {
		return nil, err
	}

	decl.Name = name.Text
	decl.NameSpan = name.Span

	if decl.Generics, err = readGenerics(r); err != nil {
		return nil, err
	}

	if decl.Kind == ItemEnum {
		err = readEnumBody(r, decl)
	} else {
		err = readStructBody(r, decl)
	}

	if err != nil {
		return nil, err
	}

	if !r.Done() {
		return nil, r.Errorf("unexpected tokens after %s %s", decl.Kind, decl.Name)
	}

	return decl, nil
}

// ReadItemString parses src and reads the single item it contains.
func ReadItemString(name, src string) (*Declaration, *source.File, error) {
	stream, file, err := syntax.ParseString(name, src)
	if err != nil {
		return nil, file, err
	}

	decl, err := ReadItem(stream)

	return decl, file, err
}

func readStructBody(r *syntax.Reader, decl *Declaration) error {
	decl.Generics.Where = readWhere(r, isBodyOrSemi)

	switch t, _ := r.Peek(); {
	case t.IsGroup(token.LBrace):
		r.Next()

		shape, err := readNamedFields(t.Group)
		if err != nil {
			return err
		}

		decl.Shape = shape
	case t.IsGroup(token.LParen):
		r.Next()

		shape, err := readPositionalFields(t.Group)
		if err != nil {
			return err
		}

		decl.Shape = shape
		if where := readWhere(r, isSemi); len(where) > 0 {
			decl.Generics.Where = where
		}

		return r.ExpectPunct(';')
	default:
		decl.Shape = Shape{Kind: ShapeUnit}
		return r.ExpectPunct(';')
	}

	return nil
}

func readEnumBody(r *syntax.Reader, decl *Declaration) error {
	decl.Generics.Where = readWhere(r, isBodyOrSemi)
	decl.Shape = Shape{Kind: ShapeUnit}

	body, ok := r.EatGroup(token.LBrace)
	if !ok {
		return r.Errorf("expected enum body")
	}

	for _, part := range body.Stream.Split(',') {
		v, err := readVariant(part)
		if err != nil {
			return err
		}

		decl.Variants = append(decl.Variants, v)
	}

	return nil
}

func readVariant(part syntax.Stream) (Variant, error) {
	r := syntax.NewReader(part, endOf(part))

	attrs, err := readAttributes(r)
	if err != nil {
		return Variant{}, err
	}

	if _, err := readVisibility(r); err != nil {
		return Variant{}, err
	}

	name, err := r.ExpectIdent("variant name")
	if err != nil {
		return Variant{}, err
	}

	v := Variant{Attrs: attrs, Name: name.Text, Span: part.Span(), Shape: Shape{Kind: ShapeUnit}}

	if g, ok := r.EatGroup(token.LBrace); ok {
		if v.Shape, err = readNamedFields(g); err != nil {
			return v, err
		}
	} else if g, ok := r.EatGroup(token.LParen); ok {
		if v.Shape, err = readPositionalFields(g); err != nil {
			return v, err
		}
	}

	if r.EatPunct('=') {
		v.Discriminant = r.Rest()
	}

	if !r.Done() {
		return v, r.Errorf("unexpected tokens in variant %s", v.Name)
	}

	return v, nil
}

func readNamedFields(g *syntax.Group) (Shape, error) {
	shape := Shape{Kind: ShapeNamed}

	for i, part := range g.Stream.Split(',') {
		r := syntax.NewReader(part, endOf(part))

		attrs, err := readAttributes(r)
		if err != nil {
			return shape, err
		}

		vis, err := readVisibility(r)
		if err != nil {
			return shape, err
		}

		name, err := r.ExpectIdent("field name")
		if err != nil {
			return shape, err
		}

		if err := r.ExpectPunct(':'); err != nil {
			return shape, err
		}

		typ, err := ParseType(r.Rest())
		if err != nil {
			return shape, err
		}

		shape.Fields = append(shape.Fields, Field{
			Attrs: attrs,
			Vis:   vis,
			Name:  name.Text,
			Index: i,
			Type:  typ,
			Span:  part.Span(),
		})
	}

	return shape, nil
}

func readPositionalFields(g *syntax.Group) (Shape, error) {
	shape := Shape{Kind: ShapePositional}

	for i, part := range g.Stream.Split(',') {
		r := syntax.NewReader(part, endOf(part))

		attrs, err := readAttributes(r)
		if err != nil {
			return shape, err
		}

		vis, err := readVisibility(r)
		if err != nil {
			return shape, err
		}

		typ, err := ParseType(r.Rest())
		if err != nil {
			return shape, err
		}

		shape.Fields = append(shape.Fields, Field{
			Attrs: attrs,
			Vis:   vis,
			Index: i,
			Type:  typ,
			Span:  part.Span(),
		})
	}

	return shape, nil
}

// readAttributes reads outer attributes (#[...]). Inner attributes (#![...])
// are skipped.
func readAttributes(r *syntax.Reader) ([]Attribute, error) {
	var attrs []Attribute

	for {
		hash, ok := r.Peek()
		if !ok || !hash.IsPunct('#') {
			return attrs, nil
		}

		r.Next()
		inner := r.EatPunct('!')

		group, ok := r.EatGroup(token.LBracket)
		if !ok {
			return nil, r.Errorf("expected `[` after `#`")
		}

		if inner {
			continue
		}

		attr, err := readAttribute(group)
		if err != nil {
			return nil, err
		}

		attr.Span = hash.Span().Cover(group.Close.Span)
		attr.Tree = syntax.Tree{Token: group.Open, Group: group}
		attrs = append(attrs, attr)
	}
}

func readAttribute(g *syntax.Group) (Attribute, error) {
	r := syntax.NewReader(g.Stream, g.Close.Span)

	var path strings.Builder

	if r.EatPunctSeq("::") {
		path.WriteString("::")
	}

	for {
		seg, err := r.ExpectIdent("attribute path")
		if err != nil {
			return Attribute{}, err
		}

		path.WriteString(seg.Text)

		if !r.EatPunctSeq("::") {
			break
		}

		path.WriteString("::")
	}

	attr := Attribute{Path: path.String()}

	t, ok := r.Peek()

	switch {
	case !ok:
	case t.Group != nil:
		r.Next()
		attr.Group = t.Group
		attr.Args = t.Group.Stream
	case t.IsPunct('='):
		r.Next()
		attr.Value = r.Rest()
	}

	if !r.Done() {
		return Attribute{}, r.Errorf("unexpected tokens in attribute %s", attr.Path)
	}

	return attr, nil
}

// readVisibility reads pub, pub(crate), pub(self), pub(super) or
// pub(in path). Without pub the visibility is inherited.
func readVisibility(r *syntax.Reader) (Visibility, error) {
	start, ok := r.Peek()
	if !ok || !start.IsIdent("pub") {
		return Visibility{}, nil
	}

	r.Next()

	if next, ok := r.Peek(); ok && next.IsGroup(token.LParen) && isRestriction(next.Group.Stream) {
		r.Next()
		return Visibility{Tokens: syntax.Stream{start, next}}, nil
	}

	return Visibility{Tokens: syntax.Stream{start}}, nil
}

func isRestriction(s syntax.Stream) bool {
	if len(s) == 0 {
		return false
	}

	if s[0].IsIdent("in") {
		return len(s) > 1
	}

	return len(s) == 1 && (s[0].IsIdent("crate") || s[0].IsIdent("self") || s[0].IsIdent("super"))
}

// ParseVisibility reads a visibility qualifier from the start of s and
// returns the unconsumed rest. A stream not starting with pub is not a
// visibility.
func ParseVisibility(s syntax.Stream) (Visibility, syntax.Stream, error) {
	r := syntax.NewReader(s, endOf(s))

	vis, err := readVisibility(r)
	if err != nil {
		return vis, nil, err
	}

	if vis.IsInherited() {
		return vis, s, diagnostic.Errorf(diagnostic.KindMalformedAttribute, s.Span(), "Unknown visibility")
	}

	return vis, r.Rest(), nil
}

func isSemi(t syntax.Tree) bool {
	return t.IsPunct(';')
}

func isBodyOrSemi(t syntax.Tree) bool {
	return t.IsPunct(';') || t.IsGroup(token.LBrace)
}

func endOf(s syntax.Stream) source.Span {
	sp := s.Span()
	return source.Span{Start: sp.End, End: sp.End}
}
