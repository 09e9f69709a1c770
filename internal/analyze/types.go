package analyze

import (
	"strconv"

	"derive-generator/internal/common"
	"derive-generator/internal/source"
	"derive-generator/internal/syntax"
)

// ItemKind is the kind of an annotated item.
type ItemKind int

const (
	ItemStruct ItemKind = iota
	ItemEnum
)

// String returns the Rust keyword of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemStruct:
		return "struct"
	case ItemEnum:
		return "enum"
	default:
		return common.UnknownStr
	}
}

// ShapeKind tells how the fields of a struct or variant are written.
type ShapeKind int

const (
	ShapeUnit       ShapeKind = iota // struct S; / V
	ShapeNamed                       // struct S { a: A } / V { a: A }
	ShapePositional                  // struct S(A); / V(A)
)

// String returns a human-readable representation of the ShapeKind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeUnit:
		return "unit"
	case ShapeNamed:
		return "named"
	case ShapePositional:
		return "positional"
	default:
		return common.UnknownStr
	}
}

// Declaration is one annotated struct or enum.
type Declaration struct {
	Attrs    []Attribute
	Vis      Visibility
	Kind     ItemKind
	Name     string
	Generics Generics
	Shape    Shape     // struct body; unit for enums
	Variants []Variant // enum cases in declaration order
	Span     source.Span
	NameSpan source.Span
}

// IsEnum reports whether the declaration is an enum.
func (d *Declaration) IsEnum() bool {
	return d.Kind == ItemEnum
}

// Derives returns the names listed in every #[derive(..)] attribute, in
// order. Paths are reduced to their last segment.
func (d *Declaration) Derives() []string {
	var names []string

	for _, a := range d.Attrs {
		if a.Path != "derive" {
			continue
		}

		for _, part := range a.Args.Split(',') {
			if last, ok := common.Last(part); ok && !last.IsPunct(':') {
				names = append(names, common.TrimRaw(last.Token.Text))
			}
		}
	}

	return names
}

// Shape holds the fields of a struct or variant.
type Shape struct {
	Kind   ShapeKind
	Fields []Field
}

// IsUnit reports whether the shape has no field list at all.
func (s Shape) IsUnit() bool {
	return s.Kind == ShapeUnit
}

// Types returns the field types in declaration order.
func (s Shape) Types() []Type {
	return common.Map(s.Fields, func(f Field) Type { return f.Type })
}

// Field is a named or positional field.
type Field struct {
	Attrs []Attribute
	Vis   Visibility
	Name  string // empty for positional fields
	Index int    // declaration index within the shape
	Type  Type
	Span  source.Span
}

// IsNamed reports whether the field has a name.
func (f Field) IsNamed() bool {
	return f.Name != ""
}

// Member returns the expression suffix addressing the field on a value:
// the name for named fields, the index for positional ones.
func (f Field) Member() string {
	if f.IsNamed() {
		return f.Name
	}

	return strconv.Itoa(f.Index)
}

// Binding returns the local name a pattern binds the field to: the field
// name, or value{N} for positional fields.
func (f Field) Binding() string {
	if f.IsNamed() {
		return f.Name
	}

	return common.PositionalName(f.Index)
}

// Label returns the field name without the raw-identifier prefix, as used
// in rendered text.
func (f Field) Label() string {
	return common.TrimRaw(f.Name)
}

// Variant is one enum case.
type Variant struct {
	Attrs        []Attribute
	Name         string
	Shape        Shape
	Discriminant syntax.Stream // = expr, if any
	Span         source.Span
}

// Attribute is one outer attribute: #[Path(Args)], #[Path] or #[Path = Value].
type Attribute struct {
	Path  string
	Args  syntax.Stream // contents of the delimited group after the path
	Group *syntax.Group // nil when the attribute has no delimited arguments
	Value syntax.Stream // the expression after '=' in #[path = value]
	Tree  syntax.Tree   // the whole [...] group, kept for re-emission
	Span  source.Span
}

// HasArgs reports whether the attribute was written with a delimited list.
func (a Attribute) HasArgs() bool {
	return a.Group != nil
}

// String renders the attribute back to source form.
func (a Attribute) String() string {
	return "#" + a.Tree.String()
}

// Visibility is a visibility qualifier as written, or empty (inherited).
type Visibility struct {
	Tokens syntax.Stream
}

// IsInherited reports whether no qualifier was written.
func (v Visibility) IsInherited() bool {
	return len(v.Tokens) == 0
}

// String renders the qualifier, e.g. "pub(crate)"; empty when inherited.
func (v Visibility) String() string {
	return v.Tokens.String()
}

// Prefix renders the qualifier followed by a space, or nothing.
func (v Visibility) Prefix() string {
	if v.IsInherited() {
		return ""
	}

	return v.String() + " "
}

// Public is the plain pub qualifier.
func Public() Visibility {
	stream, _, err := syntax.ParseString("", "pub")
	if err != nil {
		panic(err)
	}

	return Visibility{Tokens: stream}
}
