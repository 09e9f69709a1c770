package analyze

import (
	"strings"
)

// ItemPath builds a readable location string inside a declaration.
// Examples:
//   - "Point" for the declaration itself
//   - "Point.x" for a named field
//   - "Point.0" for a positional field
//   - "Shape::Circle.radius" for a field of an enum variant
type ItemPath struct {
	parts []string
}

// NewItemPath creates a new ItemPath from a declaration name.
func NewItemPath(root string) *ItemPath {
	return &ItemPath{
		parts: []string{root},
	}
}

// Variant appends an enum variant to the path.
func (p *ItemPath) Variant(name string) *ItemPath {
	parts := make([]string, len(p.parts))
	copy(parts, p.parts)
	parts[len(parts)-1] += "::" + name

	return &ItemPath{parts: parts}
}

// Field appends a field to the path.
func (p *ItemPath) Field(f Field) *ItemPath {
	return &ItemPath{
		parts: append(append([]string{}, p.parts...), f.Member()),
	}
}

// String returns the full path string.
func (p *ItemPath) String() string {
	return strings.Join(p.parts, ".")
}

// Describe renders a one-line summary of a declaration for debugging output,
// e.g. "pub struct Point<T> { x: T, y: T }".
func Describe(d *Declaration) string {
	var sb strings.Builder

	sb.WriteString(d.Vis.Prefix())
	sb.WriteString(d.Kind.String())
	sb.WriteString(" ")
	sb.WriteString(d.Name)
	sb.WriteString(d.Generics.DeclGenerics())

	if d.IsEnum() {
		sb.WriteString(" {")

		for i, v := range d.Variants {
			if i > 0 {
				sb.WriteString(",")
			}

			sb.WriteString(" ")
			sb.WriteString(v.Name)
			sb.WriteString(describeShape(v.Shape))
		}

		sb.WriteString(" }")

		return sb.String()
	}

	sb.WriteString(describeShape(d.Shape))

	return sb.String()
}

func describeShape(s Shape) string {
	fields := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.IsNamed() {
			fields = append(fields, f.Name+": "+f.Type.String())
		} else {
			fields = append(fields, f.Type.String())
		}
	}

	switch s.Kind {
	case ShapeNamed:
		if len(fields) == 0 {
			return " {}"
		}

		return " { " + strings.Join(fields, ", ") + " }"
	case ShapePositional:
		return "(" + strings.Join(fields, ", ") + ")"
	default:
		return ""
	}
}
