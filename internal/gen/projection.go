package gen

import (
	"strings"

	"derive-generator/internal/analyze"
	"derive-generator/internal/common"
	"derive-generator/internal/plan"
)

type projectionData struct {
	Attrs  []string
	Decl   string
	Head   string
	Vis    string
	Method string
	Return string
	Body   string
}

func buildProjection(p *plan.ProjectionPlan) projectionData {
	decl := p.Decl
	kept := p.Kept()

	d := projectionData{
		Decl:   siblingDecl(p, kept),
		Head:   newImplHead(decl).Inherent(),
		Vis:    decl.Vis.Prefix(),
		Method: p.Method,
		Return: p.Name + decl.Generics.TypeGenerics(),
	}

	for _, a := range p.Attrs {
		d.Attrs = append(d.Attrs, a.String())
	}

	values := make([]string, 0, len(kept))
	for _, f := range kept {
		v := "self." + f.Field.Member()
		if f.Mode == plan.ProjectFlatten {
			v += "." + p.Method + "()"
		}

		values = append(values, v)
	}

	var body string

	switch decl.Shape.Kind {
	case analyze.ShapeNamed:
		if common.IsEmpty(kept) {
			body = p.Name + " {}"
			break
		}

		inits := make([]string, 0, len(kept))
		for i, f := range kept {
			inits = append(inits, f.Field.Name+": "+values[i])
		}

		body = p.Name + " {\n" + joinFields(inits, 1) + "}"
	case analyze.ShapePositional:
		body = p.Name + "(" + strings.Join(values, ", ") + ")"
	default:
		body = p.Name
	}

	d.Body = lines(body, 2)

	return d
}

// siblingDecl declares the sibling type: same visibility and generics, every
// field public, skipped fields removed.
func siblingDecl(p *plan.ProjectionPlan, kept []plan.ProjectedField) string {
	decl := p.Decl

	var sb strings.Builder

	sb.WriteString(decl.Vis.Prefix())
	sb.WriteString("struct ")
	sb.WriteString(p.Name)
	sb.WriteString(decl.Generics.DeclGenerics())

	where := decl.Generics.WhereClause()

	switch decl.Shape.Kind {
	case analyze.ShapeNamed:
		if where != "" {
			sb.WriteString(" " + where)
		}

		if len(kept) == 0 {
			sb.WriteString(" {}")
			break
		}

		sb.WriteString(" {\n")

		for _, f := range kept {
			for _, a := range f.Attrs {
				sb.WriteString(indent + a.String() + "\n")
			}

			sb.WriteString(indent + "pub " + f.Field.Name + ": " + f.Type + ",\n")
		}

		sb.WriteString("}")
	case analyze.ShapePositional:
		fields := make([]string, 0, len(kept))
		for _, f := range kept {
			var attrs string
			for _, a := range f.Attrs {
				attrs += a.String() + " "
			}

			fields = append(fields, attrs+"pub "+f.Type)
		}

		sb.WriteString("(" + strings.Join(fields, ", ") + ")")

		if where != "" {
			sb.WriteString(" " + where)
		}

		sb.WriteString(";")
	default:
		if where != "" {
			sb.WriteString(" " + where)
		}

		sb.WriteString(";")
	}

	return sb.String()
}
