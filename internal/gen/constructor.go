package gen

import (
	"strings"

	"derive-generator/internal/analyze"
	"derive-generator/internal/common"
	"derive-generator/internal/plan"
)

type constructorData struct {
	Head string
	Vis  string
	Args string
	Body string
}

func buildConstructor(p *plan.ConstructorPlan) constructorData {
	decl := p.Decl

	args := make([]string, 0, len(p.Fields))
	for _, f := range p.Arguments() {
		args = append(args, f.Field.Binding()+": "+f.Field.Type.String())
	}

	return constructorData{
		Head: newImplHead(decl).Inherent(),
		Vis:  p.Vis.Prefix(),
		Args: strings.Join(args, ", "),
		Body: lines(constructorBody(decl.Shape, p.Fields), 2),
	}
}

func constructorBody(shape analyze.Shape, fields []plan.ConstructorField) string {
	switch shape.Kind {
	case analyze.ShapeNamed:
		if common.IsEmpty(fields) {
			return "Self {}"
		}

		inits := make([]string, 0, len(fields))
		for _, f := range fields {
			if f.Default {
				inits = append(inits, f.Field.Name+": "+defaultValue(f.Field.Type))
			} else {
				inits = append(inits, f.Field.Name)
			}
		}

		return "Self {\n" + joinFields(inits, 1) + "}"
	case analyze.ShapePositional:
		inits := make([]string, 0, len(fields))
		for _, f := range fields {
			if f.Default {
				inits = append(inits, defaultValue(f.Field.Type))
			} else {
				inits = append(inits, f.Field.Binding())
			}
		}

		return "Self(" + strings.Join(inits, ", ") + ")"
	default:
		return "Self"
	}
}

func defaultValue(t analyze.Type) string {
	return "<" + t.String() + " as ::core::default::Default>::default()"
}
