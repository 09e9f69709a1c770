package gen

import (
	"strconv"
	"strings"

	"derive-generator/internal/analyze"
	"derive-generator/internal/common"
	"derive-generator/internal/plan"
)

type conversionData struct {
	Head  string
	Param string
	From  string
	Body  string
}

func buildFrom(p *plan.FromPlan) []conversionData {
	head := newImplHead(p.Decl)

	out := make([]conversionData, 0, len(p.Conversions))
	for _, c := range p.Conversions {
		out = append(out, buildConversion(head, c))
	}

	return out
}

// buildConversion converts from the field types: () for no fields, the bare
// type for one, a tuple for several.
func buildConversion(head implHead, c plan.Conversion) conversionData {
	fields := c.Shape.Fields
	ctor := c.Constructor()

	d := conversionData{Param: "value"}

	switch len(fields) {
	case 0:
		d.Param = "_"
		d.From = "()"
	case 1:
		d.From = fields[0].Type.String()
	default:
		types := make([]string, 0, len(fields))
		for _, f := range fields {
			types = append(types, f.Type.String())
		}

		d.From = "(" + strings.Join(types, ", ") + ")"
	}

	values := make([]string, 0, len(fields))
	for i := range fields {
		if common.IsSingle(fields) {
			values = append(values, "value")
		} else {
			values = append(values, "value."+strconv.Itoa(i))
		}
	}

	var body string

	switch c.Shape.Kind {
	case analyze.ShapeNamed:
		if len(fields) == 0 {
			body = ctor + " {}"
			break
		}

		inits := make([]string, 0, len(fields))
		for i, f := range fields {
			inits = append(inits, f.Name+": "+values[i])
		}

		body = ctor + " {\n" + joinFields(inits, 1) + "}"
	case analyze.ShapePositional:
		body = ctor + "(" + strings.Join(values, ", ") + ")"
	default:
		body = ctor
	}

	d.Head = head.For("::std::convert::From<" + d.From + ">")
	d.Body = lines(body, 2)

	return d
}
