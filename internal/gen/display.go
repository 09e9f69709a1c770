package gen

import (
	"strconv"
	"strings"

	"derive-generator/internal/analyze"
	"derive-generator/internal/common"
	"derive-generator/internal/plan"
)

type displayData struct {
	Head string
	Body string
}

func buildDisplay(p *plan.DisplayPlan) displayData {
	decl := p.Decl

	var body string

	switch {
	case decl.IsEnum() && len(p.Items) == 0:
		body = "match *self {}"
	case decl.IsEnum():
		arms := make([]string, 0, len(p.Items))
		for _, it := range p.Items {
			arms = append(arms, displayPattern("Self::"+it.Name, it.Shape)+" => "+displayExpr(it))
		}

		body = "match self {\n" + joinFields(arms, 1) + "}"
	default:
		it, _ := common.First(p.Items)
		if it.Shape.IsUnit() {
			body = displayExpr(it)
		} else {
			body = "match self {\n" + joinFields([]string{displayPattern("Self", it.Shape) + " => " + displayExpr(it)}, 1) + "}"
		}
	}

	return displayData{
		Head: newImplHead(decl).For("::core::fmt::Display"),
		Body: lines(body, 2),
	}
}

// displayBindings names the locals a pattern binds: field names, value for a
// single positional field, value0, value1, .. for several.
func displayBindings(shape analyze.Shape) []string {
	if shape.Kind == analyze.ShapePositional && common.IsSingle(shape.Fields) {
		return []string{"value"}
	}

	return common.Map(shape.Fields, analyze.Field.Binding)
}

func displayPattern(path string, shape analyze.Shape) string {
	bindings := strings.Join(displayBindings(shape), ", ")

	switch shape.Kind {
	case analyze.ShapeNamed:
		if bindings == "" {
			return path + " {}"
		}

		return path + " { " + bindings + " }"
	case analyze.ShapePositional:
		return path + "(" + bindings + ")"
	default:
		return path
	}
}

func displayExpr(it plan.DisplayItem) string {
	s := it.Strategy
	bindings := displayBindings(it.Shape)

	switch s.Kind {
	case plan.StrategyMessage:
		return "write!(formatter, " + s.Expr.String() + ")"
	case plan.StrategyClosure:
		return `write!(formatter, "{}", (` + s.Expr.String() + ")())"
	case plan.StrategyBlock, plan.StrategyCall:
		return `write!(formatter, "{}", ` + s.Expr.String() + ")"
	case plan.StrategyPath:
		return `write!(formatter, "{}", ` + s.Expr.String() + "(" + strings.Join(bindings, ", ") + "))"
	default:
		return dumpExpr(it.Name, it.Shape, bindings)
	}
}

// dumpExpr renders the structured debug-style fallback.
func dumpExpr(name string, shape analyze.Shape, bindings []string) string {
	var sb strings.Builder

	// Labels drop the r# prefix, the way #[derive(Debug)] prints them.
	label := strconv.Quote(common.TrimRaw(name))

	switch shape.Kind {
	case analyze.ShapePositional:
		sb.WriteString("formatter.debug_tuple(" + label + ")")

		for _, b := range bindings {
			sb.WriteString(".field(" + b + ")")
		}
	default:
		sb.WriteString("formatter.debug_struct(" + label + ")")

		for i, b := range bindings {
			sb.WriteString(".field(" + strconv.Quote(shape.Fields[i].Label()) + ", " + b + ")")
		}
	}

	sb.WriteString(".finish()")

	return sb.String()
}
