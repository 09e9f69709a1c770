package analyze

import (
	"strings"

	"derive-generator/internal/common"
	"derive-generator/internal/syntax"
	"derive-generator/internal/token"
)

// ParamKind is the kind of a generic parameter.
type ParamKind int

const (
	ParamLifetime ParamKind = iota // 'a: 'b
	ParamType                      // T: Bound = Default
	ParamConst                     // const N: usize = 3
)

// GenericParam is one entry of a generic parameter list.
type GenericParam struct {
	Kind    ParamKind
	Name    string
	Bounds  syntax.Stream // lifetime/type bounds, or the type of a const param
	Default syntax.Stream
}

// Generics is the parameter list and where clause of a declaration.
type Generics struct {
	Params []GenericParam
	Where  syntax.Stream // predicates without the where keyword
}

// IsEmpty reports whether the declaration is not generic.
func (g Generics) IsEmpty() bool {
	return len(g.Params) == 0 && len(g.Where) == 0
}

// ImplGenerics renders the parameters for an impl header: bounds kept,
// defaults dropped. Empty when there are no parameters.
func (g Generics) ImplGenerics() string {
	return g.render(func(p GenericParam) string {
		switch p.Kind {
		case ParamConst:
			return "const " + p.Name + ": " + p.Bounds.String()
		default:
			return withBounds(p)
		}
	})
}

// TypeGenerics renders the parameters as arguments: names only.
func (g Generics) TypeGenerics() string {
	return g.render(func(p GenericParam) string { return p.Name })
}

// DeclGenerics renders the parameters as written on a declaration,
// defaults included.
func (g Generics) DeclGenerics() string {
	return g.render(func(p GenericParam) string {
		s := withBounds(p)
		if p.Kind == ParamConst {
			s = "const " + p.Name + ": " + p.Bounds.String()
		}

		if len(p.Default) > 0 {
			s += " = " + p.Default.String()
		}

		return s
	})
}

// WhereClause renders "where ..." or nothing.
func (g Generics) WhereClause() string {
	if len(g.Where) == 0 {
		return ""
	}

	return "where " + g.Where.String()
}

func (g Generics) render(param func(GenericParam) string) string {
	if len(g.Params) == 0 {
		return ""
	}

	return "<" + strings.Join(common.Map(g.Params, param), ", ") + ">"
}

func withBounds(p GenericParam) string {
	if len(p.Bounds) == 0 {
		return p.Name
	}

	return p.Name + ": " + p.Bounds.String()
}

// readGenerics reads an optional <...> parameter list.
func readGenerics(r *syntax.Reader) (Generics, error) {
	var g Generics

	if t, ok := r.Peek(); !ok || !t.IsPunct('<') {
		return g, nil
	}

	inner, err := r.AngleGroup()
	if err != nil {
		return g, err
	}

	for _, part := range inner.Split(',') {
		param, err := readGenericParam(part)
		if err != nil {
			return g, err
		}

		g.Params = append(g.Params, param)
	}

	return g, nil
}

func readGenericParam(part syntax.Stream) (GenericParam, error) {
	r := syntax.NewReader(part, part.Span())

	if _, err := readAttributes(r); err != nil {
		return GenericParam{}, err
	}

	first, ok := r.Peek()
	if !ok {
		return GenericParam{}, r.Errorf("expected generic parameter")
	}

	var p GenericParam

	switch {
	case first.Kind() == token.Lifetime:
		r.Next()
		p = GenericParam{Kind: ParamLifetime, Name: first.Token.Text}
	case r.EatIdent("const"):
		name, err := r.ExpectIdent("const parameter name")
		if err != nil {
			return p, err
		}

		p = GenericParam{Kind: ParamConst, Name: name.Text}

		if err := r.ExpectPunct(':'); err != nil {
			return p, err
		}

		p.Bounds = r.CollectUntil(isEq)
		if r.EatPunct('=') {
			p.Default = r.Rest()
		}

		return p, nil
	default:
		name, err := r.ExpectIdent("type parameter name")
		if err != nil {
			return p, err
		}

		p = GenericParam{Kind: ParamType, Name: name.Text}
	}

	if r.EatPunct(':') {
		p.Bounds = r.CollectUntil(isEq)
	}

	if r.EatPunct('=') {
		p.Default = r.Rest()
	}

	if !r.Done() {
		return p, r.Errorf("unexpected token in generic parameter")
	}

	return p, nil
}

// readWhere reads an optional where clause up to stop (a body group or ';').
func readWhere(r *syntax.Reader, stop func(syntax.Tree) bool) syntax.Stream {
	if !r.EatIdent("where") {
		return nil
	}

	preds := r.CollectUntil(stop)
	preds, _ = trimTrailingComma(preds)

	return preds
}

func trimTrailingComma(s syntax.Stream) (syntax.Stream, bool) {
	if last, ok := common.Last(s); ok && last.IsPunct(',') {
		return s[:len(s)-1], true
	}

	return s, false
}

func isEq(t syntax.Tree) bool {
	return t.IsPunct('=')
}
