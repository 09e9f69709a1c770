package plan

import (
	"fmt"

	"derive-generator/internal/analyze"
	"derive-generator/internal/attr"
	"derive-generator/internal/diagnostic"
	"derive-generator/options"
)

// Key tables, per derive and position.
var (
	constructorContainerKeys = attr.Table{{Name: "visibility", Value: attr.ValueVisibility}}
	constructorFieldKeys     = attr.Flags("default")

	fromEnumKeys    = attr.Flags("all", "named", "unnamed", "unit")
	fromVariantKeys = attr.Flags("enable", "skip")

	methodContainerKeys = attr.Flags(
		"all", "accessors", "mutators", "setters",
		"accessors_return_automatic", "accessors_return_reference", "accessors_return_copy",
	)
	methodFieldKeys = attr.Flags(
		"all", "skip_all",
		"accessor", "skip_accessor", "mutator", "skip_mutator", "setter", "skip_setter",
		"accessor_returns_automatic", "accessor_returns_reference", "accessor_returns_copy",
	)

	projectionFieldKeys = attr.Flags("skip", "flatten")

	noKeys = attr.Table{}
)

// Resolver resolves the plans of one declaration.
type Resolver struct {
	decl *analyze.Declaration
}

// NewResolver creates a Resolver for decl.
func NewResolver(decl *analyze.Declaration) *Resolver {
	return &Resolver{decl: decl}
}

// Resolve is shorthand for NewResolver(decl).Resolve(d).
func Resolve(d DeriveEnum, decl *analyze.Declaration) (Plan, error) {
	return NewResolver(decl).Resolve(d)
}

// Resolve builds the plan of derive d. Struct-only derives fail on enums
// with an unsupported item error.
func (r *Resolver) Resolve(d DeriveEnum) (Plan, error) {
	if d.StructOnly() && r.decl.IsEnum() {
		return nil, diagnostic.Errorf(diagnostic.KindUnsupportedItem, r.decl.NameSpan, "Unsupported item")
	}

	switch d {
	case DeriveConstructor:
		return r.resolveConstructor()
	case DeriveDisplay:
		return r.resolveDisplay()
	case DeriveError:
		return &ErrorPlan{Target: Target{Decl: r.decl}}, nil
	case DeriveFrom:
		return r.resolveFrom()
	case DeriveMethod:
		return r.resolveMethod()
	case DeriveInner, DeriveRecord:
		return r.resolveProjection(d)
	default:
		return nil, fmt.Errorf("unknown derive %s", d)
	}
}

func (r *Resolver) resolveConstructor() (*ConstructorPlan, error) {
	helper := DeriveConstructor.Helper()

	set, err := attr.Collect(r.decl.Attrs, helper, constructorContainerKeys)
	if err != nil {
		return nil, err
	}

	p := &ConstructorPlan{Target: Target{Decl: r.decl}, Vis: r.decl.Vis}
	if a, ok := set.Last("visibility"); ok {
		p.Vis = a.Vis
	}

	for _, f := range r.decl.Shape.Fields {
		fs, err := attr.Collect(f.Attrs, helper, constructorFieldKeys)
		if err != nil {
			return nil, err
		}

		p.Fields = append(p.Fields, ConstructorField{Field: f, Default: fs.Has("default")})
	}

	return p, nil
}

func (r *Resolver) resolveDisplay() (*DisplayPlan, error) {
	p := &DisplayPlan{Target: Target{Decl: r.decl}}

	// On an enum the container strategy is the default for its variants.
	container, err := readStrategy(r.decl.Attrs, Strategy{})
	if err != nil {
		return nil, err
	}

	if !r.decl.IsEnum() {
		p.Items = []DisplayItem{{Name: r.decl.Name, Shape: r.decl.Shape, Strategy: container}}
		return p, nil
	}

	for _, v := range r.decl.Variants {
		s, err := readStrategy(v.Attrs, container)
		if err != nil {
			return nil, err
		}

		p.Items = append(p.Items, DisplayItem{Name: v.Name, Variant: true, Shape: v.Shape, Strategy: s})
	}

	return p, nil
}

func (r *Resolver) resolveFrom() (*FromPlan, error) {
	helper := DeriveFrom.Helper()
	p := &FromPlan{Target: Target{Decl: r.decl}}

	if !r.decl.IsEnum() {
		if _, err := attr.Collect(r.decl.Attrs, helper, noKeys); err != nil {
			return nil, err
		}

		p.Categories = shapeCategory(r.decl.Shape.Kind)
		p.Conversions = []Conversion{{Shape: r.decl.Shape}}

		return p, nil
	}

	set, err := attr.Collect(r.decl.Attrs, helper, fromEnumKeys)
	if err != nil {
		return nil, err
	}

	for _, a := range set.Args {
		switch a.Key {
		case "all":
			p.Categories |= options.CategoryAll
		case "named":
			p.Categories |= options.CategoryNamed
		case "unnamed":
			p.Categories |= options.CategoryUnnamed
		case "unit":
			p.Categories |= options.CategoryUnit
		}
	}

	for _, v := range r.decl.Variants {
		toggle, err := variantToggle(v.Attrs, helper)
		if err != nil {
			return nil, err
		}

		if toggle.Resolve(p.Categories.Has(shapeCategory(v.Shape.Kind))) {
			p.Conversions = append(p.Conversions, Conversion{Variant: v.Name, Shape: v.Shape})
		}
	}

	return p, nil
}

// variantToggle folds the From attributes of one variant in order. A bare
// #[From] enables the variant.
func variantToggle(attrs []analyze.Attribute, helper string) (Toggle, error) {
	toggle := ToggleInherited

	for _, a := range attr.Find(attrs, helper) {
		if !a.HasArgs() && len(a.Value) == 0 {
			toggle = toggle.Merge(ToggleEnabled)
			continue
		}

		set, err := attr.Collect([]analyze.Attribute{a}, helper, fromVariantKeys)
		if err != nil {
			return toggle, err
		}

		for _, arg := range set.Args {
			switch arg.Key {
			case "enable":
				toggle = toggle.Merge(ToggleEnabled)
			case "skip":
				toggle = toggle.Merge(ToggleSkipped)
			}
		}
	}

	return toggle, nil
}

func shapeCategory(k analyze.ShapeKind) options.CategoryEnum {
	switch k {
	case analyze.ShapeNamed:
		return options.CategoryNamed
	case analyze.ShapePositional:
		return options.CategoryUnnamed
	default:
		return options.CategoryUnit
	}
}

// methodToggles is the accessor, mutator and setter decision at one level.
type methodToggles struct {
	accessor, mutator, setter Toggle
	returns                   ReturnShape
	hasReturns                bool
}

func (t *methodToggles) apply(key string) {
	switch key {
	case "all":
		t.accessor = t.accessor.Merge(ToggleEnabled)
		t.mutator = t.mutator.Merge(ToggleEnabled)
		t.setter = t.setter.Merge(ToggleEnabled)
	case "skip_all":
		t.accessor = t.accessor.Merge(ToggleSkipped)
		t.mutator = t.mutator.Merge(ToggleSkipped)
		t.setter = t.setter.Merge(ToggleSkipped)
	case "accessor", "accessors":
		t.accessor = t.accessor.Merge(ToggleEnabled)
	case "skip_accessor":
		t.accessor = t.accessor.Merge(ToggleSkipped)
	case "mutator", "mutators":
		t.mutator = t.mutator.Merge(ToggleEnabled)
	case "skip_mutator":
		t.mutator = t.mutator.Merge(ToggleSkipped)
	case "setter", "setters":
		t.setter = t.setter.Merge(ToggleEnabled)
	case "skip_setter":
		t.setter = t.setter.Merge(ToggleSkipped)
	case "accessors_return_automatic", "accessor_returns_automatic":
		t.returns, t.hasReturns = ReturnAutomatic, true
	case "accessors_return_reference", "accessor_returns_reference":
		t.returns, t.hasReturns = ReturnReference, true
	case "accessors_return_copy", "accessor_returns_copy":
		t.returns, t.hasReturns = ReturnCopy, true
	}
}

func (r *Resolver) resolveMethod() (*MethodPlan, error) {
	helper := DeriveMethod.Helper()

	set, err := attr.Collect(r.decl.Attrs, helper, methodContainerKeys)
	if err != nil {
		return nil, err
	}

	var container methodToggles
	for _, a := range set.Args {
		container.apply(a.Key)
	}

	p := &MethodPlan{Target: Target{Decl: r.decl}}

	for _, f := range r.decl.Shape.Fields {
		fs, err := attr.Collect(f.Attrs, helper, methodFieldKeys)
		if err != nil {
			return nil, err
		}

		var field methodToggles
		for _, a := range fs.Args {
			field.apply(a.Key)
		}

		returns := ReturnAutomatic

		switch {
		case field.hasReturns:
			returns = field.returns
		case container.hasReturns:
			returns = container.returns
		}

		if returns == ReturnAutomatic {
			returns = ReturnReference
			if f.Type.IsCopy() {
				returns = ReturnCopy
			}
		}

		p.Fields = append(p.Fields, MethodField{
			Field:    f,
			Accessor: field.accessor.Resolve(container.accessor.Resolve(false)),
			Mutator:  field.mutator.Resolve(container.mutator.Resolve(false)),
			Setter:   field.setter.Resolve(container.setter.Resolve(false)),
			Returns:  returns,
		})
	}

	return p, nil
}

// Sibling types keep only attributes that are valid without our derives.
var siblingAttributes = map[string]struct{}{
	"doc": {}, "cfg": {}, "allow": {}, "expect": {}, "warn": {}, "deny": {}, "repr": {},
}

func siblingAttrs(attrs []analyze.Attribute) []analyze.Attribute {
	var kept []analyze.Attribute

	for _, a := range attrs {
		if _, ok := siblingAttributes[a.Path]; ok {
			kept = append(kept, a)
		}
	}

	return kept
}

func (r *Resolver) resolveProjection(d DeriveEnum) (*ProjectionPlan, error) {
	helper := d.Helper()
	suffix := d.String()

	if _, err := attr.Collect(r.decl.Attrs, helper, noKeys); err != nil {
		return nil, err
	}

	p := &ProjectionPlan{
		Target: Target{Decl: r.decl},
		Kind:   d,
		Name:   r.decl.Name + suffix,
		Method: "into_" + projectionMethodSuffix(d),
		Attrs:  siblingAttrs(r.decl.Attrs),
	}

	for _, f := range r.decl.Shape.Fields {
		fs, err := attr.Collect(f.Attrs, helper, projectionFieldKeys)
		if err != nil {
			return nil, err
		}

		pf := ProjectedField{Field: f, Mode: ProjectMove, Type: f.Type.String(), Attrs: siblingAttrs(f.Attrs)}

		// skip and flatten exclude each other; the last one wins.
		if a, ok := lastOf(fs, "skip", "flatten"); ok {
			if a.Key == "skip" {
				pf.Mode = ProjectSkip
			} else {
				pf.Mode = ProjectFlatten
			}
		}

		if pf.Mode == ProjectFlatten {
			typ, ok := f.Type.WithSegmentSuffix(suffix)
			if !ok {
				return nil, diagnostic.Errorf(diagnostic.KindInvalidFlatten, f.Type.Tokens.Span(),
					"Cannot flatten %s", f.Type)
			}

			pf.Type = typ
		}

		p.Fields = append(p.Fields, pf)
	}

	return p, nil
}

func projectionMethodSuffix(d DeriveEnum) string {
	if d == DeriveInner {
		return "inner"
	}

	return "record"
}

func lastOf(set attr.Set, keys ...string) (attr.Arg, bool) {
	for i := len(set.Args) - 1; i >= 0; i-- {
		for _, k := range keys {
			if set.Args[i].Key == k {
				return set.Args[i], true
			}
		}
	}

	return attr.Arg{}, false
}
