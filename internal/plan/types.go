package plan

import (
	"derive-generator/internal/analyze"
	"derive-generator/internal/common"
	"derive-generator/options"
)

// Plan is the resolved descriptor of one derive over one declaration.
type Plan interface {
	// Derive tells which generator the plan is for.
	Derive() DeriveEnum
	// Declaration returns the declaration the plan was resolved from.
	Declaration() *analyze.Declaration
}

// Target embeds the resolved declaration into every plan.
type Target struct {
	Decl *analyze.Declaration
}

// Declaration returns the declaration the plan was resolved from.
func (t Target) Declaration() *analyze.Declaration {
	return t.Decl
}

// ConstructorPlan describes the `new` associated function.
type ConstructorPlan struct {
	Target
	// Vis is the visibility of `new`: the override if given, else the struct's.
	Vis analyze.Visibility
	// Fields in declaration order.
	Fields []ConstructorField
}

// ConstructorField is one struct field and how `new` initialises it.
type ConstructorField struct {
	Field analyze.Field
	// Default fields are not arguments; they get their type's default value.
	Default bool
}

// Arguments returns the fields that `new` takes as arguments.
func (p *ConstructorPlan) Arguments() []ConstructorField {
	return common.Filter(p.Fields, func(f ConstructorField) bool { return !f.Default })
}

// DisplayPlan describes a Display implementation.
type DisplayPlan struct {
	Target
	// Items holds the struct itself, or every variant of an enum in order.
	Items []DisplayItem
}

// DisplayItem is one struct or variant and its rendering strategy.
type DisplayItem struct {
	// Name is the struct or variant name.
	Name string
	// Variant is true for an enum variant.
	Variant  bool
	Shape    analyze.Shape
	Strategy Strategy
}

// ErrorPlan describes the marker Error implementation.
type ErrorPlan struct {
	Target
}

// FromPlan describes the From implementations.
type FromPlan struct {
	Target
	// Categories enabled at the container level (enums only).
	Categories options.CategoryEnum
	// Conversions lists every emitted conversion, in declaration order.
	Conversions []Conversion
}

// Conversion is one From implementation into the struct or one variant.
type Conversion struct {
	// Variant is empty for a struct.
	Variant string
	Shape   analyze.Shape
}

// Constructor returns the expression naming what is built: Self or Self::V.
func (c Conversion) Constructor() string {
	if c.Variant == "" {
		return "Self"
	}

	return "Self::" + c.Variant
}

// MethodPlan describes accessors, mutators and setters.
type MethodPlan struct {
	Target
	// Fields in declaration order; fields with nothing enabled are kept.
	Fields []MethodField
}

// ReturnShape is the accessor return policy.
type ReturnShape int

const (
	// ReturnAutomatic - copy for copy types, reference otherwise.
	ReturnAutomatic ReturnShape = iota
	// ReturnReference - always &T.
	ReturnReference
	// ReturnCopy - always T.
	ReturnCopy
)

// String returns a human-readable return shape name.
func (r ReturnShape) String() string {
	switch r {
	case ReturnAutomatic:
		return "automatic"
	case ReturnReference:
		return "reference"
	case ReturnCopy:
		return "copy"
	default:
		return common.UnknownStr
	}
}

// MethodField is one field and the methods generated for it.
type MethodField struct {
	Field    analyze.Field
	Accessor bool
	Mutator  bool
	Setter   bool
	// Returns is resolved: ReturnReference or ReturnCopy.
	Returns ReturnShape
}

// AccessorName is the field name, or value{N} for positional fields.
func (f MethodField) AccessorName() string {
	return f.Field.Binding()
}

// MutatorName is {field}_mut.
func (f MethodField) MutatorName() string {
	return common.TrimRaw(f.Field.Binding()) + "_mut"
}

// SetterName is set_{field}.
func (f MethodField) SetterName() string {
	return "set_" + common.TrimRaw(f.Field.Binding())
}

// ProjectionPlan describes an Inner or Record sibling type and the method
// that converts into it.
type ProjectionPlan struct {
	Target
	Kind DeriveEnum // DeriveInner or DeriveRecord
	// Name of the sibling type, e.g. PointRecord.
	Name string
	// Method consuming the original value, e.g. into_record.
	Method string
	// Attrs are the container attributes carried over to the sibling type.
	Attrs  []analyze.Attribute
	Fields []ProjectedField
}

// ProjectionMode is how one field reaches the sibling type.
type ProjectionMode int

const (
	// ProjectMove - the field is moved as is.
	ProjectMove ProjectionMode = iota
	// ProjectFlatten - the field is converted with its own projection method.
	ProjectFlatten
	// ProjectSkip - the field is dropped.
	ProjectSkip
)

// String returns a human-readable projection mode name.
func (m ProjectionMode) String() string {
	switch m {
	case ProjectMove:
		return "move"
	case ProjectFlatten:
		return "flatten"
	case ProjectSkip:
		return "skip"
	default:
		return common.UnknownStr
	}
}

// ProjectedField is one source field and its place in the sibling type.
type ProjectedField struct {
	Field analyze.Field
	Mode  ProjectionMode
	// Type is the sibling field type: the original, or for flatten the
	// original with the sibling suffix on its last path segment.
	Type string
	// Attrs are the field attributes carried over to the sibling type.
	Attrs []analyze.Attribute
}

// Kept returns the fields present in the sibling type, in order.
func (p *ProjectionPlan) Kept() []ProjectedField {
	return common.Filter(p.Fields, func(f ProjectedField) bool { return f.Mode != ProjectSkip })
}

// Derive implementations.

func (*ConstructorPlan) Derive() DeriveEnum { return DeriveConstructor }
func (*DisplayPlan) Derive() DeriveEnum     { return DeriveDisplay }
func (*ErrorPlan) Derive() DeriveEnum       { return DeriveError }
func (*FromPlan) Derive() DeriveEnum        { return DeriveFrom }
func (*MethodPlan) Derive() DeriveEnum      { return DeriveMethod }
func (p *ProjectionPlan) Derive() DeriveEnum {
	return p.Kind
}
