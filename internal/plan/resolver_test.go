package plan

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"derive-generator/internal/analyze"
	"derive-generator/internal/diagnostic"
	"derive-generator/options"
)

func declaration(t *testing.T, src string) *analyze.Declaration {
	t.Helper()

	decl, _, err := analyze.ReadItemString("test.rs", src)
	require.NoError(t, err)

	return decl
}

func resolve[P Plan](t *testing.T, d DeriveEnum, src string) P {
	t.Helper()

	p, err := Resolve(d, declaration(t, src))
	require.NoError(t, err)

	typed, ok := p.(P)
	require.True(t, ok, "unexpected plan type %T", p)

	return typed
}

func resolveErr(t *testing.T, d DeriveEnum, src string) error {
	t.Helper()

	_, err := Resolve(d, declaration(t, src))
	require.Error(t, err)

	return err
}

func TestToggle(t *testing.T) {
	assert.True(t, ToggleInherited.Resolve(true))
	assert.False(t, ToggleInherited.Resolve(false))
	assert.True(t, ToggleEnabled.Resolve(false))
	assert.False(t, ToggleSkipped.Resolve(true))

	assert.Equal(t, ToggleSkipped, ToggleEnabled.Merge(ToggleSkipped))
	assert.Equal(t, ToggleEnabled, ToggleSkipped.Merge(ToggleEnabled))
	assert.Equal(t, ToggleEnabled, ToggleEnabled.Merge(ToggleInherited))
	assert.Equal(t, "skipped", ToggleSkipped.String())
}

func TestParseDerive(t *testing.T) {
	for _, d := range AllDerives() {
		got, ok := ParseDerive(d.String())
		require.True(t, ok, d.String())
		assert.Equal(t, d, got)
	}

	_, ok := ParseDerive("Debug")
	assert.False(t, ok)

	assert.Equal(t, "", DeriveError.Helper())
	assert.Equal(t, "Record", DeriveRecord.Helper())
	assert.Equal(t, []string{"Constructor", "Display", "Error", "From", "Method", "Inner", "Record"}, Names())
}

func TestResolver_StructOnlyOnEnum(t *testing.T) {
	for _, d := range []DeriveEnum{DeriveConstructor, DeriveMethod, DeriveInner, DeriveRecord} {
		err := resolveErr(t, d, "enum E { A }")
		assert.ErrorIs(t, err, diagnostic.ErrUnsupportedItem, d.String())
		assert.Equal(t, "Unsupported item", err.Error())
	}
}

func TestResolver_Constructor(t *testing.T) {
	p := resolve[*ConstructorPlan](t, DeriveConstructor, `
		#[Constructor(visibility = pub(crate))]
		pub struct Point { x: i32, #[Constructor(default)] label: String, y: i32 }`)

	assert.Equal(t, "pub(crate)", p.Vis.String())
	require.Len(t, p.Fields, 3)
	assert.True(t, p.Fields[1].Default)

	args := p.Arguments()
	require.Len(t, args, 2)
	assert.Equal(t, "x", args[0].Field.Name)
	assert.Equal(t, "y", args[1].Field.Name)
}

func TestResolver_ConstructorInheritsVisibility(t *testing.T) {
	p := resolve[*ConstructorPlan](t, DeriveConstructor, "pub struct Pair(u8, u8);")
	assert.Equal(t, "pub", p.Vis.String())
	assert.Len(t, p.Arguments(), 2)
}

func TestResolver_ConstructorErrors(t *testing.T) {
	cases := []struct {
		src  string
		msg  string
		kind error
	}{
		{"#[Constructor(foobar)] struct A;", "Unknown attribute", diagnostic.ErrUnknownAttribute},
		{"#[Constructor(visibility)] struct A;", "expected `=`", diagnostic.ErrMalformedAttribute},
		{"#[Constructor(visibility = foobar)] struct A;", "Unknown visibility", diagnostic.ErrMalformedAttribute},
		{"struct A { #[Constructor(skip)] a: u8 }", "Unknown attribute", diagnostic.ErrUnknownAttribute},
	}

	for _, tc := range cases {
		err := resolveErr(t, DeriveConstructor, tc.src)
		assert.ErrorIs(t, err, tc.kind, tc.src)
		assert.Equal(t, tc.msg, err.Error(), tc.src)
	}
}

func TestResolver_DisplayStrategies(t *testing.T) {
	p := resolve[*DisplayPlan](t, DeriveDisplay, `
		#[Display(describe)]
		enum Event {
			#[Display("moved to {x}")]
			Moved { x: i32 },
			#[Display(|| "closed")]
			Closed,
			#[Display({ "block" })]
			Block,
			#[Display(format_code(42))]
			Code(u16),
			Other(u8, u8),
		}`)

	require.Len(t, p.Items, 5, spew.Sdump(p.Items))

	kinds := make([]StrategyKind, 0, len(p.Items))
	for _, it := range p.Items {
		assert.True(t, it.Variant)
		kinds = append(kinds, it.Strategy.Kind)
	}

	assert.Equal(t, []StrategyKind{
		StrategyMessage, StrategyClosure, StrategyBlock, StrategyCall, StrategyPath,
	}, kinds)
	assert.Equal(t, "describe", p.Items[4].Strategy.Expr.String())
}

func TestResolver_DisplayDefaultDump(t *testing.T) {
	p := resolve[*DisplayPlan](t, DeriveDisplay, "struct Point { x: i32, y: i32 }")
	require.Len(t, p.Items, 1)
	assert.False(t, p.Items[0].Variant)
	assert.True(t, p.Items[0].Strategy.IsDump())
	assert.Equal(t, "Dump", p.Items[0].Strategy.Kind.String())
}

func TestResolver_DisplayUnsupported(t *testing.T) {
	for _, src := range []string{
		"#[Display] struct A;",
		"#[Display()] struct A;",
		`#[Display = "a"] struct A;`,
		"#[Display(return)] struct A;",
		"#[Display(a + b)] struct A;",
		`#[Display(format!("a"))] struct A;`,
		`#[Display("a")] #[Display("b")] struct A;`,
		`enum E { #[Display(1)] A }`,
	} {
		err := resolveErr(t, DeriveDisplay, src)
		assert.ErrorIs(t, err, diagnostic.ErrUnsupportedStrategy, src)
		assert.Equal(t, "Unsupported strategy", err.Error(), src)
	}
}

func TestClassifyStrategy(t *testing.T) {
	cases := map[string]StrategyKind{
		`"text {x}"`:                StrategyMessage,
		`r#"raw"#`:                  StrategyMessage,
		`|| 1`:                      StrategyClosure,
		`move || self.x`:            StrategyClosure,
		`|x: u8| x`:                 StrategyClosure,
		`{ let a = 1; a }`:          StrategyBlock,
		`f()`:                       StrategyCall,
		`a::b::<T>(x, y)`:           StrategyCall,
		`make()(1)`:                 StrategyCall,
		`(f)(1)`:                    StrategyCall,
		`fmt_point`:                 StrategyPath,
		`::core::convert::identity`: StrategyPath,
		`Self::describe`:            StrategyPath,
		`<T as Describe>::text`:     StrategyPath,
		`f::<u8>`:                   StrategyPath,
	}

	for src, want := range cases {
		a := attribute(t, "#[Display("+src+")]")

		got, err := ParseStrategy(a)
		require.NoError(t, err, src)
		assert.Equal(t, want, got.Kind, src)
	}
}

func attribute(t *testing.T, src string) analyze.Attribute {
	t.Helper()

	decl := declaration(t, src+" struct A;")
	require.Len(t, decl.Attrs, 1)

	return decl.Attrs[0]
}

func TestResolver_FromEnumCategories(t *testing.T) {
	p := resolve[*FromPlan](t, DeriveFrom, `
		#[From(unnamed)]
		enum Error {
			Io(std::io::Error, String),
			Parse(u32),
			#[From]
			Empty,
			#[From(skip)]
			Skipped(u8),
			Named { code: u8 },
		}`)

	assert.Equal(t, options.CategoryUnnamed, p.Categories)

	names := make([]string, 0, len(p.Conversions))
	for _, c := range p.Conversions {
		names = append(names, c.Variant)
	}

	assert.Equal(t, []string{"Io", "Parse", "Empty"}, names)
	assert.Equal(t, "Self::Io", p.Conversions[0].Constructor())
}

func TestResolver_FromAllWithSkip(t *testing.T) {
	p := resolve[*FromPlan](t, DeriveFrom, `
		#[From(all)]
		enum E {
			A(u8),
			#[From(skip)]
			B,
			C { c: u8 },
			#[From(skip, enable)]
			D,
		}`)

	require.Len(t, p.Conversions, 3, spew.Sdump(p.Conversions))
	assert.Equal(t, "A", p.Conversions[0].Variant)
	assert.Equal(t, "C", p.Conversions[1].Variant)
	assert.Equal(t, "D", p.Conversions[2].Variant)
}

func TestResolver_FromNothingEnabled(t *testing.T) {
	p := resolve[*FromPlan](t, DeriveFrom, "enum E { A(u8), B }")
	assert.Empty(t, p.Conversions)
	assert.Equal(t, options.CategoryNone, p.Categories)
}

func TestResolver_FromStruct(t *testing.T) {
	p := resolve[*FromPlan](t, DeriveFrom, "struct Meters(f64);")
	require.Len(t, p.Conversions, 1)
	assert.Equal(t, "Self", p.Conversions[0].Constructor())

	err := resolveErr(t, DeriveFrom, "#[From(all)] struct Meters(f64);")
	assert.ErrorIs(t, err, diagnostic.ErrUnknownAttribute)

	err = resolveErr(t, DeriveFrom, "#[From(everything)] enum E { A }")
	assert.Equal(t, "Unknown attribute", err.Error())
}

func TestResolver_MethodPrecedence(t *testing.T) {
	p := resolve[*MethodPlan](t, DeriveMethod, `
		#[Method(accessors, setters)]
		struct Person {
			age: u8,
			#[Method(skip_accessor, mutator)]
			name: String,
			#[Method(skip_all)]
			secret: String,
			#[Method(accessor_returns_copy)]
			tags: Vec<String>,
		}`)

	require.Len(t, p.Fields, 4)

	age, name, secret, tags := p.Fields[0], p.Fields[1], p.Fields[2], p.Fields[3]

	assert.True(t, age.Accessor)
	assert.False(t, age.Mutator)
	assert.True(t, age.Setter)
	assert.Equal(t, ReturnCopy, age.Returns)

	assert.False(t, name.Accessor)
	assert.True(t, name.Mutator)
	assert.True(t, name.Setter)
	assert.Equal(t, ReturnReference, name.Returns)

	assert.False(t, secret.Accessor || secret.Mutator || secret.Setter)

	assert.True(t, tags.Accessor)
	assert.Equal(t, ReturnCopy, tags.Returns)
}

func TestResolver_MethodContainerReturnShape(t *testing.T) {
	p := resolve[*MethodPlan](t, DeriveMethod, `
		#[Method(all, accessors_return_reference)]
		struct Pair(u8, #[Method(accessor_returns_automatic)] (bool,));`)

	require.Len(t, p.Fields, 2)
	assert.Equal(t, ReturnReference, p.Fields[0].Returns)
	assert.Equal(t, ReturnCopy, p.Fields[1].Returns)

	assert.Equal(t, "value1", p.Fields[1].AccessorName())
	assert.Equal(t, "value1_mut", p.Fields[1].MutatorName())
	assert.Equal(t, "set_value1", p.Fields[1].SetterName())
}

func TestResolver_MethodNothingEnabled(t *testing.T) {
	p := resolve[*MethodPlan](t, DeriveMethod, "struct A { #[Method(accessor)] a: u8, b: u8 }")
	assert.True(t, p.Fields[0].Accessor)
	assert.False(t, p.Fields[1].Accessor)

	err := resolveErr(t, DeriveMethod, "#[Method(accessor)] struct A { a: u8 }")
	assert.ErrorIs(t, err, diagnostic.ErrUnknownAttribute)
}

func TestResolver_Projection(t *testing.T) {
	p := resolve[*ProjectionPlan](t, DeriveRecord, `
		/// Parent docs.
		#[allow(dead_code)]
		#[derive(Record, Debug)]
		pub struct Parent<T> {
			#[Record(flatten)]
			child: crate::model::Child<T>,
			#[Record(skip)]
			#[Method(accessor)]
			cache: Vec<u8>,
			#[Record(skip, flatten)]
			other: Other,
			name: String,
		}`)

	assert.Equal(t, "ParentRecord", p.Name)
	assert.Equal(t, "into_record", p.Method)
	require.Len(t, p.Attrs, 2)
	assert.Equal(t, "doc", p.Attrs[0].Path)
	assert.Equal(t, "allow", p.Attrs[1].Path)

	require.Len(t, p.Fields, 4)
	assert.Equal(t, ProjectFlatten, p.Fields[0].Mode)
	assert.Equal(t, "crate::model::ChildRecord<T>", p.Fields[0].Type)
	assert.Equal(t, ProjectSkip, p.Fields[1].Mode)
	assert.Empty(t, p.Fields[1].Attrs)
	assert.Equal(t, ProjectFlatten, p.Fields[2].Mode)
	assert.Equal(t, "OtherRecord", p.Fields[2].Type)
	assert.Equal(t, ProjectMove, p.Fields[3].Mode)

	assert.Len(t, p.Kept(), 3)
}

func TestResolver_InnerNames(t *testing.T) {
	p := resolve[*ProjectionPlan](t, DeriveInner, "struct Wrapper(#[Inner(flatten)] Child, u8);")
	assert.Equal(t, "WrapperInner", p.Name)
	assert.Equal(t, "into_inner", p.Method)
	assert.Equal(t, DeriveInner, p.Derive())
	assert.Equal(t, "ChildInner", p.Fields[0].Type)
}

func TestResolver_ProjectionErrors(t *testing.T) {
	err := resolveErr(t, DeriveRecord, "struct A { #[Record(flatten)] unit: () }")
	assert.ErrorIs(t, err, diagnostic.ErrInvalidFlatten)
	assert.Equal(t, "Cannot flatten ()", err.Error())

	err = resolveErr(t, DeriveInner, "struct A(#[Inner(flatten)] &'static str);")
	assert.Equal(t, "Cannot flatten &'static str", err.Error())

	err = resolveErr(t, DeriveRecord, "struct A { #[Record(rename)] a: u8 }")
	assert.ErrorIs(t, err, diagnostic.ErrUnknownAttribute)
}

func TestResolver_Error(t *testing.T) {
	p := resolve[*ErrorPlan](t, DeriveError, "enum E { A }")
	assert.Equal(t, "E", p.Declaration().Name)
	assert.Equal(t, DeriveError, p.Derive())
}
