package gen

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"derive-generator/internal/analyze"
	"derive-generator/internal/plan"
)

func generate(t *testing.T, d plan.DeriveEnum, src string) string {
	t.Helper()

	decl, _, err := analyze.ReadItemString("test.rs", src)
	require.NoError(t, err)

	p, err := plan.Resolve(d, decl)
	require.NoError(t, err)

	out, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.NoError(t, err)

	return out
}

func TestGenerate_ConstructorNamed(t *testing.T) {
	out := generate(t, plan.DeriveConstructor, `
pub struct Point {
    x: i32,
    #[Constructor(default)]
    y: Vec<u8>,
}`)

	assert.Equal(t, `impl Point {
    pub fn new(x: i32) -> Self {
        Self {
            x,
            y: <Vec<u8> as ::core::default::Default>::default(),
        }
    }
}
`, out)
}

func TestGenerate_ConstructorPositionalAndUnit(t *testing.T) {
	out := generate(t, plan.DeriveConstructor, `struct Pair(u8, #[Constructor(default)] String);`)
	assert.Equal(t, `impl Pair {
    fn new(value0: u8) -> Self {
        Self(value0, <String as ::core::default::Default>::default())
    }
}
`, out)

	out = generate(t, plan.DeriveConstructor, `#[Constructor(visibility = pub(crate))] struct Unit;`)
	assert.Equal(t, `impl Unit {
    pub(crate) fn new() -> Self {
        Self
    }
}
`, out)
}

func TestGenerate_ConstructorGenerics(t *testing.T) {
	out := generate(t, plan.DeriveConstructor, `pub struct Wrapper<T: Clone> where T: Default { inner: T }`)

	assert.Equal(t, `impl<T: Clone> Wrapper<T> where T: Default {
    pub fn new(inner: T) -> Self {
        Self {
            inner,
        }
    }
}
`, out)
}

func TestGenerate_DisplayEnum(t *testing.T) {
	out := generate(t, plan.DeriveDisplay, `
enum Event {
    #[Display("started")]
    Start,
    Tick(u8),
    #[Display(describe)]
    Move { x: i32 },
}`)

	assert.Equal(t, `impl ::core::fmt::Display for Event {
    #[allow(unused_variables)]
    fn fmt(&self, formatter: &mut ::core::fmt::Formatter<'_>) -> ::core::fmt::Result {
        match self {
            Self::Start => write!(formatter, "started"),
            Self::Tick(value) => formatter.debug_tuple("Tick").field(value).finish(),
            Self::Move { x } => write!(formatter, "{}", describe(x)),
        }
    }
}
`, out)
}

func TestGenerate_DisplayEnumWithShiftDiscriminants(t *testing.T) {
	out := generate(t, plan.DeriveDisplay, `enum Flags { A = 1 << 0, B = 1 << 1, C }`)

	for _, arm := range []string{
		`Self::A => formatter.debug_struct("A").finish(),`,
		`Self::B => formatter.debug_struct("B").finish(),`,
		`Self::C => formatter.debug_struct("C").finish(),`,
	} {
		assert.Contains(t, out, arm)
	}
}

func TestGenerate_DisplayStruct(t *testing.T) {
	out := generate(t, plan.DeriveDisplay, `struct P { x: i32, r#type: u8 }`)
	assert.Contains(t, out,
		`Self { x, r#type } => formatter.debug_struct("P").field("x", x).field("type", r#type).finish(),`)

	out = generate(t, plan.DeriveDisplay, `enum Keyword { r#loop, r#match(u8) }`)
	assert.Contains(t, out, `Self::r#loop => formatter.debug_struct("loop").finish(),`)
	assert.Contains(t, out, `Self::r#match(value) => formatter.debug_tuple("match").field(value).finish(),`)

	out = generate(t, plan.DeriveDisplay, `#[Display("unit")] struct U;`)
	assert.Contains(t, out, "\n        write!(formatter, \"unit\")\n")
	assert.NotContains(t, out, "match")

	out = generate(t, plan.DeriveDisplay, `enum Never {}`)
	assert.Contains(t, out, "\n        match *self {}\n")
}

func TestGenerate_Error(t *testing.T) {
	out := generate(t, plan.DeriveError, `enum Failure<T> { A(T) }`)
	assert.Equal(t, "impl<T> ::core::error::Error for Failure<T> {}\n", out)
}

func TestGenerate_FromEnum(t *testing.T) {
	out := generate(t, plan.DeriveFrom, `
#[From(unnamed)]
enum Value {
    Byte(u8),
    Point { x: i32, y: i32 },
    #[From]
    Empty,
    Pair(u8, u16),
}`)

	assert.Equal(t, `impl ::std::convert::From<u8> for Value {
    fn from(value: u8) -> Self {
        Self::Byte(value)
    }
}

impl ::std::convert::From<()> for Value {
    fn from(_: ()) -> Self {
        Self::Empty
    }
}

impl ::std::convert::From<(u8, u16)> for Value {
    fn from(value: (u8, u16)) -> Self {
        Self::Pair(value.0, value.1)
    }
}
`, out)
}

func TestGenerate_FromStruct(t *testing.T) {
	out := generate(t, plan.DeriveFrom, `struct Id { raw: u64 }`)

	assert.Equal(t, `impl ::std::convert::From<u64> for Id {
    fn from(value: u64) -> Self {
        Self {
            raw: value,
        }
    }
}
`, out)

	out = generate(t, plan.DeriveFrom, `enum Nothing { A }`)
	assert.Empty(t, out)
}

func TestGenerate_Method(t *testing.T) {
	out := generate(t, plan.DeriveMethod, `
#[Method(accessors)]
pub struct Session {
    id: u32,
    #[Method(setter)]
    name: String,
}`)

	assert.Equal(t, `impl Session {
    pub fn id(&self) -> u32 {
        self.id
    }

    pub fn name(&self) -> &String {
        &self.name
    }

    pub fn set_name(&mut self, name: String) {
        self.name = name;
    }
}
`, out)
}

func TestGenerate_MethodEmptyAndMutator(t *testing.T) {
	assert.Equal(t, "impl S {}\n", generate(t, plan.DeriveMethod, `struct S { x: u8 }`))

	out := generate(t, plan.DeriveMethod, `#[Method(mutators)] struct T(u8);`)
	assert.Equal(t, `impl T {
    fn value0_mut(&mut self) -> &mut u8 {
        &mut self.0
    }
}
`, out)
}

func TestGenerate_Record(t *testing.T) {
	out := generate(t, plan.DeriveRecord, `
#[repr(C)]
#[derive(Record, Debug)]
pub struct User<T> {
    id: u64,
    #[Record(skip)]
    secret: String,
    #[Record(flatten)]
    profile: Profile<T>,
}`)

	assert.Equal(t, `#[repr(C)]
pub struct UserRecord<T> {
    pub id: u64,
    pub profile: ProfileRecord<T>,
}

impl<T> User<T> {
    pub fn into_record(self) -> UserRecord<T> {
        UserRecord {
            id: self.id,
            profile: self.profile.into_record(),
        }
    }
}
`, out)
}

func TestGenerate_RecordKeepsDocComments(t *testing.T) {
	out := generate(t, plan.DeriveRecord, `
/// Doc
struct S {
    /// field doc
    a: u8,
    /** block */
    b: char,
}`)

	assert.Equal(t, `#[doc = " Doc"]
struct SRecord {
    #[doc = " field doc"]
    pub a: u8,
    #[doc = " block "]
    pub b: char,
}

impl S {
    fn into_record(self) -> SRecord {
        SRecord {
            a: self.a,
            b: self.b,
        }
    }
}
`, out)
}

func TestGenerate_InnerPositional(t *testing.T) {
	out := generate(t, plan.DeriveInner, `struct Meters(f64);`)

	assert.Equal(t, `struct MetersInner(pub f64);

impl Meters {
    fn into_inner(self) -> MetersInner {
        MetersInner(self.0)
    }
}
`, out)
}

func TestGenerate_Deterministic(t *testing.T) {
	src := `#[Method(all)] pub struct Config<'a, T: Copy> { name: &'a str, value: T, flag: bool }`

	first := generate(t, plan.DeriveMethod, src)
	for range 5 {
		assert.Equal(t, first, generate(t, plan.DeriveMethod, src))
	}
}

func TestGenerator_File(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	f, err := g.File("model_derive.rs", []Expansion{
		{Item: "Failure", Derive: plan.DeriveError, Code: "impl ::core::error::Error for Failure {}\n"},
	})
	require.NoError(t, err)

	assert.Equal(t, "model_derive.rs", f.Filename)
	assert.Equal(t, DefaultHeader+`

// Error for Failure
impl ::core::error::Error for Failure {}
`, string(f.Content))
}

func TestGenerator_FileRustfmtFailureKeepsSidecar(t *testing.T) {
	dir := t.TempDir()

	g := NewGenerator(GeneratorConfig{
		Header:    DefaultHeader,
		Rustfmt:   filepath.Join(dir, "missing-rustfmt"),
		OutputDir: dir,
	})

	f, err := g.File("model_derive.rs", []Expansion{{Item: "A", Derive: plan.DeriveError, Code: "impl X for A {}\n"}})
	require.NoError(t, err)

	sidecar, err := os.ReadFile(filepath.Join(dir, "model_derive.unformatted.rs"))
	require.NoError(t, err)
	assert.Equal(t, f.Content, sidecar)
}

func TestGenerator_FileRustfmt(t *testing.T) {
	rustfmt, err := exec.LookPath("rustfmt")
	if err != nil {
		t.Skip("rustfmt not installed")
	}

	g := NewGenerator(GeneratorConfig{Header: DefaultHeader, Rustfmt: rustfmt})

	f, err := g.File("a.rs", []Expansion{{Item: "A", Derive: plan.DeriveError, Code: "impl   X for A {}\n"}})
	require.NoError(t, err)
	assert.Contains(t, string(f.Content), "impl X for A {}")
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")

	files := []GeneratedFile{
		{Filename: filepath.Join("src", "a_derive.rs"), Content: []byte("a")},
		{Filename: "b_derive.rs", Content: []byte("b")},
	}

	require.NoError(t, WriteFiles(files, out))

	a, err := os.ReadFile(filepath.Join(out, "a_derive.rs"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(a))

	inPlace := filepath.Join(dir, "c_derive.rs")
	require.NoError(t, WriteFiles([]GeneratedFile{{Filename: inPlace, Content: []byte("c")}}, ""))

	c, err := os.ReadFile(inPlace)
	require.NoError(t, err)
	assert.Equal(t, "c", string(c))
}
