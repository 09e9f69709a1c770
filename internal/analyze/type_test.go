package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"derive-generator/internal/syntax"
)

func parseType(t *testing.T, src string) Type {
	t.Helper()

	s, _, err := syntax.ParseString("", src)
	require.NoError(t, err)

	typ, err := ParseType(s)
	require.NoError(t, err)

	return typ
}

func TestParseType_Kinds(t *testing.T) {
	cases := map[string]TypeKind{
		"u8":                       TypeKindPath,
		"::std::string::String":    TypeKindPath,
		"Vec<Option<T>>":           TypeKindPath,
		"Vec::<u8>":                TypeKindPath,
		"<T as Iterator>::Item":    TypeKindPath,
		"Box<dyn Fn(u8) -> u8>":    TypeKindPath,
		"()":                       TypeKindTuple,
		"(u8,)":                    TypeKindTuple,
		"(u8, String)":             TypeKindTuple,
		"(u8)":                     TypeKindOther,
		"&'a str":                  TypeKindReference,
		"&mut Vec<u8>":             TypeKindReference,
		"[u8; 4]":                  TypeKindOther,
		"*const u8":                TypeKindOther,
		"dyn Display":              TypeKindOther,
		"impl Iterator<Item = u8>": TypeKindOther,
		"fn(u8) -> u8":             TypeKindOther,
		"Send + Sync":              TypeKindOther,
	}

	for src, want := range cases {
		assert.Equal(t, want, parseType(t, src).Kind, src)
	}
}

func TestType_IsCopy(t *testing.T) {
	copyable := []string{"u8", "i128", "usize", "f64", "char", "bool", "()", "(u8,)", "((),)", "((bool,),)"}
	for _, src := range copyable {
		assert.True(t, parseType(t, src).IsCopy(), src)
	}

	notCopyable := []string{"String", "str", "&u8", "(u8, u8)", "(u8)", "std::primitive::u8", "Vec<u8>", "[u8; 2]"}
	for _, src := range notCopyable {
		assert.False(t, parseType(t, src).IsCopy(), src)
	}
}

func TestType_WithSegmentSuffix(t *testing.T) {
	got, ok := parseType(t, "crate::model::Child<'a, T>").WithSegmentSuffix("Record")
	require.True(t, ok)
	assert.Equal(t, "crate::model::ChildRecord<'a, T>", got)

	got, ok = parseType(t, "Child").WithSegmentSuffix("Inner")
	require.True(t, ok)
	assert.Equal(t, "ChildInner", got)

	_, ok = parseType(t, "()").WithSegmentSuffix("Record")
	assert.False(t, ok)
}

func TestParseType_Empty(t *testing.T) {
	_, err := ParseType(nil)
	require.Error(t, err)
	assert.Equal(t, "expected type", err.Error())
}
