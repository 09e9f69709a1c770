package primitive_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"derive-generator/primitive"
)

func Example() {
	fmt.Println(primitive.FromIdent("u8"))
	fmt.Println(primitive.FromIdent("isize"))
	fmt.Println(primitive.FromIdent("str"))
	fmt.Println(primitive.FromIdent("String"))
	// Output:
	// KindU8
	// KindIsize
	// KindStr
	// KindEnum(0)
}

func TestKindEnum_IsCopy(t *testing.T) {
	for _, name := range []string{
		"i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64", "char", "bool",
	} {
		assert.True(t, primitive.FromIdent(name).IsCopy(), name)
	}

	for _, name := range []string{"str", "String", "Vec", ""} {
		assert.False(t, primitive.FromIdent(name).IsCopy(), name)
	}
}

func TestKindEnum_Categories(t *testing.T) {
	assert.Equal(t, primitive.CategorySigned, primitive.KindI128.Category())
	assert.Equal(t, primitive.CategoryUnsigned, primitive.KindUsize.Category())
	assert.Equal(t, primitive.CategoryFloat, primitive.KindF32.Category())
	assert.Equal(t, primitive.CategoryNone, primitive.FromIdent("String").Category())

	assert.True(t, primitive.CategoryAll.Has(primitive.CategoryCopy))
	assert.False(t, primitive.CategoryCopy.Has(primitive.CategoryText))
	assert.Equal(t, primitive.KindTotal-1, int(primitive.KindStr))
}
