package common

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlices(t *testing.T) {
	s := []int{1, 2, 3}

	assert.False(t, IsEmpty(s))
	assert.True(t, IsMultiple(s))
	assert.True(t, IsSingle(s[:1]))

	first, ok := First(s)
	assert.True(t, ok)
	assert.Equal(t, 1, first)

	last, ok := Last(s)
	assert.True(t, ok)
	assert.Equal(t, 3, last)

	_, ok = Last([]int(nil))
	assert.False(t, ok)

	assert.Equal(t, []string{"a1", "a2", "a3"}, Map(s, func(n int) string { return "a" + strconv.Itoa(n) }))
	assert.Equal(t, []int{1, 3}, Filter(s, func(n int) bool { return n != 2 }))
}

func TestIdents(t *testing.T) {
	assert.Equal(t, "type", TrimRaw("r#type"))
	assert.Equal(t, "name", TrimRaw("name"))
	assert.Equal(t, "typeRecord", WithSuffix("r#type", "Record"))
	assert.Equal(t, "value0", PositionalName(0))
	assert.Equal(t, "value12", PositionalName(12))
}
