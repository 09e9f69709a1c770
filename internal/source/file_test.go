package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFile_Position(t *testing.T) {
	f := NewFileString("lib.rs", "struct A;\nenum B {\n    C,\n}\n")

	assert.Equal(t, Position{File: "lib.rs", Line: 1, Column: 1}, f.Position(0))
	assert.Equal(t, Position{File: "lib.rs", Line: 2, Column: 1}, f.Position(10))
	assert.Equal(t, Position{File: "lib.rs", Line: 3, Column: 5}, f.Position(23))
	assert.Equal(t, "lib.rs:3:5", f.Position(23).String())
}

func TestFile_Text(t *testing.T) {
	f := NewFileString("", "pub struct Point;")

	assert.Equal(t, "struct", f.Text(Span{Start: 4, End: 10}))
	assert.Empty(t, f.Text(Span{Start: 4, End: 100}))
}

func TestSpan_Cover(t *testing.T) {
	s := Span{Start: 4, End: 8}.Cover(Span{Start: 2, End: 6})

	assert.Equal(t, Span{Start: 2, End: 8}, s)
	assert.Equal(t, uint32(6), s.Len())
	assert.False(t, s.Empty())
}
