package lexer

import (
	"derive-generator/internal/source"
)

// Cursor is a byte position inside a file.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32
}

// NewCursor creates a cursor at the start of f.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f, Off: 0, Limit: f.Len()}
}

// EOF reports whether the cursor reached the end of input.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the current byte or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}

	return c.File.Content[c.Off]
}

// PeekAt returns the byte n positions ahead or 0 past the end.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.Limit {
		return 0
	}

	return c.File.Content[c.Off+n]
}

// Bump advances one byte and returns it.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}

	b := c.File.Content[c.Off]
	c.Off++

	return b
}

// Eat advances past b if it is the current byte.
func (c *Cursor) Eat(b byte) bool {
	if c.Peek() != b || c.EOF() {
		return false
	}

	c.Off++

	return true
}

// Mark returns the current offset.
func (c *Cursor) Mark() uint32 {
	return c.Off
}

// SpanFrom returns the span from start to the current offset.
func (c *Cursor) SpanFrom(start uint32) source.Span {
	return source.Span{Start: start, End: c.Off}
}
