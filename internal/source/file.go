package source

import (
	"fmt"
	"os"
	"sort"

	"fortio.org/safecast"
)

// File is a single source file held in memory.
type File struct {
	Name    string
	Content []byte

	// lineStarts holds the byte offset of every line start, computed lazily.
	lineStarts []uint32
}

// NewFile wraps content under the given display name.
func NewFile(name string, content []byte) *File {
	return &File{Name: name, Content: content}
}

// NewFileString is a convenience wrapper for in-memory snippets.
func NewFileString(name, content string) *File {
	return NewFile(name, []byte(content))
}

// ReadFile loads a file from disk.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
	}

	return NewFile(path, data), nil
}

// Len returns the content length as a span offset.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file %s is too large: %w", f.Name, err))
	}

	return n
}

// Text returns the source text covered by the span.
func (f *File) Text(sp Span) string {
	if sp.End > f.Len() || sp.Start > sp.End {
		return ""
	}

	return string(f.Content[sp.Start:sp.End])
}

// Position converts a byte offset to a 1-based line and column.
func (f *File) Position(off uint32) Position {
	if f.lineStarts == nil {
		f.lineStarts = append(f.lineStarts, 0)

		for i, b := range f.Content {
			if b == '\n' {
				f.lineStarts = append(f.lineStarts, uint32(i+1))
			}
		}
	}

	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > off
	})

	return Position{
		File:   f.Name,
		Line:   line,
		Column: int(off-f.lineStarts[line-1]) + 1,
	}
}

// Position is a human-readable location.
type Position struct {
	File   string
	Line   int
	Column int
}

// String formats the position as file:line:column.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}

	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}
