package source

import "fmt"

// Span is a half-open byte range [Start, End) inside a File.
type Span struct {
	Start uint32
	End   uint32
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the number of covered bytes.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}

	if other.End > s.End {
		s.End = other.End
	}

	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}
