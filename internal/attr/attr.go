// Package attr parses the helper attribute mini-language.
//
// A helper attribute is #[Name], #[Name()] or #[Name(key, key = value, ..)].
// Every generator declares, per position, a Table of the keys it accepts and
// the category of value each key takes; anything else is rejected.
package attr

import (
	"derive-generator/internal/analyze"
	"derive-generator/internal/diagnostic"
	"derive-generator/internal/match"
	"derive-generator/internal/source"
	"derive-generator/internal/syntax"
)

// ValueKind is the category of value a key takes.
type ValueKind int

const (
	// ValueNone is a bare flag: key.
	ValueNone ValueKind = iota
	// ValueVisibility is key = pub(...).
	ValueVisibility
)

// Key is one accepted attribute key.
type Key struct {
	Name  string
	Value ValueKind
}

// Table lists the keys accepted at one position.
type Table []Key

// Flags builds a table of bare flag keys.
func Flags(names ...string) Table {
	t := make(Table, 0, len(names))
	for _, name := range names {
		t = append(t, Key{Name: name})
	}

	return t
}

func (t Table) lookup(name string) (Key, bool) {
	for _, k := range t {
		if k.Name == name {
			return k, true
		}
	}

	return Key{}, false
}

// Names returns the accepted key names in table order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for _, k := range t {
		names = append(names, k.Name)
	}

	return names
}

// Arg is one parsed key.
type Arg struct {
	Key   string
	Vis   analyze.Visibility // set for ValueVisibility keys
	Value syntax.Stream
	Span  source.Span
}

// Set is every key found in the helper attributes of one item, in order.
type Set struct {
	// Count is the number of helper attributes found, including bare ones.
	Count int
	Args  []Arg
	Span  source.Span // location of the first helper attribute
}

// Has reports whether key was given.
func (s Set) Has(key string) bool {
	for _, a := range s.Args {
		if a.Key == key {
			return true
		}
	}

	return false
}

// Last returns the last occurrence of key.
func (s Set) Last(key string) (Arg, bool) {
	for i := len(s.Args) - 1; i >= 0; i-- {
		if s.Args[i].Key == key {
			return s.Args[i], true
		}
	}

	return Arg{}, false
}

// Collect parses every attribute named path in attrs against table. Repeated
// attributes are folded into one Set, keys kept in source order.
func Collect(attrs []analyze.Attribute, path string, table Table) (Set, error) {
	var set Set

	for _, a := range Find(attrs, path) {
		if set.Count == 0 {
			set.Span = a.Span
		}

		set.Count++

		if len(a.Value) > 0 {
			return set, diagnostic.Errorf(diagnostic.KindMalformedAttribute, a.Value.Span(), "expected `(`")
		}

		args, err := Parse(a.Args, table, a.Span)
		if err != nil {
			return set, err
		}

		set.Args = append(set.Args, args...)
	}

	return set, nil
}

// Find returns the attributes named path, in order.
func Find(attrs []analyze.Attribute, path string) []analyze.Attribute {
	var found []analyze.Attribute

	for _, a := range attrs {
		if a.Path == path {
			found = append(found, a)
		}
	}

	return found
}

// Parse reads a comma-separated key list. at locates errors in an empty or
// truncated list.
func Parse(s syntax.Stream, table Table, at source.Span) ([]Arg, error) {
	var args []Arg

	r := syntax.NewReader(s, at)

	for !r.Done() {
		arg, err := parseArg(r, table)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		if r.Done() {
			break
		}

		if !r.EatPunct(',') {
			return nil, malformed(r.Span(), "expected `,`")
		}
	}

	return args, nil
}

func parseArg(r *syntax.Reader, table Table) (Arg, error) {
	t, _ := r.Peek()
	span := t.Span()

	name, err := r.ExpectIdent("attribute key")
	if err != nil {
		return Arg{}, diagnostic.Errorf(diagnostic.KindUnknownAttribute, span, "Unknown attribute")
	}

	key, ok := table.lookup(name.Text)
	if !ok {
		return Arg{}, diagnostic.Errorf(diagnostic.KindUnknownAttribute, span, "Unknown attribute").
			WithSuggestions(match.Suggest(name.Text, table.Names())...)
	}

	arg := Arg{Key: key.Name, Span: span}

	switch key.Value {
	case ValueNone:
		return arg, nil
	case ValueVisibility:
		if !r.EatPunct('=') {
			return arg, malformed(r.Span(), "expected `=`")
		}

		value := r.CollectUntil(func(t syntax.Tree) bool { return t.IsPunct(',') })

		vis, rest, err := analyze.ParseVisibility(value)
		if err != nil {
			return arg, err
		}

		if len(rest) > 0 {
			return arg, malformed(rest.Span(), "expected `,`")
		}

		arg.Vis = vis
		arg.Value = value
	}

	return arg, nil
}

func malformed(span source.Span, msg string) error {
	return diagnostic.Errorf(diagnostic.KindMalformedAttribute, span, "%s", msg)
}
