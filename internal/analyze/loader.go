package analyze

import (
	"fmt"
	"sort"

	"derive-generator/internal/source"
	"derive-generator/internal/syntax"
	"derive-generator/internal/token"
)

// Item is a top-level item that carries at least one #[derive(..)].
// It is not read further until a generator asks for it.
type Item struct {
	Stream  syntax.Stream
	Keyword string // struct, enum, union, ...
	Name    string
	Derives []string
	Span    source.Span
}

// Read reads the item as a declaration.
func (it Item) Read() (*Declaration, error) {
	return ReadItem(it.Stream)
}

// ReadFile splits a source file into top-level items and returns the ones
// with derive attributes, in source order. Items inside modules and
// function bodies are not visited.
func ReadFile(file *source.File) ([]Item, error) {
	stream, err := syntax.Parse(file)
	if err != nil {
		return nil, err
	}

	var items []Item

	r := syntax.NewReader(stream, source.Span{Start: file.Len(), End: file.Len()})
	for !r.Done() {
		start := len(stream) - len(r.Remaining())

		attrs, err := readAttributes(r)
		if err != nil {
			return nil, err
		}

		if r.Done() {
			break
		}

		// Visibility and the item keyword; readVisibility never fails.
		_, _ = readVisibility(r)
		keyword, _ := r.Peek()
		name, _ := r.PeekAt(1)

		skipItem(r)

		decl := Declaration{Attrs: attrs}

		derives := decl.Derives()
		if len(derives) == 0 {
			continue
		}

		items = append(items, Item{
			Stream:  stream[start : len(stream)-len(r.Remaining())],
			Keyword: keyword.Token.Text,
			Name:    name.Token.Text,
			Derives: derives,
			Span:    keyword.Span(),
		})
	}

	return items, nil
}

// skipItem consumes one item: everything up to a top-level ';' or a brace
// group, plus a ';' directly after that group.
func skipItem(r *syntax.Reader) {
	for !r.Done() {
		t, _ := r.Next()

		if t.IsPunct(';') {
			return
		}

		if t.IsGroup(token.LBrace) {
			r.EatPunct(';')
			return
		}
	}
}

// ItemGraph indexes the declarations of several files by name.
type ItemGraph struct {
	Items map[string]*Declaration
	Files map[string][]string // file name -> declaration names, in order
}

// NewItemGraph creates an empty ItemGraph.
func NewItemGraph() *ItemGraph {
	return &ItemGraph{
		Items: make(map[string]*Declaration),
		Files: make(map[string][]string),
	}
}

// Add indexes a declaration found in file. A later declaration with the same
// name replaces the earlier one.
func (g *ItemGraph) Add(file string, decl *Declaration) {
	g.Items[decl.Name] = decl
	g.Files[file] = append(g.Files[file], decl.Name)
}

// HasDerive reports whether a declaration named name derives derive.
func (g *ItemGraph) HasDerive(name, derive string) bool {
	decl, ok := g.Items[name]
	if !ok {
		return false
	}

	for _, d := range decl.Derives() {
		if d == derive {
			return true
		}
	}

	return false
}

// Names returns every indexed declaration name, sorted.
func (g *ItemGraph) Names() []string {
	names := make([]string, 0, len(g.Items))
	for name := range g.Items {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Analyzer reads source files and builds an ItemGraph.
type Analyzer struct {
	graph *ItemGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{graph: NewItemGraph()}
}

// LoadFiles reads every file and indexes its derived structs and enums.
// Items that fail to read are skipped here; expansion reports them.
func (a *Analyzer) LoadFiles(files ...*source.File) (*ItemGraph, error) {
	for _, file := range files {
		items, err := ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file.Name, err)
		}

		for _, it := range items {
			decl, err := it.Read()
			if err != nil {
				continue
			}

			a.graph.Add(file.Name, decl)
		}
	}

	return a.graph, nil
}

// Graph returns the current item graph.
func (a *Analyzer) Graph() *ItemGraph {
	return a.graph
}
