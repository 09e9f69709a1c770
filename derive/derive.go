// Package derive is the entry point of the generators: it reads an annotated
// Rust item, resolves the plan of a derive and renders the generated code.
//
// Each call is independent and deterministic. Failures are fatal for the
// item and carry the exact diagnostic message, e.g. "Unsupported item".
package derive

import (
	"errors"
	"fmt"
	"slices"

	"derive-generator/internal/analyze"
	"derive-generator/internal/diagnostic"
	"derive-generator/internal/gen"
	"derive-generator/internal/plan"
	"derive-generator/internal/source"
)

// Config selects what an Expander runs and how it renders.
type Config struct {
	// Derives is an allow-list of derive names; empty allows all.
	Derives []string
	// Generator configures rendering.
	Generator gen.GeneratorConfig
}

// DefaultConfig returns the default expander configuration.
func DefaultConfig() Config {
	return Config{Generator: gen.DefaultGeneratorConfig()}
}

// Expander runs derives over declarations.
type Expander struct {
	config    Config
	generator *gen.Generator
}

// NewExpander creates an Expander.
func NewExpander(config Config) *Expander {
	return &Expander{config: config, generator: gen.NewGenerator(config.Generator)}
}

var std = NewExpander(DefaultConfig())

// Expand runs the derive called name over the single item in src.
func Expand(name, src string) (string, error) {
	return std.Expand(name, src)
}

// MustExpand is like Expand but panics with the diagnostic on failure, the
// way a macro aborts compilation.
func MustExpand(name, src string) string {
	out, err := Expand(name, src)
	if err != nil {
		panic(err)
	}

	return out
}

// Expand runs the derive called name over the single item in src.
func (e *Expander) Expand(name, src string) (string, error) {
	d, ok := plan.ParseDerive(name)
	if !ok {
		return "", fmt.Errorf("unknown derive %q", name)
	}

	decl, _, err := analyze.ReadItemString(name, src)
	if err != nil {
		return "", err
	}

	return e.ExpandDecl(d, decl)
}

// ExpandDecl runs derive d over an already read declaration.
func (e *Expander) ExpandDecl(d plan.DeriveEnum, decl *analyze.Declaration) (string, error) {
	p, err := plan.Resolve(d, decl)
	if err != nil {
		return "", err
	}

	return e.generator.Generate(p)
}

// ExpandFile runs, for every annotated item of file, each derive it lists
// that the expander knows and allows, in listed order. Other derives (Debug,
// Clone, ..) are left to the compiler. Items that fail are reported in the
// returned error, one *ItemError each; the others are still generated. The
// file is nil when nothing was generated.
func (e *Expander) ExpandFile(file *source.File, filename string) (*gen.GeneratedFile, error) {
	items, err := analyze.ReadFile(file)
	if err != nil {
		return nil, &ItemError{File: file, Err: err}
	}

	var (
		expansions []gen.Expansion
		errs       []error
	)

	for _, it := range items {
		derives := e.derives(it.Derives)
		if len(derives) == 0 {
			continue
		}

		decl, err := it.Read()
		if err != nil {
			errs = append(errs, &ItemError{File: file, Item: it.Name, Derive: derives[0], Err: err})
			continue
		}

		for _, d := range derives {
			code, err := e.ExpandDecl(d, decl)
			if err != nil {
				errs = append(errs, &ItemError{File: file, Item: it.Name, Derive: d, Err: err})
				break
			}

			expansions = append(expansions, gen.Expansion{Item: it.Name, Derive: d, Code: code})
		}
	}

	if len(expansions) == 0 {
		return nil, errors.Join(errs...)
	}

	out, err := e.generator.File(filename, expansions)
	if err != nil {
		return nil, err
	}

	return out, errors.Join(errs...)
}

// derives maps derive names to known, allowed derives without repeats.
func (e *Expander) derives(names []string) []plan.DeriveEnum {
	var out []plan.DeriveEnum

	for _, name := range names {
		d, ok := plan.ParseDerive(name)
		if !ok || slices.Contains(out, d) {
			continue
		}

		if len(e.config.Derives) > 0 && !slices.Contains(e.config.Derives, name) {
			continue
		}

		out = append(out, d)
	}

	return out
}

// ItemError is an expansion failure of one item in a file.
type ItemError struct {
	File   *source.File
	Item   string
	Derive plan.DeriveEnum
	Err    error
}

func (e *ItemError) Error() string {
	d := e.Diagnostic()

	if e.Item == "" {
		return d.String()
	}

	return fmt.Sprintf("%s (derive %s)", d.String(), e.Derive)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Diagnostic converts the failure into a reportable diagnostic.
func (e *ItemError) Diagnostic() diagnostic.Diagnostic {
	if de, ok := diagnostic.As(e.Err); ok {
		return de.Diagnostic(e.Item, e.File)
	}

	return diagnostic.Diagnostic{
		Severity: diagnostic.DiagnosticError,
		Message:  e.Err.Error(),
		Item:     e.Item,
	}
}

// ItemErrors lists the item failures joined into err by ExpandFile.
func ItemErrors(err error) []*ItemError {
	if err == nil {
		return nil
	}

	var out []*ItemError

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, ItemErrors(e)...)
		}

		return out
	}

	var ie *ItemError
	if errors.As(err, &ie) {
		out = append(out, ie)
	}

	return out
}
