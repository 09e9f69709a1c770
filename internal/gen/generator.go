package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"derive-generator/internal/plan"
)

// DefaultHeader marks generated files.
const DefaultHeader = "// Code generated by derive-generator. DO NOT EDIT."

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Header is the first line of every generated file.
	Header string
	// Rustfmt is the rustfmt binary used to format whole files. Empty
	// disables formatting.
	Rustfmt string
	// OutputDir receives .unformatted.rs sidecars when formatting fails.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Header: DefaultHeader,
	}
}

// Generator renders Rust code from resolved plans.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Rust source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "model_derive.rs").
	Filename string
	// Content is the generated source.
	Content []byte
}

// Expansion is the generated code of one derive on one item.
type Expansion struct {
	Item   string
	Derive plan.DeriveEnum
	Code   string
}

// Generate renders the code for one plan.
func (g *Generator) Generate(p plan.Plan) (string, error) {
	switch p := p.(type) {
	case *plan.ConstructorPlan:
		return execute(constructorTemplate, buildConstructor(p))
	case *plan.DisplayPlan:
		return execute(displayTemplate, buildDisplay(p))
	case *plan.ErrorPlan:
		return execute(errorTemplate, errorData{Head: newImplHead(p.Decl).For("::core::error::Error")})
	case *plan.FromPlan:
		return execute(fromTemplate, buildFrom(p))
	case *plan.MethodPlan:
		return execute(methodTemplate, buildMethod(p))
	case *plan.ProjectionPlan:
		return execute(projectionTemplate, buildProjection(p))
	default:
		return "", fmt.Errorf("no generator for plan %T", p)
	}
}

// File assembles expansions into one generated file, formatted with rustfmt
// when configured.
func (g *Generator) File(filename string, expansions []Expansion) (*GeneratedFile, error) {
	data := struct {
		Header     string
		Expansions []Expansion
	}{
		Header:     g.config.Header,
		Expansions: expansions,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	content := buf.Bytes()

	if g.config.Rustfmt != "" {
		formatted, err := formatSource(g.config.Rustfmt, content)
		if err != nil {
			// Best-effort: keep the unformatted code next to the output.
			_ = writeDebugUnformatted(g.config.OutputDir, filename, content)

			return &GeneratedFile{Filename: filename, Content: content}, nil
		}

		content = formatted
	}

	return &GeneratedFile{Filename: filename, Content: content}, nil
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", t.Name(), err)
	}

	return buf.String(), nil
}

type errorData struct {
	Head string
}
