// Package driver runs derive expansion over many Rust files: inputs are
// expanded in parallel, failures become diagnostics, and results come back in
// input order so output is stable.
package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"derive-generator/derive"
	"derive-generator/internal/analyze"
	"derive-generator/internal/config"
	"derive-generator/internal/diagnostic"
	"derive-generator/internal/gen"
	"derive-generator/internal/source"
)

// Result is the expansion of one input file.
type Result struct {
	Input string
	// Output is the path the generated file is written to.
	Output string
	// File is nil when the input had nothing to expand or failed to load.
	File        *gen.GeneratedFile
	Diagnostics diagnostic.Diagnostics

	source *source.File
}

// Report is the outcome of a run.
type Report struct {
	Results     []Result
	Diagnostics diagnostic.Diagnostics
}

// Files returns the generated files, in input order.
func (r *Report) Files() []gen.GeneratedFile {
	var files []gen.GeneratedFile

	for _, res := range r.Results {
		if res.File != nil {
			files = append(files, *res.File)
		}
	}

	return files
}

// Driver expands files according to a project configuration.
type Driver struct {
	cfg      *config.Config
	expander *derive.Expander
}

// New creates a Driver.
func New(cfg *config.Config) *Driver {
	return &Driver{
		cfg: cfg,
		expander: derive.NewExpander(derive.Config{
			Derives: cfg.Derives,
			Generator: gen.GeneratorConfig{
				Header:    gen.DefaultHeader,
				Rustfmt:   cfg.Rustfmt,
				OutputDir: cfg.OutputDir,
			},
		}),
	}
}

// Run expands every input. Item failures are reported as diagnostics, never
// as the returned error, which is reserved for cancellation.
func (d *Driver) Run(ctx context.Context, inputs []string) (*Report, error) {
	results := make([]Result, len(inputs))

	jobs := d.cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(inputs))))

	for i, input := range inputs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			// Indexes are unique per goroutine.
			results[i] = d.expand(input)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	checkCollisions(results)

	report := &Report{Results: results}
	for _, res := range results {
		report.Diagnostics.Merge(res.Diagnostics)
	}

	d.checkFlattens(report)

	return report, nil
}

func (d *Driver) expand(input string) Result {
	res := Result{Input: input, Output: d.outputPath(input)}

	file, err := source.ReadFile(input)
	if err != nil {
		res.Diagnostics.AddError("io", err.Error(), "", input)
		return res
	}

	res.source = file

	out, err := d.expander.ExpandFile(file, res.Output)
	res.File = out

	for _, ie := range derive.ItemErrors(err) {
		diag := ie.Diagnostic()
		if ie.Item != "" {
			diag.Message = fmt.Sprintf("%s (derive %s)", diag.Message, ie.Derive)
		}

		res.Diagnostics.Errors = append(res.Diagnostics.Errors, diag)
	}

	return res
}

// checkCollisions keeps the first input that claims an output path and
// turns every later claim into an error, dropping its file.
func checkCollisions(results []Result) {
	owners := make(map[string]string, len(results))

	for i := range results {
		res := &results[i]
		if res.File == nil {
			continue
		}

		out := filepath.Clean(res.Output)

		if first, ok := owners[out]; ok {
			res.Diagnostics.AddError("output_collision",
				fmt.Sprintf("output %s is also generated from %s", res.Output, first), "", res.Input)
			res.File = nil

			continue
		}

		owners[out] = res.Input
	}
}

// Write writes every generated file of report to its output path.
func (d *Driver) Write(report *Report) error {
	return gen.WriteFiles(report.Files(), d.cfg.OutputDir)
}

// outputPath places output next to the input, or in the output directory.
func (d *Driver) outputPath(input string) string {
	name := d.cfg.OutputName(filepath.Base(input))
	if d.cfg.OutputDir != "" {
		return filepath.Join(d.cfg.OutputDir, name)
	}

	return filepath.Join(filepath.Dir(input), name)
}

// Graph indexes the declarations of every successfully loaded input.
func (r *Report) Graph() *analyze.ItemGraph {
	a := analyze.NewAnalyzer()

	for _, res := range r.Results {
		if res.source == nil {
			continue
		}

		// Files were already read once; a failure here was reported then.
		_, _ = a.LoadFiles(res.source)
	}

	return a.Graph()
}
