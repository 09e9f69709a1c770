package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"derive-generator/internal/driver"
	"derive-generator/internal/plan"
)

type genOptions struct {
	out     string
	suffix  string
	jobs    int
	derives []string
	rustfmt string
	diff    string
	stdout  bool
}

func newGenCmd(global *globalOptions) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen [flags] [paths...]",
		Short: "Expand derives in Rust files",
		Long: `Gen expands every known derive of every annotated item in the given
files and directories (default: the current directory). Each input gets
one generated file, next to it or in --out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, global, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", "", "output directory (default: next to each input)")
	f.StringVar(&opts.suffix, "suffix", "", "generated file suffix (default _derive.rs)")
	f.IntVarP(&opts.jobs, "jobs", "j", 0, "files expanded in parallel (default: number of CPUs)")
	f.StringSliceVar(&opts.derives, "derive", nil, "only run these derives: "+fmt.Sprint(plan.Names()))
	f.StringVar(&opts.rustfmt, "rustfmt", "", "format output with this rustfmt binary")
	f.StringVar(&opts.diff, "diff", "", "write a patch of changes to this file instead of writing outputs")
	f.BoolVar(&opts.stdout, "stdout", false, "print generated code instead of writing files")

	return cmd
}

func runGen(cmd *cobra.Command, global *globalOptions, opts *genOptions, args []string) error {
	cfg, err := loadConfig(global)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.OutputDir = opts.out
	}

	if flags.Changed("suffix") {
		cfg.OutputSuffix = opts.suffix
	}

	if flags.Changed("jobs") {
		cfg.Jobs = opts.jobs
	}

	if flags.Changed("derive") {
		cfg.Derives = opts.derives
	}

	if flags.Changed("rustfmt") {
		cfg.Rustfmt = opts.rustfmt
	}

	if global.color != "" {
		cfg.Color = global.color
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	inputs, err := driver.Collect(args, cfg.OutputSuffix)
	if err != nil {
		return err
	}

	slog.Debug("expanding", "inputs", len(inputs), "jobs", cfg.Jobs, "config", cfg.Path)

	d := driver.New(cfg)

	report, err := d.Run(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	newPrinter(cmd.ErrOrStderr(), useColor(cfg.Color, cmd.ErrOrStderr())).diagnostics(report.Diagnostics)

	switch {
	case opts.stdout:
		for _, f := range report.Files() {
			fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", f.Filename, f.Content)
		}
	case opts.diff != "":
		if err := writeDiff(report, opts.diff); err != nil {
			return err
		}
	default:
		if err := d.Write(report); err != nil {
			return err
		}

		slog.Info("generated", "files", len(report.Files()), "errors", len(report.Diagnostics.Errors))
	}

	if report.Diagnostics.HasErrors() {
		return errors.New("expansion failed")
	}

	return nil
}

func writeDiff(report *driver.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	changed, err := report.WriteDiff(f)
	if err != nil {
		return err
	}

	slog.Info("changes written", "file", path, "changed", changed)

	return nil
}
