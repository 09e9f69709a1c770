// Package config loads the optional project file of derive-generator.
//
// The file is derive.yaml, derive.yml or derive.toml, found by walking up
// from a start directory. Every key is optional:
//
//	output_suffix: _derive.rs   # appended to the input base name
//	output_dir: gen             # empty writes next to each input
//	jobs: 4                     # files expanded in parallel; 0 = NumCPU
//	derives: [Display, From]    # allow-list; empty allows every derive
//	color: auto                 # auto | always | never
//	rustfmt: rustfmt            # formatter binary; empty disables
package config

import (
	"fmt"
	"runtime"
	"slices"
	"strings"

	"derive-generator/internal/match"
	"derive-generator/internal/plan"
)

// Config is the project configuration.
type Config struct {
	OutputSuffix string   `yaml:"output_suffix,omitempty" toml:"output_suffix"`
	OutputDir    string   `yaml:"output_dir,omitempty" toml:"output_dir"`
	Jobs         int      `yaml:"jobs,omitempty" toml:"jobs"`
	Derives      []string `yaml:"derives,omitempty" toml:"derives"`
	Color        string   `yaml:"color,omitempty" toml:"color"`
	Rustfmt      string   `yaml:"rustfmt,omitempty" toml:"rustfmt"`

	// Path is the file the config was loaded from; empty for defaults.
	Path string `yaml:"-" toml:"-"`
}

// DefaultOutputSuffix is appended to the base name of each input file.
const DefaultOutputSuffix = "_derive.rs"

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns the configuration used when no project file exists.
func Default() *Config {
	var c Config

	applyDefaults(&c)

	return &c
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.OutputSuffix == "" {
		c.OutputSuffix = DefaultOutputSuffix
	}

	if c.Jobs <= 0 {
		c.Jobs = runtime.NumCPU()
	}

	if c.Color == "" {
		c.Color = ColorAuto
	}
}

// Validate checks derive names and the colour mode.
func (c *Config) Validate() error {
	known := plan.Names()

	var problems []string

	for _, d := range c.Derives {
		if slices.Contains(known, d) {
			continue
		}

		msg := fmt.Sprintf("unknown derive %q", d)
		if s := match.Suggest(d, known); len(s) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(s, ", "))
		}

		problems = append(problems, msg)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		problems = append(problems, fmt.Sprintf("invalid color %q, want auto, always or never", c.Color))
	}

	if len(problems) == 0 {
		return nil
	}

	where := "config"
	if c.Path != "" {
		where = c.Path
	}

	return fmt.Errorf("%s: %s", where, strings.Join(problems, "; "))
}

// OutputName returns the generated file name for an input file name:
// model.rs -> model_derive.rs.
func (c *Config) OutputName(input string) string {
	return strings.TrimSuffix(input, ".rs") + c.OutputSuffix
}
