package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"derive-generator/internal/config"
	"derive-generator/internal/diagnostic"
)

// loadConfig reads the project file named by --config, or the one found
// above the working directory.
func loadConfig(opts *globalOptions) (*config.Config, error) {
	if opts.config != "" {
		return config.LoadFile(opts.config)
	}

	return config.Load(".")
}

// useColor resolves a colour mode against the output stream.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

type printer struct {
	w       io.Writer
	err     *color.Color
	warning *color.Color
	info    *color.Color
	faint   *color.Color
}

func newPrinter(w io.Writer, colored bool) *printer {
	p := &printer{
		w:       w,
		err:     color.New(color.FgRed, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan),
		faint:   color.New(color.Faint),
	}

	for _, c := range []*color.Color{p.err, p.warning, p.info, p.faint} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// diagnostics prints errors, then warnings, then infos.
func (p *printer) diagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		label := p.info.Sprint(d.Severity)

		switch d.Severity {
		case diagnostic.DiagnosticError:
			label = p.err.Sprint(d.Severity)
		case diagnostic.DiagnosticWarning:
			label = p.warning.Sprint(d.Severity)
		}

		where := d.Location
		if d.Item != "" {
			where += " [" + d.Item + "]"
		}

		fmt.Fprintf(p.w, "%s: %s %s\n", label, d.Message, p.faint.Sprint(where))

		for _, s := range d.Suggestions {
			fmt.Fprintf(p.w, "  %s %s\n", p.faint.Sprint("did you mean"), s)
		}
	}
}
