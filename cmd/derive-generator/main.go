// Package main provides the CLI entrypoint for derive-generator.
//
// derive-generator reads Rust structs and enums annotated with
// #[derive(Constructor, Display, Error, From, Method, Inner, Record)] and
// writes the Rust code those derives stand for:
//   - gen expands every .rs file under the given paths
//   - expand prints the expansion of one derive on one item
//   - tokens dumps the token trees of a file
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

type globalOptions struct {
	color   string
	config  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "derive-generator",
		Short:         "Generate Rust derive implementations",
		Long:          `derive-generator expands Constructor, Display, Error, From, Method, Inner and Record derives on Rust items into plain Rust code.`,
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}

			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}

	root.PersistentFlags().StringVar(&opts.color, "color", "", "colorize output (auto|always|never); overrides the config file")
	root.PersistentFlags().StringVar(&opts.config, "config", "", "project file (default: derive.yaml or derive.toml found upwards)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(newGenCmd(opts))
	root.AddCommand(newExpandCmd(opts))
	root.AddCommand(newTokensCmd())
	root.AddCommand(newVersionCmd())

	return root
}
