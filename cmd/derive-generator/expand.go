package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"derive-generator/derive"
	"derive-generator/internal/analyze"
	"derive-generator/internal/diagnostic"
	"derive-generator/internal/plan"
	"derive-generator/internal/source"
	"derive-generator/internal/syntax"
)

func newExpandCmd(global *globalOptions) *cobra.Command {
	var name, item string

	cmd := &cobra.Command{
		Use:   "expand --derive Name [--item Item] file.rs",
		Short: "Print the expansion of one derive on one item",
		Long: `Expand runs a single derive over a single item and prints the code.
Without --item the file must contain exactly that one item.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := plan.ParseDerive(name)
			if !ok {
				return fmt.Errorf("unknown derive %q, want one of %v", name, plan.Names())
			}

			file, err := source.ReadFile(args[0])
			if err != nil {
				return err
			}

			out, err := expandItem(d, file, item)
			if err != nil {
				if de, ok := diagnostic.As(err); ok {
					var diags diagnostic.Diagnostics
					diags.Add(de.Diagnostic(item, file))

					newPrinter(cmd.ErrOrStderr(), useColor(global.color, cmd.ErrOrStderr())).diagnostics(diags)
				}

				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err
		},
	}

	cmd.Flags().StringVarP(&name, "derive", "d", "", "derive to run")
	cmd.Flags().StringVar(&item, "item", "", "name of the item to expand")
	_ = cmd.MarkFlagRequired("derive")

	return cmd
}

func expandItem(d plan.DeriveEnum, file *source.File, item string) (string, error) {
	decl, err := readDecl(file, item)
	if err != nil {
		return "", err
	}

	return derive.NewExpander(derive.DefaultConfig()).ExpandDecl(d, decl)
}

// readDecl reads the item named item from file, or the whole file as one
// item when item is empty.
func readDecl(file *source.File, item string) (*analyze.Declaration, error) {
	if item == "" {
		stream, err := syntax.Parse(file)
		if err != nil {
			return nil, err
		}

		return analyze.ReadItem(stream)
	}

	items, err := analyze.ReadFile(file)
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		if it.Name == item {
			return it.Read()
		}
	}

	return nil, fmt.Errorf("%s: no derived item named %q", file.Name, item)
}
