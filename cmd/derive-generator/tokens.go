package main

import (
	"github.com/spf13/cobra"

	"derive-generator/internal/source"
	"derive-generator/internal/syntax"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens file.rs",
		Short: "Dump the token trees of a Rust file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := source.ReadFile(args[0])
			if err != nil {
				return err
			}

			stream, err := syntax.Parse(file)
			if err != nil {
				return err
			}

			return syntax.Dump(cmd.OutOrStdout(), stream, file)
		},
	}
}
