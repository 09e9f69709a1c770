package main

import (
	"fmt"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// buildVersion is set with -ldflags "-X main.buildVersion=v1.2.3".
var buildVersion = ""

func version() string {
	if buildVersion != "" {
		return buildVersion
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the derive-generator version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := color.New(color.FgGreen, color.Bold)
			if !useColor("", cmd.OutOrStdout()) {
				name.DisableColor()
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name.Sprint("derive-generator"), version())

			return err
		},
	}
}
