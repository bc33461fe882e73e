// Package cmd implements the gwt CLI commands.
package cmd

import "github.com/spf13/cobra"

// NewRootCmd creates the root gwt command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gwt",
		Short:         "gwt - Gherkin-style naming tools for Go test suites",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewTitleCmd())
	root.AddCommand(NewCheckCmd(newDefaultCheckIO()))
	return root
}

func rootRunE(_ *cobra.Command, _ []string) error {
	return nil
}
