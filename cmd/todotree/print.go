package main

import (
	"github.com/aretw0/todotree/internal/cli"
	"github.com/spf13/cobra"
)

func newPrintCmd() *cobra.Command {
	printCmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print the outline with item attributes",
		Long: `Prints one line per item, indented by depth. Without --attrs every exported
attribute is shown; with --attrs only the listed ones the item has.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, _ := cmd.Flags().GetStringSlice("attrs")
			logger, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			outline, err := cli.OpenOutline(args[0], logger)
			if err != nil {
				return err
			}
			return outline.Fprint(cmd.OutOrStdout(), attrs...)
		},
	}
	printCmd.Flags().StringSlice("attrs", nil, "Attributes to show besides the id (e.g. name,completed)")
	return printCmd
}
