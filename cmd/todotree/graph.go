package main

import (
	"fmt"

	"github.com/aretw0/todotree/internal/cli"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	graphCmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Export the outline as a Mermaid diagram",
		Long:  `Outputs a Mermaid flowchart (graph TD) of the outline, completed items styled.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, _ := cmd.Flags().GetString("current")
			logger, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			outline, err := cli.OpenOutline(args[0], logger)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), outline.Mermaid(current))
			return nil
		},
	}
	graphCmd.Flags().String("current", "", "Item ID to highlight")
	return graphCmd
}
