package main

import (
	"fmt"

	"github.com/aretw0/todotree/internal/cli"
	"github.com/spf13/cobra"
)

func newOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order FILE",
		Short: "List item IDs in breadth-first order",
		Long:  `Prints the root, then every item one level down left to right, and so on, one ID per line.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			outline, err := cli.OpenOutline(args[0], logger)
			if err != nil {
				return err
			}
			for _, id := range outline.Order() {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
