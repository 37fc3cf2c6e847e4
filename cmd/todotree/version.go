package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/todotree"
	"github.com/aretw0/todotree/internal/cli"
	"github.com/aretw0/todotree/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of todotree",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			if cli.IsTerminalWriter(w) {
				tui.PrintBanner(w)
			}
			fmt.Fprintf(w, "todotree version %s\n", strings.TrimSpace(todotree.Version))
		},
	}
}
