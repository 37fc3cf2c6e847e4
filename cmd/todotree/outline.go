package main

import (
	"fmt"

	"github.com/aretw0/todotree/internal/cli"
	"github.com/aretw0/todotree/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newOutlineCmd() *cobra.Command {
	outlineCmd := &cobra.Command{
		Use:   "outline FILE",
		Short: "Render the outline as a checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			logger, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			outline, err := cli.OpenOutline(args[0], logger)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if raw {
				fmt.Fprint(w, tui.Outline(outline.Root()))
				return nil
			}
			out, err := tui.RenderOutline(outline.Root(), cli.IsTerminalWriter(w))
			if err != nil {
				return err
			}
			fmt.Fprint(w, out)
			return nil
		},
	}
	outlineCmd.Flags().Bool("raw", false, "Print the Markdown source instead of rendering it")
	return outlineCmd
}
