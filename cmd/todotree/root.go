package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/todotree/internal/cli"
	"github.com/spf13/cobra"
)

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "todotree",
		Short:         "todotree inspects todo outlines and simulates syncing them",
		Long:          `todotree loads an outline (YAML or JSON) and lists, prints, draws or dry-run syncs it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error or off")

	rootCmd.AddCommand(
		newOrderCmd(),
		newPrintCmd(),
		newGraphCmd(),
		newOutlineCmd(),
		newSyncCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	return cli.CreateLogger(level)
}
