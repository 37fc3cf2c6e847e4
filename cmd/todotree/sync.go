package main

import (
	"fmt"
	"io"

	"github.com/aretw0/todotree"
	"github.com/aretw0/todotree/internal/cli"
	"github.com/aretw0/todotree/pkg/dryrun"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	syncCmd := &cobra.Command{
		Use:   "sync FILE",
		Short: "Dry-run a sync of the outline",
		Long: `Prints the calls that mirroring the outline to a remote service would make:
one "create item" per item in breadth-first order and one "complete item" per
completed item. Nothing is sent anywhere.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, _ := cmd.Flags().GetString("prefix")
			showMetrics, _ := cmd.Flags().GetBool("metrics")
			logger, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			outline, err := cli.OpenOutline(args[0], logger)
			if err != nil {
				return err
			}

			ctx, stop := cli.SignalContext(cmd.Context())
			defer stop()

			reg := prometheus.NewRegistry()
			report, err := todotree.Simulate(ctx, outline.Root(),
				todotree.WithPrefix(prefix),
				todotree.WithSyncLogger(logger),
				todotree.WithStandInOptions(
					dryrun.WithOutput(cmd.OutOrStdout()),
					dryrun.WithLogger(logger),
					dryrun.WithMetrics(reg),
				),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d items, %d to create, %d to complete\n",
				report.Items, len(report.Order), len(report.Completed))
			if showMetrics {
				return writeMetrics(out, reg)
			}
			return nil
		},
	}
	syncCmd.Flags().String("prefix", dryrun.DefaultPrefix, "Prefix of the synthetic remote IDs")
	syncCmd.Flags().Bool("metrics", false, "Print call counters after the run")
	return syncCmd
}

// writeMetrics dumps reg in the Prometheus text exposition format.
func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
