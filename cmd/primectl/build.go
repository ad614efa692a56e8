package main

import (
	"fmt"

	"github.com/eulertools/primetab"
	"github.com/spf13/cobra"
)

func newBuildCommand() *cobra.Command {
	var frontier uint64

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the prime table and persist its snapshot",
		Long: `Sieve primes up to the requested frontier and persist the snapshot at
the configured path. With the default frontier (the full 32-bit ceiling)
this takes minutes and writes ~800MB uncompressed; later invocations
adopt the snapshot instead of sieving.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, frontier)
		},
	}

	cmd.Flags().Uint64Var(&frontier, "frontier", 0, "Sieve bound (default: the configured initial frontier)")

	return cmd
}

func runBuild(cmd *cobra.Command, frontier uint64) error {
	cfg, opts, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if frontier > 0 {
		opts = append(opts, primetab.WithInitialFrontier(frontier))
	}

	t, err := primetab.Open(opts...)
	if err != nil {
		return err
	}

	// An adopted snapshot may stop short of the requested frontier.
	if frontier > t.Frontier() {
		if err := t.Extend(frontier); err != nil {
			return err
		}
		if cfg.SnapshotPath != "" {
			if err := t.Save(cfg.SnapshotPath); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "table ready: %d primes below %d\n", t.Len(), t.Frontier())
	return nil
}
