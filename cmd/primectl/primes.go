package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPrimesCommand() *cobra.Command {
	var (
		from  uint64
		below uint64
		count int
	)

	cmd := &cobra.Command{
		Use:   "primes",
		Short: "List primes by range or by rank",
		Long: `List primes, either every prime in [--from, --below) or the first
--count primes. Exactly one of --below and --count must be given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (below == 0) == (count == 0) {
				return fmt.Errorf("exactly one of --below and --count is required")
			}
			return runPrimes(cmd, from, below, count)
		},
	}

	cmd.Flags().Uint64Var(&from, "from", 0, "Lower bound (inclusive), used with --below")
	cmd.Flags().Uint64Var(&below, "below", 0, "Upper bound (exclusive)")
	cmd.Flags().IntVar(&count, "count", 0, "Number of primes, starting at rank 0")

	return cmd
}

func runPrimes(cmd *cobra.Command, from, below uint64, count int) error {
	t, err := openTable(cmd)
	if err != nil {
		return err
	}

	var primes []uint32
	if count > 0 {
		primes, err = t.GetRange(0, count)
	} else {
		primes, err = t.Between(from, below)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range primes {
		fmt.Fprintln(out, p)
	}
	return nil
}
