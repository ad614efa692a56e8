package main

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/eulertools/primetab"
	"github.com/eulertools/primetab/factor"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newFactorCommand() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "factor <n>...",
		Short: "Print the prime factorization of each argument",
		Long: `Factor each argument into prime powers.

The table is grown once to cover the square root of the largest argument,
after which every factorization is a read-only walk and the arguments are
processed concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFactor(cmd, args, jobs)
		},
	}

	cmd.Flags().IntVar(&jobs, "jobs", runtime.GOMAXPROCS(0), "Concurrent factorizations")

	return cmd
}

func runFactor(cmd *cobra.Command, args []string, jobs int) error {
	ns := make([]int64, len(args))
	for i, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil || n < 0 {
			return fmt.Errorf("not a non-negative integer: %q", a)
		}
		ns[i] = n
	}

	t, err := openTable(cmd)
	if err != nil {
		return err
	}

	// Grow once so the concurrent factorizations below only read. Trial
	// division examines one candidate past the square root (the one that
	// proves the cofactor prime); by Bertrand's postulate that candidate
	// is below twice the root.
	var maxN int64
	for _, n := range ns {
		if n > maxN {
			maxN = n
		}
	}
	target := 2 * (isqrt(uint64(maxN)) + 1)
	if target > primetab.MaxFrontier {
		target = primetab.MaxFrontier
	}
	if err := t.Extend(target); err != nil {
		return err
	}

	if jobs < 1 {
		jobs = 1
	}
	results := make([]factor.Factorization, len(ns))
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for i, n := range ns {
		i, n := i, n
		g.Go(func() error {
			f, err := factor.Factorize(n, factor.Primes(t))
			if err != nil {
				return err
			}
			results[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, n := range ns {
		fmt.Fprintf(cmd.OutOrStdout(), "%d = %s\n", n, results[i])
	}
	return nil
}
