package main

import (
	"fmt"
	"strconv"

	"github.com/eulertools/primetab/factor"
	"github.com/spf13/cobra"
)

func newDivisorsCommand() *cobra.Command {
	var pairs bool

	cmd := &cobra.Command{
		Use:   "divisors <n>",
		Short: "List every divisor of n in ascending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDivisors(cmd, args[0], pairs)
		},
	}

	cmd.Flags().BoolVar(&pairs, "pairs", false, "Print factor pairs a * b = n instead of the flat list")

	return cmd
}

func runDivisors(cmd *cobra.Command, arg string, pairs bool) error {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || n < 0 {
		return fmt.Errorf("not a non-negative integer: %q", arg)
	}

	t, err := openTable(cmd)
	if err != nil {
		return err
	}
	engine := factor.NewEngine(t)

	out := cmd.OutOrStdout()
	if pairs {
		it, err := engine.Pairs(n, false)
		if err != nil {
			return err
		}
		for {
			pair, ok := it.Next()
			if !ok {
				break
			}
			fmt.Fprintf(out, "%d * %d = %d\n", pair.A, pair.B, n)
		}
		return nil
	}

	divs, err := engine.Divisors(n)
	if err != nil {
		return err
	}
	for _, d := range divs {
		fmt.Fprintln(out, d)
	}
	return nil
}
