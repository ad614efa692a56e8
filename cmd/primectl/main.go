package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "primectl",
		Short: "Build and query a persisted table of 32-bit primes",
		Long: `primectl maintains a disk-backed table of primes below 2^32 and answers
factorization and primality queries against it.

The table grows lazily with the queries you run. For repeated use, build
and persist the snapshot once ("primectl build") so later invocations
adopt it instead of sieving again.`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a primectl config file")
	rootCmd.PersistentFlags().String("snapshot", "", "Path to the prime table snapshot (overrides config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newFactorCommand())
	rootCmd.AddCommand(newDivisorsCommand())
	rootCmd.AddCommand(newPrimesCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
