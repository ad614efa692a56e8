package main

import (
	"log/slog"
	"math"
	"os"

	"github.com/eulertools/primetab"
	"github.com/eulertools/primetab/internal/config"
	"github.com/spf13/cobra"
)

// loadConfig resolves configuration from the config file and the shared
// persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, []primetab.Option, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if s, _ := cmd.Flags().GetString("snapshot"); s != "" {
		cfg.SnapshotPath = s
	}

	logger := primetab.NoopLogger()
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		logger = primetab.NewTextLogger(slog.LevelDebug)
	}
	opts := append(cfg.Options(), primetab.WithLogger(logger))
	return cfg, opts, nil
}

// openTable adopts an existing snapshot when one is on disk; otherwise it
// returns a lazy table so a simple query does not trigger the full
// multi-minute build.
func openTable(cmd *cobra.Command) (*primetab.Table, error) {
	cfg, opts, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.SnapshotPath != "" {
		if _, err := os.Stat(cfg.SnapshotPath); err == nil {
			return primetab.Open(opts...)
		}
	}
	return primetab.New(opts...), nil
}

// isqrt returns floor(sqrt(n)).
func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	x := uint64(math.Sqrt(float64(n)))
	for x*x > n {
		x--
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}
