package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eulertools/primetab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, primetab.MaxFrontier, cfg.InitialFrontier)
	assert.Contains(t, cfg.SnapshotPath, ".primetab")
	assert.False(t, cfg.Compress)
	assert.False(t, cfg.Mmap)
	assert.Zero(t, cfg.MemoryLimitMB)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
snapshot_path: /data/p.snap
initial_frontier: 1000000
compress: true
memory_limit_mb: 512
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/p.snap", cfg.SnapshotPath)
	assert.Equal(t, uint64(1_000_000), cfg.InitialFrontier)
	assert.True(t, cfg.Compress)
	assert.False(t, cfg.Mmap)
	assert.Equal(t, int64(512), cfg.MemoryLimitMB)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("compress: true\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Compress)
	assert.Equal(t, primetab.MaxFrontier, cfg.InitialFrontier)
	assert.NotEmpty(t, cfg.SnapshotPath)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snapshot_path: [\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesSnapshotPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snapshot_path: /from/file.snap\n"), 0644))

	t.Setenv("PRIMETAB_SNAPSHOT", "/from/env.snap")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.snap", cfg.SnapshotPath)
}

func TestFrontierClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_frontier: 99999999999\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, primetab.MaxFrontier, cfg.InitialFrontier)
}

func TestOptions(t *testing.T) {
	cfg := &Config{
		SnapshotPath:    "/tmp/p.snap",
		InitialFrontier: 1000,
	}
	assert.Len(t, cfg.Options(), 2)

	cfg.Compress = true
	cfg.Mmap = true
	cfg.MemoryLimitMB = 64
	assert.Len(t, cfg.Options(), 5)
}
