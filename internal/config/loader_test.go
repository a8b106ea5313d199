package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `
fold:
  fast_partition: true
  theta: 0.1
worker:
  threads: 4
log:
  level: debug
  format: json
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rnamoip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadParsesFile(t *testing.T) {
	path := writeTempConfig(t, validConfigYAML)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Fold.FastPartition)
	assert.Equal(t, 0.1, cfg.Fold.Theta)
	assert.Equal(t, 4, cfg.Worker.Threads)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnvAppliesDefaults(t *testing.T) {
	t.Setenv("RNAMOIP_FOLD_THETA", "0.2")
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.Fold.Theta)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
}

func TestLoadFromEnvDefaultsFastPartitionToTrue(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.Fold.FastPartition, "omitting fold.fast_partition should default to true")
}

func TestLoadHonorsExplicitFastPartitionFalse(t *testing.T) {
	path := writeTempConfig(t, "fold:\n  fast_partition: false\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Fold.FastPartition, "an explicit false in the file must not be overridden by the default")
}
