package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	defer viper.Reset()
	t.Chdir(t.TempDir()) // keep a developer's local config file out of the test

	Load("")
	cfg := FromViper()

	assert.Equal(t, "results", cfg.ResultsDir)
	assert.Equal(t, ".", cfg.OutDir)
	assert.Equal(t, "MT25033", cfg.Prefix)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFile(t *testing.T) {
	defer viper.Reset()
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("results_dir: /data/bench\nprefix: RUN7\n"), 0644))

	Load(path)
	cfg := FromViper()

	assert.Equal(t, "/data/bench", cfg.ResultsDir)
	assert.Equal(t, "RUN7", cfg.Prefix)
	assert.Equal(t, ".", cfg.OutDir) // untouched keys keep defaults
}

func TestLoadEnvOverride(t *testing.T) {
	defer viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("NETIOPLOT_RESULTS_DIR", "/mnt/runs")

	Load("")

	assert.Equal(t, "/mnt/runs", FromViper().ResultsDir)
}
