package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/diitoo/esclscan/internal/config"
	"github.com/diitoo/esclscan/internal/escl"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()

	assert.Equal(t, "a4", cfg.DefaultPaperSize)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 100*time.Second, cfg.PollDeadline)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, escl.Extent{Width: 2480, Height: 3508}, cfg.PaperSizes["a4"])
	assert.Contains(t, cfg.PaperSizes, "us")
}

func TestLoadFromPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "esclscan.yaml")
	data := `default_paper_size: a5
poll_interval: 500ms
paper_sizes:
  a5:
    width: 1748
    height: 2480
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := config.LoadFromPath(path)
	assert.NoError(t, err)

	assert.Equal(t, "a5", cfg.DefaultPaperSize)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, escl.Extent{Width: 1748, Height: 2480}, cfg.PaperSizes["a5"])

	// Unset values fall back to defaults.
	assert.Equal(t, 100*time.Second, cfg.PollDeadline)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestLoadFromPath_BadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "esclscan.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("{unclosed"), 0o644))

	_, err := config.LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ESCLSCAN_POLL_INTERVAL", "250ms")
	t.Setenv("ESCLSCAN_PAPER_SIZE", "us")

	cfg, err := config.Load()
	assert.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, "us", cfg.DefaultPaperSize)
}

func TestLoad_BadEnvDuration(t *testing.T) {
	t.Setenv("ESCLSCAN_HTTP_TIMEOUT", "soon")

	_, err := config.Load()
	assert.Error(t, err)
}
