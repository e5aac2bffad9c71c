// Package config carries the defaults and limits threaded explicitly through
// the scan pipeline, so behavior is deterministic and testable without
// ambient global state.
//
// Config file locations (priority order):
//  1. $ESCLSCAN_CONFIG
//  2. ./esclscan.yaml
//
// Individual values can also be overridden through environment variables
// (ESCLSCAN_POLL_INTERVAL, ESCLSCAN_POLL_DEADLINE, ESCLSCAN_HTTP_TIMEOUT,
// ESCLSCAN_PAPER_SIZE), optionally loaded from a .env file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/diitoo/esclscan/internal/escl"
)

// Config is the explicit configuration value passed through the pipeline.
type Config struct {
	// DefaultPaperSize is used when a request names no paper size.
	DefaultPaperSize string `yaml:"default_paper_size"`

	// PaperSizes maps size names to physical extents in 1/300ths of an
	// inch. Sizes that exceed the device's scan area are dropped during
	// capability parsing.
	PaperSizes map[string]escl.Extent `yaml:"paper_sizes"`

	// PollInterval is the fixed wait between job status reads.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollDeadline bounds the whole polling phase.
	PollDeadline time.Duration `yaml:"poll_deadline"`

	// HTTPTimeout bounds each individual device request.
	HTTPTimeout time.Duration `yaml:"http_timeout"`
}

// DefaultConfig returns the documented defaults. The paper size table holds
// approximate real widths and heights (in mm) times 11.81.
func DefaultConfig() *Config {
	return &Config{
		DefaultPaperSize: "a4",
		PaperSizes: map[string]escl.Extent{
			"a4": {Width: 2480, Height: 3508},
			"a5": {Width: 1748, Height: 2480},
			"b5": {Width: 2079, Height: 2953},
			"us": {Width: 2550, Height: 3300},
		},
		PollInterval: 2 * time.Second,
		PollDeadline: 100 * time.Second,
		HTTPTimeout:  15 * time.Second,
	}
}

// Load finds and loads the config file, or returns defaults if none found,
// then applies environment overrides.
func Load() (*Config, error) {
	// A .env next to the binary is optional; missing files are fine.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path := findConfigPath()
	if path != "" {
		loaded, err := LoadFromPath(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func findConfigPath() string {
	if p := os.Getenv("ESCLSCAN_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("esclscan.yaml"); err == nil {
		return "esclscan.yaml"
	}
	return ""
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.DefaultPaperSize == "" {
		c.DefaultPaperSize = def.DefaultPaperSize
	}
	if len(c.PaperSizes) == 0 {
		c.PaperSizes = def.PaperSizes
	}
	if c.PollInterval <= 0 {
		c.PollInterval = def.PollInterval
	}
	if c.PollDeadline <= 0 {
		c.PollDeadline = def.PollDeadline
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = def.HTTPTimeout
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("ESCLSCAN_PAPER_SIZE"); v != "" {
		c.DefaultPaperSize = v
	}
	for _, override := range []struct {
		name string
		dst  *time.Duration
	}{
		{"ESCLSCAN_POLL_INTERVAL", &c.PollInterval},
		{"ESCLSCAN_POLL_DEADLINE", &c.PollDeadline},
		{"ESCLSCAN_HTTP_TIMEOUT", &c.HTTPTimeout},
	} {
		v := os.Getenv(override.name)
		if v == "" {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", override.name, err)
		}
		*override.dst = d
	}
	return nil
}
