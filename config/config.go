package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/mcsim/gbm"
)

// Config is the complete run configuration: what to simulate, where the
// exports go, and whether runs are journaled.
type Config struct {
	Simulation gbm.Params    `json:"simulation" yaml:"simulation"`
	Output     OutputConfig  `json:"output" yaml:"output"`
	Journal    JournalConfig `json:"journal" yaml:"journal"`
}

// OutputConfig names the export artifacts. Empty file names disable that
// artifact; Dir is prepended to all of them.
type OutputConfig struct {
	Dir       string `json:"dir" yaml:"dir"`
	PathsFile string `json:"paths_file,omitempty" yaml:"paths_file,omitempty"`
	TimesFile string `json:"times_file,omitempty" yaml:"times_file,omitempty"`
	HTMLFile  string `json:"html_file,omitempty" yaml:"html_file,omitempty"`
	ChartFile string `json:"chart_file,omitempty" yaml:"chart_file,omitempty"`
}

// JournalConfig controls run journaling.
type JournalConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if c.Journal.Enabled && c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path required when journal is enabled")
	}
	return nil
}

// Default returns a configuration with sensible defaults: one year of daily
// steps on a $100 asset at 8% return and 20% volatility.
func Default() *Config {
	return &Config{
		Simulation: gbm.Params{
			InitialPrice: 100,
			Drift:        0.08,
			Volatility:   0.20,
			Horizon:      1,
			Steps:        252,
			Paths:        1000,
		},
		Output: OutputConfig{
			Dir:       ".",
			PathsFile: "price_paths.csv",
			TimesFile: "time_points.csv",
			HTMLFile:  "price_plot.html",
		},
		Journal: JournalConfig{
			Enabled: true,
			DBPath:  "./mcsim.sqlite",
		},
	}
}
