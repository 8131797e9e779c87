// Package config loads the sentinel YAML configuration.
//
// A config file is optional. Every field has a default, and the CLI flags
// override whatever the file provides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/phoenixdev-512/Automated-Data-Integrity-Anomaly-Protocol/internal/report"
)

// DefaultPath is where the CLI looks for a config file when --config is not given.
const DefaultPath = "sentinel.yaml"

// Config holds the application configuration.
type Config struct {
	// BillingSource is the internal billing ledger (CSV or XLSX).
	BillingSource string `yaml:"billing_source"`
	// SettlementSource is the bank settlement feed (CSV or XLSX).
	SettlementSource string `yaml:"settlement_source"`

	// ReportDir receives the forensic report files.
	ReportDir string `yaml:"report_dir"`
	// ReportName is the report file name without extension.
	ReportName string `yaml:"report_name"`
	// ReportFormats lists the renderers to run: text, json, pdf, xlsx.
	ReportFormats []string `yaml:"report_formats"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Workers is the number of classification workers. 1 keeps a single pass.
	Workers int `yaml:"workers"`

	// MetricsFile, when set, receives a Prometheus textfile export after each run.
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration file at path. A missing file is only an error
// when required is true; otherwise defaults are returned.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.BillingSource == "" {
		cfg.BillingSource = "data/sales_log.csv"
	}
	if cfg.SettlementSource == "" {
		cfg.SettlementSource = "data/bank_feed.csv"
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "audit_reports"
	}
	if cfg.ReportName == "" {
		cfg.ReportName = report.DefaultBaseName
	}
	if len(cfg.ReportFormats) == 0 {
		cfg.ReportFormats = []string{"text"}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := c.Renderers(); err != nil {
		return err
	}
	if strings.ContainsAny(c.ReportName, `/\`) {
		return fmt.Errorf("report_name must be a bare file name, got %q", c.ReportName)
	}
	return nil
}

// Renderers resolves ReportFormats, dropping repeated formats.
func (c *Config) Renderers() ([]report.Renderer, error) {
	seen := make(map[string]bool, len(c.ReportFormats))
	renderers := make([]report.Renderer, 0, len(c.ReportFormats))
	for _, name := range c.ReportFormats {
		r, err := report.RendererFor(name)
		if err != nil {
			return nil, fmt.Errorf("report_formats: %w", err)
		}
		if seen[r.Extension()] {
			continue
		}
		seen[r.Extension()] = true
		renderers = append(renderers, r)
	}
	return renderers, nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
