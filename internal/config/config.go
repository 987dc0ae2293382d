// Package config reads and writes the rentledger.yaml project file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file name.
const FileName = "rentledger.yaml"

// Config represents the top-level rentledger.yaml configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Share    ShareConfig    `yaml:"share"`
	Currency string         `yaml:"currency"`
	Reports  ReportsConfig  `yaml:"reports"`
}

// DatabaseConfig locates the JSON database file.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ShareConfig controls shareable-link generation.
type ShareConfig struct {
	BaseURL string `yaml:"base_url"`
}

// ReportsConfig controls where printable reports are written.
type ReportsConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// Load reads a rentledger.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "property_management_database.json",
		},
		Share: ShareConfig{
			BaseURL: "https://rentledger.dev/app",
		},
		Currency: "USD",
		Reports: ReportsConfig{
			OutputDir: "reports",
		},
	}
}
