package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional on-disk configuration for the dashboard.
// CLI flags override anything set here.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Poll   PollConfig   `yaml:"poll"`
}

// ServerConfig describes how to reach the GM server's ops bridge.
type ServerConfig struct {
	URL                string `yaml:"url"`
	Username           string `yaml:"username"`
	Password           string `yaml:"password"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify"`
	TimeoutMs          int    `yaml:"timeout_ms"`
}

// PollConfig holds polling cadence settings.
type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// Default returns a Config carrying the compiled-in defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{TimeoutMs: 10000},
		Poll:   PollConfig{IntervalMs: 30000},
	}
}

// Load reads and validates a YAML config file. Fields left unset in the file
// keep their defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}
