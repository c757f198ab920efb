package config

import (
	"fmt"
	"net/url"
)

// Validate checks configuration correctness.
// It performs declarative validation only and MUST NOT mutate the config.
func Validate(cfg *Config) error {
	if cfg.Server.URL != "" {
		u, err := url.Parse(cfg.Server.URL)
		if err != nil {
			return fmt.Errorf("server.url %q is not a valid URL: %w", cfg.Server.URL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("server.url scheme %q is unsupported (must be http or https)", u.Scheme)
		}
		if u.Hostname() == "" {
			return fmt.Errorf("server.url %q has no host", cfg.Server.URL)
		}
		if u.User != nil {
			return fmt.Errorf("server.url must not embed credentials; use username/password fields")
		}
	}

	if cfg.Server.TimeoutMs <= 0 {
		return fmt.Errorf("server.timeout_ms must be > 0, got %d", cfg.Server.TimeoutMs)
	}

	if cfg.Poll.IntervalMs <= 0 {
		return fmt.Errorf("poll.interval_ms must be > 0, got %d", cfg.Poll.IntervalMs)
	}
	if cfg.Poll.IntervalMs < 1000 {
		return fmt.Errorf("poll.interval_ms %d is below the 1000ms floor", cfg.Poll.IntervalMs)
	}

	return nil
}
