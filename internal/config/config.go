// Package config handles the clawfetch configuration file (~/.openclaw-pet/config.toml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds clawfetch settings. Every field has a working default; the
// config file only needs the keys the user wants to change.
type Config struct {
	Binary                 string `toml:"binary,omitempty"`
	OutputPath             string `toml:"output_path,omitempty"`
	Subscription           string `toml:"subscription,omitempty"`
	PromptTimeoutSeconds   int    `toml:"prompt_timeout_seconds,omitempty"`
	ResponseTimeoutSeconds int    `toml:"response_timeout_seconds,omitempty"`
	DriverTimeoutSeconds   int    `toml:"driver_timeout_seconds,omitempty"`
	Notify                 bool   `toml:"notify,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Binary:                 "claude",
		Subscription:           "Claude Pro",
		PromptTimeoutSeconds:   10,
		ResponseTimeoutSeconds: 5,
		DriverTimeoutSeconds:   10,
	}
}

// Path returns the default config file path (~/.openclaw-pet/config.toml).
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".openclaw-pet", "config.toml")
	}
	return filepath.Join(home, ".openclaw-pet", "config.toml")
}

// Load reads the config from the default path. A missing file yields the
// defaults without error.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config from an explicit path, overlaying the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Binary == "" {
		cfg.Binary = "claude"
	}
	if cfg.Subscription == "" {
		cfg.Subscription = "Claude Pro"
	}
	return cfg, nil
}

// PromptTimeout returns the prompt wait as a duration.
func (c *Config) PromptTimeout() time.Duration {
	return positiveSeconds(c.PromptTimeoutSeconds, 10*time.Second)
}

// ResponseTimeout returns the response wait as a duration.
func (c *Config) ResponseTimeout() time.Duration {
	return positiveSeconds(c.ResponseTimeoutSeconds, 5*time.Second)
}

// DriverTimeout returns the per-driver overall timeout as a duration.
func (c *Config) DriverTimeout() time.Duration {
	return positiveSeconds(c.DriverTimeoutSeconds, 10*time.Second)
}

func positiveSeconds(n int, fallback time.Duration) time.Duration {
	if n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}
