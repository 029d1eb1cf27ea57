package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config represents the contractbook configuration
type Config struct {
	DocumentURL  string        `yaml:"document_url"`
	FallbackFile string        `yaml:"fallback_file"`
	LogFile      string        `yaml:"log_file"`
	Interval     time.Duration `yaml:"-"` // Custom YAML handling below
	HTTPTimeout  time.Duration `yaml:"-"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		DocumentURL:  "",
		FallbackFile: filepath.Join(home, "deployments.md"),
		LogFile:      "/tmp/contractbook.log",
		Interval:     5 * time.Minute,
		HTTPTimeout:  15 * time.Second,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "contractbook", "config.yaml")
	}
	return filepath.Join(home, ".config", "contractbook", "config.yaml")
}

// PIDFilePath returns the path to the monitor PID file
// Can be overridden for testing
var PIDFilePath = func() string {
	return filepath.Join(filepath.Dir(ConfigPath()), "monitor.pid")
}

// rawConfig mirrors Config with durations as strings for YAML parsing
type rawConfig struct {
	DocumentURL  string `yaml:"document_url"`
	FallbackFile string `yaml:"fallback_file"`
	LogFile      string `yaml:"log_file"`
	Interval     string `yaml:"interval"`
	HTTPTimeout  string `yaml:"http_timeout"`
}

// Load reads configuration from the config directory
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads configuration from an explicit path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	defaults := DefaultConfig()

	interval := defaults.Interval
	if raw.Interval != "" {
		interval, err = time.ParseDuration(raw.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval format '%s': %w", raw.Interval, err)
		}
	}

	timeout := defaults.HTTPTimeout
	if raw.HTTPTimeout != "" {
		timeout, err = time.ParseDuration(raw.HTTPTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid http_timeout format '%s': %w", raw.HTTPTimeout, err)
		}
	}

	logFile := raw.LogFile
	if logFile == "" {
		logFile = defaults.LogFile
	}

	cfg := &Config{
		DocumentURL:  raw.DocumentURL,
		FallbackFile: raw.FallbackFile,
		LogFile:      logFile,
		Interval:     interval,
		HTTPTimeout:  timeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the config directory
func (c *Config) Save() error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := rawConfig{
		DocumentURL:  c.DocumentURL,
		FallbackFile: c.FallbackFile,
		LogFile:      c.LogFile,
		Interval:     c.Interval.String(),
		HTTPTimeout:  c.HTTPTimeout.String(),
	}

	data, err := yaml.Marshal(&raw)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks configuration for consistency
func (c *Config) Validate() error {
	if c.DocumentURL == "" && c.FallbackFile == "" {
		return fmt.Errorf("at least one of document_url or fallback_file must be set")
	}

	if c.DocumentURL != "" {
		u, err := url.Parse(c.DocumentURL)
		if err != nil {
			return fmt.Errorf("invalid document_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("document_url must be http or https, got '%s'", u.Scheme)
		}
	}

	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive, got %s", c.HTTPTimeout)
	}

	return nil
}

// ExpandPaths expands a leading ~ in file paths to the user's home directory
func (c *Config) ExpandPaths() error {
	var err error
	if c.FallbackFile, err = expandHome(c.FallbackFile); err != nil {
		return err
	}
	if c.LogFile, err = expandHome(c.LogFile); err != nil {
		return err
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path == "" || !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	if path == "~" {
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:]), nil
	}

	// ~user form is not supported
	return path, nil
}
