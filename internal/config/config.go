// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds backend connection settings.
type ServerConfig struct {
	// BaseURL is the Pine Time admin API base URL.
	BaseURL string `yaml:"base_url"`
}

// AuthConfig holds authentication-related settings.
type AuthConfig struct {
	// APIToken is the admin bearer token.
	APIToken string `yaml:"api_token,omitempty"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode  bool `yaml:"vim_mode"`
	PageSize int  `yaml:"page_size,omitempty"`

	// Columns optionally overrides the per-breakpoint grid column counts.
	// Zero values fall back to the built-in defaults.
	Columns ColumnsConfig `yaml:"columns,omitempty"`
}

// ColumnsConfig maps breakpoint tiers to grid column counts.
type ColumnsConfig struct {
	XS int `yaml:"xs,omitempty"`
	SM int `yaml:"sm,omitempty"`
	MD int `yaml:"md,omitempty"`
	LG int `yaml:"lg,omitempty"`
	XL int `yaml:"xl,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
	// File is the log file path. Empty disables file logging; the TUI owns
	// the terminal, so there is no console fallback.
	File string `yaml:"file,omitempty"`
}

// DefaultPageSize is the page size used when the config does not set one.
const DefaultPageSize = 50

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL: "http://localhost:8000/api/v1",
		},
		UI: UIConfig{
			VimMode:  true,
			PageSize: DefaultPageSize,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "pine-time-tui")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.UI.PageSize <= 0 {
		cfg.UI.PageSize = DefaultPageSize
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// HasValidAuth returns true if the config has an API token.
func (c *Config) HasValidAuth() bool {
	return c.Auth.APIToken != ""
}

// LogPath returns the configured log file path, or the default path under
// the config directory when file logging is enabled with no explicit path.
func (c *Config) LogPath() (string, error) {
	if c.Logging.File != "" {
		return c.Logging.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pine-time-tui.log"), nil
}
