package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Everything has a working
// default; the file only needs the fields the user wants to change.
type Config struct {
	Theme struct {
		Primary  string `yaml:"primary"`  // Title / accent color
		Selected string `yaml:"selected"` // Checked value color
		Muted    string `yaml:"muted"`    // De-emphasized text color
		Error    string `yaml:"error"`    // Error message color
	} `yaml:"theme"`
	UI struct {
		ListHeight int  `yaml:"list_height"` // Value list viewport height in rows
		ShowCounts bool `yaml:"show_counts"` // Show occurrence counts next to values
	} `yaml:"ui"`
	Watch struct {
		Enabled bool `yaml:"enabled"` // Reload counts when the source file changes
	} `yaml:"watch"`
	Store struct {
		Enabled bool   `yaml:"enabled"` // Persist selections per source/column
		Dir     string `yaml:"dir"`     // Store directory (default ~/.local/share/facet)
	} `yaml:"store"`
	Debug bool `yaml:"debug"` // Debug logging
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}
	cfg.UI.ListHeight = 12
	cfg.UI.ShowCounts = true
	cfg.Store.Enabled = true
	return cfg
}

// LoadConfig loads from the default location,
// ~/.config/facet/config.yaml.
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(filepath.Join(home, ".config", "facet", "config.yaml"))
}

// LoadConfigFile loads configuration from a specific file path. A
// missing file yields the defaults.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path, creating parent directories.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}
	if c.UI.ListHeight < 1 || c.UI.ListHeight > 200 {
		return fmt.Errorf("ui.list_height must be between 1 and 200, got %d", c.UI.ListHeight)
	}
	return nil
}

// StoreDir resolves the selection store directory, defaulting to
// ~/.local/share/facet.
func (c *Config) StoreDir() (string, error) {
	if c.Store.Dir != "" {
		return c.Store.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "facet"), nil
}
