// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultTrigger = "contextmenu"
	DefaultAnchor  = "pointer"
	DefaultTheme   = "default"
)

// Config is the ctxmenu configuration.
// Loaded from ~/.config/ctxmenu/config.toml
type Config struct {
	Menu  MenuConfig  `toml:"menu"`
	Theme ThemeConfig `toml:"theme"`
}

// MenuConfig contains the per-attachment defaults.
type MenuConfig struct {
	Trigger string `toml:"trigger"`  // trigger event name
	Anchor  string `toml:"anchor"`   // bottom, top, left, right, pointer
	OffsetX int    `toml:"offset_x"` // cells from the anchor point
	OffsetY int    `toml:"offset_y"` // cells from the anchor point
}

// ThemeConfig contains theme selection settings.
type ThemeConfig struct {
	Name string `toml:"name"` // theme name without .toml extension
	Path string `toml:"path"` // explicit theme file path, overrides Name
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Menu: MenuConfig{
			Trigger: DefaultTrigger,
			Anchor:  DefaultAnchor,
			OffsetX: 0,
			OffsetY: 0,
		},
		Theme: ThemeConfig{
			Name: DefaultTheme,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "ctxmenu", "config.toml")
}

// ThemeDir returns the directory searched for named theme files.
func ThemeDir() string {
	return filepath.Join(filepath.Dir(ConfigPath()), "themes")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
