// Package config persists UI preferences between sessions.
// Search results themselves are never stored - only how the user likes
// the interface arranged.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration.
type Config struct {
	UI UIConfig `json:"ui"`
}

// UIConfig holds UI preferences.
type UIConfig struct {
	ViewMode    string `json:"view_mode"`    // "grid" or "list"
	SearchMode  string `json:"search_mode"`  // default mode: title, author, subject, isbn
	ShowSidebar bool   `json:"show_sidebar"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ViewMode:    "grid",
			SearchMode:  "title",
			ShowSidebar: true,
		},
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bookvault", "config.json")
}

// Load reads config from disk, or returns defaults.
func Load() (*Config, error) {
	return loadFrom(ConfigPath())
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// A corrupt file should not keep the app from starting.
		return DefaultConfig(), nil
	}

	cfg.fillDefaults()
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	return c.saveTo(ConfigPath())
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// fillDefaults patches fields an older config file may be missing.
func (c *Config) fillDefaults() {
	if c.UI.ViewMode != "grid" && c.UI.ViewMode != "list" {
		c.UI.ViewMode = "grid"
	}
	switch c.UI.SearchMode {
	case "title", "author", "subject", "isbn":
	default:
		c.UI.SearchMode = "title"
	}
}
