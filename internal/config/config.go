package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFile is the config location relative to the working directory.
const DefaultFile = ".dropdown/config.json"

// Config holds dropdown settings read from disk. Zero values mean "use the
// widget default".
type Config struct {
	Name       string   `json:"name,omitempty"`
	Options    []string `json:"options,omitempty"`
	ListID     string   `json:"list_id,omitempty"`
	Profile    string   `json:"profile,omitempty"`
	MaxVisible int      `json:"max_visible,omitempty"`
	Width      int      `json:"width,omitempty"`
}

// Load reads the config from baseDir. A missing file yields an empty Config.
func Load(baseDir string) (*Config, error) {
	return LoadFile(filepath.Join(baseDir, DefaultFile))
}

// LoadFile reads the config at path. A missing file yields an empty Config.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes the config to baseDir.
func Save(baseDir string, cfg *Config) error {
	return SaveFile(filepath.Join(baseDir, DefaultFile), cfg)
}

// SaveFile writes the config to path, creating its directory.
func SaveFile(path string, cfg *Config) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}

// Merge returns a copy of c with every non-zero field of override applied.
func (c Config) Merge(override Config) Config {
	if override.Name != "" {
		c.Name = override.Name
	}
	if len(override.Options) > 0 {
		c.Options = override.Options
	}
	if override.ListID != "" {
		c.ListID = override.ListID
	}
	if override.Profile != "" {
		c.Profile = override.Profile
	}
	if override.MaxVisible > 0 {
		c.MaxVisible = override.MaxVisible
	}
	if override.Width > 0 {
		c.Width = override.Width
	}
	return c
}
