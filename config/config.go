package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Authors AuthorConfig `json:"authors"`
	Report  ReportConfig `json:"report"`
}

// AuthorConfig holds author filtering options. Patterns are globs matched
// against author names and emails.
type AuthorConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// ReportConfig holds report generation defaults.
type ReportConfig struct {
	DefaultDays int    `json:"defaultDays"` // Default: 7
	Format      string `json:"format"`      // Default: "console"
	Top         int    `json:"top"`         // 0 means no cap
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Authors: AuthorConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Report: ReportConfig{
			DefaultDays: 7,
			Format:      "console",
			Top:         0,
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".commitspan.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".commitspan.json"))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, ".commitspan.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
