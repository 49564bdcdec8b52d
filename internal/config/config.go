// Package config loads the YAML server configuration, writing a default
// file on first run so operators have something to edit.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	Campaign CampaignConfig `yaml:"campaign"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
}

// CampaignConfig controls the simulation itself.
type CampaignConfig struct {
	Player      string `yaml:"player"`        // faction id the human plays
	Seed        int64  `yaml:"seed"`          // 0 = random each run
	AutoAdvance bool   `yaml:"auto_advance"`  // advance turns on a timer
	TurnDelayMS int    `yaml:"turn_delay_ms"` // delay between auto turns
}

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"` // debug|info|warn|error
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Campaign: CampaignConfig{
			Player:      "usa",
			Seed:        0,
			AutoAdvance: false,
			TurnDelayMS: 5000,
		},
		Database: DatabaseConfig{Path: "data/frostline.db"},
		Server:   ServerConfig{Port: 8080, LogLevel: "info"},
	}
}

// Load reads the config at path, creating it with defaults when absent.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		out, mErr := yaml.Marshal(cfg)
		if mErr != nil {
			return cfg, fmt.Errorf("marshal default config: %w", mErr)
		}
		if wErr := os.WriteFile(path, out, 0644); wErr != nil {
			return cfg, fmt.Errorf("write default config: %w", wErr)
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
