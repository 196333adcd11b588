// Package config provides configuration management for LED Board.
// It handles loading, saving, and managing application settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/atran/led-board/common"
	"github.com/atran/led-board/led"
)

// Config represents the application configuration.
// All settings are persisted to a YAML file in the user's config directory.
type Config struct {
	// Theme sets the color theme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`
	// MinimizeToTray minimizes to system tray instead of closing.
	MinimizeToTray bool `yaml:"minimize_to_tray"`
	// ShowNotifications enables desktop notifications for LED events.
	ShowNotifications bool `yaml:"show_notifications"`
	// Columns is the grid width of the LED board, 1..12.
	Columns int `yaml:"columns"`
	// StartupLEDs is the number of LEDs placed on a fresh board, 0..50.
	StartupLEDs int `yaml:"startup_leds"`
	// DefaultColor is the hex color applied when a lit LED is recolored
	// from the control panel without picking one, "#RRGGBB".
	DefaultColor string `yaml:"default_color"`
}

// DefaultConfig returns the default configuration.
// These are sensible defaults for most users.
func DefaultConfig() *Config {
	return &Config{
		Theme:             common.ThemeAuto,
		MinimizeToTray:    true,
		ShowNotifications: true,
		Columns:           common.DefaultGridColumns,
		StartupLEDs:       0,
		DefaultColor:      "#2E8B57",
	}
}

// Load loads the configuration from the config file.
// If the file doesn't exist, it creates one with default values.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	// If it doesn't exist, return default configuration
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cfg.Save(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, common.WrapError(err, "error opening configuration")
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	var config Config
	if err := decoder.Decode(&config); err != nil {
		return nil, common.WrapError(err, "error parsing configuration")
	}

	// Validate values
	if err := config.validate(); err != nil {
		return nil, common.WrapError(err, "invalid configuration")
	}

	return &config, nil
}

// validate verifies that configuration values are valid, falling back to
// defaults where a value is out of range.
func (c *Config) validate() error {
	validThemes := []string{common.ThemeAuto, common.ThemeLight, common.ThemeDark}
	isValidTheme := false
	for _, t := range validThemes {
		if c.Theme == t {
			isValidTheme = true
			break
		}
	}
	if !isValidTheme {
		c.Theme = common.ThemeAuto // Fallback to default
	}

	if c.Columns < 1 || c.Columns > 12 {
		c.Columns = common.DefaultGridColumns
	}

	if c.StartupLEDs < 0 || c.StartupLEDs > 50 {
		c.StartupLEDs = 0
	}

	if _, err := led.ParseHex(c.DefaultColor); err != nil {
		c.DefaultColor = DefaultConfig().DefaultColor
	}

	return nil
}

// Save saves the configuration to the file
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return common.WrapError(err, "error creating config directory")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return common.WrapError(err, "error serializing configuration")
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return common.WrapError(err, "error saving configuration")
	}

	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", common.ConfigDirName, common.ConfigFileName), nil
}
