package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "auto" {
		t.Errorf("Theme = %q, want auto", cfg.Theme)
	}
	if cfg.Columns != 5 {
		t.Errorf("Columns = %d, want 5", cfg.Columns)
	}
	if cfg.DefaultColor != "#2E8B57" {
		t.Errorf("DefaultColor = %q, want #2E8B57", cfg.DefaultColor)
	}
	if !cfg.MinimizeToTray || !cfg.ShowNotifications {
		t.Error("tray and notifications should default to enabled")
	}
}

func TestConfig_ValidateFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		check func(t *testing.T, c *Config)
	}{
		{
			name: "invalid theme falls back to auto",
			cfg:  Config{Theme: "neon"},
			check: func(t *testing.T, c *Config) {
				if c.Theme != "auto" {
					t.Errorf("Theme = %q, want auto", c.Theme)
				}
			},
		},
		{
			name: "zero columns falls back to default",
			cfg:  Config{Theme: "dark", Columns: 0},
			check: func(t *testing.T, c *Config) {
				if c.Columns != 5 {
					t.Errorf("Columns = %d, want 5", c.Columns)
				}
			},
		},
		{
			name: "oversized columns falls back to default",
			cfg:  Config{Theme: "dark", Columns: 40},
			check: func(t *testing.T, c *Config) {
				if c.Columns != 5 {
					t.Errorf("Columns = %d, want 5", c.Columns)
				}
			},
		},
		{
			name: "negative startup LEDs falls back to zero",
			cfg:  Config{Theme: "light", Columns: 5, StartupLEDs: -1},
			check: func(t *testing.T, c *Config) {
				if c.StartupLEDs != 0 {
					t.Errorf("StartupLEDs = %d, want 0", c.StartupLEDs)
				}
			},
		},
		{
			name: "bad color falls back to default",
			cfg:  Config{Theme: "light", Columns: 5, DefaultColor: "green"},
			check: func(t *testing.T, c *Config) {
				if c.DefaultColor != "#2E8B57" {
					t.Errorf("DefaultColor = %q, want #2E8B57", c.DefaultColor)
				}
			},
		},
		{
			name: "valid config untouched",
			cfg: Config{
				Theme:        "dark",
				Columns:      8,
				StartupLEDs:  10,
				DefaultColor: "#FF0000",
			},
			check: func(t *testing.T, c *Config) {
				if c.Theme != "dark" || c.Columns != 8 || c.StartupLEDs != 10 || c.DefaultColor != "#FF0000" {
					t.Errorf("valid config was altered: %+v", c)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if err := cfg.validate(); err != nil {
				t.Fatalf("validate() error = %v", err)
			}
			tt.check(t, &cfg)
		})
	}
}
