// Package config loads the turtle CLI configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// UI modes.
const (
	UIModeAuto   = "auto"
	UIModeSimple = "simple"
	UIModeTUI    = "tui"
)

// Config holds all application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Log     LogConfig     `toml:"log"`
	UI      UIConfig      `toml:"ui"`
}

// GeneralConfig holds general settings
type GeneralConfig struct {
	ReportsDir  string `toml:"reports_dir"`
	SaveReports bool   `toml:"save_reports"`
	Parallel    int    `toml:"parallel"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// UIConfig holds terminal UI settings
type UIConfig struct {
	Mode        string `toml:"mode"`
	StepDelayMS int    `toml:"step_delay_ms"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			ReportsDir: ".turtle-reports",
			Parallel:   1,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		UI: UIConfig{
			Mode:        UIModeAuto,
			StepDelayMS: 150,
		},
	}
}

// Load reads configuration from a TOML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Expand paths
	cfg.General.ReportsDir = ExpandPath(cfg.General.ReportsDir)
	cfg.Log.File = ExpandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated and numeric settings
func (c *Config) Validate() error {
	switch c.UI.Mode {
	case UIModeAuto, UIModeSimple, UIModeTUI:
	default:
		return fmt.Errorf("ui.mode must be one of auto, simple, tui; got %q", c.UI.Mode)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json; got %q", c.Log.Format)
	}

	if c.General.Parallel < 1 {
		return fmt.Errorf("general.parallel must be at least 1; got %d", c.General.Parallel)
	}

	if c.UI.StepDelayMS < 0 {
		return fmt.Errorf("ui.step_delay_ms must not be negative; got %d", c.UI.StepDelayMS)
	}

	return nil
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultConfigPath returns the default config file location
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "turtle", "config.toml")
}
