package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete tourguide configuration
type Config struct {
	TUI         TUIConfig         `mapstructure:"tui"`
	Walkthrough WalkthroughConfig `mapstructure:"walkthrough"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// TooltipWidth is the assumed tooltip width in cells used for placement
	// clamping and center-anchor correction (default: 44, min: 16, max: 120)
	TooltipWidth int `mapstructure:"tooltip_width"`
}

// WalkthroughConfig controls walkthrough behavior
type WalkthroughConfig struct {
	// AutoStart shows step 0 immediately when the walkthrough mounts.
	// When false the walkthrough stays inactive; there is no way to start
	// it later without remounting.
	AutoStart bool `mapstructure:"auto_start"`
	// StepsFile is the path to the YAML step manifest
	StepsFile string `mapstructure:"steps_file"`
	// LiveReload rebuilds the walkthrough when the steps file changes on disk
	LiveReload bool `mapstructure:"live_reload"`
	// Dimmer optionally overrides the dimming overlay style
	Dimmer DimmerConfig `mapstructure:"dimmer"`
}

// DimmerConfig overrides the dimming overlay rendered beneath the tooltip.
// Empty fields keep the theme's defaults.
type DimmerConfig struct {
	// Foreground is the color dimmed content is re-rendered in
	Foreground string `mapstructure:"foreground"`
	// Disabled turns the dimming layer off entirely
	Disabled bool `mapstructure:"disabled"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Level is the minimum level written to the log (debug, info, warn, error)
	Level string `mapstructure:"level"`
	// Dir is the directory the debug log is written to; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// Default returns a Config populated with default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:        "default",
			TooltipWidth: 44,
		},
		Walkthrough: WalkthroughConfig{
			AutoStart:  true,
			StepsFile:  "steps.yaml",
			LiveReload: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers default values with viper so they're available
// even without a config file
func SetDefaults() {
	defaults := Default()

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.tooltip_width", defaults.TUI.TooltipWidth)

	// Walkthrough defaults
	viper.SetDefault("walkthrough.auto_start", defaults.Walkthrough.AutoStart)
	viper.SetDefault("walkthrough.steps_file", defaults.Walkthrough.StepsFile)
	viper.SetDefault("walkthrough.live_reload", defaults.Walkthrough.LiveReload)
	viper.SetDefault("walkthrough.dimmer.foreground", defaults.Walkthrough.Dimmer.Foreground)
	viper.SetDefault("walkthrough.dimmer.disabled", defaults.Walkthrough.Dimmer.Disabled)

	// Logging defaults
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load unmarshals and validates the current viper configuration
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tourguide")
	}
	// Fall back to ~/.config/tourguide
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tourguide")
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
