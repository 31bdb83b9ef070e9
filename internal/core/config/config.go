// Package config handles configuration loading and validation for toasts.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/toasts/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	TUI         TUIConfig   `yaml:"tui"`
	Keybindings Keybindings `yaml:"keybindings"`
}

// TUIConfig controls how the toast stack is drawn.
type TUIConfig struct {
	Theme      string        `yaml:"theme"`
	ToastWidth int           `yaml:"toast_width"`
	ToastTTL   time.Duration `yaml:"toast_ttl"`   // 0 keeps toasts until dismissed
	MaxVisible int           `yaml:"max_visible"` // older toasts beyond this are summarised
}

// Keybindings maps toast actions to keys. Each action accepts several keys.
type Keybindings struct {
	Dismiss  []string `yaml:"dismiss"`
	ClearAll []string `yaml:"clear_all"`
	Next     []string `yaml:"next"`
	Prev     []string `yaml:"prev"`
}

const (
	minToastWidth = 20
	maxToastWidth = 200

	toastTTLFloor = time.Second
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:      styles.DefaultTheme,
			ToastWidth: 50,
			ToastTTL:   0,
			MaxVisible: 5,
		},
		Keybindings: Keybindings{
			Dismiss:  []string{"x", "delete"},
			ClearAll: []string{"C"},
			Next:     []string{"down", "j"},
			Prev:     []string{"up", "k"},
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.ToastWidth == 0 {
		c.TUI.ToastWidth = defaults.TUI.ToastWidth
	}
	if c.TUI.MaxVisible == 0 {
		c.TUI.MaxVisible = defaults.TUI.MaxVisible
	}
	if len(c.Keybindings.Dismiss) == 0 {
		c.Keybindings.Dismiss = defaults.Keybindings.Dismiss
	}
	if len(c.Keybindings.ClearAll) == 0 {
		c.Keybindings.ClearAll = defaults.Keybindings.ClearAll
	}
	if len(c.Keybindings.Next) == 0 {
		c.Keybindings.Next = defaults.Keybindings.Next
	}
	if len(c.Keybindings.Prev) == 0 {
		c.Keybindings.Prev = defaults.Keybindings.Prev
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not a built-in theme", c.TUI.Theme)
	}

	if c.TUI.ToastWidth < minToastWidth || c.TUI.ToastWidth > maxToastWidth {
		return fmt.Errorf("tui.toast_width must be between %d and %d", minToastWidth, maxToastWidth)
	}

	if c.TUI.ToastTTL < 0 {
		return fmt.Errorf("tui.toast_ttl cannot be negative")
	}

	if c.TUI.MaxVisible < 1 {
		return fmt.Errorf("tui.max_visible must be at least 1")
	}

	return nil
}
