// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultBannerHeight      = 30.0
	DefaultImageSize         = 15.0
	DefaultLoaderSize        = 15.0
	DefaultLoaderTitleOffset = 5.0
	DefaultHideLift          = 7.5

	DefaultMovement = 300 * time.Millisecond
	DefaultSwitcher = 100 * time.Millisecond
	DefaultPopUp    = 1500 * time.Millisecond
)

// Config represents the banner configuration.
type Config struct {
	Dimensions DimensionsConfig `toml:"dimensions"`
	Timing     TimingConfig     `toml:"timing"`
}

// DimensionsConfig holds the static banner geometry.
type DimensionsConfig struct {
	BannerHeight      float64 `toml:"banner_height"`       // Height of the banner strip
	ImageSize         float64 `toml:"image_size"`          // Square icon edge
	LoaderSize        float64 `toml:"loader_size"`         // Square loader edge
	LoaderTitleOffset float64 `toml:"loader_title_offset"` // Gap between loader/image and title
	HideLift          float64 `toml:"hide_lift"`           // Upward translation during hide
}

// TimingConfig holds the animation durations.
type TimingConfig struct {
	Movement time.Duration `toml:"movement"` // Entrance and exit animation duration
	Switcher time.Duration `toml:"switcher"` // Each half of a content cross-fade
	PopUp    time.Duration `toml:"pop_up"`   // Auto-hide delay after a Show
}

// TotalDelay is the full lifetime of an auto-hidden banner: entrance,
// pop-up dwell, and exit. Derived, never stored.
func (t TimingConfig) TotalDelay() time.Duration {
	return t.PopUp + 2*t.Movement
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dimensions: DimensionsConfig{
			BannerHeight:      DefaultBannerHeight,
			ImageSize:         DefaultImageSize,
			LoaderSize:        DefaultLoaderSize,
			LoaderTitleOffset: DefaultLoaderTitleOffset,
			HideLift:          DefaultHideLift,
		},
		Timing: TimingConfig{
			Movement: DefaultMovement,
			Switcher: DefaultSwitcher,
			PopUp:    DefaultPopUp,
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
	return filepath.Join(configHome, "banner", "config.toml")
}

// Load loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all dimensions and durations are positive.
func (c *Config) Validate() error {
	dims := map[string]float64{
		"banner_height":       c.Dimensions.BannerHeight,
		"image_size":          c.Dimensions.ImageSize,
		"loader_size":         c.Dimensions.LoaderSize,
		"loader_title_offset": c.Dimensions.LoaderTitleOffset,
		"hide_lift":           c.Dimensions.HideLift,
	}
	for name, v := range dims {
		if v <= 0 {
			return fmt.Errorf("dimensions.%s must be positive, got %v", name, v)
		}
	}

	durations := map[string]time.Duration{
		"movement": c.Timing.Movement,
		"switcher": c.Timing.Switcher,
		"pop_up":   c.Timing.PopUp,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("timing.%s must be positive, got %v", name, d)
		}
	}

	return nil
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
