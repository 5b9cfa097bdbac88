// Package config loads datecombo settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/datecombo/internal/datesel"
	"github.com/llehouerou/datecombo/internal/ui"
)

const (
	defaultYears       = datesel.DefaultSpanYears
	defaultHistorySize = 10
	maxHistorySize     = 100
)

type Config struct {
	Locale string       `koanf:"locale"` // BCP 47 tag, e.g. "en", "tr-TR"
	Picker PickerConfig `koanf:"picker"`
	State  StateConfig  `koanf:"state"`
}

// PickerConfig holds the date picker bounds and layout.
type PickerConfig struct {
	MinDate        string `koanf:"min_date"`        // YYYY-MM-DD, empty = today - years_back
	MaxDate        string `koanf:"max_date"`        // YYYY-MM-DD, empty = today + years_forward
	YearsBack      int    `koanf:"years_back"`      // default: 3
	YearsForward   int    `koanf:"years_forward"`   // default: 3
	DropdownHeight int    `koanf:"dropdown_height"` // visible entries in an open list (default: 7)
}

// StateConfig controls persistence of the selected value.
type StateConfig struct {
	Remember    *bool  `koanf:"remember"`     // restore the last value on startup (default: true)
	HistorySize int    `koanf:"history_size"` // recent values kept (1-100, default: 10)
	Path        string `koanf:"path"`         // database file, empty = XDG data dir
}

// Load reads the user config file and then ./config.toml, last wins.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order. Missing files are skipped.
// Bounds are left unparsed so command-line flags can still replace them.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Picker.YearsBack <= 0 {
		c.Picker.YearsBack = defaultYears
	}
	if c.Picker.YearsForward <= 0 {
		c.Picker.YearsForward = defaultYears
	}
	if c.Picker.DropdownHeight <= 0 {
		c.Picker.DropdownHeight = ui.DropdownHeight
	}
	if c.State.HistorySize <= 0 || c.State.HistorySize > maxHistorySize {
		c.State.HistorySize = defaultHistorySize
	}
	if c.State.Path != "" {
		c.State.Path = expandPath(c.State.Path)
	}
}

// Bounds resolves the configured bounds relative to today. A side left
// empty spans the configured years from today, or from the other side when
// that would put it on the wrong side of the configured date.
func (c *Config) Bounds(today datesel.Date) (minDate, maxDate datesel.Date, err error) {
	minDate = today.AddYears(-c.Picker.YearsBack)
	maxDate = today.AddYears(c.Picker.YearsForward)
	hasMin, hasMax := c.Picker.MinDate != "", c.Picker.MaxDate != ""

	if hasMin {
		if minDate, err = datesel.ParseDate(c.Picker.MinDate); err != nil {
			return datesel.Date{}, datesel.Date{}, fmt.Errorf("picker.min_date: %w", err)
		}
	}
	if hasMax {
		if maxDate, err = datesel.ParseDate(c.Picker.MaxDate); err != nil {
			return datesel.Date{}, datesel.Date{}, fmt.Errorf("picker.max_date: %w", err)
		}
	}
	if !maxDate.Before(minDate) {
		return minDate, maxDate, nil
	}
	switch {
	case hasMin && hasMax:
		return datesel.Date{}, datesel.Date{}, errors.New("picker.max_date is before picker.min_date")
	case hasMin:
		maxDate = minDate.AddYears(c.Picker.YearsForward)
	default:
		minDate = maxDate.AddYears(-c.Picker.YearsBack)
	}
	return minDate, maxDate, nil
}

// RememberValue reports whether the last value should be restored.
func (c *Config) RememberValue() bool {
	return c.State.Remember == nil || *c.State.Remember
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/datecombo/config.toml
		filepath.Join(xdg.ConfigHome, "datecombo", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
