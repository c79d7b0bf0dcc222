// Package config manages hiper's persistent settings, stored as JSON in
// the default data directory. Settings are read through typed accessors
// so defaults live in one place.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/paths"
)

// Configuration keys
const (
	KeyNick       = "nick"
	KeySavedir    = "savedir"
	KeyClock      = "clock"
	KeyWorkPerDay = "work_per_day"
	KeyBarWidth   = "bar_width"
	KeyGeminiAPI  = "gemini_api"
)

// Defaults
const (
	// DefaultWorkPerDay is the assumed workable time per day when
	// computing start-by dates for goals.
	DefaultWorkPerDay = "8h"

	// DefaultBarWidth is the width of the reading progress bar.
	DefaultBarWidth = 30
)

// Config wraps a viper instance bound to the config file. The config
// file always lives in the default data directory; a configured savedir
// only relocates the CSV data files.
type Config struct {
	v         *viper.Viper
	configDir string
}

// Load reads the config file from configDir, returning defaults when the
// file does not exist yet.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(paths.ConfigFile(configDir))
	v.SetConfigType("json")

	v.SetDefault(KeyClock, true)
	v.SetDefault(KeyWorkPerDay, DefaultWorkPerDay)
	v.SetDefault(KeyBarWidth, DefaultBarWidth)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot load config file %s", paths.ConfigFile(configDir))
		}
	}

	return &Config{v: v, configDir: configDir}, nil
}

// Save writes the current settings back to the config file, creating the
// config directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create config directory %s", c.configDir)
	}
	if err := c.v.WriteConfigAs(paths.ConfigFile(c.configDir)); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "cannot write config file %s", paths.ConfigFile(c.configDir))
	}
	return nil
}

// Set stores a value under the given key. Save must be called to persist it.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// DataDir resolves where the CSV data files live: the configured savedir
// when it is an absolute path, otherwise the default data directory.
func (c *Config) DataDir() string {
	savedir := c.v.GetString(KeySavedir)
	if savedir != "" && filepath.IsAbs(savedir) {
		return savedir
	}
	return c.configDir
}

// Nick returns the configured nickname, empty when unset.
func (c *Config) Nick() string {
	return c.v.GetString(KeyNick)
}

// Savedir returns the raw savedir setting, empty when unset.
func (c *Config) Savedir() string {
	return c.v.GetString(KeySavedir)
}

// ClockEnabled reports whether the fokus timer shows a running clock.
// When disabled, the timer renders one dot per elapsed minute instead.
func (c *Config) ClockEnabled() bool {
	return c.v.GetBool(KeyClock)
}

// WorkPerDay returns the configured workable duration per day as a
// duration string (e.g. "8h").
func (c *Config) WorkPerDay() string {
	return c.v.GetString(KeyWorkPerDay)
}

// BarWidth returns the configured progress bar width.
func (c *Config) BarWidth() int {
	w := c.v.GetInt(KeyBarWidth)
	if w <= 0 {
		return DefaultBarWidth
	}
	return w
}

// GeminiAPI returns the stored Gemini API key, empty when unset.
func (c *Config) GeminiAPI() string {
	return c.v.GetString(KeyGeminiAPI)
}
