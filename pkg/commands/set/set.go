// Package set applies configuration changes and reports current settings.
package set

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mroximut/hiper/pkg/config"
	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/logging"
	"github.com/mroximut/hiper/pkg/storage"
)

// SetOptions defines the options for the Apply command. Nil pointers
// mean "leave unchanged".
type SetOptions struct {
	Config     *config.Config
	Nick       *string
	Savedir    *string
	Clock      *string // "true" or "false"
	WorkPerDay *string
	BarWidth   *int
	GeminiAPI  *string
}

// SetResult lists the settings that were updated, as key=value strings
// with secrets masked.
type SetResult struct {
	Updated []string
}

// Apply validates and stores the given settings.
func Apply(opts SetOptions) (*SetResult, error) {
	log := logging.GetLogger("commands.set")
	cfg := opts.Config
	result := &SetResult{}

	if opts.Nick != nil {
		nick := strings.TrimSpace(*opts.Nick)
		cfg.Set(config.KeyNick, nick)
		result.Updated = append(result.Updated, "nick="+nick)
	}

	if opts.Savedir != nil {
		savedir := strings.TrimSpace(*opts.Savedir)
		if !filepath.IsAbs(savedir) {
			return nil, errors.Newf(errors.ErrInvalidInput, "savedir must be an absolute path: %s", savedir)
		}
		if err := os.MkdirAll(savedir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", savedir)
		}
		cfg.Set(config.KeySavedir, savedir)
		result.Updated = append(result.Updated, "savedir="+savedir)
	}

	if opts.Clock != nil {
		clock := strings.ToLower(strings.TrimSpace(*opts.Clock))
		if clock != "true" && clock != "false" {
			return nil, errors.Newf(errors.ErrInvalidInput, "clock must be 'true' or 'false', got: %s", clock)
		}
		cfg.Set(config.KeyClock, clock == "true")
		result.Updated = append(result.Updated, "clock="+clock)
	}

	if opts.WorkPerDay != nil {
		workPerDay := strings.TrimSpace(*opts.WorkPerDay)
		if _, err := storage.ParseDuration(workPerDay); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid work-per-day %q", workPerDay)
		}
		cfg.Set(config.KeyWorkPerDay, workPerDay)
		result.Updated = append(result.Updated, "work_per_day="+workPerDay)
	}

	if opts.BarWidth != nil {
		if *opts.BarWidth <= 0 {
			return nil, errors.Newf(errors.ErrInvalidInput, "bar-width must be > 0, got %d", *opts.BarWidth)
		}
		cfg.Set(config.KeyBarWidth, *opts.BarWidth)
		result.Updated = append(result.Updated, fmt.Sprintf("bar_width=%d", *opts.BarWidth))
	}

	if opts.GeminiAPI != nil {
		cfg.Set(config.KeyGeminiAPI, strings.TrimSpace(*opts.GeminiAPI))
		result.Updated = append(result.Updated, "gemini_api=***")
	}

	if len(result.Updated) == 0 {
		return result, nil
	}

	if err := cfg.Save(); err != nil {
		return nil, err
	}
	log.Info().Strs("updated", result.Updated).Msg("Updated settings")
	return result, nil
}

// Settings is a read-only view of the current configuration, with the
// API key masked for display.
type Settings struct {
	Nick       string
	Savedir    string
	Clock      bool
	WorkPerDay string
	BarWidth   int
	GeminiAPI  string
}

// Show returns the current settings.
func Show(cfg *config.Config) Settings {
	return Settings{
		Nick:       cfg.Nick(),
		Savedir:    cfg.Savedir(),
		Clock:      cfg.ClockEnabled(),
		WorkPerDay: cfg.WorkPerDay(),
		BarWidth:   cfg.BarWidth(),
		GeminiAPI:  MaskKey(cfg.GeminiAPI()),
	}
}

// MaskKey hides the middle of an API key, keeping four characters on
// each end when the key is long enough.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) > 8 {
		return key[:4] + "..." + key[len(key)-4:]
	}
	return "***"
}
