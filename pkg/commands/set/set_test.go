package set

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mroximut/hiper/pkg/config"
	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/paths"
)

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func TestApply_UpdatesAndPersists(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	savedir := filepath.Join(t.TempDir(), "data")
	result, err := Apply(SetOptions{
		Config:     cfg,
		Nick:       strPtr("  ada  "),
		Savedir:    strPtr(savedir),
		Clock:      strPtr("false"),
		WorkPerDay: strPtr("6h"),
		BarWidth:   intPtr(40),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"nick=ada",
		"savedir=" + savedir,
		"clock=false",
		"work_per_day=6h",
		"bar_width=40",
	}, result.Updated)

	// savedir is created eagerly so the next command can write to it.
	info, err := os.Stat(savedir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	reloaded, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "ada", reloaded.Nick())
	assert.Equal(t, savedir, reloaded.DataDir())
	assert.False(t, reloaded.ClockEnabled())
	assert.Equal(t, "6h", reloaded.WorkPerDay())
	assert.Equal(t, 40, reloaded.BarWidth())
}

func TestApply_NothingToDo(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)

	result, err := Apply(SetOptions{Config: cfg})
	require.NoError(t, err)
	assert.Empty(t, result.Updated)

	// No update means no config file is written.
	_, statErr := os.Stat(paths.ConfigFile(dir))
	assert.True(t, os.IsNotExist(statErr))
}

func TestApply_Validation(t *testing.T) {
	tests := []struct {
		name string
		opts func(cfg *config.Config) SetOptions
	}{
		{
			name: "relative_savedir",
			opts: func(cfg *config.Config) SetOptions {
				return SetOptions{Config: cfg, Savedir: strPtr("relative/path")}
			},
		},
		{
			name: "bogus_clock",
			opts: func(cfg *config.Config) SetOptions {
				return SetOptions{Config: cfg, Clock: strPtr("maybe")}
			},
		},
		{
			name: "bad_work_per_day",
			opts: func(cfg *config.Config) SetOptions {
				return SetOptions{Config: cfg, WorkPerDay: strPtr("a lot")}
			},
		},
		{
			name: "zero_bar_width",
			opts: func(cfg *config.Config) SetOptions {
				return SetOptions{Config: cfg, BarWidth: intPtr(0)}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(t.TempDir())
			require.NoError(t, err)

			_, err = Apply(tt.opts(cfg))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}

func TestApply_MasksAPIKeyInResult(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	result, err := Apply(SetOptions{Config: cfg, GeminiAPI: strPtr("sk-verysecretkey1234")})
	require.NoError(t, err)
	assert.Equal(t, []string{"gemini_api=***"}, result.Updated)
	assert.Equal(t, "sk-verysecretkey1234", cfg.GeminiAPI())
}

func TestShow_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	settings := Show(cfg)
	assert.Equal(t, "", settings.Nick)
	assert.True(t, settings.Clock)
	assert.Equal(t, config.DefaultWorkPerDay, settings.WorkPerDay)
	assert.Equal(t, config.DefaultBarWidth, settings.BarWidth)
	assert.Equal(t, "", settings.GeminiAPI)
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"short", "***"},
		{"12345678", "***"},
		{"sk-verysecretkey1234", "sk-v...1234"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskKey(tt.key))
	}
}
