package postfokus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/storage"
)

// now is a Wednesday afternoon; week and month windows in these tests
// hang off it.
var now = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

func TestRecord_TimestampInference(t *testing.T) {
	tests := []struct {
		name      string
		duration  string
		start     string
		end       string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "duration_only_ends_now",
			duration:  "25m",
			wantStart: now.Add(-25 * time.Minute),
			wantEnd:   now,
		},
		{
			name:      "end_only_infers_start",
			duration:  "25m",
			end:       "14:00",
			wantStart: time.Date(2025, 3, 12, 13, 35, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC),
		},
		{
			name:      "start_only_infers_end",
			duration:  "1h",
			start:     "09:30",
			wantStart: time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 3, 12, 10, 30, 0, 0, time.UTC),
		},
		{
			name:      "iso_start",
			duration:  "30m",
			start:     "2025-03-11T22:00:00Z",
			wantStart: time.Date(2025, 3, 11, 22, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 3, 11, 22, 30, 0, 0, time.UTC),
		},
		{
			name:      "zoneless_datetime",
			duration:  "10m",
			start:     "2025-03-11T08:00:00",
			wantStart: time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 3, 11, 8, 10, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Record(RecordOptions{
				DataDir:  t.TempDir(),
				Title:    "work",
				Duration: tt.duration,
				Start:    tt.start,
				End:      tt.end,
				Now:      now,
			})
			require.NoError(t, err)
			assert.True(t, result.Session.Start.Equal(tt.wantStart), "start: got %v", result.Session.Start)
			assert.True(t, result.Session.End.Equal(tt.wantEnd), "end: got %v", result.Session.End)
		})
	}
}

func TestRecord_PersistsSession(t *testing.T) {
	dir := t.TempDir()

	result, err := Record(RecordOptions{DataDir: dir, Title: "work", Duration: "25m", Now: now})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Path)

	sessions, err := storage.LoadSessions(dir)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "work", sessions[0].Title)
	assert.Equal(t, 1500, sessions[0].Duration)
}

func TestRecord_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		opts RecordOptions
	}{
		{name: "missing_duration", opts: RecordOptions{Duration: "", Now: now}},
		{name: "bad_duration", opts: RecordOptions{Duration: "abc", Now: now}},
		{name: "bad_end", opts: RecordOptions{Duration: "25m", End: "yesterday", Now: now}},
		{name: "bad_start", opts: RecordOptions{Duration: "25m", Start: "25:99:99x", Now: now}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.DataDir = t.TempDir()
			_, err := Record(tt.opts)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		})
	}
}

func seedSessions(t *testing.T, dir string) {
	t.Helper()
	sessions := []storage.Session{
		// today
		{Title: "work", Start: time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC), Duration: 600},
		// Monday of the current week
		{Title: "work", Start: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), Duration: 1200},
		// Sunday before: inside the month, outside the week
		{Title: "side", Start: time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC), Duration: 1800},
		// previous month
		{Title: "work", Start: time.Date(2025, 2, 20, 9, 0, 0, 0, time.UTC), Duration: 3600},
	}
	for _, s := range sessions {
		s.End = s.Start.Add(time.Duration(s.Duration) * time.Second)
		_, err := storage.SaveSession(dir, s)
		require.NoError(t, err)
	}
}

func TestStatistics_Windows(t *testing.T) {
	dir := t.TempDir()
	seedSessions(t, dir)

	stats, err := Statistics(StatsOptions{DataDir: dir, Now: now})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Sessions)
	assert.Equal(t, 7200, stats.TotalSeconds)
	assert.Equal(t, 1800, stats.AvgSeconds)
	assert.Equal(t, 600, stats.TodaySeconds)
	assert.Equal(t, 1800, stats.WeekSeconds, "week starts on Monday")
	assert.Equal(t, 3600, stats.MonthSeconds)
}

func TestStatistics_TitleFilter(t *testing.T) {
	dir := t.TempDir()
	seedSessions(t, dir)

	stats, err := Statistics(StatsOptions{DataDir: dir, Title: "side", Now: now})
	require.NoError(t, err)

	assert.Equal(t, "side", stats.Title)
	assert.Equal(t, 1, stats.Sessions)
	assert.Equal(t, 1800, stats.TotalSeconds)
	assert.Equal(t, 0, stats.WeekSeconds)
}

func TestStatistics_EmptyData(t *testing.T) {
	stats, err := Statistics(StatsOptions{DataDir: t.TempDir(), Now: now})
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Sessions)
	assert.Equal(t, 0, stats.AvgSeconds)
}

func TestStatisticsByTitle_SortedByTotal(t *testing.T) {
	dir := t.TempDir()
	seedSessions(t, dir)

	stats, err := StatisticsByTitle(StatsOptions{DataDir: dir, Now: now})
	require.NoError(t, err)

	require.Len(t, stats, 2)
	assert.Equal(t, "work", stats[0].Title)
	assert.Equal(t, 5400, stats[0].TotalSeconds)
	assert.Equal(t, 3, stats[0].Sessions)
	assert.Equal(t, "side", stats[1].Title)
	assert.Equal(t, 1800, stats[1].TotalSeconds)
}
