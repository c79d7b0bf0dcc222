// Package postfokus records focus sessions after the fact and computes
// statistics over everything recorded so far.
package postfokus

import (
	"sort"
	"time"

	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/logging"
	"github.com/mroximut/hiper/pkg/storage"
)

// RecordOptions defines the options for recording a past session.
type RecordOptions struct {
	// DataDir is where sessions.csv lives.
	DataDir string
	// Title is the optional session title.
	Title string
	// Duration is required, e.g. "25m" or "1h30m".
	Duration string
	// Start and End are optional timestamps (RFC 3339, a bare
	// "2006-01-02T15:04:05", or "HH:MM" meaning today). Whichever is
	// missing is inferred from the other and the duration; with neither,
	// the session ends now.
	Start string
	End   string
	// Now anchors all inference, letting tests pin the clock.
	Now time.Time
}

// RecordResult reports the saved session and where it was written.
type RecordResult struct {
	Session storage.Session
	Path    string
}

// Record parses the duration and timestamps, infers the missing ends and
// appends the session to sessions.csv.
func Record(opts RecordOptions) (*RecordResult, error) {
	log := logging.GetLogger("commands.postfokus")

	durationS, err := storage.ParseDuration(opts.Duration)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid duration %q", opts.Duration)
	}

	var end time.Time
	if opts.End != "" {
		end, err = parseTimestamp(opts.End, opts.Now)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid end %q", opts.End)
		}
	}

	var start time.Time
	switch {
	case opts.Start != "":
		start, err = parseTimestamp(opts.Start, opts.Now)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid start %q", opts.Start)
		}
	case !end.IsZero():
		start = end.Add(-time.Duration(durationS) * time.Second)
	default:
		start = opts.Now.Add(-time.Duration(durationS) * time.Second)
	}

	if end.IsZero() {
		end = start.Add(time.Duration(durationS) * time.Second)
	}

	session := storage.Session{
		Title:    opts.Title,
		Start:    start,
		End:      end,
		Duration: durationS,
	}
	path, err := storage.SaveSession(opts.DataDir, session)
	if err != nil {
		return nil, err
	}

	log.Info().Str("title", opts.Title).Int("duration", durationS).Msg("Recorded past session")
	return &RecordResult{Session: session, Path: path}, nil
}

// parseTimestamp accepts an RFC 3339 timestamp, a zoneless ISO datetime,
// or "HH:MM" meaning today.
func parseTimestamp(s string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("15:04", s, now.Location()); err == nil {
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
	}
	return time.Time{}, errors.New(errors.ErrInvalidInput, "must be an ISO datetime or HH:MM")
}

// StatsOptions defines the options for the statistics queries.
type StatsOptions struct {
	DataDir string
	// Title filters statistics to one session title when non-empty.
	Title string
	Now   time.Time
}

// Stats aggregates recorded sessions over common time windows.
type Stats struct {
	Title        string
	Sessions     int
	TotalSeconds int
	AvgSeconds   int
	TodaySeconds int
	WeekSeconds  int
	MonthSeconds int
}

// Statistics computes totals over all sessions, optionally filtered by title.
func Statistics(opts StatsOptions) (*Stats, error) {
	sessions, err := storage.LoadSessions(opts.DataDir)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Title: opts.Title}

	todayStart := time.Date(opts.Now.Year(), opts.Now.Month(), opts.Now.Day(), 0, 0, 0, 0, opts.Now.Location())
	// Week starts on Monday.
	weekStart := todayStart.AddDate(0, 0, -((int(todayStart.Weekday()) + 6) % 7))
	monthStart := time.Date(opts.Now.Year(), opts.Now.Month(), 1, 0, 0, 0, 0, opts.Now.Location())

	for _, s := range sessions {
		if opts.Title != "" && s.Title != opts.Title {
			continue
		}
		stats.Sessions++
		stats.TotalSeconds += s.Duration
		if !s.Start.Before(todayStart) {
			stats.TodaySeconds += s.Duration
		}
		if !s.Start.Before(weekStart) {
			stats.WeekSeconds += s.Duration
		}
		if !s.Start.Before(monthStart) {
			stats.MonthSeconds += s.Duration
		}
	}

	if stats.Sessions > 0 {
		stats.AvgSeconds = stats.TotalSeconds / stats.Sessions
	}
	return stats, nil
}

// TitleStats aggregates sessions for one title.
type TitleStats struct {
	Title        string
	Sessions     int
	TotalSeconds int
}

// StatisticsByTitle computes per-title totals, sorted by total time
// descending.
func StatisticsByTitle(opts StatsOptions) ([]TitleStats, error) {
	sessions, err := storage.LoadSessions(opts.DataDir)
	if err != nil {
		return nil, err
	}

	agg := make(map[string]*TitleStats)
	var order []string
	for _, s := range sessions {
		entry, ok := agg[s.Title]
		if !ok {
			entry = &TitleStats{Title: s.Title}
			agg[s.Title] = entry
			order = append(order, s.Title)
		}
		entry.Sessions++
		entry.TotalSeconds += s.Duration
	}

	result := make([]TitleStats, 0, len(order))
	for _, title := range order {
		result = append(result, *agg[title])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSeconds > result[j].TotalSeconds
	})
	return result, nil
}
