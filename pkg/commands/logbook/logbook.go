// Package logbook appends timestamped notes to log.csv and lists recent
// entries.
package logbook

import (
	"sort"
	"strings"
	"time"

	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/logging"
	"github.com/mroximut/hiper/pkg/storage"
)

// AppendOptions defines the options for appending a note.
type AppendOptions struct {
	DataDir string
	Message string
	Now     time.Time
}

// AppendResult reports the stored entry and the file it went to.
type AppendResult struct {
	Entry storage.LogEntry
	Path  string
}

// Append stores a note with the current timestamp. Empty messages are
// rejected.
func Append(opts AppendOptions) (*AppendResult, error) {
	log := logging.GetLogger("commands.logbook")

	message := strings.TrimSpace(opts.Message)
	if message == "" {
		return nil, errors.New(errors.ErrInvalidInput, "message cannot be empty")
	}

	path, err := storage.AppendLog(opts.DataDir, message, opts.Now)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("path", path).Msg("Appended log entry")
	return &AppendResult{
		Entry: storage.LogEntry{Timestamp: opts.Now, Message: message},
		Path:  path,
	}, nil
}

// ListOptions defines the options for listing recent notes.
type ListOptions struct {
	DataDir string
	// Last is the lookback window, e.g. "5m" or "1h".
	Last string
	Now  time.Time
}

// List returns the entries inside the lookback window, oldest first.
func List(opts ListOptions) ([]storage.LogEntry, error) {
	seconds, err := storage.ParseDuration(opts.Last)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid --last duration %q", opts.Last)
	}
	cutoff := opts.Now.Add(-time.Duration(seconds) * time.Second)

	entries, err := storage.LoadLog(opts.DataDir)
	if err != nil {
		return nil, err
	}

	var recent []storage.LogEntry
	for _, e := range entries {
		if !e.Timestamp.Before(cutoff) {
			recent = append(recent, e)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.Before(recent[j].Timestamp)
	})
	return recent, nil
}
