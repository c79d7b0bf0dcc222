package storage

import (
	"path/filepath"
	"time"

	"github.com/mroximut/hiper/pkg/paths"
)

var logHeader = []string{"timestamp", "message"}

// LogEntry is one timestamped note in log.csv.
type LogEntry struct {
	Timestamp time.Time
	Message   string
}

// AppendLog appends a log entry and returns the file path.
func AppendLog(dir, message string, at time.Time) (string, error) {
	row := []string{at.Format(time.RFC3339), message}
	return appendRecord(dir, paths.LogFileName, logHeader, row)
}

// LoadLog reads all log entries. Rows that cannot be parsed are skipped.
func LoadLog(dir string) ([]LogEntry, error) {
	records, err := readRecords(filepath.Join(dir, paths.LogFileName))
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	var entries []LogEntry
	for i, row := range records[1:] {
		if len(row) < 2 {
			logSkippedRow(paths.LogFileName, i+2)
			continue
		}
		ts, err := time.Parse(time.RFC3339, row[0])
		if err != nil {
			logSkippedRow(paths.LogFileName, i+2)
			continue
		}
		entries = append(entries, LogEntry{Timestamp: ts, Message: row[1]})
	}
	return entries, nil
}
