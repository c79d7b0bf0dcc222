package storage

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/mroximut/hiper/pkg/paths"
)

var sessionsHeader = []string{"title", "start", "end", "duration", "duration_formatted"}

// Session is one recorded focus block.
type Session struct {
	Title    string
	Start    time.Time
	End      time.Time
	Duration int // seconds
}

// SaveSession appends a session to sessions.csv and returns the file path.
func SaveSession(dir string, s Session) (string, error) {
	row := []string{
		s.Title,
		s.Start.Format(time.RFC3339),
		s.End.Format(time.RFC3339),
		strconv.Itoa(s.Duration),
		FormatHMS(s.Duration),
	}
	return appendRecord(dir, paths.SessionsFileName, sessionsHeader, row)
}

// LoadSessions reads all sessions from sessions.csv. Rows that cannot be
// parsed are skipped.
func LoadSessions(dir string) ([]Session, error) {
	records, err := readRecords(sessionsPath(dir))
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	var sessions []Session
	for i, row := range records[1:] {
		if len(row) < 4 {
			logSkippedRow(paths.SessionsFileName, i+2)
			continue
		}
		start, err1 := time.Parse(time.RFC3339, row[1])
		end, err2 := time.Parse(time.RFC3339, row[2])
		duration, err3 := strconv.Atoi(row[3])
		if err1 != nil || err2 != nil || err3 != nil {
			logSkippedRow(paths.SessionsFileName, i+2)
			continue
		}
		sessions = append(sessions, Session{
			Title:    row[0],
			Start:    start,
			End:      end,
			Duration: duration,
		})
	}
	return sessions, nil
}

// TimeWorked sums the duration of sessions with the given title. When
// after is non-zero, only sessions starting at or after it count.
func TimeWorked(sessions []Session, title string, after time.Time) int {
	total := 0
	for _, s := range sessions {
		if s.Title != title {
			continue
		}
		if !after.IsZero() && s.Start.Before(after) {
			continue
		}
		total += s.Duration
	}
	return total
}

func sessionsPath(dir string) string {
	return filepath.Join(dir, paths.SessionsFileName)
}
