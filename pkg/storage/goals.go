package storage

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/mroximut/hiper/pkg/paths"
)

var goalsHeader = []string{
	"title",
	"estimate_seconds",
	"estimate_formatted",
	"estimate_timestamp",
	"deadline",
	"time_worked_seconds",
	"time_worked_formatted",
	"start_by",
}

const dateLayout = "2006-01-02"

// Goal is a planned unit of work with an optional estimate and deadline.
// Zero time values mean "not set".
type Goal struct {
	Title             string
	EstimateSeconds   int
	EstimateTimestamp time.Time
	Deadline          time.Time
	TimeWorkedSeconds int
	StartBy           time.Time
}

// HasEstimate reports whether the goal carries a current estimate.
func (g Goal) HasEstimate() bool {
	return g.EstimateSeconds > 0
}

// RemainingSeconds is the estimated time left, never negative.
func (g Goal) RemainingSeconds() int {
	remaining := g.EstimateSeconds - g.TimeWorkedSeconds
	if remaining < 0 {
		return 0
	}
	return remaining
}

// LoadGoals reads all goals from goals.csv. Rows that cannot be parsed
// are skipped.
func LoadGoals(dir string) ([]Goal, error) {
	records, err := readRecords(filepath.Join(dir, paths.GoalsFileName))
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	var goals []Goal
	for i, row := range records[1:] {
		if len(row) < 8 || row[0] == "" {
			logSkippedRow(paths.GoalsFileName, i+2)
			continue
		}
		g := Goal{Title: row[0]}
		g.EstimateSeconds, _ = strconv.Atoi(row[1])
		if row[3] != "" {
			g.EstimateTimestamp, _ = time.Parse(time.RFC3339, row[3])
		}
		if row[4] != "" {
			g.Deadline, _ = time.Parse(dateLayout, row[4])
		}
		g.TimeWorkedSeconds, _ = strconv.Atoi(row[5])
		if row[7] != "" {
			g.StartBy, _ = time.Parse(dateLayout, row[7])
		}
		goals = append(goals, g)
	}
	return goals, nil
}

// SaveGoals rewrites goals.csv with the given goals and returns the file path.
func SaveGoals(dir string, goals []Goal) (string, error) {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{
			g.Title,
			strconv.Itoa(g.EstimateSeconds),
			formatIfPositive(g.EstimateSeconds),
			formatIfSet(g.EstimateTimestamp, time.RFC3339),
			formatIfSet(g.Deadline, dateLayout),
			strconv.Itoa(g.TimeWorkedSeconds),
			FormatHMS(g.TimeWorkedSeconds),
			formatIfSet(g.StartBy, dateLayout),
		})
	}
	return rewriteFile(dir, paths.GoalsFileName, goalsHeader, rows)
}

func formatIfSet(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

func formatIfPositive(seconds int) string {
	if seconds <= 0 {
		return ""
	}
	return FormatHMS(seconds)
}
