// Package prefokus plans goals before the work happens: each goal
// carries a time estimate, an optional deadline, and a computed start-by
// date telling the user when they must begin to still make it.
package prefokus

import (
	"sort"
	"time"

	"github.com/mroximut/hiper/pkg/config"
	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/logging"
	"github.com/mroximut/hiper/pkg/storage"
)

const dateLayout = "2006-01-02"

// PlanOptions defines the options for creating or updating a goal.
type PlanOptions struct {
	DataDir string
	// Title identifies the goal.
	Title string
	// Estimate is the estimated time needed, e.g. "20h" or "1h30m".
	// Required when the goal does not exist yet.
	Estimate string
	// Deadline is an optional "YYYY-MM-DD" date. The deadline day itself
	// is not workable.
	Deadline string
	// WorkPerDay is the workable duration per day, e.g. "8h".
	WorkPerDay string
	Now        time.Time
}

// GoalSummary is a goal enriched with worked/remaining figures for display.
type GoalSummary struct {
	Goal storage.Goal
	// TotalWorkedSeconds counts every session with this title.
	TotalWorkedSeconds int
	// WorkedSinceEstimate counts only sessions after the estimate was set.
	WorkedSinceEstimate int
}

// RemainingSeconds is the estimate minus the work done since it was set,
// never negative.
func (s GoalSummary) RemainingSeconds() int {
	remaining := s.Goal.EstimateSeconds - s.WorkedSinceEstimate
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Plan creates a new goal or updates an existing one, refreshes the time
// worked of every goal from the recorded sessions, recomputes start-by
// dates and persists the result.
func Plan(opts PlanOptions) (*GoalSummary, error) {
	log := logging.GetLogger("commands.prefokus")

	secondsPerDay, err := workSecondsPerDay(opts.WorkPerDay)
	if err != nil {
		return nil, err
	}

	goals, err := storage.LoadGoals(opts.DataDir)
	if err != nil {
		return nil, err
	}
	sessions, err := storage.LoadSessions(opts.DataDir)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, g := range goals {
		if g.Title == opts.Title {
			idx = i
			break
		}
	}

	if idx < 0 {
		if opts.Estimate == "" {
			return nil, errors.New(errors.ErrInvalidInput, "estimate is required for new goals")
		}
		goals = append(goals, storage.Goal{Title: opts.Title})
		idx = len(goals) - 1
	}

	goal := &goals[idx]
	if opts.Estimate != "" {
		estimateSeconds, err := storage.ParseDuration(opts.Estimate)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid estimate %q", opts.Estimate)
		}
		goal.EstimateSeconds = estimateSeconds
		goal.EstimateTimestamp = opts.Now
	}
	if opts.Deadline != "" {
		deadline, err := time.ParseInLocation(dateLayout, opts.Deadline, opts.Now.Location())
		if err != nil {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid deadline %q, use YYYY-MM-DD", opts.Deadline)
		}
		goal.Deadline = deadline
	}

	refreshGoals(goals, sessions, secondsPerDay, opts.Now)

	if _, err := storage.SaveGoals(opts.DataDir, goals); err != nil {
		return nil, err
	}
	log.Info().Str("title", opts.Title).Msg("Saved goal")

	summary := summarize(*goal, sessions)
	return &summary, nil
}

// ListOptions defines the options for listing goals.
type ListOptions struct {
	DataDir string
	// All includes goals without a current estimate.
	All        bool
	WorkPerDay string
	Now        time.Time
}

// List returns goal summaries sorted by start-by, deadline, then title.
// Goals with no estimate are excluded unless All is set.
func List(opts ListOptions) ([]GoalSummary, error) {
	secondsPerDay, err := workSecondsPerDay(opts.WorkPerDay)
	if err != nil {
		return nil, err
	}

	goals, err := storage.LoadGoals(opts.DataDir)
	if err != nil {
		return nil, err
	}
	sessions, err := storage.LoadSessions(opts.DataDir)
	if err != nil {
		return nil, err
	}

	refreshGoals(goals, sessions, secondsPerDay, opts.Now)

	var summaries []GoalSummary
	for _, g := range goals {
		if !opts.All && !g.HasEstimate() {
			continue
		}
		summaries = append(summaries, summarize(g, sessions))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].Goal, summaries[j].Goal
		if !timeSortKey(a.StartBy).Equal(timeSortKey(b.StartBy)) {
			return timeSortKey(a.StartBy).Before(timeSortKey(b.StartBy))
		}
		if !timeSortKey(a.Deadline).Equal(timeSortKey(b.Deadline)) {
			return timeSortKey(a.Deadline).Before(timeSortKey(b.Deadline))
		}
		return a.Title < b.Title
	})
	return summaries, nil
}

// timeSortKey pushes unset dates to the end of the ordering.
func timeSortKey(t time.Time) time.Time {
	if t.IsZero() {
		return time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	}
	return t
}

func workSecondsPerDay(workPerDay string) (int, error) {
	if workPerDay == "" {
		workPerDay = config.DefaultWorkPerDay
	}
	seconds, err := storage.ParseDuration(workPerDay)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrInvalidInput, "invalid work_per_day %q", workPerDay)
	}
	return seconds, nil
}

// refreshGoals recomputes time worked and start-by for every goal from
// the recorded sessions.
func refreshGoals(goals []storage.Goal, sessions []storage.Session, secondsPerDay int, now time.Time) {
	for i := range goals {
		g := &goals[i]
		g.TimeWorkedSeconds = storage.TimeWorked(sessions, g.Title, g.EstimateTimestamp)
		if g.HasEstimate() && !g.Deadline.IsZero() {
			g.StartBy = StartBy(g.EstimateSeconds, g.Deadline, g.TimeWorkedSeconds, secondsPerDay, now)
		}
	}
}

func summarize(g storage.Goal, sessions []storage.Session) GoalSummary {
	return GoalSummary{
		Goal:                g,
		TotalWorkedSeconds:  storage.TimeWorked(sessions, g.Title, time.Time{}),
		WorkedSinceEstimate: storage.TimeWorked(sessions, g.Title, g.EstimateTimestamp),
	}
}

// StartBy computes the latest date work can begin and still finish the
// remaining estimate before the deadline. The deadline day itself is not
// workable. A finished goal starts today.
func StartBy(estimateSeconds int, deadline time.Time, workedSeconds, secondsPerDay int, now time.Time) time.Time {
	remaining := estimateSeconds - workedSeconds
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if remaining <= 0 {
		return today
	}

	daysNeeded := (remaining + secondsPerDay - 1) / secondsPerDay
	lastWorkableDay := deadline.AddDate(0, 0, -1)
	return lastWorkableDay.AddDate(0, 0, -(daysNeeded - 1))
}
