// Package finish retires a goal, clearing its estimate and deadline
// while keeping the time already worked on the books.
package finish

import (
	"time"

	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/logging"
	"github.com/mroximut/hiper/pkg/storage"
)

// FinishOptions defines the options for the Finish command.
type FinishOptions struct {
	DataDir string
	Title   string
}

// FinishResult reports the retired goal.
type FinishResult struct {
	Goal storage.Goal
}

// Finish clears everything on the named goal except the time worked and
// persists the result. An unknown title is an error.
func Finish(opts FinishOptions) (*FinishResult, error) {
	log := logging.GetLogger("commands.finish")

	goals, err := storage.LoadGoals(opts.DataDir)
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
		return nil, errors.Newf(errors.ErrNotFound, "goal with title %q not found", opts.Title)
	}

	goal := &goals[idx]
	goal.EstimateSeconds = 0
	goal.EstimateTimestamp = time.Time{}
	goal.Deadline = time.Time{}
	goal.StartBy = time.Time{}

	if _, err := storage.SaveGoals(opts.DataDir, goals); err != nil {
		return nil, err
	}

	log.Info().Str("title", opts.Title).Msg("Finished goal")
	return &FinishResult{Goal: *goal}, nil
}
