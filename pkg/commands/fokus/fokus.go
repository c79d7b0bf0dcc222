// Package fokus runs the live focus session: a full-screen-free timer
// with pause, save, discard and milestone messages, persisting saved
// sessions to sessions.csv.
package fokus

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mroximut/hiper/pkg/errors"
	"github.com/mroximut/hiper/pkg/logging"
	"github.com/mroximut/hiper/pkg/storage"
)

// FokusOptions defines the options for a live session.
type FokusOptions struct {
	DataDir string
	// Title is the optional session title.
	Title string
	// AutoSave persists the session even when the user quits or
	// interrupts instead of saving explicitly.
	AutoSave bool
	// ShowClock renders a running clock; when false, one dot per minute.
	ShowClock bool
	// IsTTY must be true; the caller checks the terminal and passes the
	// verdict in so this package reads no process state.
	IsTTY bool
	Now   time.Time
}

// FokusResult reports how the session ended and what was persisted.
type FokusResult struct {
	Outcome Outcome
	Session storage.Session
	// Path is where the session was written, empty when nothing was saved.
	Path string
}

// Saved reports whether the session was persisted.
func (r *FokusResult) Saved() bool {
	return r.Path != ""
}

// Run drives the interactive timer until the user saves, discards or
// quits, then persists the session when appropriate.
func Run(opts FokusOptions) (*FokusResult, error) {
	log := logging.GetLogger("commands.fokus")

	if !opts.IsTTY {
		return nil, errors.New(errors.ErrInvalidInput,
			"fokus needs an interactive terminal; use 'hiper postfokus --duration' to record a session")
	}

	start := opts.Now
	if start.IsZero() {
		start = time.Now()
	}

	program := tea.NewProgram(newModel(start, opts.Title, opts.ShowClock))
	finalModel, err := program.Run()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "session UI failed")
	}

	m, ok := finalModel.(model)
	if !ok {
		return nil, errors.New(errors.ErrInternal, "unexpected session model")
	}

	end := time.Now()
	elapsed := m.tracker.Elapsed(end)
	result := &FokusResult{
		Outcome: m.outcome,
		Session: storage.Session{
			Title:    opts.Title,
			Start:    start,
			End:      end,
			Duration: elapsed,
		},
	}

	save := m.outcome == OutcomeSaved || (m.outcome == OutcomeQuit && opts.AutoSave)
	if !save {
		log.Debug().Int("elapsed", elapsed).Msg("Session not saved")
		return result, nil
	}

	path, err := storage.SaveSession(opts.DataDir, result.Session)
	if err != nil {
		return nil, err
	}
	result.Path = path
	log.Info().Str("title", opts.Title).Int("duration", elapsed).Msg("Saved session")
	return result, nil
}
