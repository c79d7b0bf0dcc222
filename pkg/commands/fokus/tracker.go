package fokus

import "time"

// Tracker does the session time accounting: elapsed time accumulates
// only while running, and pause spans are kept out of the total. All
// methods take the current time so tests can drive the clock.
type Tracker struct {
	start       time.Time
	accumulated int // seconds banked before the current running span
	runStarted  time.Time
	paused      bool
	pauseStart  time.Time
}

// NewTracker starts tracking a session at now.
func NewTracker(now time.Time) *Tracker {
	return &Tracker{start: now, runStarted: now}
}

// Start returns when the session began.
func (t *Tracker) Start() time.Time {
	return t.start
}

// Paused reports whether the tracker is currently paused.
func (t *Tracker) Paused() bool {
	return t.paused
}

// Elapsed returns the focused seconds so far, excluding pauses.
func (t *Tracker) Elapsed(now time.Time) int {
	if t.paused {
		return t.accumulated
	}
	return t.accumulated + int(now.Sub(t.runStarted).Seconds())
}

// Pause banks the running span and stops the clock. Pausing while
// already paused is a no-op.
func (t *Tracker) Pause(now time.Time) {
	if t.paused {
		return
	}
	t.accumulated += int(now.Sub(t.runStarted).Seconds())
	t.paused = true
	t.pauseStart = now
}

// Resume restarts the clock and returns how long the pause lasted in
// seconds. Resuming while running is a no-op returning zero.
func (t *Tracker) Resume(now time.Time) int {
	if !t.paused {
		return 0
	}
	pauseSeconds := int(now.Sub(t.pauseStart).Seconds())
	t.paused = false
	t.runStarted = now
	t.pauseStart = time.Time{}
	return pauseSeconds
}
