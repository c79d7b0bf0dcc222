package fokus

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mroximut/hiper/pkg/storage"
)

// Outcome is how the interactive session ended.
type Outcome int

const (
	// OutcomeNone means the session is still running.
	OutcomeNone Outcome = iota
	// OutcomeSaved means the user asked to save the session.
	OutcomeSaved
	// OutcomeDiscarded means the user discarded the session.
	OutcomeDiscarded
	// OutcomeQuit means the user quit without an explicit save; whether
	// the session is persisted depends on the auto-save flag.
	OutcomeQuit
)

type keyMap struct {
	Pause   key.Binding
	Save    key.Binding
	Discard key.Binding
	Resume  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Discard: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "discard"),
		),
		Resume: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r/space", "resume"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	headerStyle    = lipgloss.NewStyle().Faint(true)
	timerStyle     = lipgloss.NewStyle().Bold(true)
	milestoneStyle = lipgloss.NewStyle().Italic(true)
	pausedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// model is the bubbletea model for a live focus session.
type model struct {
	tracker   *Tracker
	keys      keyMap
	title     string
	showClock bool
	now       time.Time
	outcome   Outcome
	pauseNote string
	milestone string
}

func newModel(start time.Time, title string, showClock bool) model {
	return model{
		tracker:   NewTracker(start),
		keys:      defaultKeyMap(),
		title:     title,
		showClock: showClock,
		now:       start,
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		if !m.tracker.Paused() {
			if note := ElapsedMessage(m.tracker.Elapsed(m.now)); note != "" {
				m.milestone = note
			}
		}
		return m, tick()

	case tea.KeyMsg:
		if m.tracker.Paused() {
			return m.updatePaused(msg)
		}
		return m.updateRunning(msg)
	}
	return m, nil
}

func (m model) updateRunning(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Pause):
		m.tracker.Pause(m.now)
		m.pauseNote = ""
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		m.outcome = OutcomeQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updatePaused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.outcome = OutcomeSaved
		return m, tea.Quit
	case key.Matches(msg, m.keys.Discard):
		m.outcome = OutcomeDiscarded
		return m, tea.Quit
	case key.Matches(msg, m.keys.Quit):
		m.outcome = OutcomeQuit
		return m, tea.Quit
	case key.Matches(msg, m.keys.Resume):
		pauseSeconds := m.tracker.Resume(m.now)
		m.pauseNote = "Paused for " + storage.FormatClock(pauseSeconds) +
			" — resumed at " + m.now.Format("15:04:05")
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(TimeOfDayMessage(m.tracker.Start())))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Press space to pause."))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Started at " + m.tracker.Start().Format("15:04:05")))
	b.WriteString("\n")
	if m.title != "" {
		b.WriteString(headerStyle.Render("Session: " + m.title))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	elapsed := m.tracker.Elapsed(m.now)
	b.WriteString("  " + timerStyle.Render(m.renderTimer(elapsed)))

	if m.milestone != "" {
		b.WriteString("  —  " + milestoneStyle.Render(m.milestone))
	}
	b.WriteString("\n")

	if m.tracker.Paused() {
		b.WriteString("\n" + pausedStyle.Render("Paused. (s save | d discard | r resume | q quit)") + "\n")
	} else if m.pauseNote != "" {
		b.WriteString("\n" + headerStyle.Render(m.pauseNote) + "\n")
	}

	return b.String()
}

// renderTimer shows a clock, or one dot per elapsed minute when the
// clock display is disabled. Pausing always shows the clock so the user
// sees what they are about to save.
func (m model) renderTimer(elapsed int) string {
	if !m.showClock && !m.tracker.Paused() {
		minutes := elapsed / 60
		if minutes == 0 {
			return ""
		}
		return strings.Repeat(".", minutes)
	}
	return storage.FormatClock(elapsed)
}
