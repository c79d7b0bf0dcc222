package fokus

import "time"

// TimeOfDayMessage returns the greeting shown at the top of a session.
func TimeOfDayMessage(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return "Good morning — set your intention and start small."
	case hour >= 12 && hour < 17:
		return "Good afternoon — keep momentum, one focused block at a time."
	case hour >= 17 && hour < 22:
		return "Good evening — wrap up with clarity, avoid new rabbit holes."
	default:
		return "Late hours — protect energy; short, deliberate focus wins."
	}
}

var milestones = map[int]string{
	60:      "1 min — settling in.",
	5 * 60:  "5 min — friction fades.",
	10 * 60: "10 min — you're in.",
	15 * 60: "15 min — keep the streak.",
	20 * 60: "20 min — clarity compounds.",
	25 * 60: "25 min — classic pomodoro, consider a short break soon.",
	30 * 60: "30 min — deep work zone.",
	45 * 60: "45 min — powerful block, plan your next step.",
	60 * 60: "60 min — strong hour, write a quick summary.",
}

// ElapsedMessage returns the milestone message for an exact elapsed
// second count, or empty when the moment is not a milestone.
func ElapsedMessage(seconds int) string {
	return milestones[seconds]
}
