package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mroximut/hiper/pkg/errors"
)

// ParseDuration parses a compact duration string like "25m", "1h30m" or
// "1h30m10s" into seconds. A trailing bare number means minutes, so "90"
// is an hour and a half. The result must be positive.
func ParseDuration(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, errors.New(errors.ErrInvalidInput, "empty duration")
	}

	total := 0
	num := ""
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9':
			num += string(ch)
		case ch == 'h' || ch == 'm' || ch == 's':
			if num == "" {
				return 0, errors.New(errors.ErrInvalidInput, "missing number before unit")
			}
			val, err := strconv.Atoi(num)
			if err != nil {
				return 0, errors.Wrapf(err, errors.ErrInvalidInput, "invalid number %q in duration", num)
			}
			switch ch {
			case 'h':
				total += val * 3600
			case 'm':
				total += val * 60
			case 's':
				total += val
			}
			num = ""
		default:
			return 0, errors.Newf(errors.ErrInvalidInput, "unexpected character %q in duration", ch)
		}
	}
	if num != "" {
		// trailing number with no unit means minutes
		val, err := strconv.Atoi(num)
		if err != nil {
			return 0, errors.Wrapf(err, errors.ErrInvalidInput, "invalid number %q in duration", num)
		}
		total += val * 60
	}
	if total <= 0 {
		return 0, errors.New(errors.ErrInvalidInput, "duration must be > 0")
	}
	return total, nil
}

// FormatHMS renders seconds as "01h02m03s", dropping the hour part when
// it is zero ("02m03s").
func FormatHMS(seconds int) string {
	minutes, secs := seconds/60, seconds%60
	hours, minutes := minutes/60, minutes%60
	if hours > 0 {
		return fmt.Sprintf("%02dh%02dm%02ds", hours, minutes, secs)
	}
	return fmt.Sprintf("%02dm%02ds", minutes, secs)
}

// FormatClock renders seconds as a wall-clock style "MM:SS" or "HH:MM:SS".
func FormatClock(seconds int) string {
	minutes, secs := seconds/60, seconds%60
	hours, minutes := minutes/60, minutes%60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
