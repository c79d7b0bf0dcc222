package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mroximut/hiper/pkg/errors"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "minutes", input: "25m", want: 25 * 60},
		{name: "hours_and_minutes", input: "1h30m", want: 90 * 60},
		{name: "full_hms", input: "1h30m10s", want: 90*60 + 10},
		{name: "seconds_only", input: "45s", want: 45},
		{name: "bare_number_means_minutes", input: "90", want: 90 * 60},
		{name: "mixed_unit_and_bare_tail", input: "1h30", want: 90 * 60},
		{name: "uppercase", input: "1H5M", want: 65 * 60},
		{name: "surrounding_whitespace", input: " 10m ", want: 10 * 60},
		{name: "empty", input: "", wantErr: true},
		{name: "unit_without_number", input: "h", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative_like", input: "-5m", wantErr: true},
		{name: "overflowing_number", input: "99999999999999999999h", wantErr: true},
		{name: "overflowing_bare_number", input: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00m00s"},
		{59, "00m59s"},
		{60, "01m00s"},
		{123, "02m03s"},
		{3600, "01h00m00s"},
		{3723, "01h02m03s"},
		{25 * 3600, "25h00m00s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHMS(tt.seconds))
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{75, "01:15"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3723, "01:02:03"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.seconds))
	}
}
