package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	factory := newTestFactory(t, "UTC")

	midnight := func(offsetDays int) time.Time {
		d := fixedClock.AddDate(0, 0, offsetDays)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "Empty input means now",
			input:    "",
			expected: fixedClock,
		},
		{
			name:     "Blank input means now",
			input:    "   ",
			expected: fixedClock,
		},
		{
			name:     "now",
			input:    "now",
			expected: fixedClock,
		},
		{
			name:     "midnight",
			input:    "midnight",
			expected: midnight(0),
		},
		{
			name:     "today",
			input:    "today",
			expected: midnight(0),
		},
		{
			name:     "tomorrow",
			input:    "tomorrow",
			expected: midnight(1),
		},
		{
			name:     "tomorrow, midnight",
			input:    "tomorrow, midnight",
			expected: midnight(1),
		},
		{
			name:     "Yesterday, midnight with mixed case",
			input:    "Yesterday, Midnight",
			expected: midnight(-1),
		},
		{
			name:     "ISO date",
			input:    "2026-01-27",
			expected: time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "ISO date and time",
			input:    "2026-01-27 15:04:05",
			expected: time.Date(2026, 1, 27, 15, 4, 5, 0, time.UTC),
		},
		{
			name:     "RFC3339",
			input:    "2026-01-27T10:00:00Z",
			expected: time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "Month name falls through to the heuristic parser",
			input:    "Jan 27, 2026",
			expected: time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Garbage",
			input:   "not a date at all",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := factory.Parse(tt.input, DefaultZone)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Time().Equal(tt.expected),
				"got %s, expected %s", got.Time(), tt.expected)
		})
	}
}

func TestParseInZone(t *testing.T) {
	factory := newTestFactory(t, "UTC")

	got, err := factory.Parse("2026-01-27 08:00:00", ZoneNamed("America/Bogota"))
	require.NoError(t, err)
	assert.Equal(t, "America/Bogota", got.Location().String())
	assert.Equal(t, 8, got.Hour())

	_, err = factory.Parse("2026-01-27", ZoneNamed("Not/AZone"))
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}
