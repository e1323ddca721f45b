package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCalendarDate(t *testing.T) {
	want := time.Date(2024, time.July, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"date only", "2024-07-25", true},
		{"utc date-time", "2024-07-25T14:30:00Z", true},
		{"late evening with negative offset", "2024-07-25T23:30:00-05:00", true},
		{"early morning with positive offset", "2024-07-25T00:30:00+09:00", true},
		{"fractional seconds", "2024-07-25T14:30:00.123Z", true},
		{"local date-time without offset", "2024-07-25T10:00:00", true},
		{"local date-time without seconds", "2024-07-25T10:00", true},
		{"local fractional seconds", "2024-07-25T10:00:00.5", true},
		{"space separator without offset", "2024-07-25 10:00:00", true},
		{"minutes with utc offset", "2024-07-25T10:00Z", true},
		{"dangling separator", "2024-07-25T", false},
		{"surrounding whitespace", "  2024-07-25 ", true},
		{"empty", "", false},
		{"garbage", "not-a-date", false},
		{"invalid month", "2024-13-01", false},
		{"trailing junk", "2024-07-25abc", false},
		{"bad time part", "2024-07-25T99:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCalendarDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, want.Equal(got), "got %s", got)
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}

func TestCalendarDay(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	got := CalendarDay(time.Date(2024, time.July, 26, 1, 0, 0, 0, tokyo))

	assert.Equal(t, time.Date(2024, time.July, 26, 0, 0, 0, 0, time.UTC), got)
}
