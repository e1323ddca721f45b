package models

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// dateTimeLayouts are the accepted forms of a value that carries a time of
// day, with and without a UTC offset. Fractional seconds are accepted by
// the ".999999999" element of the layouts that have seconds.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// ParseCalendarDate reads an ISO 8601 date ("2024-07-25") or date-time
// ("2024-07-25T14:30:00Z", "2024-07-25T14:30:00-05:00", "2024-07-25T14:30:00")
// and returns the calendar date it names as UTC midnight. The date is taken
// as written, so the offset never moves a value onto a neighbouring day.
func ParseCalendarDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < len(DateLayout) {
		return time.Time{}, false
	}
	if len(s) > len(DateLayout) {
		if s[len(DateLayout)] != 'T' && s[len(DateLayout)] != ' ' {
			return time.Time{}, false
		}
		if !validDateTime(s[:len(DateLayout)] + "T" + s[len(DateLayout)+1:]) {
			return time.Time{}, false
		}
	}
	d, err := time.Parse(DateLayout, s[:len(DateLayout)])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func validDateTime(s string) bool {
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// CalendarDay truncates t to its calendar date in its own location, as UTC midnight.
func CalendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
