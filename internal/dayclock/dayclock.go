// Package dayclock maps instants to activity-day keys.
//
// An activity day runs from 04:00 to 04:00 in the reference timezone (UTC+9)
// rather than midnight to midnight, so late-night activity still counts
// against the day just ending. Every producer of a day key (CLI, TUI, service
// writes, calendar reads) must go through this package; computing the shift
// anywhere else risks skewed keys and duplicate records.
package dayclock

import (
	"fmt"
	"time"
)

const (
	// DayKeyFormat is the canonical activity-day key layout (YYYY-MM-DD).
	DayKeyFormat = "2006-01-02"

	referenceOffsetHours = 9 // reference timezone is UTC+9
	cutoffShiftHours     = 4 // day boundary at 04:00, not midnight
)

// ActivityDay returns the activity-day key for the given instant.
// Pure function of t; independent of the caller's local timezone.
func ActivityDay(t time.Time) string {
	shifted := t.UTC().Add((referenceOffsetHours - cutoffShiftHours) * time.Hour)
	return shifted.Format(DayKeyFormat)
}

// Today returns the activity-day key for the current instant.
func Today() string {
	return ActivityDay(time.Now())
}

// Parse converts a day key back to a (midnight UTC) time for arithmetic.
func Parse(day string) (time.Time, error) {
	t, err := time.Parse(DayKeyFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", day, err)
	}
	return t, nil
}

// AddDays shifts a day key by n calendar days. Panics on a malformed key;
// keys produced by this package are always well-formed.
func AddDays(day string, n int) string {
	t, err := Parse(day)
	if err != nil {
		panic(err)
	}
	return t.AddDate(0, 0, n).Format(DayKeyFormat)
}

// Weekday returns the weekday of a day key.
func Weekday(day string) (time.Weekday, error) {
	t, err := Parse(day)
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}
