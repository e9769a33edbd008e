// utils/time_utils.go
package utils

import (
	"strings"
	"time"
)

const (
	DateLayout    = "2006-01-02"
	DisplayLayout = "2006-01-02 15:04:05"
)

// Clock returns the current time. Services take one so tests can pin "today".
type Clock func() time.Time

// SystemClock is the wall clock.
func SystemClock() time.Time { return time.Now() }

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// DateOnly drops the time of day. Travel dates are calendar dates, so the
// result is always midnight UTC of t's calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate accepts YYYY-MM-DD and, for sloppy model output, YYYY/MM/DD.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "/", "-"))
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// NextWeekday is the next day strictly after today that falls on wd.
// When today already is wd the answer is one week later.
func NextWeekday(today time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(today.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return DateOnly(today).AddDate(0, 0, days)
}

func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DisplayLayout)
}
