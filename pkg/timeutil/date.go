package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// ResolveDate turns a command line date into a calendar date at midnight UTC.
// Besides a date in layout it accepts "today", "tomorrow" and a window
// relative to now prefixed with "+", e.g. "+3d".
func ResolveDate(input, layout string, now time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch {
	case s == "today":
		return Day(now), nil
	case s == "tomorrow":
		return Day(now).AddDate(0, 0, 1), nil
	case strings.HasPrefix(s, "+"):
		if s == "+" {
			return time.Time{}, fmt.Errorf("date %q has no window", input)
		}
		w, err := ParseWindow(strings.TrimPrefix(s, "+"))
		if err != nil {
			return time.Time{}, err
		}
		return Day(w.From(now)), nil
	}
	t, err := time.Parse(layout, strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q does not match %q", input, layout)
	}
	return t, nil
}

// Day drops the time of day, keeping the local calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil counts calendar days from now to then, negative when overdue.
func DaysUntil(then, now time.Time) int {
	return int(Day(then).Sub(Day(now)).Hours() / 24)
}
