// Package timeutil parses the relative windows and dates accepted on the
// command line.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is used when a window is asked for but none was given.
const DefaultWindow = "1w"

// Window is a span of calendar time such as "3d" or "1m2w". Months and years
// follow the calendar, so "1m" from January 31 ends in March.
type Window struct {
	Years  int
	Months int
	Days   int
}

var (
	segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units   = map[string]func(w *Window, n int){
		"d":      func(w *Window, n int) { w.Days += n },
		"day":    func(w *Window, n int) { w.Days += n },
		"days":   func(w *Window, n int) { w.Days += n },
		"w":      func(w *Window, n int) { w.Days += 7 * n },
		"wk":     func(w *Window, n int) { w.Days += 7 * n },
		"wks":    func(w *Window, n int) { w.Days += 7 * n },
		"week":   func(w *Window, n int) { w.Days += 7 * n },
		"weeks":  func(w *Window, n int) { w.Days += 7 * n },
		"m":      func(w *Window, n int) { w.Months += n },
		"mo":     func(w *Window, n int) { w.Months += n },
		"month":  func(w *Window, n int) { w.Months += n },
		"months": func(w *Window, n int) { w.Months += n },
		"y":      func(w *Window, n int) { w.Years += n },
		"yr":     func(w *Window, n int) { w.Years += n },
		"year":   func(w *Window, n int) { w.Years += n },
		"years":  func(w *Window, n int) { w.Years += n },
	}
)

// ParseWindow parses windows like "1w", "3d" or "1y2m3d". Segments add up.
// An empty input means DefaultWindow.
func ParseWindow(input string) (Window, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		remaining = DefaultWindow
	}

	var w Window
	for strings.TrimSpace(remaining) != "" {
		m := segment.FindStringSubmatch(remaining)
		if m == nil {
			return Window{}, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Window{}, fmt.Errorf("invalid window value %q: %w", m[1], err)
		}
		add, ok := units[m[2]]
		if !ok {
			return Window{}, fmt.Errorf("unsupported window unit %q", m[2])
		}
		add(&w, n)
		remaining = remaining[len(m[0]):]
	}

	if w == (Window{}) {
		return Window{}, fmt.Errorf("window must be longer than zero")
	}
	return w, nil
}

// From is the time w after t.
func (w Window) From(t time.Time) time.Time {
	return t.AddDate(w.Years, w.Months, w.Days)
}

// String renders w compactly, whole weeks folded out of the days.
func (w Window) String() string {
	var sb strings.Builder
	write := func(n int, unit string) {
		if n > 0 {
			sb.WriteString(strconv.Itoa(n) + unit)
		}
	}
	write(w.Years, "y")
	write(w.Months, "m")
	write(w.Days/7, "w")
	write(w.Days%7, "d")
	if sb.Len() == 0 {
		return "0d"
	}
	return sb.String()
}
