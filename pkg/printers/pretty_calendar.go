package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/nodo/pkg/glyph"
	"tableflip.dev/nodo/pkg/timeutil"
)

// DueEntry is a nodo with a due date.
type DueEntry struct {
	Target    string    `json:"target" yaml:"target"`
	Title     string    `json:"title" yaml:"title"`
	Due       time.Time `json:"due" yaml:"due"`
	Completed int       `json:"completed" yaml:"completed"`
	Total     int       `json:"total" yaml:"total"`
}

// Due prints entries in the given order with their distance from now.
func (pp *PrettyPrint) Due(now time.Time, entries ...DueEntry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " nothing due\n\n")
		return
	}
	layout := pp.DateFormat
	if layout == "" {
		layout = "02/01/2006"
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	overdue := color.New(color.FgRed, color.Bold)
	soon := color.New(color.FgYellow)
	plain := color.New()
	for _, e := range entries {
		c := plain
		switch days := timeutil.DaysUntil(e.Due, now); {
		case days < 0:
			c = overdue
		case days <= 1:
			c = soon
		}
		tbl.AddRow(glyph.Nodo.String(), e.Target, e.Title, e.Due.Format(layout), c.Sprint(Relative(e.Due, now)), fmt.Sprintf("%d/%d", e.Completed, e.Total))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Relative describes a due date in whole days relative to now.
func Relative(due, now time.Time) string {
	switch timeutil.DaysUntil(due, now) {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	case -1:
		return "yesterday"
	}
	return humanize.RelTime(timeutil.Day(due), timeutil.Day(now), "ago", "from now")
}

// Calendar prints the month of on with the days that have something due
// highlighted.
func (pp *PrettyPrint) Calendar(on time.Time, entries ...DueEntry) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.UTC)
	count := make([]int, DaysIn(then))
	for _, e := range entries {
		if e.Due.Year() == then.Year() && e.Due.Month() == then.Month() {
			count[e.Due.Day()-1]++
		}
	}
	pp.PrintMonthCount(then, count)
}

const width = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	w := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	_, _ = fmt.Fprint(w, strings.Repeat("   ", int(d-time.Sunday)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiRed)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(w, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(w, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
