// Package due lists nodos by due date.
package due

import (
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/nodo/pkg/logger"
	"tableflip.dev/nodo/pkg/printers"
	"tableflip.dev/nodo/pkg/store"
	"tableflip.dev/nodo/pkg/timeutil"
	"tableflip.dev/nodo/pkg/view"
)

type Due struct {
	Config      *store.Config
	Persistence store.Persistence
	Log         *logger.Logger
	Out         io.Writer

	// Within limits the listing to nodos due inside the window, for example
	// "1w". Overdue nodos are always listed. Empty lists everything.
	Within string
	// Calendar also prints the current month.
	Calendar bool
	Now      func() time.Time
}

func (d *Due) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("can not list, no persistence")
	}
	now := time.Now()
	if d.Now != nil {
		now = d.Now()
	}
	entries, err := d.Entries(ctx, now)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: d.out(), DateFormat: d.Config.DateFormat}
	pp.Due(now, entries...)
	if d.Calendar {
		pp.Calendar(now, entries...)
	}
	return nil
}

// Entries collects the nodos with a due date, soonest first.
func (d *Due) Entries(ctx context.Context, now time.Time) ([]printers.DueEntry, error) {
	var limit *time.Time
	if d.Within != "" {
		window, err := timeutil.ParseWindow(d.Within)
		if err != nil {
			return nil, err
		}
		l := timeutil.Day(window.From(now))
		limit = &l
	}

	var entries []printers.DueEntry
	for _, target := range d.Persistence.Keys(ctx) {
		if path := d.Config.BuildPath(target, true); d.Config.IsIgnored(path) {
			d.log().Skipped(path, "ignored")
			continue
		}
		doc, err := d.Persistence.Read(target)
		if err != nil {
			d.log().FileError(target, err)
			continue
		}
		if doc.DueDate == nil {
			continue
		}
		if limit != nil && timeutil.Day(*doc.DueDate).After(*limit) {
			continue
		}
		completed, total := view.CountCompletion(doc)
		entries = append(entries, printers.DueEntry{
			Target:    target,
			Title:     printers.Display(doc.Title),
			Due:       *doc.DueDate,
			Completed: completed,
			Total:     total,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Due.Before(entries[j].Due)
	})
	return entries, nil
}

func (d *Due) out() io.Writer {
	if d.Out == nil {
		return color.Output
	}
	return d.Out
}

func (d *Due) log() *logger.Logger {
	if d.Log == nil {
		return logger.Discard()
	}
	return d.Log
}
