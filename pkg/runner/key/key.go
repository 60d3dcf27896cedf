// Package key provides CLI helpers to display the nodo legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/nodo/pkg/glyph"
)

// Key prints a glyph legend describing list items and entries.
type Key struct {
	Out io.Writer
}

// Do renders the item and entry keys.
func (k *Key) Do(ctx context.Context) error {
	var items, entries []glyph.Glyph
	for _, g := range glyph.DefaultGlyphs() {
		if g.Entry {
			entries = append(entries, g)
		} else {
			items = append(items, g)
		}
	}

	_, _ = fmt.Fprintln(k.out(), "")
	k.Key(ctx, "Items", items)
	k.Key(ctx, "Entries", entries)
	return nil
}

// Key renders one glyph table.
func (k *Key) Key(_ context.Context, heading string, glyfs []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(heading), bold.Sprint("Written as"), bold.Sprint("Meaning"))
	for _, v := range glyfs {
		tbl.AddRow(v.Symbol, v.Key, v.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.out(), tbl)
	_, _ = fmt.Fprintln(k.out(), "")
}

func (k *Key) out() io.Writer {
	if k.Out == nil {
		return color.Output
	}
	return k.Out
}
