package printers

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/nodo/pkg/glyph"
	"tableflip.dev/nodo/pkg/overview"
)

const barWidth = 20

// Overview prints the aggregated tree, descending at most depth levels below
// n. A negative depth prints everything.
func (pp *PrettyPrint) Overview(n *overview.Node, depth int) {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold)
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Progress"), bold.Sprint("Done"), bold.Sprint("Tasks"))
	pp.overviewRows(tbl, n, 0, depth)
	tbl.RightAlign(2)
	tbl.RightAlign(3)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func (pp *PrettyPrint) overviewRows(tbl *uitable.Table, n *overview.Node, level, depth int) {
	bullet := glyph.Nodo
	if n.IsDir {
		bullet = glyph.Project
	}
	name := strings.Repeat("  ", level) + bullet.String() + " " + n.Name
	if n.Err != nil {
		red := color.New(color.FgRed)
		tbl.AddRow(name, red.Sprint(n.Err), "", "")
	} else {
		tbl.AddRow(name, Bar(n.Completed, n.Total), percent(n), humanize.Comma(int64(n.Completed))+"/"+humanize.Comma(int64(n.Total)))
	}
	if depth >= 0 && level >= depth {
		return
	}
	for _, c := range n.Children {
		pp.overviewRows(tbl, c, level+1, depth)
	}
}

func percent(n *overview.Node) string {
	if n.Total == 0 {
		return "-"
	}
	return humanize.FtoaWithDigits(n.Percent(), 1) + "%"
}

// Bar draws a fixed width completion bar.
func Bar(completed, total int) string {
	filled := 0
	if total > 0 {
		filled = completed * barWidth / total
	}
	done := color.New(color.FgGreen)
	open := color.New(color.Faint)
	return done.Sprint(strings.Repeat("█", filled)) + open.Sprint(strings.Repeat("░", barWidth-filled))
}
