package printers

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// Diff returns the unified diff from before to after, empty when they are
// equal.
func Diff(name, before, after string) string {
	if before == after {
		return ""
	}
	edits := myers.ComputeEdits(span.URIFromPath(name), before, after)
	return fmt.Sprint(gotextdiff.ToUnified(name, name+" (formatted)", before, edits))
}

// RenderDiff styles a unified diff for a terminal. The diff is returned
// unchanged if rendering fails.
func (pp *PrettyPrint) RenderDiff(unified string) string {
	if unified == "" {
		return ""
	}
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	wrap := pp.Width
	if wrap <= 0 {
		wrap = 120
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return unified
	}
	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		return unified
	}
	return rendered
}
