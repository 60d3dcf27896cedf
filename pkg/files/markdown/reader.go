package markdown

import (
	"strings"

	"tableflip.dev/nodo/pkg/events"
	"tableflip.dev/nodo/pkg/files"
	"tableflip.dev/nodo/pkg/nodo"
)

func unhandled(e events.Event, context string) {
	panic(&files.UnhandledEventError{Event: e, Context: context})
}

// readBlock builds the block opened by e.
func readBlock(c *events.Cursor, e events.Event, context string) nodo.Block {
	switch e.Kind {
	case events.HeadingStart:
		return &nodo.Heading{Text: readHeading(c), Level: e.Level}
	case events.ParagraphStart:
		return &nodo.Paragraph{Lines: readParagraph(c, nil)}
	case events.ListStart:
		return &nodo.List{Kind: readList(c, e)}
	case events.BlockQuoteStart:
		return &nodo.BlockQuote{Blocks: readBlockQuote(c)}
	case events.CodeBlockStart:
		return &nodo.Code{Language: e.Value, Lines: readCode(c)}
	case events.Rule:
		return &nodo.Rule{}
	}
	unhandled(e, context)
	return nil
}

// readHeading collects heading text up to HeadingEnd. Line breaks inside a
// heading become a single space.
func readHeading(c *events.Cursor) nodo.Text {
	var text nodo.Text
	for {
		e, ok := c.Next()
		if !ok {
			return text
		}
		switch e.Kind {
		case events.HeadingEnd:
			return text
		case events.SoftBreak, events.HardBreak:
			appendPlain(&text, " ")
		default:
			if !readInline(c, e, &text) {
				unhandled(e, "read heading")
			}
		}
	}
}

// taskMarker records an explicit checkbox met at the start of a list item.
type taskMarker struct {
	seen    bool
	checked bool
}

// readParagraph returns one Text per line. Empty lines are dropped. A task
// marker is accepted only at the very start and only when marker is not nil.
func readParagraph(c *events.Cursor, marker *taskMarker) []nodo.Text {
	var lines []nodo.Text
	var line nodo.Text
	flush := func() {
		if len(line) > 0 {
			lines = append(lines, line)
			line = nil
		}
	}
	for {
		e, ok := c.Next()
		if !ok {
			flush()
			return lines
		}
		switch e.Kind {
		case events.ParagraphEnd:
			flush()
			return lines
		case events.SoftBreak, events.HardBreak:
			flush()
		case events.TaskMarker:
			if marker == nil || len(lines) > 0 || len(line) > 0 {
				unhandled(e, "read paragraph")
			}
			marker.seen, marker.checked = true, e.Checked
		default:
			if !readInline(c, e, &line) {
				unhandled(e, "read paragraph")
			}
		}
	}
}

func readBlockQuote(c *events.Cursor) []nodo.Block {
	var blocks []nodo.Block
	for {
		e, ok := c.Next()
		if !ok || e.Kind == events.BlockQuoteEnd {
			return blocks
		}
		blocks = append(blocks, readBlock(c, e, "read block quote"))
	}
}

func readCode(c *events.Cursor) []string {
	var lines []string
	for {
		e, ok := c.Next()
		if !ok {
			return lines
		}
		switch e.Kind {
		case events.CodeBlockEnd:
			return lines
		case events.Text:
			lines = append(lines, e.Value)
		default:
			unhandled(e, "read code block")
		}
	}
}

func readList(c *events.Cursor, start events.Event) nodo.ListKind {
	var kind nodo.ListKind
	if start.Start != nil {
		kind.Numbered, kind.Start = true, *start.Start
	}
	for {
		e, ok := c.Next()
		if !ok {
			return kind
		}
		switch e.Kind {
		case events.ListEnd:
			return kind
		case events.ItemStart:
			kind.Items = append(kind.Items, readListItem(c))
		default:
			unhandled(e, "read list")
		}
	}
}

// readListItem builds one item. A list that ends the item becomes its nested
// list; a list followed by anything else stays a block in place, so the
// order of the item's content survives a rewrite.
func readListItem(c *events.Cursor) nodo.ListItem {
	var (
		blocks []nodo.Block
		lines  []nodo.Text
		line   nodo.Text
		marker taskMarker
		nested *nodo.ListKind
	)
	flushLine := func() {
		if len(line) > 0 {
			lines = append(lines, line)
			line = nil
		}
	}
	demote := func() {
		if nested != nil {
			blocks = append(blocks, &nodo.List{Kind: *nested})
			nested = nil
		}
	}
	flushParagraph := func() {
		flushLine()
		if len(lines) > 0 {
			demote()
			blocks = append(blocks, &nodo.Paragraph{Lines: lines})
			lines = nil
		}
	}
	for {
		e, ok := c.Next()
		if !ok {
			e = events.Of(events.ItemEnd)
		}
		switch e.Kind {
		case events.ItemEnd:
			flushParagraph()
			return classifyItem(blocks, marker, nested)
		case events.SoftBreak, events.HardBreak:
			flushLine()
		case events.TaskMarker:
			if len(blocks) > 0 || len(lines) > 0 || len(line) > 0 {
				unhandled(e, "read list item")
			}
			marker.seen, marker.checked = true, e.Checked
		case events.ParagraphStart:
			flushParagraph()
			m := &marker
			if len(blocks) > 0 || marker.seen {
				m = nil
			}
			if p := readParagraph(c, m); len(p) > 0 {
				demote()
				blocks = append(blocks, &nodo.Paragraph{Lines: p})
			}
		case events.ListStart:
			flushParagraph()
			demote()
			l := readList(c, e)
			nested = &l
		case events.HeadingStart, events.BlockQuoteStart, events.CodeBlockStart, events.Rule:
			flushParagraph()
			demote()
			blocks = append(blocks, readBlock(c, e, "read list item"))
		default:
			if !readInline(c, e, &line) {
				unhandled(e, "read list item")
			}
		}
	}
}

func classifyItem(blocks []nodo.Block, marker taskMarker, nested *nodo.ListKind) nodo.ListItem {
	item := nodo.ListItem{Blocks: blocks, Nested: nested}
	if marker.seen {
		item.Task, item.Completed = true, marker.checked
		item.Blocks = trimFirstLine(blocks)
		return item
	}
	if rest, completed, ok := inferTask(blocks); ok {
		item.Blocks, item.Task, item.Completed = rest, true, completed
	}
	return item
}

// trimFirstLine drops the whitespace left between an explicit checkbox and
// the item text.
func trimFirstLine(blocks []nodo.Block) []nodo.Block {
	if len(blocks) == 0 {
		return blocks
	}
	p, ok := blocks[0].(*nodo.Paragraph)
	if !ok || len(p.Lines) == 0 {
		return blocks
	}
	first := trimLeft(p.Lines[0])
	return replaceFirstLine(blocks, p, first)
}

// replaceFirstLine swaps the first line of the leading paragraph, removing
// the line, and then the paragraph, when they end up empty.
func replaceFirstLine(blocks []nodo.Block, p *nodo.Paragraph, first nodo.Text) []nodo.Block {
	lines := append([]nodo.Text{}, p.Lines...)
	if len(first) == 0 {
		lines = lines[1:]
	} else {
		lines[0] = first
	}
	out := append([]nodo.Block{}, blocks[1:]...)
	if len(lines) == 0 {
		return out
	}
	return append([]nodo.Block{&nodo.Paragraph{Lines: lines}}, out...)
}

// trimLeft removes leading whitespace from the leading plain runs, dropping
// runs that become empty.
func trimLeft(t nodo.Text) nodo.Text {
	out := append(nodo.Text{}, t...)
	for len(out) > 0 && out[0].IsPlain() {
		s := strings.TrimLeft(out[0].Content, " \t")
		if s != "" {
			out[0].Content = s
			break
		}
		out = out[1:]
	}
	return out
}
