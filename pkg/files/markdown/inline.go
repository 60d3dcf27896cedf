package markdown

import (
	"strings"

	"tableflip.dev/nodo/pkg/events"
	"tableflip.dev/nodo/pkg/nodo"
)

var spanStyles = map[events.Kind]struct {
	end   events.Kind
	style nodo.Style
}{
	events.EmphasisStart:      {events.EmphasisEnd, nodo.StyleEmphasis},
	events.StrongStart:        {events.StrongEnd, nodo.StyleStrong},
	events.StrikethroughStart: {events.StrikethroughEnd, nodo.StyleStrikethrough},
}

// readInline appends the run started by e to t. It reports false when e is
// not an inline event.
func readInline(c *events.Cursor, e events.Event, t *nodo.Text) bool {
	switch e.Kind {
	case events.Text:
		appendPlain(t, e.Value)
	case events.Code:
		*t = append(*t, nodo.CodeText(e.Value))
	case events.LinkStart:
		*t = append(*t, nodo.LinkText(spanContent(c, events.LinkEnd), e.Value))
	default:
		span, ok := spanStyles[e.Kind]
		if !ok {
			return false
		}
		*t = append(*t, nodo.TextItem{Style: span.style, Content: spanContent(c, span.end)})
	}
	return true
}

// appendPlain extends a trailing plain run instead of starting a new one:
// tokenizers split plain text at characters that could have opened a span.
func appendPlain(t *nodo.Text, s string) {
	if s == "" {
		return
	}
	if n := len(*t); n > 0 && (*t)[n-1].IsPlain() {
		(*t)[n-1].Content += s
		return
	}
	*t = append(*t, nodo.PlainText(s))
}

// spanContent flattens everything up to end into a string. Styles nested in
// a span are not represented, the outer style wins.
func spanContent(c *events.Cursor, end events.Kind) string {
	var sb strings.Builder
	for {
		e, ok := c.Next()
		if !ok || e.Kind == end {
			return sb.String()
		}
		switch e.Kind {
		case events.Text, events.Code:
			sb.WriteString(e.Value)
		case events.SoftBreak, events.HardBreak:
			sb.WriteString(" ")
		case events.LinkStart:
			sb.WriteString(spanContent(c, events.LinkEnd))
		default:
			span, ok := spanStyles[e.Kind]
			if !ok {
				unhandled(e, "read inline span")
			}
			sb.WriteString(spanContent(c, span.end))
		}
	}
}
