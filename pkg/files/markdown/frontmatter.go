package markdown

import (
	"strings"
	"time"

	"github.com/yuin/goldmark/util"

	"tableflip.dev/nodo/pkg/events"
	"tableflip.dev/nodo/pkg/files"
	"tableflip.dev/nodo/pkg/nodo"
)

const (
	tagsKey      = "tags:"
	startDateKey = "start_date:"
	dueDateKey   = "due_date:"
)

// readFrontmatter consumes the metadata block opened by a leading rule. When
// the stream does not start with a rule nothing is consumed.
//
// Markdown has no frontmatter construct: the closing rule usually turns the
// metadata lines into a setext heading, so heading boundaries are accepted
// as well as line breaks between the key lines.
func readFrontmatter(c *events.Cursor, b *nodo.Builder, opts files.Options) error {
	if e, ok := c.Peek(); !ok || e.Kind != events.Rule {
		return nil
	}
	c.Next()

	var line strings.Builder
	flush := func() {
		applyFrontmatterLine(b, string(util.UnescapePunctuations([]byte(line.String()))), opts)
		line.Reset()
	}
	for {
		e, ok := c.Next()
		if !ok {
			flush()
			return nil
		}
		switch e.Kind {
		case events.Rule, events.HeadingEnd:
			flush()
			return nil
		case events.HeadingStart:
		case events.SoftBreak, events.HardBreak:
			flush()
		case events.Text:
			// tokenizers may split one line at delimiter characters
			line.WriteString(e.Value)
		default:
			return &files.InvalidElementError{Event: e}
		}
	}
}

func applyFrontmatterLine(b *nodo.Builder, raw string, opts files.Options) {
	text := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(text, tagsKey):
		tags := parseTags(strings.TrimPrefix(text, tagsKey))
		if len(tags) > 0 {
			b.Tags(tags...)
		}
	case strings.HasPrefix(text, startDateKey):
		if t, ok := parseDate(strings.TrimPrefix(text, startDateKey), opts); ok {
			b.StartDate(t)
		}
	case strings.HasPrefix(text, dueDateKey):
		if t, ok := parseDate(strings.TrimPrefix(text, dueDateKey), opts); ok {
			b.DueDate(t)
		}
	}
}

// tagEscaper protects tag characters that markdown would turn into markup.
var tagEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"~", `\~`,
	"<", `\<`,
)

func formatTags(tags []string) string {
	escaped := make([]string, len(tags))
	for i, t := range tags {
		escaped[i] = tagEscaper.Replace(t)
	}
	return strings.Join(escaped, ", ")
}

func parseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	if len(tags) == 0 || tags[0] == "" {
		return nil
	}
	return tags
}

// parseDate ignores values that do not match the layout: a malformed date is
// treated as absent.
func parseDate(s string, opts files.Options) (time.Time, bool) {
	t, err := time.Parse(dateFormat(opts), strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
