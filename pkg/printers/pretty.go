package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/yuin/goldmark/util"

	"tableflip.dev/nodo/pkg/files"
	"tableflip.dev/nodo/pkg/glyph"
	"tableflip.dev/nodo/pkg/nodo"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Width wraps paragraphs when positive.
	Width int
	// DateFormat is the layout used for frontmatter dates.
	DateFormat string
}

// Entry is one line of a project listing.
type Entry struct {
	Name   string
	Bullet glyph.Bullet
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entries lists the contents of a project.
func (pp *PrettyPrint) Entries(entries ...Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	t := color.New()
	for _, e := range entries {
		_, _ = t.Fprintf(pp.out(), "%s %s\n", e.Bullet.String(), e.Name)
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Document prints a styled rendering of doc.
func (pp *PrettyPrint) Document(doc *nodo.Document) {
	_, _ = fmt.Fprint(pp.out(), pp.RenderDocument(doc))
}

// RenderDocument returns the styled rendering printed by Document.
func (pp *PrettyPrint) RenderDocument(doc *nodo.Document) string {
	var sb strings.Builder
	if meta := pp.meta(doc); meta != "" {
		sb.WriteString(metaStyle.Render(meta) + "\n")
	}
	sb.WriteString(titleStyle.Render(Display(doc.Title)) + "\n")
	for _, b := range doc.Blocks {
		sb.WriteString("\n")
		sb.WriteString(pp.block(b))
	}
	return sb.String()
}

func (pp *PrettyPrint) meta(doc *nodo.Document) string {
	layout := pp.DateFormat
	if layout == "" {
		layout = files.DefaultDateFormat
	}
	var parts []string
	if len(doc.Tags) > 0 {
		parts = append(parts, "tags: "+strings.Join(doc.Tags, ", "))
	}
	if doc.StartDate != nil {
		parts = append(parts, "start: "+doc.StartDate.Format(layout))
	}
	if doc.DueDate != nil {
		parts = append(parts, "due: "+doc.DueDate.Format(layout))
	}
	return strings.Join(parts, " · ")
}

func (pp *PrettyPrint) block(b nodo.Block) string {
	switch v := b.(type) {
	case *nodo.Heading:
		return headingStyle.Render(strings.Repeat("#", v.Level)+" "+Display(v.Text)) + "\n"
	case *nodo.Paragraph:
		var sb strings.Builder
		for _, l := range v.Lines {
			sb.WriteString(pp.wrap(inline(l)) + "\n")
		}
		return sb.String()
	case *nodo.List:
		return pp.list(v.Kind, 0)
	case *nodo.Rule:
		w := pp.Width
		if w <= 0 {
			w = 40
		}
		return bulletStyle.Render(strings.Repeat("─", w)) + "\n"
	case *nodo.BlockQuote:
		var sb strings.Builder
		for i, inner := range v.Blocks {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(pp.block(inner))
		}
		return quote(sb.String())
	case *nodo.Code:
		var sb strings.Builder
		if v.Language != "" {
			sb.WriteString(codeLanguageLine.Render(v.Language) + "\n")
		}
		for _, l := range v.Lines {
			sb.WriteString(codeBlockStyle.Render(l) + "\n")
		}
		return indent.String(sb.String(), 4)
	}
	return ""
}

func (pp *PrettyPrint) list(l nodo.ListKind, level int) string {
	var sb strings.Builder
	for i, item := range l.Items {
		bullet := glyph.For(item, l.Numbered)
		symbol := bullet.String()
		if bullet == glyph.NumberedNote {
			symbol = strconv.Itoa(l.Start+i) + "."
		}
		text := ""
		for j, b := range item.Blocks {
			s := strings.TrimRight(pp.block(b), "\n")
			if j > 0 {
				s = "\n" + indent.String(s, 2)
			}
			text += s
		}
		switch bullet {
		case glyph.Completed:
			symbol, text = doneTaskStyle.Render(symbol), doneTaskStyle.Inherit(strikeStyle).Render(text)
		case glyph.Task:
			symbol = openTaskStyle.Render(symbol)
		default:
			symbol = bulletStyle.Render(symbol)
		}
		sb.WriteString(indent.String(symbol+" "+text, uint(level*2)) + "\n")
		if item.Nested != nil {
			sb.WriteString(pp.list(*item.Nested, level+1))
		}
	}
	return sb.String()
}

func (pp *PrettyPrint) wrap(s string) string {
	if pp.Width <= 0 {
		return s
	}
	return wordwrap.String(s, pp.Width)
}

func quote(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	bar := quoteStyle.Render("│")
	for i, l := range lines {
		lines[i] = bar + " " + l
	}
	return strings.Join(lines, "\n") + "\n"
}

// Display returns the text as a reader sees it: markup dropped and
// backslash escapes resolved. Code spans are shown verbatim.
func Display(t nodo.Text) string {
	var sb strings.Builder
	for _, item := range t {
		sb.WriteString(content(item))
	}
	return sb.String()
}

func content(item nodo.TextItem) string {
	if item.Style == nodo.StyleCode {
		return item.Content
	}
	return string(util.UnescapePunctuations([]byte(item.Content)))
}

func inline(t nodo.Text) string {
	var sb strings.Builder
	for _, item := range t {
		switch item.Style {
		case nodo.StyleEmphasis:
			sb.WriteString(emphasisStyle.Render(content(item)))
		case nodo.StyleStrong:
			sb.WriteString(strongStyle.Render(content(item)))
		case nodo.StyleStrikethrough:
			sb.WriteString(strikeStyle.Render(content(item)))
		case nodo.StyleCode:
			sb.WriteString(codeStyle.Render(item.Content))
		case nodo.StyleLink:
			sb.WriteString(linkStyle.Render(content(item)))
			sb.WriteString(metaStyle.Render(" (" + item.URI + ")"))
		default:
			sb.WriteString(content(item))
		}
	}
	return sb.String()
}
