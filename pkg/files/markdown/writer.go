package markdown

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tableflip.dev/nodo/pkg/files"
	"tableflip.dev/nodo/pkg/nodo"
)

const listIndent = "    "

// Write renders doc canonically. The title line is always written, even when
// the title is empty, so a leading rule in the body is never mistaken for
// frontmatter on the next read.
func Write(w io.Writer, doc *nodo.Document, opts files.Options) error {
	bw := bufio.NewWriter(w)
	for _, l := range Render(doc, opts) {
		bw.WriteString(l)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", files.ErrWrite, err)
	}
	return nil
}

// Render returns the canonical lines of doc without line terminators.
func Render(doc *nodo.Document, opts files.Options) []string {
	var lines []string
	if doc.HasFrontmatter() {
		lines = append(lines, "---")
		if len(doc.Tags) > 0 {
			lines = append(lines, tagsKey+" "+formatTags(doc.Tags))
		}
		if doc.StartDate != nil {
			lines = append(lines, startDateKey+" "+doc.StartDate.Format(dateFormat(opts)))
		}
		if doc.DueDate != nil {
			lines = append(lines, dueDateKey+" "+doc.DueDate.Format(dateFormat(opts)))
		}
		lines = append(lines, "---", "")
	}
	lines = append(lines, heading(doc.Title, 1))
	for _, b := range doc.Blocks {
		lines = append(lines, "")
		lines = append(lines, renderBlock(b)...)
	}
	return lines
}

func heading(t nodo.Text, level int) string {
	return strings.TrimRight(strings.Repeat("#", level)+" "+FormatText(t), " ")
}

func renderBlocks(blocks []nodo.Block) []string {
	var lines []string
	for i, b := range blocks {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, renderBlock(b)...)
	}
	return lines
}

func renderBlock(b nodo.Block) []string {
	switch v := b.(type) {
	case *nodo.Heading:
		return []string{heading(v.Text, v.Level)}
	case *nodo.Paragraph:
		var lines []string
		for _, l := range v.Lines {
			if s := FormatText(l); s != "" {
				lines = append(lines, s)
			}
		}
		return lines
	case *nodo.List:
		return renderList(v.Kind)
	case *nodo.Rule:
		return []string{"---"}
	case *nodo.BlockQuote:
		return prefix(renderBlocks(v.Blocks), "> ", "> ")
	case *nodo.Code:
		lines := []string{"```" + v.Language}
		lines = append(lines, v.Lines...)
		return append(lines, "```")
	}
	return nil
}

func renderList(l nodo.ListKind) []string {
	var lines []string
	for i, item := range l.Items {
		marker := "- "
		if l.Numbered {
			marker = strconv.Itoa(l.Start+i) + ". "
		}
		if item.Task {
			if item.Completed {
				marker += "[x] "
			} else {
				marker += "[ ] "
			}
		}
		body := renderBlocks(item.Blocks)
		if item.Nested != nil {
			if endsWithList(item.Blocks) {
				// two adjacent lists need a blank line to stay apart
				body = append(body, "")
			}
			body = append(body, renderList(*item.Nested)...)
		}
		if len(body) == 0 {
			lines = append(lines, strings.TrimRight(marker, " "))
			continue
		}
		lines = append(lines, prefix(body, marker, listIndent)...)
	}
	return lines
}

func endsWithList(blocks []nodo.Block) bool {
	if len(blocks) == 0 {
		return false
	}
	_, ok := blocks[len(blocks)-1].(*nodo.List)
	return ok
}

// prefix puts first in front of the first line and rest in front of the
// others. Empty lines only get the prefix without trailing whitespace.
func prefix(lines []string, first, rest string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		p := rest
		if i == 0 {
			p = first
		}
		if l == "" {
			out[i] = strings.TrimRight(p, " ")
			continue
		}
		out[i] = p + l
	}
	return out
}

// FormatText renders a text with inline markdown markup.
func FormatText(t nodo.Text) string {
	var sb strings.Builder
	for _, item := range t {
		switch item.Style {
		case nodo.StyleEmphasis:
			sb.WriteString("*" + item.Content + "*")
		case nodo.StyleStrong:
			sb.WriteString("**" + item.Content + "**")
		case nodo.StyleStrikethrough:
			sb.WriteString("~~" + item.Content + "~~")
		case nodo.StyleCode:
			sb.WriteString(codeSpan(item.Content))
		case nodo.StyleLink:
			uri := item.URI
			if strings.ContainsAny(uri, " ()") {
				uri = "<" + uri + ">"
			}
			sb.WriteString("[" + item.Content + "](" + uri + ")")
		default:
			sb.WriteString(item.Content)
		}
	}
	return sb.String()
}

func codeSpan(s string) string {
	if !strings.Contains(s, "`") {
		return "`" + s + "`"
	}
	return "`` " + s + " ``"
}
