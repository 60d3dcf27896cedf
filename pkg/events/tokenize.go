package events

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.TaskList,
	),
)

// Tokenize parses markdown source and flattens the resulting tree into an
// event stream in document order.
func Tokenize(src []byte) ([]Event, error) {
	root := markdown.Parser().Parse(text.NewReader(src))
	t := &tokenizer{src: src}
	if err := t.children(root); err != nil {
		return nil, err
	}
	return t.events, nil
}

type tokenizer struct {
	src    []byte
	events []Event
}

func (t *tokenizer) emit(e ...Event) {
	t.events = append(t.events, e...)
}

func (t *tokenizer) children(n ast.Node) error {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := t.node(c); err != nil {
			return err
		}
	}
	return nil
}

func (t *tokenizer) wrap(n ast.Node, start, end Event) error {
	t.emit(start)
	if err := t.children(n); err != nil {
		return err
	}
	t.emit(end)
	return nil
}

func (t *tokenizer) node(n ast.Node) error {
	switch v := n.(type) {
	case *ast.Heading:
		return t.wrap(v, StartHeading(v.Level), EndHeading(v.Level))
	case *ast.Paragraph:
		return t.wrap(v, Of(ParagraphStart), Of(ParagraphEnd))
	case *ast.TextBlock:
		// Tight list items carry their inline content without a paragraph.
		return t.children(v)
	case *ast.List:
		start := StartList(nil)
		if v.IsOrdered() {
			start = StartNumberedList(v.Start)
		}
		return t.wrap(v, start, Of(ListEnd))
	case *ast.ListItem:
		return t.wrap(v, Of(ItemStart), Of(ItemEnd))
	case *ast.Blockquote:
		return t.wrap(v, Of(BlockQuoteStart), Of(BlockQuoteEnd))
	case *ast.FencedCodeBlock:
		lang := ""
		if v.Info != nil {
			lang = string(bytes.TrimSpace(v.Info.Segment.Value(t.src)))
		}
		t.codeBlock(v, lang)
	case *ast.CodeBlock:
		t.codeBlock(v, "")
	case *ast.ThematicBreak:
		t.emit(Of(Rule))
	case *ast.HTMLBlock:
		t.emit(Event{Kind: HTML, Value: string(t.lines(v))})
	case *ast.Text:
		t.emit(TextEvent(string(v.Segment.Value(t.src))))
		switch {
		case v.HardLineBreak():
			t.emit(Of(HardBreak))
		case v.SoftLineBreak():
			t.emit(Of(SoftBreak))
		}
	case *ast.String:
		t.emit(TextEvent(string(v.Value)))
	case *ast.Emphasis:
		if v.Level >= 2 {
			return t.wrap(v, Of(StrongStart), Of(StrongEnd))
		}
		return t.wrap(v, Of(EmphasisStart), Of(EmphasisEnd))
	case *east.Strikethrough:
		return t.wrap(v, Of(StrikethroughStart), Of(StrikethroughEnd))
	case *ast.CodeSpan:
		t.emit(CodeEvent(t.inlineText(v)))
	case *ast.Link:
		return t.wrap(v, StartLink(string(v.Destination)), Of(LinkEnd))
	case *ast.AutoLink:
		t.emit(StartLink(string(v.URL(t.src))), TextEvent(string(v.Label(t.src))), Of(LinkEnd))
	case *ast.Image:
		t.emit(Event{Kind: Image, Value: string(v.Destination)})
	case *ast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < v.Segments.Len(); i++ {
			seg := v.Segments.At(i)
			buf.Write(seg.Value(t.src))
		}
		t.emit(Event{Kind: HTML, Value: buf.String()})
	case *east.TaskCheckBox:
		t.emit(Task(v.IsChecked))
	default:
		return fmt.Errorf("tokenize: unsupported markdown node %s", n.Kind())
	}
	return nil
}

func (t *tokenizer) codeBlock(n ast.Node, lang string) {
	t.emit(StartCodeBlock(lang))
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := bytes.TrimRight(seg.Value(t.src), "\r\n")
		t.emit(TextEvent(string(line)))
	}
	t.emit(Of(CodeBlockEnd))
}

func (t *tokenizer) lines(n ast.Node) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(t.src))
	}
	return buf.Bytes()
}

// inlineText concatenates the text below n, used for code spans.
func (t *tokenizer) inlineText(n ast.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			buf.Write(v.Segment.Value(t.src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(v.Value)
		default:
			buf.WriteString(t.inlineText(c))
		}
	}
	return buf.String()
}
