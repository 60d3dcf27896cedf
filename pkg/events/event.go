// Package events describes the stream of markup events a nodo reader
// consumes, a cursor over that stream, and a goldmark based tokenizer that
// produces it from markdown source.
package events

import (
	"fmt"
	"strconv"
)

// Kind identifies the type of an Event.
type Kind int

const (
	HeadingStart Kind = iota
	HeadingEnd
	ParagraphStart
	ParagraphEnd
	ListStart
	ListEnd
	ItemStart
	ItemEnd
	BlockQuoteStart
	BlockQuoteEnd
	CodeBlockStart
	CodeBlockEnd
	EmphasisStart
	EmphasisEnd
	StrongStart
	StrongEnd
	StrikethroughStart
	StrikethroughEnd
	LinkStart
	LinkEnd
	Text
	Code
	SoftBreak
	HardBreak
	Rule
	TaskMarker
	HTML
	Image
)

var kindNames = [...]string{
	HeadingStart:       "HeadingStart",
	HeadingEnd:         "HeadingEnd",
	ParagraphStart:     "ParagraphStart",
	ParagraphEnd:       "ParagraphEnd",
	ListStart:          "ListStart",
	ListEnd:            "ListEnd",
	ItemStart:          "ItemStart",
	ItemEnd:            "ItemEnd",
	BlockQuoteStart:    "BlockQuoteStart",
	BlockQuoteEnd:      "BlockQuoteEnd",
	CodeBlockStart:     "CodeBlockStart",
	CodeBlockEnd:       "CodeBlockEnd",
	EmphasisStart:      "EmphasisStart",
	EmphasisEnd:        "EmphasisEnd",
	StrongStart:        "StrongStart",
	StrongEnd:          "StrongEnd",
	StrikethroughStart: "StrikethroughStart",
	StrikethroughEnd:   "StrikethroughEnd",
	LinkStart:          "LinkStart",
	LinkEnd:            "LinkEnd",
	Text:               "Text",
	Code:               "Code",
	SoftBreak:          "SoftBreak",
	HardBreak:          "HardBreak",
	Rule:               "Rule",
	TaskMarker:         "TaskMarker",
	HTML:               "HTML",
	Image:              "Image",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Event is a single markup event.
//
// Level is set for headings. Start is set for numbered list starts. Value
// carries the text of Text, Code and HTML events, the language of code
// blocks, and the destination of links and images. Checked is set for task
// markers.
type Event struct {
	Kind    Kind
	Level   int
	Start   *int
	Value   string
	Checked bool
}

func (e Event) String() string {
	switch e.Kind {
	case HeadingStart, HeadingEnd:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Level)
	case ListStart:
		if e.Start != nil {
			return fmt.Sprintf("%s(%d)", e.Kind, *e.Start)
		}
		return fmt.Sprintf("%s(None)", e.Kind)
	case Text, Code, HTML, CodeBlockStart, LinkStart, Image:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Value)
	case TaskMarker:
		return fmt.Sprintf("%s(%t)", e.Kind, e.Checked)
	default:
		return e.Kind.String()
	}
}

// Constructors keep hand built streams in tests short.

func StartHeading(level int) Event { return Event{Kind: HeadingStart, Level: level} }
func EndHeading(level int) Event   { return Event{Kind: HeadingEnd, Level: level} }
func StartList(start *int) Event   { return Event{Kind: ListStart, Start: start} }
func StartNumberedList(start int) Event {
	return Event{Kind: ListStart, Start: &start}
}
func StartCodeBlock(lang string) Event { return Event{Kind: CodeBlockStart, Value: lang} }
func StartLink(uri string) Event       { return Event{Kind: LinkStart, Value: uri} }
func TextEvent(s string) Event         { return Event{Kind: Text, Value: s} }
func CodeEvent(s string) Event         { return Event{Kind: Code, Value: s} }
func Task(checked bool) Event          { return Event{Kind: TaskMarker, Checked: checked} }
func Of(k Kind) Event                  { return Event{Kind: k} }
