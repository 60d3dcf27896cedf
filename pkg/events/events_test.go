package events

import (
	"strings"
	"testing"
)

func TestCursor(t *testing.T) {
	c := NewCursor([]Event{Of(Rule), TextEvent("x")})
	if e, ok := c.Peek(); !ok || e.Kind != Rule {
		t.Fatalf("Peek() = %v, %t", e, ok)
	}
	if e, ok := c.Peek(); !ok || e.Kind != Rule {
		t.Fatalf("second Peek() = %v, %t", e, ok)
	}
	if e, _ := c.Next(); e.Kind != Rule {
		t.Fatalf("Next() = %v", e)
	}
	if e, _ := c.Next(); e.Value != "x" {
		t.Fatalf("Next() = %v", e)
	}
	if !c.Done() {
		t.Error("Done() = false at the end")
	}
	if _, ok := c.Next(); ok {
		t.Error("Next() past the end returned ok")
	}
	if _, ok := c.Peek(); ok {
		t.Error("Peek() past the end returned ok")
	}
}

func TestEventString(t *testing.T) {
	tests := map[string]Event{
		"HeadingStart(2)":  StartHeading(2),
		"ListStart(None)":  StartList(nil),
		"ListStart(4)":     StartNumberedList(4),
		`Text("hi")`:       TextEvent("hi"),
		"TaskMarker(true)": Task(true),
		"SoftBreak":        Of(SoftBreak),
		"Kind(99)":         {Kind: Kind(99)},
	}
	for want, e := range tests {
		if got := e.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func stream(events []Event) string {
	parts := make([]string, len(events))
	for i, e := range events {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{{
		name: "heading",
		src:  "# Title\n",
		want: `HeadingStart(1) Text("Title") HeadingEnd(1)`,
	}, {
		name: "task list",
		src:  "- [x] done\n",
		want: `ListStart(None) ItemStart TaskMarker(true) Text("done") ItemEnd ListEnd`,
	}, {
		name: "numbered",
		src:  "3. three\n",
		want: `ListStart(3) ItemStart Text("three") ItemEnd ListEnd`,
	}, {
		name: "fenced code",
		src:  "```go\nx := 1\n```\n",
		want: `CodeBlockStart("go") Text("x := 1") CodeBlockEnd`,
	}, {
		name: "rule",
		src:  "a\n\n***\n",
		want: `ParagraphStart Text("a") ParagraphEnd Rule`,
	}, {
		name: "quote",
		src:  "> q\n",
		want: `BlockQuoteStart ParagraphStart Text("q") ParagraphEnd BlockQuoteEnd`,
	}, {
		name: "link",
		src:  "[docs](https://example.com)\n",
		want: `ParagraphStart LinkStart("https://example.com") Text("docs") LinkEnd ParagraphEnd`,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := Tokenize([]byte(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			if got := stream(events); got != tt.want {
				t.Errorf("Tokenize() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestTokenizeInline(t *testing.T) {
	events, err := Tokenize([]byte("a *b* **c** ~~d~~ `e`\nnext\n"))
	if err != nil {
		t.Fatal(err)
	}
	got := stream(events)
	for _, want := range []string{
		`EmphasisStart Text("b") EmphasisEnd`,
		`StrongStart Text("c") StrongEnd`,
		`StrikethroughStart Text("d") StrikethroughEnd`,
		`Code("e")`,
		`SoftBreak Text("next")`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Tokenize() missing %s in\n%s", want, got)
		}
	}
}

func TestTokenizeHTML(t *testing.T) {
	events, err := Tokenize([]byte("<div>x</div>\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Kind != HTML {
		t.Errorf("Tokenize() = %s", stream(events))
	}
}
