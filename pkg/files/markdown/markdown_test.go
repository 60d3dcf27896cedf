package markdown

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/nodo/pkg/events"
	"tableflip.dev/nodo/pkg/files"
	"tableflip.dev/nodo/pkg/nodo"
)

const canonical = "---\n" +
	"tags: a, b\n" +
	"due_date: 05/03/2024\n" +
	"---\n" +
	"\n" +
	"# Title\n" +
	"\n" +
	"Some *emphasis* and **strong** text\n" +
	"second line\n" +
	"\n" +
	"- [ ] open\n" +
	"- [x] done\n" +
	"    - nested item\n" +
	"        1. deep\n" +
	"\n" +
	"3. three\n" +
	"4. four\n" +
	"\n" +
	"> quoted\n" +
	">\n" +
	"> - list in quote\n" +
	"\n" +
	"```go\n" +
	"fmt.Println(\"hi\")\n" +
	"```\n" +
	"\n" +
	"---\n" +
	"\n" +
	"## Sub heading\n"

func read(t *testing.T, src string) *nodo.Document {
	t.Helper()
	doc, err := Markdown{}.Read(strings.NewReader(src), files.Options{})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return doc
}

func write(t *testing.T, doc *nodo.Document) string {
	t.Helper()
	var buf bytes.Buffer
	if err := (Markdown{}).Write(&buf, doc, files.Options{}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return buf.String()
}

func TestReadCanonical(t *testing.T) {
	deep := nodo.Numbered(1, nodo.Item(nodo.NewText("deep"), nil))
	nested := nodo.Plain(nodo.Item(nodo.NewText("nested item"), &deep))
	want := (&nodo.Builder{}).
		Tags("a", "b").
		DueDate(*nodo.Date(2024, time.March, 5)).
		Title(nodo.NewText("Title")).
		Block(&nodo.Paragraph{Lines: []nodo.Text{
			{nodo.PlainText("Some "), nodo.EmphasisText("emphasis"), nodo.PlainText(" and "), nodo.StrongText("strong"), nodo.PlainText(" text")},
			nodo.NewText("second line"),
		}}).
		Block(&nodo.List{Kind: nodo.Plain(
			nodo.Task(nodo.NewText("open"), false, nil),
			nodo.Task(nodo.NewText("done"), true, &nested),
		)}).
		Block(&nodo.List{Kind: nodo.Numbered(3,
			nodo.Item(nodo.NewText("three"), nil),
			nodo.Item(nodo.NewText("four"), nil),
		)}).
		Block(&nodo.BlockQuote{Blocks: []nodo.Block{
			&nodo.Paragraph{Lines: []nodo.Text{nodo.NewText("quoted")}},
			&nodo.List{Kind: nodo.Plain(nodo.Item(nodo.NewText("list in quote"), nil))},
		}}).
		Block(&nodo.Code{Language: "go", Lines: []string{`fmt.Println("hi")`}}).
		Block(&nodo.Rule{}).
		Block(&nodo.Heading{Text: nodo.NewText("Sub heading"), Level: 2}).
		Build()

	got := read(t, canonical)
	if !got.Equal(want) {
		t.Errorf("Read() = %#v, want %#v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	got := write(t, read(t, canonical))
	if got != canonical {
		t.Errorf("Write(Read()) =\n%s\nwant\n%s", got, canonical)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	sloppy := "# Todo\n" +
		"* [] first\n" +
		"*   [ X ]   second\n" +
		"* [X] third\n" +
		"  * plain\n"
	once := write(t, read(t, sloppy))
	twice := write(t, read(t, once))
	if once != twice {
		t.Errorf("format not idempotent:\n%s\nthen\n%s", once, twice)
	}
	want := "# Todo\n" +
		"\n" +
		"- [ ] first\n" +
		"- [x] second\n" +
		"- [x] third\n" +
		"    - plain\n"
	if once != want {
		t.Errorf("formatted =\n%s\nwant\n%s", once, want)
	}
}

func TestFormatStable(t *testing.T) {
	tests := map[string]string{
		"two sub lists":        "# T\n\n- a\n  - b\n\n  1. c\n",
		"sub list then text":   "# T\n\n- [ ] a\n  - b\n\n  more text\n",
		"three sub lists":      "# T\n\n- a\n  - b\n\n  1. c\n\n  - d\n",
		"multi block item":     "# T\n\n1. one\n\n   para two\n2. two\n",
		"code inside item":     "# T\n\n- a\n\n  ```sh\n  ls -la\n  ```\n- b\n",
		"quote holding lists":  "# T\n\n> - a\n>   - b\n> - [x] c\n",
		"quote inside item":    "# T\n\n- a\n\n  > quoted\n",
		"deep nesting":         "# T\n\n- a\n  - b\n    - [ ] c\n      - d\n",
		"tasks among text":     "# T\n\n- [x] a\n- b\n- [ ] c\n",
		"numbered not at one":  "# T\n\n7. seven\n8. eight\n",
		"paragraph and rule":   "# T\n\nline one\nline two\n\n***\n\ntext\n",
		"frontmatter and list": "---\ntags: x\n---\n# T\n* [X] done\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			doc := read(t, src)
			once := write(t, doc)
			again := read(t, once)
			if !again.Equal(doc) {
				t.Errorf("Read(Write(doc)) differs from doc:\n%#v\nvs\n%#v", again, doc)
			}
			if twice := write(t, again); twice != once {
				t.Errorf("format not stable:\n%s\nthen\n%s", once, twice)
			}
		})
	}
}

func TestItemSubListsKeepOrder(t *testing.T) {
	doc := read(t, "# T\n\n- a\n  - b\n\n  1. c\n")
	item := doc.Lists()[0].Kind.Items[0]
	if item.Nested == nil || !item.Nested.Numbered {
		t.Fatalf("Nested = %#v, want the trailing numbered list", item.Nested)
	}
	if len(item.Blocks) != 2 {
		t.Fatalf("Blocks = %#v, want paragraph and plain list", item.Blocks)
	}
	if l, ok := item.Blocks[1].(*nodo.List); !ok || l.Kind.Numbered {
		t.Errorf("Blocks[1] = %#v, want the plain list", item.Blocks[1])
	}

	want := "# T\n\n- a\n\n    - b\n\n    1. c\n"
	if got := write(t, doc); got != want {
		t.Errorf("Write() =\n%s\nwant\n%s", got, want)
	}
}

func TestTagsWithMarkupCharacters(t *testing.T) {
	doc := (&nodo.Builder{}).Tags("*x*", "a_b", `c\d`, "[e]").Title(nodo.NewText("T")).Build()
	got := write(t, doc)
	if want := "tags: \\*x\\*, a\\_b, c\\\\d, \\[e\\]\n"; !strings.Contains(got, want) {
		t.Errorf("Write() = %q, want it to contain %q", got, want)
	}
	again := read(t, got)
	if !again.Equal(doc) {
		t.Errorf("Read(Write()) tags = %q, want %q", again.Tags, doc.Tags)
	}
	if twice := write(t, again); twice != got {
		t.Errorf("tags not stable:\n%s\nthen\n%s", got, twice)
	}
}

func TestEscapesAreKept(t *testing.T) {
	src := "# T\n\n\\*not em\\*\n"
	doc := read(t, src)
	p := doc.Blocks[0].(*nodo.Paragraph)
	if got := p.Lines[0].String(); got != `\*not em\*` {
		t.Errorf("content = %q", got)
	}
	if got := write(t, doc); got != src {
		t.Errorf("Write() = %q, want %q", got, src)
	}
}

func TestFormattedAndUnformattedAreEqual(t *testing.T) {
	formatted := read(t, "# T\n\n- [ ] a\n- [x] b\n- c\n")
	unformatted := read(t, "# T\n* [ ] a\n* [X] b\n* c")
	if !formatted.Equal(unformatted) {
		t.Errorf("documents differ: %#v vs %#v", formatted, unformatted)
	}
}

func TestReadNoFrontmatter(t *testing.T) {
	doc := read(t, "# Just a title\n\nbody\n")
	if doc.HasFrontmatter() {
		t.Errorf("HasFrontmatter() = true, want false")
	}
	if got := doc.Title.String(); got != "Just a title" {
		t.Errorf("Title = %q", got)
	}
	if len(doc.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1", len(doc.Blocks))
	}
}

func TestReadWithoutTitle(t *testing.T) {
	doc := read(t, "## Section\n\n# Later\n")
	if len(doc.Title) != 0 {
		t.Errorf("Title = %q, want empty", doc.Title.String())
	}
	if len(doc.Blocks) != 2 {
		t.Fatalf("len(Blocks) = %d, want 2", len(doc.Blocks))
	}
	again := read(t, write(t, doc))
	if !again.Equal(doc) {
		t.Errorf("round trip changed document: %#v", again)
	}
}

func TestFrontmatterLeniency(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		tags  []string
		start *time.Time
		due   *time.Time
	}{{
		name: "bad date ignored",
		src:  "---\ndue_date: not a date\n---\n\n# T\n",
	}, {
		name: "empty first tag ignores tags",
		src:  "---\ntags: , a\n---\n\n# T\n",
	}, {
		name:  "trimmed values",
		src:   "---\ntags:  x ,y  \nstart_date:   01/02/2020\n---\n\n# T\n",
		tags:  []string{"x", "y"},
		start: nodo.Date(2020, time.February, 1),
	}, {
		name: "unknown keys ignored",
		src:  "---\nauthor: me\ndue_date: 31/12/2023\n---\n\n# T\n",
		due:  nodo.Date(2023, time.December, 31),
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := read(t, tt.src)
			want := &nodo.Document{Tags: tt.tags, StartDate: tt.start, DueDate: tt.due, Title: nodo.NewText("T")}
			if !doc.Equal(want) {
				t.Errorf("Read() = %#v, want %#v", doc, want)
			}
		})
	}
}

func TestCustomDateFormat(t *testing.T) {
	opts := files.Options{DateFormat: "2006-01-02"}
	doc, err := Markdown{}.Read(strings.NewReader("---\ndue_date: 2024-06-30\n---\n\n# T\n"), opts)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if doc.DueDate == nil || !doc.DueDate.Equal(*nodo.Date(2024, time.June, 30)) {
		t.Fatalf("DueDate = %v", doc.DueDate)
	}
	var buf bytes.Buffer
	if err := Write(&buf, doc, opts); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "due_date: 2024-06-30\n") {
		t.Errorf("Write() = %q", buf.String())
	}
}

func TestParseEvents(t *testing.T) {
	evts := []events.Event{
		events.Of(events.Rule),
		events.StartHeading(2),
		events.TextEvent("tags: one, two"),
		events.Of(events.SoftBreak),
		events.TextEvent("start"),
		events.TextEvent("_date: 03/04/2022"),
		events.EndHeading(2),
		events.StartHeading(1),
		events.TextEvent("Hello"),
		events.EndHeading(1),
		events.StartList(nil),
		events.Of(events.ItemStart),
		events.Task(true),
		events.TextEvent(" finished"),
		events.Of(events.ItemEnd),
		events.Of(events.ItemStart),
		events.TextEvent("["),
		events.TextEvent("] "),
		events.Of(events.EmphasisStart),
		events.TextEvent("open"),
		events.Of(events.EmphasisEnd),
		events.Of(events.ItemEnd),
		events.Of(events.ListEnd),
	}
	doc, err := Parse(events.NewCursor(evts), files.Options{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := (&nodo.Builder{}).
		Tags("one", "two").
		StartDate(*nodo.Date(2022, time.April, 3)).
		Title(nodo.NewText("Hello")).
		Block(&nodo.List{Kind: nodo.Plain(
			nodo.Task(nodo.NewText("finished"), true, nil),
			nodo.Task(nodo.Text{nodo.EmphasisText("open")}, false, nil),
		)}).
		Build()
	if !doc.Equal(want) {
		t.Errorf("Parse() = %#v, want %#v", doc, want)
	}
}

func TestInvalidFrontmatter(t *testing.T) {
	evts := []events.Event{
		events.Of(events.Rule),
		events.Of(events.ParagraphStart),
		events.TextEvent("tags: a"),
		events.Of(events.ParagraphEnd),
		events.Of(events.Rule),
	}
	_, err := Parse(events.NewCursor(evts), files.Options{})
	if !errors.Is(err, files.ErrInvalidElement) {
		t.Fatalf("Parse() error = %v, want %v", err, files.ErrInvalidElement)
	}
	var ie *files.InvalidElementError
	if !errors.As(err, &ie) || ie.Event.Kind != events.ParagraphStart {
		t.Errorf("offending event = %v", err)
	}
}

func TestUnhandledEvent(t *testing.T) {
	evts := []events.Event{
		events.StartHeading(1),
		events.TextEvent("T"),
		events.EndHeading(1),
		events.Of(events.ParagraphStart),
		events.TextEvent("look "),
		{Kind: events.Image, Value: "cat.png"},
		events.Of(events.ParagraphEnd),
	}
	doc, err := Parse(events.NewCursor(evts), files.Options{})
	if !errors.Is(err, files.ErrUnhandledEvent) {
		t.Fatalf("Parse() error = %v, want %v", err, files.ErrUnhandledEvent)
	}
	if doc != nil {
		t.Errorf("Parse() returned a partial document")
	}
}

func TestReadHTMLIsUnhandled(t *testing.T) {
	_, err := Markdown{}.Read(strings.NewReader("# T\n\n<div>\nhi\n</div>\n"), files.Options{})
	if !errors.Is(err, files.ErrUnhandledEvent) {
		t.Fatalf("Read() error = %v, want %v", err, files.ErrUnhandledEvent)
	}
}

func TestMatchCheckbox(t *testing.T) {
	p := nodo.PlainText
	tests := []struct {
		name      string
		in        nodo.Text
		want      nodo.Text
		completed bool
		ok        bool
	}{
		{name: "open", in: nodo.Text{p("[ ] a")}, want: nodo.NewText("a"), ok: true},
		{name: "empty brackets", in: nodo.Text{p("[] a")}, want: nodo.NewText("a"), ok: true},
		{name: "checked", in: nodo.Text{p("[x]a")}, want: nodo.NewText("a"), completed: true, ok: true},
		{name: "upper and spaced", in: nodo.Text{p(" [ X ]  a")}, want: nodo.NewText("a"), completed: true, ok: true},
		{name: "split runs", in: nodo.Text{p("["), p(" x "), p("] a")}, want: nodo.NewText("a"), completed: true, ok: true},
		{name: "box only", in: nodo.Text{p("[ ]")}, ok: true},
		{name: "styled rest", in: nodo.Text{p("[x] "), nodo.StrongText("b")}, want: nodo.Text{nodo.StrongText("b")}, completed: true, ok: true},
		{name: "no box", in: nodo.Text{p("plain")}, want: nodo.Text{p("plain")}},
		{name: "other content", in: nodo.Text{p("[ab] c")}, want: nodo.Text{p("[ab] c")}},
		{name: "double mark", in: nodo.Text{p("[xx] c")}, want: nodo.Text{p("[xx] c")}},
		{name: "styled mark", in: nodo.Text{p("["), nodo.EmphasisText("x"), p("]")}, want: nodo.Text{p("["), nodo.EmphasisText("x"), p("]")}},
		{name: "too many runs", in: nodo.Text{p("["), p(" "), p(" "), p("]")}, want: nodo.Text{p("["), p(" "), p(" "), p("]")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, completed, ok := matchCheckbox(tt.in)
			if ok != tt.ok || completed != tt.completed {
				t.Fatalf("matchCheckbox() = (%v, %v), want (%v, %v)", completed, ok, tt.completed, tt.ok)
			}
			if !got.Equal(tt.want) {
				t.Errorf("matchCheckbox() text = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestWriteEmptyTask(t *testing.T) {
	doc := (&nodo.Builder{}).
		Title(nodo.NewText("T")).
		Block(&nodo.List{Kind: nodo.Plain(nodo.ListItem{Task: true})}).
		Build()
	if got, want := write(t, doc), "# T\n\n- [ ]\n"; got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

func TestWriteEmptyTitleKeepsLeadingRule(t *testing.T) {
	doc := (&nodo.Builder{}).Block(&nodo.Rule{}).Block(&nodo.Paragraph{Lines: []nodo.Text{nodo.NewText("after")}}).Build()
	out := write(t, doc)
	if !strings.HasPrefix(out, "#\n") {
		t.Errorf("Write() = %q, want a leading empty title", out)
	}
	again := read(t, out)
	if again.HasFrontmatter() || !again.Equal(doc) {
		t.Errorf("Read(Write()) = %#v, want %#v", again, doc)
	}
}

func TestFormatText(t *testing.T) {
	text := nodo.Text{
		nodo.PlainText("a "),
		nodo.EmphasisText("em"),
		nodo.PlainText(" "),
		nodo.StrikethroughText("gone"),
		nodo.PlainText(" "),
		nodo.CodeText("x`y"),
		nodo.PlainText(" "),
		nodo.LinkText("site", "https://example.com"),
	}
	want := "a *em* ~~gone~~ `` x`y `` [site](https://example.com)"
	if got := FormatText(text); got != want {
		t.Errorf("FormatText() = %q, want %q", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	doc := (&nodo.Builder{}).Title(nodo.NewText("T")).Build()
	if err := Write(failingWriter{}, doc, files.Options{}); !errors.Is(err, files.ErrWrite) {
		t.Errorf("Write() error = %v, want %v", err, files.ErrWrite)
	}
}

func TestRegistered(t *testing.T) {
	h, err := files.ForExtension(".md")
	if err != nil {
		t.Fatal(err)
	}
	if h.Extension() != Extension {
		t.Errorf("Extension() = %q", h.Extension())
	}
}
