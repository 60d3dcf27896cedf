package nodo

// Block is a block level element of a nodo body. The set of blocks is
// closed: Heading, List, Paragraph, Rule, BlockQuote and Code.
type Block interface {
	block()
}

// Heading is a heading with a positive level.
type Heading struct {
	Text  Text
	Level int
}

// List wraps a plain or numbered list.
type List struct {
	Kind ListKind
}

// Paragraph holds one Text per visual line.
type Paragraph struct {
	Lines []Text
}

// Rule is a thematic break.
type Rule struct{}

// BlockQuote contains nested blocks.
type BlockQuote struct {
	Blocks []Block
}

// Code is a code block with its language tag and raw lines.
type Code struct {
	Language string
	Lines    []string
}

func (*Heading) block()    {}
func (*List) block()       {}
func (*Paragraph) block()  {}
func (*Rule) block()       {}
func (*BlockQuote) block() {}
func (*Code) block()       {}

// ListKind is either a plain list or a numbered list starting at Start.
type ListKind struct {
	Items    []ListItem
	Numbered bool
	Start    int
}

// Plain builds a bulleted list.
func Plain(items ...ListItem) ListKind {
	return ListKind{Items: items}
}

// Numbered builds a numbered list whose first item displays start.
func Numbered(start int, items ...ListItem) ListKind {
	return ListKind{Items: items, Numbered: true, Start: start}
}

// ListItem is a text item or a task. Blocks is almost always a single
// Paragraph. Nested is the optional sub list.
type ListItem struct {
	Blocks    []Block
	Task      bool
	Completed bool
	Nested    *ListKind
}

// Item builds a text list item holding a one line paragraph.
func Item(t Text, nested *ListKind) ListItem {
	return ListItem{Blocks: []Block{&Paragraph{Lines: []Text{t}}}, Nested: nested}
}

// Task builds a task list item holding a one line paragraph.
func Task(t Text, completed bool, nested *ListKind) ListItem {
	return ListItem{Blocks: []Block{&Paragraph{Lines: []Text{t}}}, Task: true, Completed: completed, Nested: nested}
}

// FirstLine returns the first line of the item's first paragraph.
func (i ListItem) FirstLine() Text {
	for _, b := range i.Blocks {
		if p, ok := b.(*Paragraph); ok && len(p.Lines) > 0 {
			return p.Lines[0]
		}
	}
	return nil
}

// normalizeBlocks maps empty slices to nil so that values built by hand and
// values built by the parser compare equal.
func normalizeBlocks(blocks []Block) []Block {
	if len(blocks) == 0 {
		return nil
	}
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		switch v := b.(type) {
		case *Heading:
			out[i] = &Heading{Text: v.Text.normalize(), Level: v.Level}
		case *List:
			out[i] = &List{Kind: normalizeList(v.Kind)}
		case *Paragraph:
			lines := make([]Text, len(v.Lines))
			for j, l := range v.Lines {
				lines[j] = l.normalize()
			}
			if len(lines) == 0 {
				lines = nil
			}
			out[i] = &Paragraph{Lines: lines}
		case *Rule:
			out[i] = &Rule{}
		case *BlockQuote:
			out[i] = &BlockQuote{Blocks: normalizeBlocks(v.Blocks)}
		case *Code:
			lines := v.Lines
			if len(lines) == 0 {
				lines = nil
			}
			out[i] = &Code{Language: v.Language, Lines: lines}
		}
	}
	return out
}

func normalizeList(l ListKind) ListKind {
	n := ListKind{Numbered: l.Numbered, Start: l.Start}
	if !l.Numbered {
		n.Start = 0
	}
	for _, item := range l.Items {
		ni := ListItem{Blocks: normalizeBlocks(item.Blocks), Task: item.Task, Completed: item.Completed && item.Task}
		if item.Nested != nil {
			nested := normalizeList(*item.Nested)
			ni.Nested = &nested
		}
		n.Items = append(n.Items, ni)
	}
	return n
}
