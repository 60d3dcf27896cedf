package markdown

import (
	"unicode"

	"tableflip.dev/nodo/pkg/nodo"
)

// maxTaskRuns bounds how many leading runs may spell out a checkbox.
const maxTaskRuns = 3

type checkboxState int

const (
	expectOpen checkboxState = iota
	expectMarkOrClose
	expectClose
)

// inferTask recognises a checkbox written as text at the start of the first
// paragraph, e.g. "[ ]", "[x]" or "[ X ]", for tokenizers that only detect
// the exact form. Anything that does not match leaves blocks untouched.
func inferTask(blocks []nodo.Block) ([]nodo.Block, bool, bool) {
	if len(blocks) == 0 {
		return blocks, false, false
	}
	p, ok := blocks[0].(*nodo.Paragraph)
	if !ok || len(p.Lines) == 0 {
		return blocks, false, false
	}
	rest, completed, ok := matchCheckbox(p.Lines[0])
	if !ok {
		return blocks, false, false
	}
	return replaceFirstLine(blocks, p, rest), completed, true
}

// matchCheckbox scans the leading plain runs of t. On a match it returns
// the text after the closing bracket with leading whitespace removed.
func matchCheckbox(t nodo.Text) (nodo.Text, bool, bool) {
	state := expectOpen
	checked := false
	for i := 0; i < len(t) && i < maxTaskRuns; i++ {
		if !t[i].IsPlain() {
			return t, false, false
		}
		for j, r := range t[i].Content {
			if unicode.IsSpace(r) {
				continue
			}
			switch state {
			case expectOpen:
				if r != '[' {
					return t, false, false
				}
				state = expectMarkOrClose
			case expectMarkOrClose:
				switch r {
				case ']':
					return remainder(t, i, j+1), false, true
				case 'x', 'X':
					checked = true
					state = expectClose
				default:
					return t, false, false
				}
			case expectClose:
				if r != ']' {
					return t, false, false
				}
				return remainder(t, i, j+1), checked, true
			}
		}
	}
	return t, false, false
}

func remainder(t nodo.Text, run, offset int) nodo.Text {
	var out nodo.Text
	if s := t[run].Content[offset:]; s != "" {
		out = append(out, nodo.PlainText(s))
	}
	out = append(out, t[run+1:]...)
	return trimLeft(out)
}
