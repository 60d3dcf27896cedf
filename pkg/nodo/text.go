package nodo

import (
	"reflect"
	"strings"
)

// Style describes how a TextItem is displayed.
type Style int

const (
	StylePlain Style = iota
	StyleEmphasis
	StyleStrong
	StyleStrikethrough
	StyleCode
	StyleLink
)

// TextItem is a run of text with a single style. For links Content is the
// display name and URI the target. Content keeps markdown backslash escapes
// as written, so writing it back reproduces the source; printers resolve
// them for display.
type TextItem struct {
	Style   Style
	Content string
	URI     string
}

// Text is an ordered sequence of styled runs. Adjacent plain runs are not
// merged.
type Text []TextItem

// PlainText builds an unstyled run.
func PlainText(s string) TextItem { return TextItem{Style: StylePlain, Content: s} }

// EmphasisText builds an emphasised run.
func EmphasisText(s string) TextItem { return TextItem{Style: StyleEmphasis, Content: s} }

// StrongText builds a strong run.
func StrongText(s string) TextItem { return TextItem{Style: StyleStrong, Content: s} }

// StrikethroughText builds a struck through run.
func StrikethroughText(s string) TextItem { return TextItem{Style: StyleStrikethrough, Content: s} }

// CodeText builds an inline code run.
func CodeText(s string) TextItem { return TextItem{Style: StyleCode, Content: s} }

// LinkText builds a link run.
func LinkText(name, uri string) TextItem { return TextItem{Style: StyleLink, Content: name, URI: uri} }

// NewText is shorthand for Text{PlainText(s)}.
func NewText(s string) Text {
	if s == "" {
		return nil
	}
	return Text{PlainText(s)}
}

// IsPlain reports whether the run carries no style.
func (t TextItem) IsPlain() bool { return t.Style == StylePlain }

// String returns the content without markup. Escapes are kept.
func (t Text) String() string {
	var sb strings.Builder
	for _, item := range t {
		sb.WriteString(item.Content)
	}
	return sb.String()
}

// IsEmpty reports whether the text displays nothing.
func (t Text) IsEmpty() bool {
	for _, item := range t {
		if item.Content != "" || item.URI != "" {
			return false
		}
	}
	return true
}

// Equal reports structural equality.
func (t Text) Equal(o Text) bool {
	return reflect.DeepEqual(t.normalize(), o.normalize())
}

func (t Text) normalize() Text {
	if len(t) == 0 {
		return nil
	}
	return t
}
