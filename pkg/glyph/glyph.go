// Package glyph holds the symbols used to display nodo items and entries.
package glyph

import (
	"fmt"

	"tableflip.dev/nodo/pkg/nodo"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	// Entry glyphs mark files and directories rather than list items.
	Entry bool
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// DefaultGlyphs is indexed by Bullet.
func DefaultGlyphs() []Glyph {
	return []Glyph{{
		Key:     "- [ ]",
		Symbol:  "●",
		Meaning: "task",
	}, {
		Key:     "- [x]",
		Symbol:  "✘",
		Meaning: "task completed",
	}, {
		Key:     "-",
		Symbol:  "⁃",
		Meaning: "note",
	}, {
		Key:     "1.",
		Symbol:  "#",
		Meaning: "numbered note",
	}, {
		Key:     "dir/",
		Symbol:  "▸",
		Meaning: "project",
		Entry:   true,
	}, {
		Key:     "name.md",
		Symbol:  "◆",
		Meaning: "nodo",
		Entry:   true,
	}, {
		Key:     ".nodo.md",
		Symbol:  "◇",
		Meaning: "local nodo",
		Entry:   true,
	}}
}

func (g Glyph) String() string {
	return g.Symbol
}

type Bullet int

const (
	Task Bullet = iota
	Completed
	Note
	NumberedNote
	Project
	Nodo
	Local
)

// For picks the bullet of a list item.
func For(item nodo.ListItem, numbered bool) Bullet {
	switch {
	case item.Task && item.Completed:
		return Completed
	case item.Task:
		return Task
	case numbered:
		return NumberedNote
	default:
		return Note
	}
}

func (b Bullet) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}
