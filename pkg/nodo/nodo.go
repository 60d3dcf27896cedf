// Package nodo defines the document model of a nodo: a mixture of a todo
// and a note. A nodo has optional frontmatter metadata, a title, and a body
// made of blocks.
package nodo

import (
	"reflect"
	"time"
)

// Document is a parsed nodo.
type Document struct {
	// Tags keeps insertion order, duplicates are allowed.
	Tags      []string
	StartDate *time.Time
	DueDate   *time.Time
	// Title is the first level 1 heading, it never appears in Blocks.
	Title  Text
	Blocks []Block
}

// HasFrontmatter reports whether any metadata field is set.
func (d *Document) HasFrontmatter() bool {
	return len(d.Tags) > 0 || d.StartDate != nil || d.DueDate != nil
}

// Lists returns the top level lists of the document in order.
func (d *Document) Lists() []*List {
	var lists []*List
	for _, b := range d.Blocks {
		if l, ok := b.(*List); ok {
			lists = append(lists, l)
		}
	}
	return lists
}

// Equal reports structural equality of two documents.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if !sameDate(d.StartDate, o.StartDate) || !sameDate(d.DueDate, o.DueDate) {
		return false
	}
	if len(d.Tags) != len(o.Tags) || len(d.Blocks) != len(o.Blocks) {
		return false
	}
	for i := range d.Tags {
		if d.Tags[i] != o.Tags[i] {
			return false
		}
	}
	return d.Title.Equal(o.Title) && reflect.DeepEqual(normalizeBlocks(d.Blocks), normalizeBlocks(o.Blocks))
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Date returns the calendar date y-m-d at midnight UTC.
func Date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// Builder accumulates the parts of a Document. It is single use: call Build
// once and discard it.
type Builder struct {
	doc Document
}

// Tags replaces the tags.
func (b *Builder) Tags(tags ...string) *Builder {
	b.doc.Tags = append([]string(nil), tags...)
	return b
}

// StartDate sets the start date.
func (b *Builder) StartDate(t time.Time) *Builder {
	b.doc.StartDate = &t
	return b
}

// DueDate sets the due date.
func (b *Builder) DueDate(t time.Time) *Builder {
	b.doc.DueDate = &t
	return b
}

// Title sets the title.
func (b *Builder) Title(t Text) *Builder {
	b.doc.Title = t
	return b
}

// Block appends a block to the body.
func (b *Builder) Block(block Block) *Builder {
	b.doc.Blocks = append(b.doc.Blocks, block)
	return b
}

// Build hands the accumulated document over to the caller.
func (b *Builder) Build() *Document {
	d := b.doc
	b.doc = Document{}
	return &d
}
