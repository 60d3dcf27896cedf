// Package view derives reduced copies of nodo lists for display. Nothing here
// modifies its input.
package view

import "tableflip.dev/nodo/pkg/nodo"

// Trim keeps maxDepth levels of nesting below the top level list. At depth
// zero every item loses its nested list.
func Trim(list nodo.ListKind, maxDepth int) nodo.ListKind {
	out := nodo.ListKind{Numbered: list.Numbered, Start: list.Start}
	for _, item := range list.Items {
		c := item
		c.Nested = nil
		if item.Nested != nil && maxDepth > 0 {
			nested := Trim(*item.Nested, maxDepth-1)
			c.Nested = &nested
		}
		out.Items = append(out.Items, c)
	}
	return out
}

// Filter keeps text items and the tasks whose completion matches
// keepCompleted, at every level. An item that is kept keeps a nested list
// even when filtering empties it.
func Filter(list nodo.ListKind, keepCompleted bool) nodo.ListKind {
	out := nodo.ListKind{Numbered: list.Numbered, Start: list.Start}
	for _, item := range list.Items {
		if item.Task && item.Completed != keepCompleted {
			continue
		}
		c := item
		if item.Nested != nil {
			nested := Filter(*item.Nested, keepCompleted)
			c.Nested = &nested
		}
		out.Items = append(out.Items, c)
	}
	return out
}

// CountCompletion counts the tasks directly in the top level lists of doc.
// Nested lists are not visited.
func CountCompletion(doc *nodo.Document) (completed, total int) {
	for _, l := range doc.Lists() {
		for _, item := range l.Kind.Items {
			if !item.Task {
				continue
			}
			total++
			if item.Completed {
				completed++
			}
		}
	}
	return completed, total
}

// TrimDocument applies Trim to every list of a copy of doc, including lists
// inside block quotes.
func TrimDocument(doc *nodo.Document, maxDepth int) *nodo.Document {
	return mapLists(doc, func(l nodo.ListKind) nodo.ListKind { return Trim(l, maxDepth) })
}

// FilterDocument applies Filter to every list of a copy of doc, including
// lists inside block quotes.
func FilterDocument(doc *nodo.Document, keepCompleted bool) *nodo.Document {
	return mapLists(doc, func(l nodo.ListKind) nodo.ListKind { return Filter(l, keepCompleted) })
}

func mapLists(doc *nodo.Document, fn func(nodo.ListKind) nodo.ListKind) *nodo.Document {
	out := *doc
	out.Blocks = mapBlocks(doc.Blocks, fn)
	return &out
}

func mapBlocks(blocks []nodo.Block, fn func(nodo.ListKind) nodo.ListKind) []nodo.Block {
	if blocks == nil {
		return nil
	}
	out := make([]nodo.Block, len(blocks))
	for i, b := range blocks {
		switch v := b.(type) {
		case *nodo.List:
			out[i] = &nodo.List{Kind: fn(v.Kind)}
		case *nodo.BlockQuote:
			out[i] = &nodo.BlockQuote{Blocks: mapBlocks(v.Blocks, fn)}
		default:
			out[i] = b
		}
	}
	return out
}
