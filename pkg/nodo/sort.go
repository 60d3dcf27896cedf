package nodo

import "sort"

// SortTasks reorders every list in the document so that text items come
// first, then open tasks, then completed tasks. Relative order inside each
// group is kept. Nested lists are sorted as well.
func (d *Document) SortTasks() {
	sortBlocks(d.Blocks)
}

func sortBlocks(blocks []Block) {
	for _, b := range blocks {
		switch v := b.(type) {
		case *List:
			v.Kind.sortTasks()
		case *BlockQuote:
			sortBlocks(v.Blocks)
		}
	}
}

func (l *ListKind) sortTasks() {
	sort.SliceStable(l.Items, func(i, j int) bool {
		return taskRank(l.Items[i]) < taskRank(l.Items[j])
	})
	for i := range l.Items {
		if l.Items[i].Nested != nil {
			l.Items[i].Nested.sortTasks()
		}
	}
}

func taskRank(item ListItem) int {
	switch {
	case !item.Task:
		return 0
	case !item.Completed:
		return 1
	default:
		return 2
	}
}
