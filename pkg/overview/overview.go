// Package overview aggregates task completion over a directory tree of
// nodos.
package overview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tableflip.dev/nodo/pkg/files"
	"tableflip.dev/nodo/pkg/logger"
	"tableflip.dev/nodo/pkg/nodo"
	"tableflip.dev/nodo/pkg/view"
)

// Options configures Walk.
type Options struct {
	// Read parses the nodo at path. Defaults to the handler registered for
	// Extension with default file options.
	Read func(path string) (*nodo.Document, error)
	// Ignore predicates skip any entry for which one of them returns true.
	Ignore []func(path string) bool
	// Extension selects which files are nodos, without the dot.
	Extension string
	Logger    *logger.Logger
}

// Node is one entry of the aggregated tree. A directory's counts are the
// sums over its children.
type Node struct {
	Name      string  `json:"name" yaml:"name"`
	Path      string  `json:"path" yaml:"path"`
	IsDir     bool    `json:"dir,omitempty" yaml:"dir,omitempty"`
	Completed int     `json:"completed" yaml:"completed"`
	Total     int     `json:"total" yaml:"total"`
	Err       error   `json:"-" yaml:"-"`
	Children  []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Percent is the completed share of Total, zero when there are no tasks.
func (n *Node) Percent() float64 {
	if n.Total == 0 {
		return 0
	}
	return float64(n.Completed) / float64(n.Total) * 100
}

// Walk aggregates root. Failures below root are logged, recorded on the
// node and count as zero; only a root that cannot be inspected is an error.
func Walk(root string, opts Options) (*Node, error) {
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Read == nil {
		h, err := files.ForExtension(opts.Extension)
		if err != nil {
			return nil, err
		}
		opts.Read = func(path string) (*nodo.Document, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", files.ErrRead, err)
			}
			defer f.Close()
			return h.Read(f, files.Options{})
		}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}
	w := &walker{opts: opts}
	if !info.IsDir() {
		return w.file(root), nil
	}
	return w.dir(root), nil
}

type walker struct {
	opts Options
}

func (w *walker) ignored(path string) bool {
	for _, ignore := range w.opts.Ignore {
		if ignore(path) {
			return true
		}
	}
	return false
}

func (w *walker) dir(path string) *Node {
	n := &Node{Name: filepath.Base(path), Path: path, IsDir: true}
	entries, err := os.ReadDir(path)
	if err != nil {
		w.opts.Logger.FileError(path, err)
		n.Err = err
		return n
	}
	for _, e := range entries {
		child := filepath.Join(path, e.Name())
		if w.ignored(child) {
			w.opts.Logger.Skipped(child, "ignored")
			continue
		}
		var c *Node
		switch {
		case e.IsDir():
			c = w.dir(child)
		case strings.TrimPrefix(filepath.Ext(e.Name()), ".") == w.opts.Extension:
			c = w.file(child)
		default:
			w.opts.Logger.Skipped(child, "not a nodo")
			continue
		}
		n.Completed += c.Completed
		n.Total += c.Total
		n.Children = append(n.Children, c)
	}
	return n
}

func (w *walker) file(path string) *Node {
	n := &Node{Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), Path: path}
	doc, err := w.opts.Read(path)
	if err != nil {
		w.opts.Logger.FileError(path, err)
		n.Err = err
		return n
	}
	n.Completed, n.Total = view.CountCompletion(doc)
	return n
}
