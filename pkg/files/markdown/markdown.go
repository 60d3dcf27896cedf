// Package markdown reads nodos from markdown and writes them back in a
// single canonical form.
package markdown

import (
	"fmt"
	"io"

	"tableflip.dev/nodo/pkg/events"
	"tableflip.dev/nodo/pkg/files"
	"tableflip.dev/nodo/pkg/nodo"
)

// Extension is the file extension of markdown nodos.
const Extension = "md"

// Markdown is the markdown file handler.
type Markdown struct{}

var _ files.Handler = Markdown{}

func init() {
	files.Register(Markdown{})
}

// Extension implements files.Handler.
func (Markdown) Extension() string { return Extension }

// Read tokenizes r and builds a document from the events.
func (Markdown) Read(r io.Reader, opts files.Options) (*nodo.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", files.ErrRead, err)
	}
	evts, err := events.Tokenize(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", files.ErrRead, err)
	}
	return Parse(events.NewCursor(evts), opts)
}

// Write renders doc in canonical form.
func (Markdown) Write(w io.Writer, doc *nodo.Document, opts files.Options) error {
	return Write(w, doc, opts)
}

// Parse drains c into a document. Frontmatter problems are returned as
// *files.InvalidElementError. Events the builder has no handler for abort
// the build and come back as *files.UnhandledEventError; no partial
// document is returned.
func Parse(c *events.Cursor, opts files.Options) (doc *nodo.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			ue, ok := r.(*files.UnhandledEventError)
			if !ok {
				panic(r)
			}
			doc, err = nil, ue
		}
	}()

	b := &nodo.Builder{}
	if err := readFrontmatter(c, b, opts); err != nil {
		return nil, err
	}
	if e, ok := c.Peek(); ok && e.Kind == events.HeadingStart && e.Level == 1 {
		c.Next()
		b.Title(readHeading(c))
	}
	for {
		e, ok := c.Next()
		if !ok {
			break
		}
		b.Block(readBlock(c, e, "read body"))
	}
	return b.Build(), nil
}

func dateFormat(opts files.Options) string {
	if opts.DateFormat == "" {
		return files.DefaultDateFormat
	}
	return opts.DateFormat
}
