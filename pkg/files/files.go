// Package files defines the contract between nodo documents and the file
// formats they are stored in.
package files

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"tableflip.dev/nodo/pkg/events"
	"tableflip.dev/nodo/pkg/nodo"
)

var (
	// ErrRead wraps failures of the underlying reader.
	ErrRead = errors.New("files: read failed")
	// ErrWrite wraps failures of the underlying writer.
	ErrWrite = errors.New("files: write failed")
	// ErrInvalidElement is matched by malformed frontmatter errors.
	ErrInvalidElement = errors.New("files: invalid element")
	// ErrUnhandledEvent is matched when a reader met an event it has no
	// handler for. It indicates a tokenizer/reader mismatch, not bad input.
	ErrUnhandledEvent = errors.New("files: unhandled event")
	// ErrUnknownFiletype is returned by ForExtension.
	ErrUnknownFiletype = errors.New("files: unknown filetype")
)

// InvalidElementError reports an unexpected event inside the frontmatter.
type InvalidElementError struct {
	Event events.Event
}

func (e *InvalidElementError) Error() string {
	return fmt.Sprintf("invalid element in frontmatter: %s", e.Event)
}

func (e *InvalidElementError) Unwrap() error { return ErrInvalidElement }

// UnhandledEventError reports an event kind the reader cannot place.
type UnhandledEventError struct {
	Event   events.Event
	Context string
}

func (e *UnhandledEventError) Error() string {
	return fmt.Sprintf("%s reached unhandled event: %s", e.Context, e.Event)
}

func (e *UnhandledEventError) Unwrap() error { return ErrUnhandledEvent }

// Options carries the settings a handler needs. They are always passed
// explicitly so different configurations can coexist in one process.
type Options struct {
	// DateFormat is a Go time layout used for frontmatter dates.
	DateFormat string
}

// DefaultDateFormat is day/month/year.
const DefaultDateFormat = "02/01/2006"

// Handler reads and writes documents in one file format.
type Handler interface {
	// Extension is the file extension without the dot.
	Extension() string
	Read(r io.Reader, opts Options) (*nodo.Document, error)
	Write(w io.Writer, doc *nodo.Document, opts Options) error
}

var (
	mu       sync.RWMutex
	handlers = map[string]Handler{}
)

// Register makes a handler available through ForExtension.
func Register(h Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[strings.ToLower(h.Extension())] = h
}

// ForExtension returns the handler for ext, with or without a leading dot.
func ForExtension(ext string) (Handler, error) {
	mu.RLock()
	defer mu.RUnlock()
	h, ok := handlers[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFiletype, ext)
	}
	return h, nil
}

// Extensions lists the registered extensions.
func Extensions() []string {
	mu.RLock()
	defer mu.RUnlock()
	exts := make([]string, 0, len(handlers))
	for ext := range handlers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
