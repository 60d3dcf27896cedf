package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/nodo/pkg/logger"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventNodoChanged indicates the nodo Target was written or removed.
	EventNodoChanged EventType = iota

	// EventTreeInvalidated signals that projects were added or removed, or
	// that a change could not be attributed to a single nodo.
	EventTreeInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type   EventType
	Target string
}

// settle is how long the tree has to stay quiet before changes are reported.
// Editors tend to write a file several times when saving.
const settle = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. The channel is closed
// once ctx is done or the watcher fails. Events are dropped, not queued,
// while the consumer is busy.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	root := p.cfg.BasePath()
	if root == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	tw := &treeWatcher{p: p, fs: fw, log: p.log, watched: map[string]bool{}}

	dirs, err := p.projectDirs(root)
	if err != nil {
		tw.close()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := tw.add(dir); err != nil {
			tw.close()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	out := make(chan Event, 64)
	go tw.run(ctx, out)
	return out, nil
}

// treeWatcher owns the fsnotify watcher. All of its state is confined to the
// run goroutine once Watch returns.
type treeWatcher struct {
	p       *persistence
	fs      *fsnotify.Watcher
	log     *logger.Logger
	watched map[string]bool
	pending batch
}

func (w *treeWatcher) add(dir string) error {
	dir = filepath.Clean(dir)
	if w.watched[dir] {
		return nil
	}
	if err := w.fs.Add(dir); err != nil {
		return err
	}
	w.watched[dir] = true
	return nil
}

func (w *treeWatcher) close() {
	if err := w.fs.Close(); err != nil {
		w.log.FileError(w.p.cfg.BasePath(), err)
	}
}

func (w *treeWatcher) run(ctx context.Context, out chan<- Event) {
	defer close(out)
	defer w.close()

	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	armed := false

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.FileError(w.p.cfg.BasePath(), err)
			w.pending.invalidate()
		case evt, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.handle(evt) {
				continue
			}
		case <-timer.C:
			armed = false
			for _, ev := range w.pending.drain() {
				select {
				case out <- ev:
				default:
				}
			}
			continue
		}
		if !armed {
			timer.Reset(settle)
			armed = true
		}
	}
}

// handle records evt in the pending batch and reports whether it mattered.
func (w *treeWatcher) handle(evt fsnotify.Event) bool {
	if evt.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
			if w.p.skipDir(evt.Name) {
				return false
			}
			if err := w.add(evt.Name); err != nil {
				w.log.FileError(evt.Name, err)
			}
			w.pending.invalidate()
			return true
		}
	}

	if w.p.skipDir(filepath.Dir(evt.Name)) {
		return false
	}
	if target, ok := w.p.targetForPath(evt.Name); ok {
		w.pending.changed(target)
		return true
	}
	if evt.Op&fsnotify.Remove != 0 {
		// possibly a project directory
		w.pending.invalidate()
		return true
	}
	return false
}

// batch collects changes between two flushes. An invalidation swallows
// every single nodo change.
type batch struct {
	invalid bool
	targets map[string]bool
}

func (b *batch) invalidate() { b.invalid = true }

func (b *batch) changed(target string) {
	if b.targets == nil {
		b.targets = map[string]bool{}
	}
	b.targets[target] = true
}

// drain returns the pending events, targets in order, and resets b.
func (b *batch) drain() []Event {
	defer func() { *b = batch{} }()
	if b.invalid {
		return []Event{{Type: EventTreeInvalidated}}
	}
	targets := make([]string, 0, len(b.targets))
	for t := range b.targets {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	events := make([]Event, len(targets))
	for i, t := range targets {
		events[i] = Event{Type: EventNodoChanged, Target: t}
	}
	return events
}

// projectDirs lists root and every project directory below it that is not
// skipped.
func (p *persistence) projectDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil
		case err != nil:
			return err
		case !d.IsDir():
			return nil
		case path != root && p.skipDir(path):
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	return dirs, err
}

// skipDir reports directories whose changes are not reported: temp and
// archive, and dot directories such as .git.
func (p *persistence) skipDir(dir string) bool {
	if p.cfg.IsHiddenDir(dir) {
		return true
	}
	rel, err := filepath.Rel(p.cfg.BasePath(), dir)
	if err != nil || rel == "." {
		return false
	}
	for _, part := range strings.Split(rel, string(os.PathSeparator)) {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// targetForPath derives the nodo target of a changed file.
func (p *persistence) targetForPath(path string) (string, bool) {
	if filepath.Ext(path) != "."+p.h.Extension() {
		return "", false
	}
	target, err := p.cfg.Target(path)
	if err != nil || target == "" {
		return "", false
	}
	return target, true
}
