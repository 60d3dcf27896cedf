// Package format rewrites nodos in their canonical form.
package format

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/nodo/pkg/files"
	"tableflip.dev/nodo/pkg/logger"
	"tableflip.dev/nodo/pkg/printers"
	"tableflip.dev/nodo/pkg/runner"
	"tableflip.dev/nodo/pkg/store"
)

type Format struct {
	Config *store.Config
	Log    *logger.Logger
	// Out defaults to stdout. Diffs are only styled for a terminal.
	Out io.Writer

	// Target is a nodo or a project, empty for the whole root dir.
	Target string
	// DryRun prints a diff instead of writing.
	DryRun bool
	// Verbose prints every nodo being formatted.
	Verbose bool
	// Dir is where the local nodo is looked up, the working dir by default.
	Dir string
}

func (f *Format) Do(ctx context.Context) error {
	path, isDir, err := runner.Find(f.Config, f.Target)
	if err != nil {
		return err
	}
	if !isDir {
		return f.format(path)
	}

	if local, err := f.local(); err != nil {
		f.log().FileError(store.LocalName, err)
	} else if _, err := os.Stat(local); err == nil {
		if err := f.format(local); err != nil {
			return err
		}
	}
	return f.formatDir(ctx, path)
}

func (f *Format) formatDir(ctx context.Context, root string) error {
	ext := "." + f.Config.DefaultFiletype
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path == root {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") || f.Config.HiddenFrom(root, path) {
			f.log().Skipped(path, "hidden")
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		if err := f.format(path); err != nil {
			f.log().FileError(path, err)
			_, _ = fmt.Fprintf(f.out(), "Failed to format %s: %v\n", f.rel(path), err)
		}
		return nil
	})
}

func (f *Format) format(path string) error {
	if f.Verbose {
		_, _ = fmt.Fprintf(f.out(), "Formatting nodo: %s\n", f.rel(path))
	}
	before, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", files.ErrRead, err)
	}
	doc, err := store.ReadFile(path, f.Config)
	if err != nil {
		return err
	}
	f.log().NodoRead(path, len(doc.Blocks))
	if f.Config.SortTasks {
		doc.SortTasks()
	}
	after, err := store.Render(path, doc, f.Config)
	if err != nil {
		return err
	}

	if f.DryRun {
		diff := printers.Diff(f.rel(path), string(before), string(after))
		if diff == "" {
			return nil
		}
		bold := color.New(color.Bold)
		_, _ = bold.Fprintf(f.out(), "Formatted nodo: %s\n", f.rel(path))
		if f.terminal() {
			pp := printers.PrettyPrint{Out: f.out()}
			diff = pp.RenderDiff(diff)
		}
		_, _ = fmt.Fprint(f.out(), diff)
		return nil
	}

	if bytes.Equal(before, after) {
		return nil
	}
	if err := os.WriteFile(path, after, 0o644); err != nil {
		return fmt.Errorf("%w: %w", files.ErrWrite, err)
	}
	f.log().NodoWritten(path)
	return nil
}

func (f *Format) local() (string, error) {
	dir := f.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	return f.Config.LocalFile(dir)
}

// rel shortens paths below the root dir.
func (f *Format) rel(path string) string {
	if rel, err := filepath.Rel(f.Config.BasePath(), path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func (f *Format) terminal() bool {
	if f.Out != nil {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (f *Format) out() io.Writer {
	if f.Out == nil {
		return color.Output
	}
	return f.Out
}

func (f *Format) log() *logger.Logger {
	if f.Log == nil {
		return logger.Discard()
	}
	return f.Log
}
