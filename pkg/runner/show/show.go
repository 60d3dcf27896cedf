// Package show prints a project listing or a single nodo.
package show

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/nodo/pkg/glyph"
	"tableflip.dev/nodo/pkg/logger"
	"tableflip.dev/nodo/pkg/printers"
	"tableflip.dev/nodo/pkg/runner"
	"tableflip.dev/nodo/pkg/store"
	"tableflip.dev/nodo/pkg/view"
)

type Show struct {
	Config *store.Config
	Log    *logger.Logger
	// Out defaults to stdout. Styled output is only used for a terminal.
	Out io.Writer

	Target string
	// Depth is the number of list levels shown, 0 shows all of them.
	Depth int
	// KeepCompleted filters tasks when set.
	KeepCompleted *bool
	// Raw prints the canonical markdown even on a terminal.
	Raw bool
}

func (s *Show) Do(ctx context.Context) error {
	if s.Target == "" {
		return s.dir(s.Config.BasePath())
	}
	path, isDir, err := runner.Find(s.Config, s.Target)
	if err != nil {
		return err
	}
	if isDir {
		return s.dir(path)
	}
	return s.file(path)
}

func (s *Show) dir(path string) error {
	des, err := os.ReadDir(path)
	if err != nil {
		return err
	}
	ext := "." + s.Config.DefaultFiletype
	entries := make([]printers.Entry, 0, len(des))
	for _, de := range des {
		full := filepath.Join(path, de.Name())
		if strings.HasPrefix(de.Name(), ".") || s.Config.HiddenFrom(path, full) {
			s.log().Skipped(full, "hidden")
			continue
		}
		switch {
		case de.IsDir():
			entries = append(entries, printers.Entry{Name: de.Name(), Bullet: glyph.Project})
		case strings.HasSuffix(de.Name(), ext):
			entries = append(entries, printers.Entry{Name: strings.TrimSuffix(de.Name(), ext), Bullet: glyph.Nodo})
		}
	}

	title := s.Target
	if title == "" {
		title = s.Config.BasePath()
	}
	pp := printers.PrettyPrint{Out: s.out()}
	pp.TitleWithCount(title, len(entries))
	pp.Entries(entries...)
	return nil
}

func (s *Show) file(path string) error {
	doc, err := store.ReadFile(path, s.Config)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	s.log().NodoRead(path, len(doc.Blocks))
	s.log().Dump("parsed", doc)

	if s.Depth > 0 {
		doc = view.TrimDocument(doc, s.Depth-1)
	}
	if s.KeepCompleted != nil {
		doc = view.FilterDocument(doc, *s.KeepCompleted)
	}

	if !s.Raw && s.terminal() {
		pp := printers.PrettyPrint{Out: s.out(), DateFormat: s.Config.DateFormat, Width: 100}
		pp.Document(doc)
		return nil
	}
	data, err := store.Render(path, doc, s.Config)
	if err != nil {
		return err
	}
	_, err = s.out().Write(data)
	return err
}

func (s *Show) terminal() bool {
	if s.Out != nil {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (s *Show) out() io.Writer {
	if s.Out == nil {
		return color.Output
	}
	return s.Out
}

func (s *Show) log() *logger.Logger {
	if s.Log == nil {
		return logger.Discard()
	}
	return s.Log
}
