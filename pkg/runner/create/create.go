// Package create makes new nodos.
package create

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/nodo/pkg/logger"
	"tableflip.dev/nodo/pkg/nodo"
	"tableflip.dev/nodo/pkg/runner"
	"tableflip.dev/nodo/pkg/store"
)

type Create struct {
	Config      *store.Config
	Persistence store.Persistence
	Log         *logger.Logger
	Out         io.Writer

	Target string
	// Title defaults to the last element of Target.
	Title     string
	Tags      []string
	StartDate *time.Time
	DueDate   *time.Time
	// Template is a nodo file whose content seeds the new nodo.
	Template string
}

func (n *Create) Do(ctx context.Context) error {
	if n.Target == "" {
		return runner.ErrNoTarget
	}
	if n.Persistence == nil {
		return errors.New("can not create, no persistence")
	}
	if n.Persistence.Has(n.Target) {
		return fmt.Errorf("nodo %q already exists", n.Target)
	}
	if _, isDir, ok := n.Config.FindTarget(n.Target); ok && isDir {
		return fmt.Errorf("%q is a project", n.Target)
	}

	doc, err := n.document()
	if err != nil {
		return err
	}
	if err := n.Persistence.Write(n.Target, doc); err != nil {
		return err
	}
	n.log().NodoWritten(n.Config.BuildPath(n.Target, true))

	_, _ = fmt.Fprintf(n.out(), "Created a new nodo: %s\n", n.Target)
	return nil
}

func (n *Create) document() (*nodo.Document, error) {
	b := &nodo.Builder{}
	if n.Template != "" {
		tmpl, err := store.ReadFile(n.Template, n.Config)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", n.Template, err)
		}
		n.log().Dump("template", tmpl)
		b.Tags(tmpl.Tags...).Title(tmpl.Title)
		if tmpl.StartDate != nil {
			b.StartDate(*tmpl.StartDate)
		}
		if tmpl.DueDate != nil {
			b.DueDate(*tmpl.DueDate)
		}
		for _, block := range tmpl.Blocks {
			b.Block(block)
		}
	}

	switch {
	case n.Title != "":
		b.Title(nodo.NewText(n.Title))
	case n.Template == "":
		b.Title(nodo.NewText(path.Base(n.Target)))
	}
	if len(n.Tags) > 0 {
		b.Tags(n.Tags...)
	}
	if n.StartDate != nil {
		b.StartDate(*n.StartDate)
	}
	if n.DueDate != nil {
		b.DueDate(*n.DueDate)
	}
	return b.Build(), nil
}

func (n *Create) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Create) log() *logger.Logger {
	if n.Log == nil {
		return logger.Discard()
	}
	return n.Log
}
