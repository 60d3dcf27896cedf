// Package overview prints task completion aggregated over a project tree.
package overview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/nodo/pkg/logger"
	"tableflip.dev/nodo/pkg/nodo"
	"tableflip.dev/nodo/pkg/overview"
	"tableflip.dev/nodo/pkg/printers"
	"tableflip.dev/nodo/pkg/runner"
	"tableflip.dev/nodo/pkg/store"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

type Overview struct {
	Config      *store.Config
	Persistence store.Persistence
	Log         *logger.Logger
	Out         io.Writer

	Target string
	// Depth limits the printed levels, negative prints the whole tree.
	Depth int
	// Output is one of text, yaml or json.
	Output string
	// Watch prints again on every change until ctx is done.
	Watch bool
}

func (o *Overview) Do(ctx context.Context) error {
	root := o.Config.BasePath()
	if o.Target != "" {
		path, _, err := runner.Find(o.Config, o.Target)
		if err != nil {
			return err
		}
		root = path
	}

	if err := o.print(root); err != nil {
		return err
	}
	if !o.Watch {
		return nil
	}
	if o.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}

	events, err := o.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			o.log().Debug("refresh", "target", ev.Target)
			if err := o.print(root); err != nil {
				return err
			}
		}
	}
}

func (o *Overview) print(root string) error {
	node, err := o.Walk(root)
	if err != nil {
		return err
	}

	switch o.Output {
	case OutputYAML:
		enc := yaml.NewEncoder(o.out())
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return err
		}
		return enc.Close()
	case OutputJSON:
		b, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(o.out(), string(b))
		return err
	case "", OutputText:
		pp := printers.PrettyPrint{Out: o.out()}
		pp.Overview(node, o.Depth)
		return nil
	}
	return fmt.Errorf("unknown output format %q", o.Output)
}

// Walk aggregates root, skipping dot entries, the temp and archive dirs and
// the configured ignore dirs, unless root itself lies inside them.
func (o *Overview) Walk(root string) (*overview.Node, error) {
	return overview.Walk(root, overview.Options{
		Read: func(path string) (*nodo.Document, error) {
			return store.ReadFile(path, o.Config)
		},
		Ignore: []func(string) bool{
			func(path string) bool { return strings.HasPrefix(filepath.Base(path), ".") },
			func(path string) bool { return o.Config.IgnoredFrom(root, path) },
		},
		Extension: o.Config.DefaultFiletype,
		Logger:    o.log(),
	})
}

func (o *Overview) out() io.Writer {
	if o.Out == nil {
		return color.Output
	}
	return o.Out
}

func (o *Overview) log() *logger.Logger {
	if o.Log == nil {
		return logger.Discard()
	}
	return o.Log
}
