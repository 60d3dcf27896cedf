// Package edit opens a nodo in the configured editor and formats it once
// the editor exits.
package edit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/nodo/pkg/logger"
	"tableflip.dev/nodo/pkg/nodo"
	"tableflip.dev/nodo/pkg/runner"
	"tableflip.dev/nodo/pkg/store"
)

// tempLayout names scratch nodos after the time they were created.
const tempLayout = "2006-01-02-150405"

type Edit struct {
	Config *store.Config
	Log    *logger.Logger

	// Target is empty for the local nodo.
	Target string
	// Temp edits a new scratch nodo in the temp dir.
	Temp bool
	// Create writes an empty nodo first when the target is missing.
	Create bool
	// Dir is where the local nodo is looked up, the working dir by default.
	Dir string

	// Launch runs the editor on path. Defaults to the configured editor
	// attached to the terminal.
	Launch func(ctx context.Context, path string) error
	Now    func() time.Time
}

func (e *Edit) Do(ctx context.Context) error {
	path, err := e.path()
	if err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("can't edit %s since it is a project", path)
	} else if errors.Is(err, os.ErrNotExist) {
		if !e.Create && !e.Temp {
			return &runner.TargetMissingError{Target: e.Target}
		}
		if err := e.create(path); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	e.log().Debug("editing", "path", path, "editor", e.Config.Editor)
	launch := e.Launch
	if launch == nil {
		launch = e.launch
	}
	if err := launch(ctx, path); err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	doc, err := store.ReadFile(path, e.Config)
	if err != nil {
		return fmt.Errorf("%s was saved but can't be formatted: %w", path, err)
	}
	e.log().NodoRead(path, len(doc.Blocks))
	if e.Config.SortTasks {
		doc.SortTasks()
	}
	if err := store.WriteFile(path, doc, e.Config); err != nil {
		return err
	}
	e.log().NodoWritten(path)
	return nil
}

func (e *Edit) path() (string, error) {
	switch {
	case e.Temp:
		if e.Target != "" {
			return "", errors.New("can't edit a temporary nodo with a target")
		}
		name := e.now().Format(tempLayout) + "-" + strings.SplitN(uuid.NewString(), "-", 2)[0]
		return filepath.Join(e.Config.TempDir, name+"."+e.Config.DefaultFiletype), nil
	case e.Target == "":
		dir := e.Dir
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return "", err
			}
			dir = wd
		}
		return e.Config.LocalFile(dir)
	}
	if path, _, ok := e.Config.FindTarget(e.Target); ok {
		return path, nil
	}
	return e.Config.BuildPath(e.Target, true), nil
}

func (e *Edit) create(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if e.Temp {
		title = e.now().Format(time.DateTime)
	}
	doc := (&nodo.Builder{}).Title(nodo.NewText(title)).Build()
	if err := store.WriteFile(path, doc, e.Config); err != nil {
		return err
	}
	e.log().NodoWritten(path)
	return nil
}

func (e *Edit) launch(ctx context.Context, path string) error {
	args := strings.Fields(e.Config.Editor)
	if len(args) == 0 {
		return errors.New("no editor configured")
	}
	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (e *Edit) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Edit) log() *logger.Logger {
	if e.Log == nil {
		return logger.Discard()
	}
	return e.Log
}
