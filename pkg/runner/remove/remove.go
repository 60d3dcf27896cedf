// Package remove deletes nodos and projects.
package remove

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/nodo/pkg/logger"
	"tableflip.dev/nodo/pkg/runner"
	"tableflip.dev/nodo/pkg/store"
)

type Remove struct {
	Config      *store.Config
	Persistence store.Persistence
	Log         *logger.Logger
	Out         io.Writer

	Target string
	// Force allows removing a whole project.
	Force bool
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Target == "" {
		return runner.ErrNoTarget
	}
	path, isDir, err := runner.Find(r.Config, r.Target)
	if err != nil {
		return err
	}
	if isDir {
		if !r.Force {
			return fmt.Errorf("%q is a project, use --force to remove it", r.Target)
		}
		err = os.RemoveAll(path)
	} else if r.Persistence != nil && path == r.Config.BuildPath(r.Target, true) {
		err = r.Persistence.Erase(r.Target)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return err
	}
	if r.Log != nil {
		r.Log.Info("removed", "path", path)
	}

	out := r.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "Removed: %s\n", r.Target)
	return nil
}
