// Package archive moves nodos and projects into the archive dir.
package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"tableflip.dev/nodo/pkg/logger"
	"tableflip.dev/nodo/pkg/runner"
	"tableflip.dev/nodo/pkg/store"
)

type Archive struct {
	Config *store.Config
	Log    *logger.Logger
	Out    io.Writer

	Target string
}

func (a *Archive) Do(ctx context.Context) error {
	if a.Target == "" {
		return runner.ErrNoTarget
	}
	path, _, err := runner.Find(a.Config, a.Target)
	if err != nil {
		return err
	}
	if a.Config.IsHiddenDir(path) {
		return fmt.Errorf("%q is already in the temp or archive dir", a.Target)
	}
	rel, err := filepath.Rel(a.Config.BasePath(), path)
	if err != nil {
		return err
	}
	dest := filepath.Join(a.Config.ArchiveDir, rel)
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("%s is already archived", rel)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	if a.Log != nil {
		a.Log.Debug("archiving", "from", path, "to", dest)
	}
	if err := os.Rename(path, dest); err != nil {
		return err
	}

	out := a.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "Archived: %s\n", a.Target)
	return nil
}
