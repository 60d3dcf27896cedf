// Package clean empties the temp dir.
package clean

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"tableflip.dev/nodo/pkg/logger"
	"tableflip.dev/nodo/pkg/store"
)

type Clean struct {
	Config *store.Config
	Log    *logger.Logger
	Out    io.Writer
}

func (c *Clean) Do(ctx context.Context) error {
	dir := c.Config.TempDir
	if dir == "" || filepath.Clean(dir) == filepath.Clean(c.Config.BasePath()) {
		return fmt.Errorf("refusing to clean temp dir %q", dir)
	}
	des, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if c.Log != nil {
		c.Log.Info("cleaned", "dir", dir, "removed", len(des))
	}

	out := c.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "Removed %d from %s\n", len(des), dir)
	return nil
}
