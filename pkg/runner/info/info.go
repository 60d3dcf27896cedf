// Package info prints the effective configuration.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/nodo/pkg/store"
)

type Info struct {
	Config      *store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("NODO_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "# NODO_CONFIG_PATH found on env, using", override)
	}
	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig("")
		if err != nil {
			return err
		}
	}
	if n.Config.File != "" {
		_, _ = fmt.Fprintln(out, "# config file:", n.Config.File)
	} else {
		_, _ = fmt.Fprintln(out, "# no config file found, using defaults")
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(n.Config); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}
	_, _ = fmt.Fprintf(out, "# nodos: %d\n", len(n.Persistence.Keys(ctx)))
	return nil
}
