// Package runner holds what the command runners below it share.
package runner

import (
	"errors"
	"fmt"

	"tableflip.dev/nodo/pkg/store"
)

// ErrNoTarget is returned by commands that need a target and got none.
var ErrNoTarget = errors.New("please provide a target")

// TargetMissingError reports a target that does not exist below the root
// directory. An empty Target stands for the local nodo.
type TargetMissingError struct {
	Target string
}

func (e *TargetMissingError) Error() string {
	if e.Target == "" {
		return "couldn't find local file"
	}
	return fmt.Sprintf("couldn't find target: '%s'", e.Target)
}

// Find resolves target to an existing file or project.
func Find(cfg *store.Config, target string) (path string, isDir bool, err error) {
	path, isDir, ok := cfg.FindTarget(target)
	if !ok {
		return "", false, &TargetMissingError{Target: target}
	}
	return path, isDir, nil
}
