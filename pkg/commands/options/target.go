package options

import (
	"strings"
)

// TargetOptions holds the positional project/sub/nodo target.
type TargetOptions struct {
	Target string
}

// SetTarget takes the optional target from args.
func (o *TargetOptions) SetTarget(args []string) {
	if len(args) > 0 {
		o.Target = strings.Trim(args[0], "/")
	}
}
