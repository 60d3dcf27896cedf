package options

import (
	"io"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/logger"
)

// LogOptions
type LogOptions struct {
	Verbosity int
	Quiet     bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().CountVarP(&o.Verbosity, "verbose", "v",
		"Increase logging, repeat for more (-vv).")
	cmd.PersistentFlags().BoolVarP(&o.Quiet, "quiet", "q", false,
		"Only log errors.")
}

// Logger returns a logger writing to w at the level the flags ask for.
func (o *LogOptions) Logger(w io.Writer) *logger.Logger {
	return logger.NewWithLevel(w, logger.LevelFor(o.Verbosity, o.Quiet))
}
