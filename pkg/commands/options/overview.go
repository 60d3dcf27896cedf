package options

import (
	"github.com/spf13/cobra"
)

// OverviewOptions
type OverviewOptions struct {
	Depth int
	Watch bool
}

func AddOverviewArgs(cmd *cobra.Command, o *OverviewOptions) {
	cmd.Flags().IntVarP(&o.Depth, "depth", "d", -1,
		"Levels below the target to print, -1 prints the whole tree.")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Print again whenever a nodo changes.")
}
