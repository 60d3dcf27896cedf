package options

import (
	"github.com/spf13/cobra"
)

// RemoveOptions
type RemoveOptions struct {
	Force bool
}

func AddRemoveArgs(cmd *cobra.Command, o *RemoveOptions) {
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false,
		"Force removal of the target, allows removal of projects.")
}
