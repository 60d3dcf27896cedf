package options

import (
	"github.com/spf13/cobra"
)

// EditOptions
type EditOptions struct {
	Temp   bool
	Create bool
}

func AddEditArgs(cmd *cobra.Command, o *EditOptions) {
	cmd.Flags().BoolVarP(&o.Temp, "temp", "t", false,
		"Edit a new scratch nodo in the temp dir.")
	cmd.Flags().BoolVarP(&o.Create, "create", "c", false,
		"Create the nodo when it does not exist.")
}
