package options

import (
	"github.com/spf13/cobra"
)

// FormatOptions
type FormatOptions struct {
	DryRun  bool
	Verbose bool
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().BoolVarP(&o.DryRun, "dry-run", "n", false,
		Wrap80("Don't apply the formatting, print a diff of what would change instead."))
	cmd.Flags().BoolVar(&o.Verbose, "list", false,
		"Print every nodo being formatted.")
}
