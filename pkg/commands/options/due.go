package options

import (
	"github.com/spf13/cobra"
)

// DueOptions
type DueOptions struct {
	Within   string
	Calendar bool
}

func AddDueArgs(cmd *cobra.Command, o *DueOptions) {
	cmd.Flags().StringVar(&o.Within, "within", "",
		Wrap80("Only list nodos due within this window, for example 3d or 1w. Overdue nodos are always listed."))
	cmd.Flags().BoolVar(&o.Calendar, "calendar", false,
		"Also print this month with due days highlighted.")
}
