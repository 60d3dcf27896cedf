package options

import (
	"github.com/spf13/cobra"
)

// NewOptions
type NewOptions struct {
	Title    string
	Tags     []string
	Template string
}

func AddNewArgs(cmd *cobra.Command, o *NewOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "",
		"Title of the nodo, defaults to its name.")
	cmd.Flags().StringSliceVar(&o.Tags, "tags", nil,
		"Comma separated tags.")
	cmd.Flags().StringVarP(&o.Template, "template", "t", "",
		"Create the nodo from the given template file.")
}
