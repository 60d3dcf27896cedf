package options

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	FilterComplete   = "complete"
	FilterIncomplete = "incomplete"
)

// ShowOptions
type ShowOptions struct {
	Depth  int
	Filter string
	Raw    bool
}

func AddShowArgs(cmd *cobra.Command, o *ShowOptions) {
	cmd.Flags().IntVarP(&o.Depth, "depth", "d", 0,
		"The number of list levels to show, 0 shows all.")
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "",
		Wrap80("Only show tasks that are 'complete' or 'incomplete'."))
	cmd.Flags().BoolVar(&o.Raw, "raw", false,
		"Print canonical markdown even on a terminal.")
}

// KeepCompleted maps the filter flag, nil means no filtering.
func (o *ShowOptions) KeepCompleted() (*bool, error) {
	var keep bool
	switch o.Filter {
	case "":
		return nil, nil
	case FilterComplete:
		keep = true
	case FilterIncomplete:
		keep = false
	default:
		return nil, fmt.Errorf("unknown filter %q, want %q or %q", o.Filter, FilterComplete, FilterIncomplete)
	}
	return &keep, nil
}
