package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/timeutil"
)

// DateOptions
type DateOptions struct {
	Start string
	Due   string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.Start, "start", "",
		Wrap80(`Start date, in the configured date format or one of "today", "tomorrow", "+3d".`))
	cmd.Flags().StringVar(&o.Due, "due", "",
		Wrap80(`Due date, in the configured date format or one of "today", "tomorrow", "+1w".`))
}

// Dates resolves the flags against now. Unset flags stay nil.
func (o *DateOptions) Dates(layout string, now time.Time) (start, due *time.Time, err error) {
	if start, err = resolve(o.Start, layout, now); err != nil {
		return nil, nil, err
	}
	if due, err = resolve(o.Due, layout, now); err != nil {
		return nil, nil, err
	}
	return start, due, nil
}

func resolve(s, layout string, now time.Time) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := timeutil.ResolveDate(s, layout, now)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
