package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/commands/options"
	"tableflip.dev/nodo/pkg/runner/due"
)

func addDue(topLevel *cobra.Command) {
	do := &options.DueOptions{}

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List nodos with a due date, soonest first",
		Example: `
nodo due
nodo due --within 1w
nodo due --calendar
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			p, err := e.persistence()
			if err != nil {
				return err
			}
			s := due.Due{
				Config:      e.cfg,
				Persistence: p,
				Log:         e.log,
				Within:      do.Within,
				Calendar:    do.Calendar,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDueArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
