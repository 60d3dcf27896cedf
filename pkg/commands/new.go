package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/commands/options"
	"tableflip.dev/nodo/pkg/runner/create"
)

func addNew(topLevel *cobra.Command) {
	to := &options.TargetOptions{}
	no := &options.NewOptions{}
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "new <target>",
		Short: "Create a new nodo",
		Example: `
nodo new inbox
nodo new work/release --tags work,q3 --due +2w
nodo new work/retro --template ~/templates/retro.md
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: targetCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			to.SetTarget(args)
			e, err := load()
			if err != nil {
				return err
			}
			start, due, err := do.Dates(e.cfg.DateFormat, time.Now())
			if err != nil {
				return err
			}
			p, err := e.persistence()
			if err != nil {
				return err
			}
			s := create.Create{
				Config:      e.cfg,
				Persistence: p,
				Log:         e.log,
				Target:      to.Target,
				Title:       no.Title,
				Tags:        no.Tags,
				StartDate:   start,
				DueDate:     due,
				Template:    no.Template,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddNewArgs(cmd, no)
	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
