package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/commands/options"
	"tableflip.dev/nodo/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	to := &options.TargetOptions{}
	ro := &options.RemoveOptions{}

	cmd := &cobra.Command{
		Use:     "remove <target>",
		Aliases: []string{"rm"},
		Short:   "Remove a nodo",
		Example: `
nodo remove inbox
nodo remove work --force
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
			p, err := e.persistence()
			if err != nil {
				return err
			}
			s := remove.Remove{
				Config:      e.cfg,
				Persistence: p,
				Log:         e.log,
				Target:      to.Target,
				Force:       ro.Force,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddRemoveArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
