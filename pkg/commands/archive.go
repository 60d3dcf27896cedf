package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/commands/options"
	"tableflip.dev/nodo/pkg/runner/archive"
)

func addArchive(topLevel *cobra.Command) {
	to := &options.TargetOptions{}

	cmd := &cobra.Command{
		Use:   "archive <target>",
		Short: "Move a nodo or project into the archive dir",
		Example: `
nodo archive work/release
nodo archive work
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
			s := archive.Archive{
				Config: e.cfg,
				Log:    e.log,
				Target: to.Target,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
