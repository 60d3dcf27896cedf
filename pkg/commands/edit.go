package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/commands/options"
	"tableflip.dev/nodo/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	to := &options.TargetOptions{}
	eo := &options.EditOptions{}

	cmd := &cobra.Command{
		Use:   "edit [target]",
		Short: "Edit a nodo in the editor",
		Long: options.Wrap80(`Edit opens the nodo in the configured editor and rewrites it in canonical form once the editor exits.
Without a target the local .nodo.md of the current git work tree is edited.`),
		Example: `
nodo edit inbox
nodo edit work/idea --create
nodo edit --temp
nodo edit --create
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: targetCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			to.SetTarget(args)
			e, err := load()
			if err != nil {
				return err
			}
			s := edit.Edit{
				Config: e.cfg,
				Log:    e.log,
				Target: to.Target,
				Temp:   eo.Temp,
				Create: eo.Create,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddEditArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
