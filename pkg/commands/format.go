package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/commands/options"
	"tableflip.dev/nodo/pkg/runner/format"
)

func addFormat(topLevel *cobra.Command) {
	to := &options.TargetOptions{}
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "format [target]",
		Short: "Format nodos or a target",
		Long: options.Wrap80(`Format rewrites a nodo, or every nodo below a project, in canonical form.
Formatting a project also formats the local .nodo.md. Nodos that fail to parse are reported and skipped.`),
		Example: `
nodo format
nodo format work --dry-run
nodo format inbox
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
			s := format.Format{
				Config:  e.cfg,
				Log:     e.log,
				Target:  to.Target,
				DryRun:  fo.DryRun,
				Verbose: fo.Verbose,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFormatArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
