package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/commands/options"
	"tableflip.dev/nodo/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	to := &options.TargetOptions{}
	so := &options.ShowOptions{}

	cmd := &cobra.Command{
		Use:   "show [target]",
		Short: "Show available projects and nodos",
		Long: options.Wrap80(`Show lists a project when the target is a directory and prints the nodo otherwise.
On a terminal the nodo is styled, else its canonical markdown is printed.`),
		Example: `
nodo show
nodo show work
nodo show work/release -d 1 -f incomplete
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: targetCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			to.SetTarget(args)
			keep, err := so.KeepCompleted()
			if err != nil {
				return err
			}
			e, err := load()
			if err != nil {
				return err
			}
			s := show.Show{
				Config:        e.cfg,
				Log:           e.log,
				Target:        to.Target,
				Depth:         so.Depth,
				KeepCompleted: keep,
				Raw:           so.Raw,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowArgs(cmd, so)
	_ = cmd.RegisterFlagCompletionFunc("filter", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{options.FilterComplete, options.FilterIncomplete}, cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
