package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/commands/options"
	"tableflip.dev/nodo/pkg/runner/overview"
)

func addOverview(topLevel *cobra.Command) {
	to := &options.TargetOptions{}
	vo := &options.OverviewOptions{}

	cmd := &cobra.Command{
		Use:   "overview [target]",
		Short: "Provide an overview of the target",
		Long: options.Wrap80(`Overview counts the completed and total tasks of every nodo below the target and sums them up per project.
Only the top level tasks of each list are counted.`),
		Example: `
nodo overview
nodo overview work --depth 1
nodo overview -o yaml
nodo overview --watch
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: targetCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			to.SetTarget(args)
			if err := oo.Validate(); err != nil {
				return err
			}
			e, err := load()
			if err != nil {
				return err
			}
			p, err := e.persistence()
			if err != nil {
				return err
			}
			s := overview.Overview{
				Config:      e.cfg,
				Persistence: p,
				Log:         e.log,
				Target:      to.Target,
				Depth:       vo.Depth,
				Output:      oo.Output,
				Watch:       vo.Watch,
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddOverviewArgs(cmd, vo)

	topLevel.AddCommand(cmd)
}
