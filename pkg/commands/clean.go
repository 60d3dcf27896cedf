package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/runner/clean"
)

func addClean(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean up the temporary directory",
		Example: `
nodo clean
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}
			s := clean.Clean{
				Config: e.cfg,
				Log:    e.log,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
