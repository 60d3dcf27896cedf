package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/commands/options"
	"tableflip.dev/nodo/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "key",
		Aliases: []string{"legend"},
		Short:   "Print the glyphs used for items and entries",
		Long: options.Wrap80(`Key prints how list items and tasks are written in a nodo and the glyph
show uses for them, followed by the glyphs of project listings.`),
		Example: `
nodo key
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			k := key.Key{Out: cmd.OutOrStdout()}
			return oo.HandleError(k.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
