package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generates shell completion scripts",
		Long: `To load completion run

. <(nodo completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(nodo completion)
`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) > 0 {
				shell = args[0]
			}
			switch shell {
			case "bash":
				return topLevel.GenBashCompletion(os.Stdout)
			case "zsh":
				return topLevel.GenZshCompletion(os.Stdout)
			case "fish":
				return topLevel.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return topLevel.GenPowerShellCompletion(os.Stdout)
			}
			return fmt.Errorf("unknown shell %q", shell)
		},
	}

	topLevel.AddCommand(cmd)
}

// targetCompletions completes the first argument with known nodos and the
// projects that hold them.
func targetCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	e, err := load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	p, err := e.persistence()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	seen := map[string]bool{}
	var targets []string
	add := func(t string) {
		if !seen[t] && strings.HasPrefix(t, toComplete) {
			seen[t] = true
			targets = append(targets, t)
		}
	}
	for _, k := range p.Keys(context.Background()) {
		parts := strings.Split(k, "/")
		for i := 1; i < len(parts); i++ {
			add(strings.Join(parts[:i], "/") + "/")
		}
		add(k)
	}
	return targets, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
