package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/commands/options"
	"tableflip.dev/nodo/pkg/logger"
	"tableflip.dev/nodo/pkg/store"
)

var (
	oo = &options.OutputOptions{}
	lo = &options.LogOptions{}
	co = &options.ConfigOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "nodo",
		Short: options.Wrap80("A task and notes tracker, combined."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddLogArgs(cmd, lo)
	options.AddConfigArgs(cmd, co)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addNew(topLevel)
	addShow(topLevel)
	addRemove(topLevel)
	addEdit(topLevel)
	addClean(topLevel)
	addFormat(topLevel)
	addOverview(topLevel)
	addDue(topLevel)
	addArchive(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// env is what the runners share: the loaded config and a logger on stderr.
type env struct {
	cfg *store.Config
	log *logger.Logger
}

func load() (*env, error) {
	log := lo.Logger(os.Stderr)
	cfg, err := co.Load()
	if err != nil {
		return nil, err
	}
	log.ConfigLoaded(cfg.File, cfg.RootDir)
	return &env{cfg: cfg, log: log}, nil
}

func (e *env) persistence() (store.Persistence, error) {
	return store.Load(e.cfg, e.log)
}
