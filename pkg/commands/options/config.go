package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/nodo/pkg/store"
)

// ConfigOptions
type ConfigOptions struct {
	File string
}

func AddConfigArgs(cmd *cobra.Command, o *ConfigOptions) {
	cmd.PersistentFlags().StringVar(&o.File, "config", "",
		Wrap80("Config file to use instead of searching for .nodo.yaml in $NODO_CONFIG_PATH, the XDG config dir and the home dir."))
}

func (o *ConfigOptions) Load() (*store.Config, error) {
	return store.LoadConfig(o.File)
}
