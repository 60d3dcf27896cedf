package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// OutputOptions
type OutputOptions struct {
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().StringVarP(&po.Output, "output", "o", OutputText,
		"Output format. One of 'text', 'yaml' or 'json'.")
}

func (o *OutputOptions) Validate() error {
	switch o.Output {
	case "", OutputText, OutputYAML, OutputJSON:
		return nil
	}
	return fmt.Errorf("unknown output format %q", o.Output)
}

func (o *OutputOptions) JSON() bool {
	return o.Output == OutputJSON
}

// HandleError prints err as a JSON object when JSON output was asked for,
// otherwise it is returned as is.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON() && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
