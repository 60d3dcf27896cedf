package main

import (
	"os"

	"github.com/fatih/color"

	"tableflip.dev/nodo/pkg/commands"
)

func main() {
	cmd := commands.New()
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
