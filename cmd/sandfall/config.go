package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sandfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the built-in default configuration.

Redirect the output to a file to customize it:
  sandfall config > ~/.sandfall/configs/sand.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	fmt.Print(string(config.GetDefaultYAML()))
}
