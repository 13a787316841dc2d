package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skycat/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration skycat would play with, after the config file
search, the difficulty preset and the size overrides are applied.

The output is valid YAML and can be saved as ~/.skycat/skycat.yaml.

Examples:
  skycat config
  skycat config --difficulty hard > ~/.skycat/skycat.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
