package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skycat/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		base := config.DefaultConfig()

		fmt.Println("Difficulty presets:")
		fmt.Println()
		for _, p := range config.Presets() {
			cfg := base
			//nolint:errcheck // Presets() only lists known presets
			config.ApplyPreset(&cfg, p.Preset)
			fmt.Printf("  %-8s spawn every %-6v step %-5g %s\n",
				p.Preset, cfg.Obstacles.SpawnInterval, cfg.Obstacles.Step, p.Description)
		}
		fmt.Println()
		fmt.Println("Use 'skycat play --difficulty <preset>' to play one.")
	},
}
