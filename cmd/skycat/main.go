// skycat is a terminal side-scroller: keep the cat aloft and away from the
// left edge while clouds drift in from the right.
//
// Usage:
//
//	skycat                  - Play (same as skycat play)
//	skycat play             - Play
//	skycat config           - Print the effective configuration as YAML
//	skycat presets          - List difficulty presets
//
// Global flags:
//
//	--fps <rate>            - Frame rate of the terminal UI (default: 60)
//	--seed <value>          - Set RNG seed for reproducible lanes
//	--log <path>            - Write logs to a file (default: discard)
//	--log-level <level>     - debug, info, warn or error (default: info)
//	--config <path>         - Custom config YAML
//	--difficulty <preset>   - easy, normal or hard
//	--width, --height <n>   - Override the world size
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagLogPath    string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
	flagWidth      float64
	flagHeight     float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skycat",
	Short: "skycat - keep the cat in the sky",
	Long: `skycat is a side-scrolling game for the terminal. Gravity pulls the cat
down, clouds scroll in from the right and push it toward the left edge.
Two jumps push it back up. Crossing the left edge ends the run.

Available commands:
  play     - Play (default)
  config   - Print the effective configuration
  presets  - List difficulty presets

Examples:
  skycat
  skycat play --difficulty hard
  skycat --seed 42 --log skycat.log --log-level debug
  skycat config --config ./my-skycat.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Float64Var(&flagWidth, "width", 0, "Override world width (0 = from config)")
	rootCmd.PersistentFlags().Float64Var(&flagHeight, "height", 0, "Override world height (0 = from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(presetsCmd)
}
