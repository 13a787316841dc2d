package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skycat/internal/config"
	"github.com/vovakirdan/skycat/internal/core"
	"github.com/vovakirdan/skycat/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play skycat",
	Long: `Start a game in the terminal.

Controls:
  Enter/S        - Start
  Space/J        - Jump
  Up/K           - Jump Jump (stronger)
  Mouse click    - Press the on-screen buttons
  R              - Restart (after death)
  Ctrl+S         - Save a text screenshot
  ?              - Toggle help
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Clouds spawn every 900ms and drift at 0.75 units per step
  normal - The configured values (700ms, 1 unit per step)
  hard   - Clouds spawn every 500ms and drift at 1.5 units per step

Examples:
  skycat play
  skycat play --difficulty easy
  skycat play --config ./my-skycat.yaml --width 1000`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close of the log file
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		Seed:      flagSeed,
	}

	logger.Info("starting",
		"screen", fmt.Sprintf("%dx%d", width, height),
		"fps", flagFPS,
		"difficulty", flagDifficulty)

	if err := tui.Run(cfg, rc, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// resolveConfig loads the configuration and applies the difficulty preset
// and size overrides from the command line.
func resolveConfig() (config.SkycatConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SkycatConfig{}, err
	}

	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.SkycatConfig{}, err
	}

	if flagWidth > 0 {
		cfg.World.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.World.Height = flagHeight
	}
	if flagFPS <= 0 {
		return config.SkycatConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if err := cfg.Validate(); err != nil {
		return config.SkycatConfig{}, err
	}
	return cfg, nil
}
