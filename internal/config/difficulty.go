package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// PresetInfo describes what a preset changes.
type PresetInfo struct {
	Preset      DifficultyPreset
	SpawnScale  float64 // Multiplier on obstacles.spawn_interval
	StepScale   float64 // Multiplier on obstacles.step
	Description string
}

var presets = []PresetInfo{
	{Preset: DifficultyEasy, SpawnScale: 9.0 / 7.0, StepScale: 0.75, Description: "sparser, slower clouds"},
	{Preset: DifficultyNormal, SpawnScale: 1, StepScale: 1, Description: "the configured values"},
	{Preset: DifficultyHard, SpawnScale: 5.0 / 7.0, StepScale: 1.5, Description: "denser, faster clouds"},
}

// Presets lists the known presets from easiest to hardest.
func Presets() []PresetInfo {
	out := make([]PresetInfo, len(presets))
	copy(out, presets)
	return out
}

// ApplyPreset scales obstacle timing for a preset. An empty preset is the
// same as normal and leaves cfg untouched.
func ApplyPreset(cfg *SkycatConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	for _, p := range presets {
		if p.Preset != preset {
			continue
		}
		interval := time.Duration(float64(cfg.Obstacles.SpawnInterval) * p.SpawnScale)
		cfg.Obstacles.SpawnInterval = interval.Round(time.Millisecond)
		cfg.Obstacles.Step *= p.StepScale
		return nil
	}
	return fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
}
