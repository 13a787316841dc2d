package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "skycat.yaml"

// Load reads the game configuration.
// Search order: customPath -> ~/.skycat/skycat.yaml -> ./configs/skycat.yaml -> embedded default.
// Files only need the keys they override; everything else keeps its default.
func Load(customPath string) (SkycatConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SkycatConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SkycatConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (SkycatConfig, error) {
	cfg := DefaultConfig()
	// Lanes in the document replace the default table instead of merging.
	var probe struct {
		Obstacles struct {
			Lanes []Lane `yaml:"lanes"`
		} `yaml:"obstacles"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return SkycatConfig{}, err
	}
	if probe.Obstacles.Lanes != nil {
		cfg.Obstacles.Lanes = nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SkycatConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SkycatConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg SkycatConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skycat", filename)
}
