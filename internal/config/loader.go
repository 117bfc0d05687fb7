package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTaxi loads the taxi configuration.
// Search order: customPath -> ~/.arcade/configs/taxi.yaml -> ./configs/taxi.yaml -> embedded default.
// Values are decoded over DefaultTaxiConfig, so missing keys keep their defaults.
// The result is validated; a structurally invalid config is an error.
func LoadTaxi(customPath string) (TaxiConfig, error) {
	cfg := DefaultTaxiConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("taxi.yaml"), filepath.Join("configs", "taxi.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultTaxiConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTaxiYAML, &cfg); err != nil {
		return DefaultTaxiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyTaxiPreset modifies the config based on a difficulty preset.
func ApplyTaxiPreset(cfg *TaxiConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MaxFrames = cfg.Gameplay.MaxFrames * 3 / 2
		cfg.Collision.TaxiDamageMultiplier = 2.0
	case DifficultyHard:
		cfg.Gameplay.MaxFrames = cfg.Gameplay.MaxFrames * 3 / 4
		cfg.EnemyCar.ShootChance = max(1, cfg.EnemyCar.ShootChance/2)
	}
}
