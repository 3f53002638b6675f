package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Board limits. Below three cells no run fits; above the upper bound the
// board no longer fits a typical terminal.
const (
	MinBoardSize = 3
	MaxBoardSize = 16
	MinIconTypes = 3
)

// LoadMatch3 loads the match-three configuration.
// Search order: customPath -> ~/.arcade/configs/match3.yaml -> ./configs/match3.yaml -> embedded default
func LoadMatch3(customPath string) (Match3Config, error) {
	// Start from defaults so partial files only override what they name.
	cfg := DefaultMatch3Config()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("match3.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "match3.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMatch3YAML, &cfg); err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unparsable or invalid
// files are skipped so the next location in the search order is used.
func tryLoad(path string) (Match3Config, bool) {
	cfg := DefaultMatch3Config()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the configuration describes a playable board.
func (c Match3Config) Validate() error {
	var errs []error
	if c.Board.Width < MinBoardSize || c.Board.Width > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.width %d out of range [%d, %d]", c.Board.Width, MinBoardSize, MaxBoardSize))
	}
	if c.Board.Height < MinBoardSize || c.Board.Height > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.height %d out of range [%d, %d]", c.Board.Height, MinBoardSize, MaxBoardSize))
	}
	if c.Icons.Types < MinIconTypes {
		errs = append(errs, fmt.Errorf("icons.types must be at least %d, got %d", MinIconTypes, c.Icons.Types))
	}
	if c.Icons.MaxTypes != 0 && c.Icons.MaxTypes < c.Icons.Types {
		errs = append(errs, fmt.Errorf("icons.max_types %d is below icons.types %d", c.Icons.MaxTypes, c.Icons.Types))
	}
	if c.Settle.MaxPasses < 1 {
		errs = append(errs, fmt.Errorf("settle.max_passes must be positive, got %d", c.Settle.MaxPasses))
	}
	return errors.Join(errs...)
}

// ApplyMatch3Preset modifies the config based on a difficulty preset.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust board variety and move budgets based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Icons.Types = max(MinIconTypes, cfg.Icons.Types-1)
		cfg.Campaign.ExtraMoves += 5
	case DifficultyHard:
		cfg.Icons.Types++
		if cfg.Icons.MaxTypes != 0 && cfg.Icons.MaxTypes < cfg.Icons.Types {
			cfg.Icons.MaxTypes = cfg.Icons.Types
		}
		cfg.Campaign.ExtraMoves -= 3
	}
}
