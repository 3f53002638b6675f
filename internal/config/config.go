// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// Match3Config contains all configuration for the match-three game.
type Match3Config struct {
	Board      Match3Board      `yaml:"board"`
	Icons      Match3Icons      `yaml:"icons"`
	Settle     Match3Settle     `yaml:"settle"`
	Campaign   Match3Campaign   `yaml:"campaign"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Match3Board defines the grid dimensions.
type Match3Board struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Match3Icons defines how many distinct tile types are generated.
type Match3Icons struct {
	Types    int `yaml:"types"`
	MaxTypes int `yaml:"max_types"` // Upper bound when difficulty adds types
}

// Match3Settle defines the clear/collapse/fill loop and its animation.
type Match3Settle struct {
	MaxPasses  int `yaml:"max_passes"`  // Cap on clear/collapse/fill iterations
	FlashTicks int `yaml:"flash_ticks"` // Ticks runs stay highlighted before clearing
	HintTicks  int `yaml:"hint_ticks"`  // Ticks a hint stays visible
}

// Match3Campaign defines campaign-mode budgets.
type Match3Campaign struct {
	ExtraMoves int `yaml:"extra_moves"` // Added to every level's move budget
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraIconTypes int `yaml:"extra_icon_types"` // Icon types added at max difficulty
	MoveReduction  int `yaml:"move_reduction"`   // Campaign moves removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
