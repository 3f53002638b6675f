package config

import "math"

// DifficultyManager calculates dynamic game parameters based on progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/moves.
func (d *DifficultyManager) Level(score int, moves int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "moves":
		progress = float64(moves) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// IconTypes returns how many icon types to generate at the current level.
// The result grows from baseTypes by up to Scaling.ExtraIconTypes and never
// exceeds maxTypes (when maxTypes > 0).
func (d *DifficultyManager) IconTypes(baseTypes, maxTypes, score, moves int) int {
	level := d.Level(score, moves)
	result := baseTypes + int(math.Floor(level*float64(d.cfg.Scaling.ExtraIconTypes)))
	if maxTypes > 0 && result > maxTypes {
		result = maxTypes
	}
	return result
}

// MoveBudget returns a campaign move budget reduced by the current level.
func (d *DifficultyManager) MoveBudget(baseMoves int) int {
	reduction := int(d.initialLevel * float64(d.cfg.Scaling.MoveReduction))
	result := baseMoves - reduction
	if result < 5 { // Minimum playable budget
		result = 5
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
