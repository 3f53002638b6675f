package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-three configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: Match3Board{
			Width:  8,
			Height: 8,
		},
		Icons: Match3Icons{
			Types:    5,
			MaxTypes: 7,
		},
		Settle: Match3Settle{
			MaxPasses:  100,
			FlashTicks: 18,
			HintTicks:  90,
		},
		Campaign: Match3Campaign{
			ExtraMoves: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				ExtraIconTypes: 2,
				MoveReduction:  4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "match3", "match3_endless":
		return defaultMatch3YAML
	default:
		return nil
	}
}
