// Package match3 implements a match-three tile puzzle with campaign and endless modes.
// Rules live in the engine subpackage; this package adds cursor input,
// animation timing, levels and rendering for the arcade platform.
package match3

// Level defines a campaign level: reach Target total score within Moves swaps.
type Level struct {
	ID         int
	Name       string
	Target     int // Total score needed to clear the level
	Moves      int // Move budget for the level
	ExtraTypes int // Icon types added on top of the configured count
}

// Levels defines the campaign. Targets are cumulative since score carries over.
var Levels = []Level{
	{ID: 1, Name: "First Swap", Target: 300, Moves: 20},
	{ID: 2, Name: "Chain Reaction", Target: 800, Moves: 20},
	{ID: 3, Name: "Crowded Board", Target: 1400, Moves: 20, ExtraTypes: 1},
	{ID: 4, Name: "Cascade Hunter", Target: 2200, Moves: 22, ExtraTypes: 1},
	{ID: 5, Name: "Tight Budget", Target: 3000, Moves: 18, ExtraTypes: 1},
	{ID: 6, Name: "Rainbow", Target: 4000, Moves: 24, ExtraTypes: 2},
	{ID: 7, Name: "Long Lines", Target: 5200, Moves: 22, ExtraTypes: 2},
	{ID: 8, Name: "Grand Finale", Target: 7000, Moves: 26, ExtraTypes: 2},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the targets of all levels.
func LevelTargets() []int {
	targets := make([]int, len(Levels))
	for i, lvl := range Levels {
		targets[i] = lvl.Target
	}
	return targets
}
