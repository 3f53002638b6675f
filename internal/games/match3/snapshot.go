package match3

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateSettling     GameStateType = "settling"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Level     int // 1-indexed, 0 for endless
	Target    int
	MovesLeft int
	Moves     int
	Score     int
	BestChain int
	Cursor    [2]int
	Board     [][]int
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.flash != nil:
		state = StateSettling
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     level,
		Target:    g.target,
		MovesLeft: g.movesLeft,
		Moves:     g.moves,
		Score:     g.board.Score(),
		BestChain: g.bestChain,
		Cursor:    [2]int{g.cursor.row, g.cursor.col},
		Board:     g.board.Grid().Rows(),
		State:     state,
	}
}
