package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Game identifiers used by the registry and score storage.
const (
	IDCampaign = "match3"
	IDEndless  = "match3_endless"
)

// levelClearDelay is how long the level-cleared banner stays up (2s at 60fps).
const levelClearDelay = 120

// messageDuration is how long a status message stays in the HUD.
const messageDuration = 90

type pos struct{ row, col int }

// Game implements the match-three puzzle for the arcade platform.
type Game struct {
	mode       Mode
	cfg        config.Match3Config
	difficulty *config.DifficultyManager
	source     *engine.RandomSource
	board      *engine.Engine
	seed       int64
	tick       uint64

	// Cursor and selection
	cursor pos
	picked *pos

	// Runs highlighted between an accepted swap and the settle
	flash      map[[2]int]bool
	flashTicks int

	hint      *engine.Move
	hintTicks int

	message      string
	messageTicks int

	// Progress
	levelIndex int
	startLevel int
	target     int
	movesLeft  int
	moves      int
	lastChain  int
	bestChain  int
	lastGain   int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	noMoves         bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// Package-level variables for config
var (
	selectedStartLevel int
	activeConfig       *config.Match3Config
)

// SetStartLevel sets the starting campaign level (1-based). 0 means start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// SetConfig sets the configuration used by games created afterwards.
// The caller is expected to have validated it.
func SetConfig(cfg config.Match3Config) {
	activeConfig = &cfg
}

func currentConfig() config.Match3Config {
	if activeConfig != nil {
		return *activeConfig
	}
	cfg, err := config.LoadMatch3("")
	if err != nil {
		return config.DefaultMatch3Config()
	}
	return cfg
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.RegisterVariant(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Match Three (Endless)"
	}
	return "Match Three"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = currentConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.seed = rc.Seed
	g.tick = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.cursor = pos{}
	g.picked = nil
	g.flash = nil
	g.flashTicks = 0
	g.hint = nil
	g.hintTicks = 0
	g.message = ""
	g.messageTicks = 0
	g.moves = 0
	g.lastChain = 0
	g.bestChain = 0
	g.lastGain = 0
	g.gameOver = false
	g.noMoves = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}
	g.startLevel = 0
	if g.mode == ModeCampaign {
		g.startLevel = g.levelIndex + 1
	}

	g.board = nil
	g.source = engine.NewRandomSource(g.iconTypes(), rc.Seed)
	board, err := engine.New(g.cfg.Board.Width, g.cfg.Board.Height, g.source,
		engine.WithMaxSettlePasses(g.cfg.Settle.MaxPasses))
	if err != nil {
		def := config.DefaultMatch3Config()
		g.cfg.Board = def.Board
		board, err = engine.New(def.Board.Width, def.Board.Height, g.source)
		if err != nil {
			panic(fmt.Sprintf("match3: default %dx%d board rejected: %v", def.Board.Width, def.Board.Height, err))
		}
	}
	g.board = board

	g.loadLevel()
	g.cursor = pos{row: g.board.Height() / 2, col: g.board.Width() / 2}
	g.checkScreenSize()
}

// iconTypes returns the icon count for the current level or difficulty.
func (g *Game) iconTypes() int {
	base := g.cfg.Icons.Types
	if g.mode == ModeCampaign {
		if lvl := GetLevel(g.levelIndex); lvl != nil {
			base += lvl.ExtraTypes
		}
		if g.cfg.Icons.MaxTypes > 0 && base > g.cfg.Icons.MaxTypes {
			base = g.cfg.Icons.MaxTypes
		}
		return base
	}
	score := 0
	if g.board != nil {
		score = g.board.Score()
	}
	return g.difficulty.IconTypes(base, g.cfg.Icons.MaxTypes, score, g.moves)
}

// loadLevel sets up the current level parameters.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless {
		g.target = 0
		g.movesLeft = 0
		return
	}

	level := GetLevel(g.levelIndex)
	if level == nil {
		level = GetLevel(LevelCount() - 1)
	}
	g.target = level.Target
	g.movesLeft = g.difficulty.MoveBudget(level.Moves + g.cfg.Campaign.ExtraMoves)
	g.source.SetTypes(g.iconTypes())
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	boardW, boardH := boardSize(g.board.Width(), g.board.Height())
	g.tooSmall = g.screenW < boardW+2 || g.screenH < boardH+hudHeight+2
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.board != nil {
		g.checkScreenSize()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []string

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ageTimers()

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			events = g.settle()
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	g.handleInput(in)
	if g.flash != nil && g.flashTicks == 0 {
		// No flash animation configured: settle in the same tick.
		events = g.settle()
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) ageTimers() {
	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = nil
		}
	}
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}
}

// handleInput moves the cursor and processes picks and swaps.
func (g *Game) handleInput(in core.InputFrame) {
	w, h := g.board.Width(), g.board.Height()

	switch {
	case in.Has(core.ActionUp):
		g.cursor.row = core.Wrap(g.cursor.row-1, h)
	case in.Has(core.ActionDown):
		g.cursor.row = core.Wrap(g.cursor.row+1, h)
	case in.Has(core.ActionLeft):
		g.cursor.col = core.Wrap(g.cursor.col-1, w)
	case in.Has(core.ActionRight):
		g.cursor.col = core.Wrap(g.cursor.col+1, w)
	}

	if in.Has(core.ActionCancel) {
		g.picked = nil
	}

	if in.Has(core.ActionHint) {
		if m, ok := g.board.BestMove(); ok {
			g.hint = &m
			g.hintTicks = max(1, g.cfg.Settle.HintTicks)
		}
	}

	if in.Has(core.ActionSelect) {
		g.selectAtCursor()
	}
}

// selectAtCursor picks the tile under the cursor, or tries to swap it with
// the previously picked tile.
func (g *Game) selectAtCursor() {
	cur := g.cursor
	if g.picked == nil {
		g.picked = &cur
		return
	}

	first := *g.picked
	if first == cur {
		g.picked = nil
		return
	}

	a := engine.At(first.row, first.col)
	b := engine.At(cur.row, cur.col)
	if !a.IsAdjacent(b) {
		// Re-pick: the player changed their mind.
		g.picked = &cur
		return
	}

	g.picked = nil
	if !g.board.Select(a, b) {
		g.say("No match")
		return
	}

	g.moves++
	if g.mode == ModeCampaign {
		g.movesLeft--
	}
	g.hint = nil
	g.hintTicks = 0
	g.flash = g.board.FindRuns(false).Positions()
	g.flashTicks = g.cfg.Settle.FlashTicks
}

// settle clears runs and cascades, then checks level and game-over conditions.
func (g *Game) settle() []string {
	var events []string
	report := g.board.RemoveAllRuns()
	g.flash = nil

	g.lastChain = report.Chain()
	g.lastGain = report.Score
	if g.lastChain > g.bestChain {
		g.bestChain = g.lastChain
	}
	if g.lastChain > 1 {
		g.say(fmt.Sprintf("Chain x%d  +%d", g.lastChain, g.lastGain))
	} else if g.lastGain > 0 {
		g.say(fmt.Sprintf("+%d", g.lastGain))
	}
	if report.Capped {
		events = append(events, fmt.Sprintf("settle stopped after %d passes with runs left", report.Chain()))
	}

	if g.mode == ModeEndless {
		g.source.SetTypes(g.iconTypes())
	}

	if g.mode == ModeCampaign && g.board.Score() >= g.target {
		g.levelCleared = true
		g.levelClearTicks = 0
		return events
	}

	if g.mode == ModeCampaign && g.movesLeft <= 0 {
		g.gameOver = true
		return append(events, "out of moves")
	}

	if !g.board.HasMoves() {
		g.gameOver = true
		g.noMoves = true
		events = append(events, "no moves left")
	}
	return events
}

// advanceLevel moves to the next level, keeping board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()

	if !g.board.HasMoves() {
		g.gameOver = true
		g.noMoves = true
	}
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageTicks = messageDuration
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.board != nil {
		score = g.board.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// Stats returns per-play statistics for persistence.
func (g *Game) Stats() core.PlayStats {
	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}
	return core.PlayStats{
		Seed:       g.seed,
		Moves:      g.moves,
		BestChain:  g.bestChain,
		Level:      level,
		StartLevel: g.startLevel,
	}
}
