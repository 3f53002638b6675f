package match3

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// oneMoveRows has exactly one valid swap: (2,0) <-> (2,1).
var oneMoveRows = [][]int{
	{0, 1, 2, 0},
	{0, 0, 1, 3},
	{3, 2, 3, 3},
	{2, 2, 1, 1},
}

// deadRows has no runs and no swap that makes one.
var deadRows = [][]int{
	{0, 1, 2},
	{1, 2, 0},
	{2, 0, 1},
}

func testConfig() config.Match3Config {
	cfg := config.DefaultMatch3Config()
	cfg.Settle.FlashTicks = 2
	cfg.Settle.HintTicks = 5
	return cfg
}

func newTestGame(t *testing.T, mode Mode) *Game {
	t.Helper()
	SetConfig(testConfig())

	g := New()
	if mode == ModeEndless {
		g = NewEndless()
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

// useBoard replaces the random board with a fixed one.
func useBoard(t *testing.T, g *Game, rows [][]int) {
	t.Helper()
	e, err := engine.NewFromGrid(engine.GridFromRows(rows), engine.NewSequenceSource(4, 5))
	if err != nil {
		t.Fatalf("NewFromGrid() failed: %v", err)
	}
	g.board = e
	g.cursor = pos{}
	g.picked = nil
	g.checkScreenSize()
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func idle(g *Game, ticks int) {
	for range ticks {
		press(g)
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDCampaign, IDEndless} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}

	info, ok := registry.Info(IDEndless)
	if !ok || !info.Variant {
		t.Errorf("Info(%q) = %+v, expected a variant", IDEndless, info)
	}
}

func TestResetStartsSettled(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	snap := g.Snapshot()

	if snap.State != StatePlaying {
		t.Errorf("State = %s, expected %s", snap.State, StatePlaying)
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, expected 0", snap.Score)
	}
	if snap.Level != 1 {
		t.Errorf("Level = %d, expected 1", snap.Level)
	}
	if snap.Target != Levels[0].Target {
		t.Errorf("Target = %d, expected %d", snap.Target, Levels[0].Target)
	}
	if d := g.board.FindRuns(false); !d.Empty() {
		t.Errorf("board starts with %d runs", len(d.Runs))
	}
}

func TestResetFallsBackToDefaultBoard(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 8},
		{"negative height", 8, -1},
	}

	def := config.DefaultMatch3Config().Board
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Board.Width = tt.width
			cfg.Board.Height = tt.height
			SetConfig(cfg)

			g := New()
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
			if g.board == nil {
				t.Fatal("Reset() left no board")
			}
			if g.board.Width() != def.Width || g.board.Height() != def.Height {
				t.Errorf("board = %dx%d, expected %dx%d", g.board.Width(), g.board.Height(), def.Width, def.Height)
			}
			if g.cfg.Board != def {
				t.Errorf("cfg.Board = %+v, expected %+v", g.cfg.Board, def)
			}
		})
	}
}

func TestResetIsDeterministic(t *testing.T) {
	a := newTestGame(t, ModeEndless)
	b := newTestGame(t, ModeEndless)

	if !a.board.Grid().Equal(b.board.Grid()) {
		t.Error("same seed produced different boards")
	}
}

func TestCursorWraps(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	useBoard(t, g, oneMoveRows)

	press(g, core.ActionUp)
	if g.cursor.row != 3 {
		t.Errorf("cursor row = %d, expected 3", g.cursor.row)
	}
	press(g, core.ActionLeft)
	if g.cursor.col != 3 {
		t.Errorf("cursor col = %d, expected 3", g.cursor.col)
	}
	press(g, core.ActionRight)
	if g.cursor.col != 0 {
		t.Errorf("cursor col = %d, expected 0", g.cursor.col)
	}
}

func TestSwapClearsRun(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	useBoard(t, g, oneMoveRows)
	budget := g.movesLeft

	g.cursor = pos{row: 2, col: 0}
	press(g, core.ActionSelect)
	if g.picked == nil {
		t.Fatal("first select should pick the tile")
	}

	press(g, core.ActionRight, core.ActionSelect)
	if g.moves != 1 {
		t.Fatalf("moves = %d, expected 1", g.moves)
	}
	if g.movesLeft != budget-1 {
		t.Errorf("movesLeft = %d, expected %d", g.movesLeft, budget-1)
	}
	if snap := g.Snapshot(); snap.State != StateSettling {
		t.Errorf("State = %s, expected %s", snap.State, StateSettling)
	}
	if len(g.flash) != 3 {
		t.Errorf("flash covers %d cells, expected 3", len(g.flash))
	}
	if g.board.Score() != 0 {
		t.Errorf("score before settle = %d, expected 0", g.board.Score())
	}

	idle(g, 2)

	if g.flash != nil {
		t.Error("flash should be cleared after settle")
	}
	if g.board.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", g.board.Score())
	}
	if g.bestChain != 1 {
		t.Errorf("bestChain = %d, expected 1", g.bestChain)
	}
	if g.gameOver {
		t.Error("board still has moves, game should continue")
	}
}

func TestRejectedSwapKeepsBoard(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	useBoard(t, g, oneMoveRows)
	before := g.board.Grid()

	press(g, core.ActionSelect)
	press(g, core.ActionRight, core.ActionSelect)

	if g.moves != 0 {
		t.Errorf("moves = %d, expected 0", g.moves)
	}
	if !g.board.Grid().Equal(before) {
		t.Error("rejected swap changed the board")
	}
	if g.message != "No match" {
		t.Errorf("message = %q, expected %q", g.message, "No match")
	}
}

func TestSelectNonAdjacentRepicks(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	useBoard(t, g, oneMoveRows)

	press(g, core.ActionSelect)
	g.cursor = pos{row: 2, col: 2}
	press(g, core.ActionSelect)

	if g.picked == nil || *g.picked != (pos{row: 2, col: 2}) {
		t.Errorf("picked = %v, expected (2,2)", g.picked)
	}

	press(g, core.ActionCancel)
	if g.picked != nil {
		t.Error("cancel should drop the picked tile")
	}
}

func TestHintShowsOnlyMove(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	useBoard(t, g, oneMoveRows)

	press(g, core.ActionHint)
	if g.hint == nil {
		t.Fatal("hint expected")
	}
	a, b := g.hint.A, g.hint.B
	if !a.SamePosition(engine.At(2, 0)) || !b.SamePosition(engine.At(2, 1)) {
		t.Errorf("hint = %v <-> %v, expected (2,0) <-> (2,1)", a, b)
	}

	idle(g, 5)
	if g.hint != nil {
		t.Error("hint should expire")
	}
}

func TestNoMovesEndsGame(t *testing.T) {
	g := newTestGame(t, ModeEndless)
	useBoard(t, g, deadRows)

	g.settle()

	if !g.gameOver || !g.noMoves {
		t.Errorf("gameOver = %v, noMoves = %v, expected both true", g.gameOver, g.noMoves)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}
}

func TestOutOfMovesEndsCampaign(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	useBoard(t, g, oneMoveRows)
	g.movesLeft = 1

	g.cursor = pos{row: 2, col: 0}
	press(g, core.ActionSelect)
	press(g, core.ActionRight, core.ActionSelect)
	idle(g, 2)

	if !g.gameOver {
		t.Error("campaign should end when moves run out")
	}
	if g.noMoves {
		t.Error("noMoves should be false when the budget ran out")
	}
}

func TestLevelClearAdvances(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	useBoard(t, g, oneMoveRows)
	g.target = 10

	g.cursor = pos{row: 2, col: 0}
	press(g, core.ActionSelect)
	press(g, core.ActionRight, core.ActionSelect)
	idle(g, 2)

	if !g.levelCleared {
		t.Fatal("level should be cleared once the target is reached")
	}
	if snap := g.Snapshot(); snap.State != StateLevelCleared {
		t.Errorf("State = %s, expected %s", snap.State, StateLevelCleared)
	}

	idle(g, levelClearDelay)

	if g.levelIndex != 1 {
		t.Errorf("levelIndex = %d, expected 1", g.levelIndex)
	}
	if g.target != Levels[1].Target {
		t.Errorf("target = %d, expected %d", g.target, Levels[1].Target)
	}
	if g.board.Score() != 10 {
		t.Errorf("score should carry over, got %d", g.board.Score())
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, ModeCampaign)

	press(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	row := g.cursor.row
	press(g, core.ActionDown)
	if g.cursor.row != row {
		t.Error("cursor moved while paused")
	}

	press(g, core.ActionPause)
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestTooSmallScreen(t *testing.T) {
	SetConfig(testConfig())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, Seed: 1})

	if snap := g.Snapshot(); snap.State != StatePausedSmall {
		t.Errorf("State = %s, expected %s", snap.State, StatePausedSmall)
	}

	screen := core.NewScreen(10, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too") {
		t.Error("too-small message not rendered")
	}
}

func TestStartLevel(t *testing.T) {
	SetStartLevel(3)
	g := newTestGame(t, ModeCampaign)

	if g.levelIndex != 2 {
		t.Errorf("levelIndex = %d, expected 2", g.levelIndex)
	}
	if got := g.Stats().StartLevel; got != 3 {
		t.Errorf("Stats().StartLevel = %d, expected 3", got)
	}

	// Consumed by the first reset.
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
	if g.levelIndex != 0 {
		t.Errorf("levelIndex after second reset = %d, expected 0", g.levelIndex)
	}
}

func TestStats(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	useBoard(t, g, oneMoveRows)

	g.cursor = pos{row: 2, col: 0}
	press(g, core.ActionSelect)
	press(g, core.ActionRight, core.ActionSelect)
	idle(g, 2)

	stats := g.Stats()
	expected := core.PlayStats{Seed: 42, Moves: 1, BestChain: 1, Level: 1, StartLevel: 1}
	if stats != expected {
		t.Errorf("Stats() = %+v, expected %+v", stats, expected)
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	useBoard(t, g, oneMoveRows)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD score missing")
	}

	boardW, _ := boardSize(4, 4)
	boardX := (80 - boardW) / 2
	if got := screen.Get(boardX+1, hudHeight+1); got != '[' {
		t.Errorf("cursor bracket = %q, expected '['", got)
	}
	if got := screen.Get(boardX+2, hudHeight+1); got != Glyph(engine.NewIcon(0)) {
		t.Errorf("top-left glyph = %q, expected %q", got, Glyph(engine.NewIcon(0)))
	}
	cell := screen.GetCell(boardX+2+cellWidth, hudHeight+1)
	if cell.Color != core.PaletteColor(1) {
		t.Errorf("icon color = %v, expected %v", cell.Color, core.PaletteColor(1))
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, ModeCampaign)
	before := g.board.Grid()

	g.Resize(10, 5)
	if !g.tooSmall {
		t.Error("tooSmall should be set after shrinking")
	}

	g.Resize(80, 24)
	if g.tooSmall {
		t.Error("tooSmall should clear after growing")
	}
	if !g.board.Grid().Equal(before) {
		t.Error("Resize() changed the board")
	}
}
