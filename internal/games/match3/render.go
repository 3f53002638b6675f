package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

const (
	cellWidth = 3 // Glyph plus a bracket on each side
	hudHeight = 3
)

// glyphs are drawn per icon type, cycling when there are more types.
var glyphs = []rune{'●', '▲', '■', '◆', '★', '♥', '♣', '✚'}

// boardSize returns the on-screen size of the board including its border.
func boardSize(w, h int) (int, int) {
	return w*cellWidth + 2, h + 2
}

// Glyph returns the rune used for an icon.
func Glyph(ic engine.Icon) rune {
	if ic.IsEmpty() {
		return '·'
	}
	return glyphs[ic.Type()%len(glyphs)]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardSize(g.board.Width(), g.board.Height())
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY, boardW, boardH)
	g.renderFooter(dst, boardY+boardH)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws score, mode and progress.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(max(0, boardX+(boardW-len(title))/2), 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.board.Score()))

	var info string
	if g.mode == ModeCampaign {
		info = fmt.Sprintf("Lvl %d/%d  Goal %d  Moves %d", g.levelIndex+1, LevelCount(), g.target, g.movesLeft)
	} else {
		info = fmt.Sprintf("Moves %d  Best chain %d", g.moves, g.bestChain)
	}
	dst.DrawText(boardX, 2, info)
}

// renderBoard draws the border and every tile with its markers.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH))

	for row := range g.board.Height() {
		for col := range g.board.Width() {
			x := boardX + 1 + col*cellWidth
			y := boardY + 1 + row

			ic := g.board.Icon(row, col)
			color := core.PaletteColor(ic.Type())
			if g.flash != nil && g.flash[[2]int{row, col}] && (g.flashTicks/3)%2 == 0 {
				color = core.ColorWhite
			}
			dst.SetColored(x+1, y, Glyph(ic), color)

			left, right := g.markers(row, col)
			dst.SetColored(x, y, left, core.ColorBrightWhite)
			dst.SetColored(x+2, y, right, core.ColorBrightWhite)
		}
	}
}

// markers returns the bracket runes around a tile.
func (g *Game) markers(row, col int) (rune, rune) {
	here := pos{row: row, col: col}
	switch {
	case g.cursor == here:
		return '[', ']'
	case g.picked != nil && *g.picked == here:
		return '<', '>'
	case g.hint != nil && (g.hint.A.SamePosition(engine.At(row, col)) || g.hint.B.SamePosition(engine.At(row, col))):
		return '(', ')'
	}
	return ' ', ' '
}

// renderFooter draws the status message under the board.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.message != "" {
		dst.DrawTextCentered(y, g.message)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		goal := fmt.Sprintf("Goal %d reached!", g.target)
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, goal, "Final level complete!")
		} else {
			g.drawOverlay(dst, centerX, centerY, goal, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
		return
	}

	if g.won {
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", fmt.Sprintf("Score: %d", g.board.Score()), "Press R to restart")
		return
	}

	if g.gameOver {
		reason := "Out of moves"
		if g.noMoves {
			reason = "No swaps left"
		}
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", reason, "Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		dst.DrawText(centerX-len([]rune(line))/2, boxY+1+i, line)
	}
}
