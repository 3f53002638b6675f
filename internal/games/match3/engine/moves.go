package engine

// Move is a swap of two adjacent positions that would create at least one run.
type Move struct {
	A, B Cell

	// Gain is the score the resulting runs would award before cascades.
	Gain int
}

// FindMoves returns every valid move on the current grid, scanning right and
// down neighbours in row-major order. The grid is left unchanged.
func (e *Engine) FindMoves() []Move {
	var moves []Move
	g := e.grid
	for row := range g.Height() {
		for col := range g.Width() {
			if col+1 < g.Width() {
				moves = e.probe(row, col, row, col+1, moves)
			}
			if row+1 < g.Height() {
				moves = e.probe(row, col, row+1, col, moves)
			}
		}
	}
	return moves
}

// HasMoves reports whether at least one valid move exists.
func (e *Engine) HasMoves() bool {
	return len(e.FindMoves()) > 0
}

// BestMove returns the move with the highest immediate gain; ties go to the
// first found. ok is false when no move exists.
func (e *Engine) BestMove() (m Move, ok bool) {
	for _, cand := range e.FindMoves() {
		if !ok || cand.Gain > m.Gain {
			m, ok = cand, true
		}
	}
	return m, ok
}

func (e *Engine) probe(r1, c1, r2, c2 int, moves []Move) []Move {
	g := e.grid
	if g.Get(r1, c1) == g.Get(r2, c2) {
		return moves
	}

	g.Swap(r1, c1, r2, c2)
	d := FindRuns(g)
	g.Swap(r1, c1, r2, c2)

	if d.Empty() {
		return moves
	}
	return append(moves, Move{A: g.Cell(r1, c1), B: g.Cell(r2, c2), Gain: d.Score})
}
