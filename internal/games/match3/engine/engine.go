package engine

import "errors"

// DefaultMaxSettlePasses bounds the clear/collapse/fill loop in RemoveAllRuns.
// A random source could keep regenerating runs forever, so the loop stops
// after this many passes and reports it.
const DefaultMaxSettlePasses = 100

var (
	// ErrInvalidSize is returned when the grid would have no cells.
	ErrInvalidSize = errors.New("engine: width and height must be positive")

	// ErrNoIconSource is returned when no IconSource is supplied.
	ErrNoIconSource = errors.New("engine: icon source is required")
)

// Option configures an Engine.
type Option func(*Engine)

// WithMaxSettlePasses overrides DefaultMaxSettlePasses. Values below 1 are ignored.
func WithMaxSettlePasses(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.maxPasses = n
		}
	}
}

// Engine owns a grid and a score and applies the match-three rules to them.
// It is not safe for concurrent use.
type Engine struct {
	grid      *Grid
	source    IconSource
	score     int
	maxPasses int
}

// New creates an engine with a width×height grid filled by src.
// The grid is settled before New returns, so play starts without runs,
// and the score starts at zero.
func New(width, height int, src IconSource, opts ...Option) (*Engine, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidSize
	}
	if src == nil {
		return nil, ErrNoIconSource
	}

	e := newEngine(NewGrid(width, height), src, opts)
	src.Initialize(e.grid)
	e.RemoveAllRuns()
	e.score = 0

	return e, nil
}

// NewFromGrid creates an engine over a copy of g without filling or settling it.
// Refills during later settling come from src.
func NewFromGrid(g *Grid, src IconSource, opts ...Option) (*Engine, error) {
	if g == nil || g.Width() < 1 || g.Height() < 1 {
		return nil, ErrInvalidSize
	}
	if src == nil {
		return nil, ErrNoIconSource
	}
	return newEngine(g.Clone(), src, opts), nil
}

func newEngine(g *Grid, src IconSource, opts []Option) *Engine {
	e := &Engine{
		grid:      g,
		source:    src,
		maxPasses: DefaultMaxSettlePasses,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Icon returns the icon at (row, col), or Empty when out of bounds.
func (e *Engine) Icon(row, col int) Icon {
	return e.grid.Get(row, col)
}

// Width returns the number of columns.
func (e *Engine) Width() int {
	return e.grid.Width()
}

// Height returns the number of rows.
func (e *Engine) Height() int {
	return e.grid.Height()
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// Grid returns a copy of the current grid.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}

// FindRuns detects runs on the current grid. When mark is false the grid and
// score are left untouched. When mark is true every run cell is emptied and the
// detected score is added to the engine's score.
func (e *Engine) FindRuns(mark bool) Detection {
	d := FindRuns(e.grid)
	if mark && !d.Empty() {
		for _, c := range d.Cells {
			e.grid.Set(c.Row, c.Col, Empty)
		}
		e.score += d.Score
	}
	return d
}

// CollapseColumn applies gravity to one column. See CollapseColumn.
func (e *Engine) CollapseColumn(col int) []Cell {
	return CollapseColumn(e.grid, col)
}

// FillColumn refills the empty top of one column. See FillColumn.
func (e *Engine) FillColumn(col int) []Cell {
	return FillColumn(e.grid, col, e.source)
}

// Select attempts the swap of two adjacent cells. Only the Row and Col of the
// arguments are used; icons are read from the current grid.
//
// The move is accepted when exactly two in-bounds cells are given, their icons
// differ, they are adjacent, and swapping them creates at least one run.
// An accepted move leaves the swap applied and returns true; RemoveAllRuns must
// be called afterwards to clear runs and award points. A rejected move leaves
// grid and score unchanged and returns false.
func (e *Engine) Select(cells ...Cell) bool {
	if len(cells) != 2 {
		return false
	}
	a, b := cells[0], cells[1]
	if !e.grid.InBounds(a.Row, a.Col) || !e.grid.InBounds(b.Row, b.Col) {
		return false
	}
	if e.grid.Get(a.Row, a.Col) == e.grid.Get(b.Row, b.Col) {
		return false
	}
	if !a.IsAdjacent(b) {
		return false
	}

	e.grid.Swap(a.Row, a.Col, b.Row, b.Col)
	if !HasRuns(e.grid) {
		e.grid.Swap(a.Row, a.Col, b.Row, b.Col)
		return false
	}
	return true
}

// Pass describes one clear/collapse/fill iteration of RemoveAllRuns.
type Pass struct {
	Cleared []Cell // cells that formed runs (may repeat a position)
	Moved   []Cell // icons shifted by gravity
	Added   []Cell // icons created by refill
	Runs    int
	Score   int
}

// SettleReport summarizes a call to RemoveAllRuns.
type SettleReport struct {
	Passes []Pass // only passes that cleared at least one run
	Score  int
	Capped bool // the pass limit was reached while runs remained
}

// Chain returns the number of consecutive clearing passes (1 for a plain
// match, more for cascades).
func (r SettleReport) Chain() int {
	return len(r.Passes)
}

// Runs returns the number of runs cleared across all passes.
func (r SettleReport) Runs() int {
	n := 0
	for _, p := range r.Passes {
		n += p.Runs
	}
	return n
}

// RemoveAllRuns clears runs, collapses and refills every column, and repeats
// until a scan finds no runs or the pass limit is reached. The grid has no
// Empty cells when it returns.
func (e *Engine) RemoveAllRuns() SettleReport {
	var report SettleReport

	for i := 0; ; i++ {
		if i >= e.maxPasses {
			report.Capped = HasRuns(e.grid)
			break
		}

		d := e.FindRuns(true)
		pass := Pass{Cleared: d.Cells, Runs: len(d.Runs), Score: d.Score}
		for col := range e.grid.Width() {
			pass.Moved = append(pass.Moved, e.CollapseColumn(col)...)
			pass.Added = append(pass.Added, e.FillColumn(col)...)
		}

		if d.Empty() {
			break
		}
		report.Passes = append(report.Passes, pass)
		report.Score += pass.Score
	}

	return report
}
