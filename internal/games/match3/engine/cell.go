package engine

import "fmt"

// NoPrevRow is the PrevRow value of cells that were not moved by gravity.
const NoPrevRow = -1

// Cell is a snapshot of one grid position and the icon it held when observed.
// It is a plain value; changing a Cell never changes the grid.
type Cell struct {
	Row  int
	Col  int
	Icon Icon

	// PrevRow is the row the icon occupied before a collapse moved it,
	// or NoPrevRow for cells that did not move.
	PrevRow int
}

// NewCell creates a cell snapshot with no previous row.
func NewCell(row, col int, icon Icon) Cell {
	return Cell{Row: row, Col: col, Icon: icon, PrevRow: NoPrevRow}
}

// At creates a coordinate-only cell, handy for building Select arguments.
func At(row, col int) Cell {
	return NewCell(row, col, Empty)
}

// Moved reports whether the cell was produced by a collapse that shifted it.
func (c Cell) Moved() bool {
	return c.PrevRow != NoPrevRow && c.PrevRow != c.Row
}

// SamePosition reports whether two cells refer to the same coordinate.
func (c Cell) SamePosition(other Cell) bool {
	return c.Row == other.Row && c.Col == other.Col
}

// IsAdjacent reports whether two cells are at Manhattan distance exactly 1.
func (c Cell) IsAdjacent(other Cell) bool {
	return abs(c.Row-other.Row)+abs(c.Col-other.Col) == 1
}

func (c Cell) String() string {
	if c.Moved() {
		return fmt.Sprintf("(%d,%d)=%s from row %d", c.Row, c.Col, c.Icon, c.PrevRow)
	}
	return fmt.Sprintf("(%d,%d)=%s", c.Row, c.Col, c.Icon)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
