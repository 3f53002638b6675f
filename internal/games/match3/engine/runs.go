package engine

// BaseScore is awarded for a run of exactly MinRunLength icons.
// Each additional icon doubles the award.
const BaseScore = 10

// MinRunLength is the shortest line of equal icons that counts as a run.
const MinRunLength = 3

// Orientation tells whether a run lies along a row or a column.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Run is a contiguous line of at least MinRunLength equal icons.
type Run struct {
	Orientation Orientation
	Cells       []Cell
}

// Len returns the number of icons in the run.
func (r Run) Len() int {
	return len(r.Cells)
}

// Icon returns the icon shared by every cell of the run.
func (r Run) Icon() Icon {
	if len(r.Cells) == 0 {
		return Empty
	}
	return r.Cells[0].Icon
}

// Score returns the points awarded for this run alone.
func (r Run) Score() int {
	return RunScore(r.Len())
}

// RunScore returns BaseScore × 2^(length-3), or 0 for lines shorter than a run.
func RunScore(length int) int {
	if length < MinRunLength {
		return 0
	}
	return BaseScore << (length - MinRunLength)
}

// Detection is the result of one scan over a grid.
type Detection struct {
	Runs []Run

	// Cells lists every cell of every run, in scan order. A cell that sits on
	// both a horizontal and a vertical run appears once per run.
	Cells []Cell

	Score int
}

// Empty reports whether the scan found no runs.
func (d Detection) Empty() bool {
	return len(d.Runs) == 0
}

// Positions returns the distinct positions covered by the runs.
func (d Detection) Positions() map[[2]int]bool {
	out := make(map[[2]int]bool, len(d.Cells))
	for _, c := range d.Cells {
		out[[2]int{c.Row, c.Col}] = true
	}
	return out
}

// FindRuns scans every row and every column of g for runs.
// It never modifies g.
func FindRuns(g *Grid) Detection {
	var d Detection

	for row := range g.Height() {
		for col := range g.Width() {
			if col+MinRunLength <= g.Width() {
				if run, ok := runFrom(g, row, col, 0, 1); ok {
					d.add(run, Horizontal)
				}
			}
			if row+MinRunLength <= g.Height() {
				if run, ok := runFrom(g, row, col, 1, 0); ok {
					d.add(run, Vertical)
				}
			}
		}
	}

	return d
}

// HasRuns reports whether g contains at least one run.
func HasRuns(g *Grid) bool {
	return !FindRuns(g).Empty()
}

func (d *Detection) add(cells []Cell, o Orientation) {
	run := Run{Orientation: o, Cells: cells}
	d.Runs = append(d.Runs, run)
	d.Cells = append(d.Cells, cells...)
	d.Score += run.Score()
}

// runFrom returns the run starting at (row, col) along (dr, dc).
// A position only starts a run when its predecessor holds a different icon,
// so each run is reported exactly once.
func runFrom(g *Grid, row, col, dr, dc int) ([]Cell, bool) {
	icon := g.Get(row, col)
	if icon.IsEmpty() {
		return nil, false
	}
	if g.InBounds(row-dr, col-dc) && g.Get(row-dr, col-dc).Matches(icon) {
		return nil, false
	}

	n := 1
	for g.Get(row+n*dr, col+n*dc).Matches(icon) {
		n++
	}
	if n < MinRunLength {
		return nil, false
	}

	cells := make([]Cell, n)
	for i := range n {
		cells[i] = NewCell(row+i*dr, col+i*dc, icon)
	}
	return cells, true
}
