package engine

// Grid is a fixed-size width×height container of icons.
// Every position always holds either an icon or Empty.
type Grid struct {
	width  int
	height int
	cells  []Icon // row-major
}

// NewGrid creates a grid with every cell set to Empty.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Icon, width*height),
	}
	for i := range g.cells {
		g.cells[i] = Empty
	}
	return g
}

// GridFromRows builds a grid from row-major type ids. Negative ids become Empty.
// Rows shorter than the first row are padded with Empty.
func GridFromRows(rows [][]int) *Grid {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	g := NewGrid(width, height)
	for r, row := range rows {
		for c := 0; c < width && c < len(row); c++ {
			g.Set(r, c, NewIcon(row[c]))
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (row, col) is a valid position.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the icon at (row, col). Out-of-bounds positions read as Empty.
func (g *Grid) Get(row, col int) Icon {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.cells[row*g.width+col]
}

// Set places an icon at (row, col). Out-of-bounds writes are ignored.
func (g *Grid) Set(row, col int, icon Icon) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row*g.width+col] = icon
}

// Swap exchanges the icons at two positions.
func (g *Grid) Swap(r1, c1, r2, c2 int) {
	a := g.Get(r1, c1)
	g.Set(r1, c1, g.Get(r2, c2))
	g.Set(r2, c2, a)
}

// Cell returns a snapshot of the given position.
func (g *Grid) Cell(row, col int) Cell {
	return NewCell(row, col, g.Get(row, col))
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]Icon, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// CountEmpty returns the number of Empty cells.
func (g *Grid) CountEmpty() int {
	n := 0
	for _, ic := range g.cells {
		if ic.IsEmpty() {
			n++
		}
	}
	return n
}

// Rows returns the grid as row-major type ids (-1 for Empty).
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for r := range g.height {
		rows[r] = make([]int, g.width)
		for c := range g.width {
			rows[r][c] = g.Get(r, c).Type()
		}
	}
	return rows
}
