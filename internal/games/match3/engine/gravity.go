package engine

// CollapseColumn moves every icon in col toward the bottom row, keeping their
// relative order, so all Empty cells end up at the top.
// It returns the icons that moved, at their new rows, with PrevRow set.
func CollapseColumn(g *Grid, col int) []Cell {
	if col < 0 || col >= g.Width() {
		return nil
	}

	var moved []Cell
	write := g.Height() - 1
	for read := g.Height() - 1; read >= 0; read-- {
		icon := g.Get(read, col)
		if icon.IsEmpty() {
			continue
		}
		if write != read {
			g.Set(write, col, icon)
			g.Set(read, col, Empty)
			c := NewCell(write, col, icon)
			c.PrevRow = read
			moved = append(moved, c)
		}
		write--
	}

	return moved
}

// FillColumn places fresh icons from src into the Empty cells at the top of
// col, top-down, stopping at the first occupied cell.
// It returns the newly placed cells.
func FillColumn(g *Grid, col int, src IconSource) []Cell {
	if col < 0 || col >= g.Width() || src == nil {
		return nil
	}

	var added []Cell
	for row := 0; row < g.Height() && g.Get(row, col).IsEmpty(); row++ {
		icon := src.Generate()
		g.Set(row, col, icon)
		added = append(added, NewCell(row, col, icon))
	}

	return added
}
