package engine

import "fmt"

// Grid is the field of settled blocks, addressed as rows[y][x] with y = 0 at
// the top. A zero cell is empty; any other value is the colour of the block.
type Grid struct {
	width  int
	height int
	rows   [][]int
}

// NewGrid creates an empty width x height grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.rows = make([][]int, height)
	for y := range g.rows {
		g.rows[y] = make([]int, width)
	}
	return g
}

// GridFromCells builds a grid from a rectangular cell matrix.
func GridFromCells(cells [][]int) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("engine: empty grid")
	}
	width := len(cells[0])
	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("engine: grid row %d has %d cells, want %d", y, len(row), width)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("engine: negative cell value %d at (%d, %d)", v, x, y)
			}
		}
	}
	return &Grid{width: width, height: len(cells), rows: cloneCells(cells)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// At returns the cell at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0
	}
	return g.rows[y][x]
}

// Cells returns a copy of all rows.
func (g *Grid) Cells() [][]int {
	return cloneCells(g.rows)
}

// Occupied returns the number of nonzero cells.
func (g *Grid) Occupied() int {
	return countOccupied(g.rows)
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for _, row := range g.rows {
		clear(row)
	}
}

// IsCollision reports whether a cell matrix placed with its top-left corner at
// (x, y) would leave the grid horizontally, reach past the floor, or overlap a
// settled block. Cells above the grid (negative row) never hit blocks.
func (g *Grid) IsCollision(cells [][]int, x, y int) bool {
	for i, row := range cells {
		for j, v := range row {
			if v == 0 {
				continue
			}
			gx, gy := x+j, y+i
			if gx < 0 || gx >= g.width || gy >= g.height {
				return true
			}
			if gy >= 0 && g.rows[gy][gx] != 0 {
				return true
			}
		}
	}
	return false
}

// Merge writes the piece's occupied cells into the grid. It returns how many
// cells were written and how many were dropped because they were still above
// the top row.
func (g *Grid) Merge(p *Piece) (merged, overflow int) {
	for i, row := range p.cells {
		for j, v := range row {
			if v == 0 {
				continue
			}
			gx, gy := p.X+j, p.Y+i
			if gy < 0 {
				overflow++
				continue
			}
			if gx < 0 || gx >= g.width || gy >= g.height {
				continue
			}
			g.rows[gy][gx] = v
			merged++
		}
	}
	return merged, overflow
}

// ClearFullRows removes every completely occupied row in one top-to-bottom
// pass. Rows above a cleared row move down by one and the top row becomes
// empty. Returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for y := range g.height {
		if !g.rowFull(y) {
			continue
		}
		cleared++
		for j := y; j > 0; j-- {
			copy(g.rows[j], g.rows[j-1])
		}
		clear(g.rows[0])
	}
	return cleared
}

func (g *Grid) rowFull(y int) bool {
	for _, v := range g.rows[y] {
		if v == 0 {
			return false
		}
	}
	return true
}
