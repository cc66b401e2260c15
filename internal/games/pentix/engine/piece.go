package engine

// Piece is the falling piece: the cells of its current orientation and the
// grid position of its top-left corner. Y is negative while part of the
// piece is still above the visible grid.
type Piece struct {
	Name  string
	X, Y  int
	cells [][]int
}

// Spawn places a new piece for shape, horizontally centred, with its lowest
// occupied row on grid row 0.
func Spawn(shape Shape, g *Grid) *Piece {
	cells := shape.Cells()
	w := 0
	if len(cells) > 0 {
		w = len(cells[0])
	}
	return &Piece{
		Name:  shape.Name,
		X:     (g.Width() - w) / 2,
		Y:     -lowestRow(cells),
		cells: cells,
	}
}

// NewPiece builds a piece from raw cells at (x, y).
func NewPiece(cells [][]int, x, y int) *Piece {
	return &Piece{X: x, Y: y, cells: cloneCells(cells)}
}

// Cells returns a copy of the current orientation.
func (p *Piece) Cells() [][]int {
	return cloneCells(p.cells)
}

// Width returns the template width in cells.
func (p *Piece) Width() int {
	if len(p.cells) == 0 {
		return 0
	}
	return len(p.cells[0])
}

// Height returns the template height in cells.
func (p *Piece) Height() int {
	return len(p.cells)
}

// Occupied returns the number of occupied cells.
func (p *Piece) Occupied() int {
	return countOccupied(p.cells)
}

// TryMove shifts the piece by (dx, dy) unless that would collide.
// A rejected move leaves the piece untouched and returns false.
func (p *Piece) TryMove(dx, dy int, g *Grid) bool {
	if g.IsCollision(p.cells, p.X+dx, p.Y+dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// TryRotate turns the piece 90 degrees clockwise in place unless the rotated
// orientation would collide. There are no wall kicks.
func (p *Piece) TryRotate(g *Grid) bool {
	rotated := rotateCW(p.cells)
	if g.IsCollision(rotated, p.X, p.Y) {
		return false
	}
	p.cells = rotated
	return true
}

// lowestRow returns the index of the last row holding an occupied cell.
func lowestRow(cells [][]int) int {
	for i := len(cells) - 1; i >= 0; i-- {
		for _, v := range cells[i] {
			if v != 0 {
				return i
			}
		}
	}
	return 0
}
