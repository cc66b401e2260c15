// Package core holds the types shared by games and the terminal platform:
// geometry, the cell buffer games draw into, input frames and runtime
// configuration. It does not import Bubble Tea, so games stay testable
// without a terminal.
package core

// Point is a screen position in character cells.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned screen area. Buttons use it for hit-testing and
// the board uses it for layout.
type Rect struct {
	X, Y int // top-left cell
	W, H int
}

// NewRect returns the w x h rectangle whose top-left cell is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}
