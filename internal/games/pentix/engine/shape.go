// Package engine implements the Pentix rules: the shape catalogs, the falling
// piece, the settled-block grid and the game controller state machine.
// It performs no I/O and knows nothing about terminals; adapters drive it
// with fall/boost ticks and player requests.
package engine

import (
	"fmt"
	"math/rand"
	"sort"
)

// Shape is an immutable polyomino template. Cells hold 0 for empty and the
// shape's colour index for occupied positions.
type Shape struct {
	Name  string
	Color int
	cells [][]int
}

// newShape builds a shape from rows drawn with '#' for occupied cells.
func newShape(name string, color int, rows ...string) Shape {
	cells := make([][]int, len(rows))
	for i, row := range rows {
		cells[i] = make([]int, len(row))
		for j, ch := range row {
			if ch == '#' {
				cells[i][j] = color
			}
		}
	}
	return Shape{Name: name, Color: color, cells: cells}
}

// Cells returns a copy of the template.
func (s Shape) Cells() [][]int {
	return cloneCells(s.cells)
}

// Size returns the number of occupied cells.
func (s Shape) Size() int {
	return countOccupied(s.cells)
}

// Catalog is a fixed set of shapes pieces are drawn from.
type Catalog struct {
	Name   string
	shapes []Shape
}

// Shapes returns the catalog's templates in declaration order.
func (c Catalog) Shapes() []Shape {
	out := make([]Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

// Len returns the number of shapes in the catalog.
func (c Catalog) Len() int {
	return len(c.shapes)
}

// MaxWidth returns the widest template in spawn orientation. A grid
// narrower than this cannot spawn every shape.
func (c Catalog) MaxWidth() int {
	w := 0
	for _, s := range c.shapes {
		if len(s.cells) > 0 {
			w = max(w, len(s.cells[0]))
		}
	}
	return w
}

// Random returns a shape chosen uniformly with rng.
func (c Catalog) Random(rng *rand.Rand) Shape {
	return c.shapes[rng.Intn(len(c.shapes))]
}

// Catalog names accepted by CatalogByName.
const (
	CatalogPentix  = "pentix"
	CatalogClassic = "classic"
)

// Pentix is the default catalog: three to five cell shapes.
var Pentix = Catalog{
	Name: CatalogPentix,
	shapes: []Shape{
		newShape("I3", 1, "###"),
		newShape("V3", 2, "#.", "##"),
		newShape("I4", 3, "####"),
		newShape("O", 4, "##", "##"),
		newShape("T", 5, "###", ".#."),
		newShape("S", 6, ".##", "##."),
		newShape("Z", 7, "##.", ".##"),
		newShape("L", 8, "..#", "###"),
		newShape("J", 9, "#..", "###"),
		newShape("P", 10, "##", "##", "#."),
		newShape("U", 11, "#.#", "###"),
		newShape("X", 12, ".#.", "###", ".#."),
		newShape("T5", 13, "###", ".#.", ".#."),
		newShape("I5", 14, "#####"),
	},
}

// Classic holds the seven tetrominoes.
var Classic = Catalog{
	Name: CatalogClassic,
	shapes: []Shape{
		newShape("I", 1, "####"),
		newShape("O", 4, "##", "##"),
		newShape("T", 5, "###", ".#."),
		newShape("S", 6, ".##", "##."),
		newShape("Z", 7, "##.", ".##"),
		newShape("L", 8, "..#", "###"),
		newShape("J", 9, "#..", "###"),
	},
}

var catalogs = map[string]Catalog{
	CatalogPentix:  Pentix,
	CatalogClassic: Classic,
}

// CatalogByName resolves a catalog by its name.
func CatalogByName(name string) (Catalog, error) {
	c, ok := catalogs[name]
	if !ok {
		return Catalog{}, fmt.Errorf("engine: unknown catalog %q", name)
	}
	return c, nil
}

// CatalogNames lists the known catalogs, sorted.
func CatalogNames() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// rotateCW returns the clockwise rotation of a cell matrix.
func rotateCW(cells [][]int) [][]int {
	h := len(cells)
	if h == 0 {
		return nil
	}
	w := len(cells[0])
	out := make([][]int, w)
	for j := range w {
		out[j] = make([]int, h)
		for i := range h {
			out[j][h-1-i] = cells[i][j]
		}
	}
	return out
}

func cloneCells(cells [][]int) [][]int {
	out := make([][]int, len(cells))
	for i, row := range cells {
		out[i] = append([]int(nil), row...)
	}
	return out
}

func countOccupied(cells [][]int) int {
	n := 0
	for _, row := range cells {
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
	}
	return n
}
