package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pentix/internal/games/pentix/engine"
)

func mustGrid(t *testing.T, cells [][]int) *engine.Grid {
	t.Helper()
	g, err := engine.GridFromCells(cells)
	require.NoError(t, err)
	return g
}

func TestIsCollisionBounds(t *testing.T) {
	g := engine.NewGrid(10, 20)
	dot := [][]int{{1}}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 4, 4, false},
		{"left of grid", -1, 4, true},
		{"right of grid", 10, 4, true},
		{"below floor", 0, 20, true},
		{"bottom row", 0, 19, false},
		{"above grid", 3, -2, false},
		{"above grid but outside", -1, -2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsCollision(dot, tt.x, tt.y))
		})
	}
}

func TestIsCollisionOutOfBoundsForAllShapes(t *testing.T) {
	g := engine.NewGrid(10, 20)
	for _, shape := range engine.Pentix.Shapes() {
		cells := shape.Cells()
		for x := -6; x <= 15; x++ {
			for y := -6; y <= 25; y++ {
				outside := false
				for i, row := range cells {
					for j, v := range row {
						if v == 0 {
							continue
						}
						if x+j < 0 || x+j >= g.Width() || y+i >= g.Height() {
							outside = true
						}
					}
				}
				if outside {
					assert.True(t, g.IsCollision(cells, x, y), "%s at (%d, %d)", shape.Name, x, y)
				}
			}
		}
	}
}

func TestIsCollisionWithBlocks(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 0},
		{0, 5, 0},
		{0, 0, 0},
	})

	assert.True(t, g.IsCollision([][]int{{1, 1}}, 0, 1))
	assert.False(t, g.IsCollision([][]int{{1, 0}, {0, 0}}, 0, 1), "empty template cells never collide")
	assert.False(t, g.IsCollision([][]int{{1}, {1}}, 1, -2), "cells above the grid ignore blocks")
}

func TestMerge(t *testing.T) {
	g := engine.NewGrid(4, 4)
	p := engine.NewPiece([][]int{{3, 3}, {0, 3}}, 1, 2)

	merged, overflow := g.Merge(p)

	assert.Equal(t, 3, merged)
	assert.Equal(t, 0, overflow)
	assert.Equal(t, 3, g.At(1, 2))
	assert.Equal(t, 3, g.At(2, 3))
	assert.Equal(t, 0, g.At(1, 3))
}

func TestMergeAboveGrid(t *testing.T) {
	g := engine.NewGrid(4, 4)
	p := engine.NewPiece([][]int{{1}, {1}}, 0, -1)

	merged, overflow := g.Merge(p)

	assert.Equal(t, 1, merged)
	assert.Equal(t, 1, overflow)
	assert.Equal(t, 1, g.Occupied())
}

func TestClearFullRows(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 2, 0, 0},
		{3, 3, 3, 3},
	})
	before := g.Occupied()

	cleared := g.ClearFullRows()

	assert.Equal(t, 2, cleared)
	assert.Equal(t, before-cleared*g.Width(), g.Occupied())
	assert.Equal(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 0},
		{0, 2, 0, 0},
	}, g.Cells())
}

func TestClearFullRowsAdjacent(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 4, 0},
		{1, 1, 1},
		{2, 2, 2},
	})

	assert.Equal(t, 2, g.ClearFullRows())
	assert.Equal(t, [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 4, 0},
	}, g.Cells())
}

func TestClearFullRowsKeepsPartialRows(t *testing.T) {
	cells := [][]int{
		{1, 0, 1},
		{1, 1, 0},
		{0, 1, 1},
	}
	g := mustGrid(t, cells)

	assert.Equal(t, 0, g.ClearFullRows())
	assert.Equal(t, cells, g.Cells())
}

func TestGridFromCellsRejectsRagged(t *testing.T) {
	_, err := engine.GridFromCells([][]int{{0, 0}, {0}})
	assert.Error(t, err)

	_, err = engine.GridFromCells(nil)
	assert.Error(t, err)

	_, err = engine.GridFromCells([][]int{{0, -1}})
	assert.Error(t, err)
}

func TestGridCellsIsCopy(t *testing.T) {
	g := engine.NewGrid(2, 2)
	cells := g.Cells()
	cells[0][0] = 9
	assert.Equal(t, 0, g.At(0, 0))
}
