package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 15, 15, true},
		{"top-left cell", 10, 10, true},
		{"bottom-right cell", 29, 24, true},
		{"right edge is exclusive", 30, 15, false},
		{"bottom edge is exclusive", 15, 25, false},
		{"left of", 9, 15, false},
		{"above", 15, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
			if got := r.ContainsPoint(Point{X: tc.x, Y: tc.y}); got != tc.want {
				t.Errorf("ContainsPoint(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("Right, Bottom = %d, %d, expected 25, 25", r.Right(), r.Bottom())
	}
}

func TestEmptyRectContainsNothing(t *testing.T) {
	r := NewRect(3, 3, 0, 1)
	if r.Contains(3, 3) {
		t.Error("zero-width rect contains its origin")
	}
}
