package core

import "testing"

func TestHeadingOpposite(t *testing.T) {
	pairs := map[Heading]Heading{
		HeadingUp:    HeadingDown,
		HeadingDown:  HeadingUp,
		HeadingLeft:  HeadingRight,
		HeadingRight: HeadingLeft,
	}
	for h, want := range pairs {
		if got := h.Opposite(); got != want {
			t.Errorf("Expected opposite of %v to be %v, got %v", h, want, got)
		}
		if sum := h.Vector().Add(h.Opposite().Vector()); sum != (Point{}) {
			t.Errorf("Expected %v and its opposite to cancel, got %+v", h, sum)
		}
	}
}

func TestHeadingVectorIsUnit(t *testing.T) {
	for _, h := range []Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight} {
		v := h.Vector()
		if abs(v.X)+abs(v.Y) != 1 {
			t.Errorf("Expected unit vector for %v, got %+v", h, v)
		}
	}
}

func TestGridBorder(t *testing.T) {
	g := Grid{Width: 20, Height: 12}

	if g.MaxX() != 18 || g.MaxY() != 10 {
		t.Fatalf("Expected interior max (18,10), got (%d,%d)", g.MaxX(), g.MaxY())
	}
	if g.InteriorCells() != 180 {
		t.Errorf("Expected 180 interior cells, got %d", g.InteriorCells())
	}

	border := []Point{{0, 5}, {19, 5}, {5, 0}, {5, 11}, {-1, 5}, {20, 20}}
	for _, p := range border {
		if !g.OnBorder(p) {
			t.Errorf("Expected %+v on border", p)
		}
	}

	interior := []Point{{1, 1}, {18, 10}, {10, 5}}
	for _, p := range interior {
		if g.OnBorder(p) || !g.Contains(p) {
			t.Errorf("Expected %+v to be interior", p)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
