package core

// Grid is the playfield including its one-cell border
// Dimensions are measured once at startup and fixed for the session
type Grid struct {
	Width, Height int
}

// MinX returns the smallest interior column
func (g Grid) MinX() int { return 1 }

// MaxX returns the largest interior column
func (g Grid) MaxX() int { return g.Width - 2 }

// MinY returns the smallest interior row
func (g Grid) MinY() int { return 1 }

// MaxY returns the largest interior row
func (g Grid) MaxY() int { return g.Height - 2 }

// InteriorCells returns the number of passable cells
func (g Grid) InteriorCells() int {
	w, h := g.Width-2, g.Height-2
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// OnBorder reports whether p lies on the border or outside the grid
func (g Grid) OnBorder(p Point) bool {
	return p.X <= 0 || p.Y <= 0 || p.X >= g.Width-1 || p.Y >= g.Height-1
}

// Contains reports whether p is an interior cell
func (g Grid) Contains(p Point) bool {
	return !g.OnBorder(p)
}
