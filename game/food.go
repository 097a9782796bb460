package game

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
)

// Occupier reports whether a cell is taken by something food must not overlap
type Occupier interface {
	Occupies(p core.Point) bool
}

// Food is the single collectible on the grid
type Food struct {
	Position core.Point

	grid  core.Grid
	rng   *rand.Rand
	avoid Occupier // nil in permissive mode
}

// NewFood places food at pos; Generate draws from rng within grid's interior
func NewFood(pos core.Point, grid core.Grid, rng *rand.Rand) *Food {
	return &Food{
		Position: pos,
		grid:     grid,
		rng:      rng,
	}
}

// Avoid makes Generate skip cells reported by o, nil restores permissive placement
func (f *Food) Avoid(o Occupier) {
	f.avoid = o
}

// Generate relocates the food to a random interior cell
// The current cell is excluded when the interior has room for another, so the draw is
// uniform over the remaining cells rather than the whole interior
// If no acceptable cell exists the food stays where it is
func (f *Food) Generate() {
	if f.grid.InteriorCells() == 0 {
		return
	}
	for attempt := 0; attempt < parameter.FoodMaxAttempts; attempt++ {
		p := core.Point{
			X: f.grid.MinX() + f.rng.Intn(f.grid.MaxX()-f.grid.MinX()+1),
			Y: f.grid.MinY() + f.rng.Intn(f.grid.MaxY()-f.grid.MinY()+1),
		}
		if f.acceptable(p) {
			f.Position = p
			return
		}
	}

	// Crowded board: walk the interior from a random offset so the fallback is not biased to the top-left
	width := f.grid.MaxX() - f.grid.MinX() + 1
	total := f.grid.InteriorCells()
	offset := f.rng.Intn(total)
	for i := 0; i < total; i++ {
		idx := (offset + i) % total
		p := core.Point{X: f.grid.MinX() + idx%width, Y: f.grid.MinY() + idx/width}
		if f.acceptable(p) {
			f.Position = p
			return
		}
	}
}

func (f *Food) acceptable(p core.Point) bool {
	if p == f.Position && f.grid.InteriorCells() > 1 {
		return false
	}
	if f.avoid != nil && f.avoid.Occupies(p) {
		return false
	}
	return true
}
