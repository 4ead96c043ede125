package agent

import (
	"math"

	"github.com/banshee-data/vacuumsim/internal/grid"
)

// Position is a continuous 2D coordinate. The agent's pose is tracked in
// this space rather than grid.Cell so that sub-cell motion (fractional
// deltas) accumulates correctly in distance and battery statistics.
type Position struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Position) DistanceTo(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ToGrid truncates p to integer grid coordinates.
func (p Position) ToGrid() grid.Cell {
	return grid.Cell{X: int(p.X), Y: int(p.Y)}
}
