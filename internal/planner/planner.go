// Package planner implements the coverage and navigation algorithms that
// produce the cell sequences a controller drives an agent along: A*
// navigation, four coverage-pattern generators, and a small path
// optimizer.
package planner

import "github.com/banshee-data/vacuumsim/internal/grid"

// Planner generates a coverage path over g starting from start. Concrete
// planners hold whatever state they need (a wall-follow step budget, a
// random source) but never reference a controller or agent directly.
type Planner interface {
	Generate(g *grid.Grid, start grid.Cell) []grid.Cell
}
