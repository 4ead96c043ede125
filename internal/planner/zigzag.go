package planner

import "github.com/banshee-data/vacuumsim/internal/grid"

// ZigzagPlanner sweeps the grid in a boustrophedon pattern: alternating
// sweep direction on each row (or column), ignoring the given start cell —
// coverage always runs the full grid extent.
type ZigzagPlanner struct {
	Horizontal bool
}

// Generate implements Planner.
func (p ZigzagPlanner) Generate(g *grid.Grid, start grid.Cell) []grid.Cell {
	var path []grid.Cell

	if p.Horizontal {
		for y := 0; y < g.Height; y++ {
			if y%2 == 0 {
				for x := 0; x < g.Width; x++ {
					c := grid.Cell{X: x, Y: y}
					if g.IsWalkable(c) {
						path = append(path, c)
					}
				}
			} else {
				for x := g.Width - 1; x >= 0; x-- {
					c := grid.Cell{X: x, Y: y}
					if g.IsWalkable(c) {
						path = append(path, c)
					}
				}
			}
		}
		return path
	}

	for x := 0; x < g.Width; x++ {
		if x%2 == 0 {
			for y := 0; y < g.Height; y++ {
				c := grid.Cell{X: x, Y: y}
				if g.IsWalkable(c) {
					path = append(path, c)
				}
			}
		} else {
			for y := g.Height - 1; y >= 0; y-- {
				c := grid.Cell{X: x, Y: y}
				if g.IsWalkable(c) {
					path = append(path, c)
				}
			}
		}
	}
	return path
}
