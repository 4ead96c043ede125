package planner

import "github.com/banshee-data/vacuumsim/internal/grid"

var cardinalDirs = [4]grid.Cell{
	{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0},
}

var diagonalDirs = [4]grid.Cell{
	{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
}

// neighbors returns the walkable cells adjacent to c. When diagonal is true,
// the four diagonal cells are included as well, but only when both cardinal
// cells flanking the diagonal move are also walkable — this prevents a
// planner from cutting across an obstacle's corner.
func neighbors(g *grid.Grid, c grid.Cell, diagonal bool) []grid.Cell {
	var out []grid.Cell

	for _, d := range cardinalDirs {
		n := grid.Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if g.IsWalkable(n) {
			out = append(out, n)
		}
	}

	if diagonal {
		for _, d := range diagonalDirs {
			n := grid.Cell{X: c.X + d.X, Y: c.Y + d.Y}
			if !g.IsWalkable(n) {
				continue
			}
			if g.IsWalkable(grid.Cell{X: c.X + d.X, Y: c.Y}) && g.IsWalkable(grid.Cell{X: c.X, Y: c.Y + d.Y}) {
				out = append(out, n)
			}
		}
	}

	return out
}
