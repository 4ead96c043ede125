package planner

import "github.com/banshee-data/vacuumsim/internal/grid"

// SpiralPlanner generates an outward rectangular spiral from the start
// cell, widening its leg length every two direction changes (right, down,
// left, up, ...).
type SpiralPlanner struct {
	// MaxRadius bounds the spiral; zero means derive it from the grid's
	// larger dimension.
	MaxRadius int
}

// Generate implements Planner.
func (p SpiralPlanner) Generate(g *grid.Grid, start grid.Cell) []grid.Cell {
	maxRadius := p.MaxRadius
	if maxRadius == 0 {
		maxRadius = g.Width
		if g.Height > maxRadius {
			maxRadius = g.Height
		}
	}

	path := []grid.Cell{start}
	x, y := start.X, start.Y

	dx, dy := 1, 0 // Start moving right.
	stepsInDirection := 1
	stepsTaken := 0
	directionChanges := 0

	for i := 0; i < maxRadius*maxRadius; i++ {
		x += dx
		y += dy

		c := grid.Cell{X: x, Y: y}
		if g.IsWalkable(c) {
			path = append(path, c)
		}

		stepsTaken++
		if stepsTaken == stepsInDirection {
			stepsTaken = 0
			directionChanges++

			dx, dy = -dy, dx
			if directionChanges%2 == 0 {
				stepsInDirection++
			}
		}

		if abs(x-start.X) > maxRadius && abs(y-start.Y) > maxRadius {
			break
		}
	}

	return path
}
