package planner

import "github.com/banshee-data/vacuumsim/internal/grid"

var wallFollowDirs = [4]grid.Cell{
	{X: 0, Y: -1}, // North
	{X: 1, Y: 0},  // East
	{X: 0, Y: 1},  // South
	{X: -1, Y: 0}, // West
}

// WallFollowPlanner traces the interior of obstacles using the right-hand
// rule: always attempt to turn right first, then go straight, then turn
// left as a last resort.
type WallFollowPlanner struct {
	MaxSteps int
}

// Generate implements Planner.
func (p WallFollowPlanner) Generate(g *grid.Grid, start grid.Cell) []grid.Cell {
	maxSteps := p.MaxSteps
	if maxSteps == 0 {
		maxSteps = 1000
	}

	path := []grid.Cell{start}
	x, y := start.X, start.Y
	directionIdx := 0

	visited := map[grid.Cell]bool{start: true}

	for i := 0; i < maxSteps; i++ {
		rightDir := (directionIdx + 1) % 4
		d := wallFollowDirs[rightDir]
		rightCell := grid.Cell{X: x + d.X, Y: y + d.Y}

		moved := false
		if g.IsWalkable(rightCell) {
			x, y = rightCell.X, rightCell.Y
			directionIdx = rightDir
			moved = true
		} else {
			fd := wallFollowDirs[directionIdx]
			forward := grid.Cell{X: x + fd.X, Y: y + fd.Y}
			if g.IsWalkable(forward) {
				x, y = forward.X, forward.Y
				moved = true
			} else {
				directionIdx = ((directionIdx-1)%4 + 4) % 4
				continue
			}
		}

		if !moved {
			continue
		}

		current := grid.Cell{X: x, Y: y}
		if !visited[current] {
			path = append(path, current)
			visited[current] = true
		}

		if current == start && len(path) > 10 {
			break
		}
	}

	return path
}
