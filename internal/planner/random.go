package planner

import (
	"math/rand"

	"github.com/banshee-data/vacuumsim/internal/grid"
)

// RandomCoveragePlanner performs a biased random walk: at each step it
// prefers an unvisited neighbor 70% of the time, falling back to any
// neighbor otherwise, until it reaches TargetCoverage of the grid's
// traversable cells or runs out of steps. It owns its own *rand.Rand so
// that simulation determinism comes entirely from the seed the controller
// hands it, never from the package-level math/rand source.
type RandomCoveragePlanner struct {
	Rng            *rand.Rand
	TargetCoverage float64
	MaxSteps       int
}

// Generate implements Planner.
func (p RandomCoveragePlanner) Generate(g *grid.Grid, start grid.Cell) []grid.Cell {
	targetCoverage := p.TargetCoverage
	if targetCoverage == 0 {
		targetCoverage = 0.95
	}
	maxSteps := p.MaxSteps
	if maxSteps == 0 {
		maxSteps = 10000
	}

	path := []grid.Cell{start}
	x, y := start.X, start.Y
	covered := map[grid.Cell]bool{start: true}

	totalFree := 0
	for gy := 0; gy < g.Height; gy++ {
		for gx := 0; gx < g.Width; gx++ {
			switch g.At(grid.Cell{X: gx, Y: gy}) {
			case grid.Free, grid.Dock:
				totalFree++
			}
		}
	}
	if totalFree == 0 {
		return path
	}

	for i := 0; i < maxSteps; i++ {
		ns := neighbors(g, grid.Cell{X: x, Y: y}, false)
		if len(ns) == 0 {
			break
		}

		var uncovered []grid.Cell
		for _, n := range ns {
			if !covered[n] {
				uncovered = append(uncovered, n)
			}
		}

		var next grid.Cell
		if len(uncovered) > 0 && p.Rng.Float64() < 0.7 {
			next = uncovered[p.Rng.Intn(len(uncovered))]
		} else {
			next = ns[p.Rng.Intn(len(ns))]
		}

		x, y = next.X, next.Y
		path = append(path, next)
		covered[next] = true

		coverage := float64(len(covered)) / float64(totalFree)
		if coverage >= targetCoverage {
			break
		}
	}

	return path
}
