package environment

import (
	"math/rand"

	"github.com/banshee-data/vacuumsim/internal/grid"
)

// Statistics is a snapshot of environment-level counters, used by the
// /environment query verb and by runlog.RunRecord.
type Statistics struct {
	Width              int
	Height             int
	TotalArea          int
	FreeCells          int
	Obstacles          int
	CleaningPercentage float64
	SimTime            float64
	DockPosition       grid.Cell
}

// Environment owns the static layout, the dirt bitmap, and the accumulated
// simulation clock. The grid's cell types never change after generation;
// only dirt state and sim time evolve via Clean and Step.
type Environment struct {
	RoomType     RoomType
	grid         *grid.Grid
	original     *grid.Grid
	dirty        []bool
	DockPosition grid.Cell
	TickRate     float64
	SimTime      float64
}

// New constructs an Environment for rt, generating its layout with rng and
// placing a dock (at dockPos if non-nil, otherwise chosen automatically).
func New(rt RoomType, rng *rand.Rand, dockPos *grid.Cell, tickRate float64) *Environment {
	g := Generate(rt, rng)
	dock := AddDock(g, dockPos, rng)

	env := &Environment{
		RoomType:     rt,
		grid:         g,
		original:     cloneGrid(g),
		DockPosition: dock,
		TickRate:     tickRate,
	}
	env.initializeDirt()
	return env
}

func cloneGrid(g *grid.Grid) *grid.Grid {
	clone := grid.New(g.Width, g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			clone.Set(grid.Cell{X: x, Y: y}, g.At(grid.Cell{X: x, Y: y}))
		}
	}
	return clone
}

func (e *Environment) initializeDirt() {
	e.dirty = make([]bool, e.grid.Width*e.grid.Height)
	for y := 0; y < e.grid.Height; y++ {
		for x := 0; x < e.grid.Width; x++ {
			e.dirty[e.dirtyIndex(grid.Cell{X: x, Y: y})] = e.grid.At(grid.Cell{X: x, Y: y}) == grid.Free
		}
	}
}

func (e *Environment) dirtyIndex(c grid.Cell) int {
	return c.Y*e.grid.Width + c.X
}

// Grid returns the underlying static layout. Callers must not mutate it;
// cell types are owned by the Environment.
func (e *Environment) Grid() *grid.Grid {
	return e.grid
}

// Clean marks c as cleaned. Out-of-bounds coordinates are ignored.
func (e *Environment) Clean(c grid.Cell) {
	if !e.grid.InBounds(c) {
		return
	}
	e.dirty[e.dirtyIndex(c)] = false
}

// IsDirty reports whether c still needs cleaning. Out-of-bounds coordinates
// report false.
func (e *Environment) IsDirty(c grid.Cell) bool {
	if !e.grid.InBounds(c) {
		return false
	}
	return e.dirty[e.dirtyIndex(c)]
}

// CleaningPercentage returns the fraction, as a percentage, of originally
// free cells that have been cleaned. An environment with no free cells at
// all is reported as fully (100%) cleaned.
func (e *Environment) CleaningPercentage() float64 {
	totalCleanable := 0
	for y := 0; y < e.original.Height; y++ {
		for x := 0; x < e.original.Width; x++ {
			if e.original.At(grid.Cell{X: x, Y: y}) == grid.Free {
				totalCleanable++
			}
		}
	}
	if totalCleanable == 0 {
		return 100.0
	}

	stillDirty := 0
	for _, d := range e.dirty {
		if d {
			stillDirty++
		}
	}
	cleaned := totalCleanable - stillDirty
	return (float64(cleaned) / float64(totalCleanable)) * 100.0
}

// Reset restores the grid and dirt map to their initial generated state and
// zeroes the simulation clock.
func (e *Environment) Reset() {
	e.grid = cloneGrid(e.original)
	e.initializeDirt()
	e.SimTime = 0
}

// Step advances the simulation clock by delta, or by TickRate if delta is
// zero.
func (e *Environment) Step(delta float64) {
	if delta == 0 {
		delta = e.TickRate
	}
	e.SimTime += delta
}

// CellType returns the static cell type at c, treating out-of-bounds
// coordinates as Obstacle.
func (e *Environment) CellType(c grid.Cell) grid.CellType {
	return e.grid.At(c)
}

// IsValidPosition reports whether an agent may occupy c: in bounds, and not
// an Obstacle or Cliff cell.
func (e *Environment) IsValidPosition(c grid.Cell) bool {
	return e.grid.IsWalkable(c)
}

// Statistics returns a point-in-time snapshot of environment counters.
func (e *Environment) Statistics() Statistics {
	free, obstacles := 0, 0
	for y := 0; y < e.grid.Height; y++ {
		for x := 0; x < e.grid.Width; x++ {
			switch e.grid.At(grid.Cell{X: x, Y: y}) {
			case grid.Free:
				free++
			case grid.Obstacle:
				obstacles++
			}
		}
	}
	return Statistics{
		Width:              e.grid.Width,
		Height:             e.grid.Height,
		TotalArea:          e.grid.Width * e.grid.Height,
		FreeCells:          free,
		Obstacles:          obstacles,
		CleaningPercentage: e.CleaningPercentage(),
		SimTime:            e.SimTime,
		DockPosition:       e.DockPosition,
	}
}
