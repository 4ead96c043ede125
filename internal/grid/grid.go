// Package grid implements the static cell map shared by the environment,
// planner, and SLAM packages: a fixed-size rectangular array of cell types
// plus Bresenham line rasterization used for sensor ray-tracing and
// occupancy-grid scan updates.
package grid

import "fmt"

// CellType enumerates the static terrain a grid cell can hold. It mirrors
// the original simulator's CellType enum and is immutable for the lifetime
// of an Environment; dirt is tracked separately (see internal/environment).
type CellType int

const (
	Free CellType = iota
	Obstacle
	Cliff
	Dock
)

// String renders the cell type for logging and diagnostics.
func (c CellType) String() string {
	switch c {
	case Free:
		return "free"
	case Obstacle:
		return "obstacle"
	case Cliff:
		return "cliff"
	case Dock:
		return "dock"
	default:
		return fmt.Sprintf("CellType(%d)", int(c))
	}
}

// Cell is an integer grid coordinate. X is the column, Y is the row.
type Cell struct {
	X, Y int
}

// Grid is a fixed-size rectangular array of CellType values. It has no
// concept of dirt, visit history, or simulation time — those live in
// internal/environment, which owns a Grid.
type Grid struct {
	Width, Height int
	cells         []CellType
}

// New allocates a width×height grid with every cell set to Free.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]CellType, width*height),
	}
}

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

func (g *Grid) index(c Cell) int {
	return c.Y*g.Width + c.X
}

// At returns the cell type at c. Out-of-bounds coordinates read as Obstacle,
// so path planners treat the grid edge as a wall without a bounds check at
// every call site.
func (g *Grid) At(c Cell) CellType {
	if !g.InBounds(c) {
		return Obstacle
	}
	return g.cells[g.index(c)]
}

// Set assigns the cell type at c. It is a no-op outside the grid.
func (g *Grid) Set(c Cell, t CellType) {
	if !g.InBounds(c) {
		return
	}
	g.cells[g.index(c)] = t
}

// IsWalkable reports whether a planner or agent may occupy c: in bounds,
// and neither Obstacle nor Cliff.
func (g *Grid) IsWalkable(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	switch g.At(c) {
	case Obstacle, Cliff:
		return false
	default:
		return true
	}
}

// BresenhamLine returns the sequence of cells on the line from a to b,
// inclusive of both endpoints, using integer Bresenham rasterization. It is
// used for sensor ray casts and occupancy-grid scan updates, both of which
// need every cell a ray passes through rather than a continuous path.
func BresenhamLine(a, b Cell) []Cell {
	x0, y0 := a.X, a.Y
	x1, y1 := b.X, b.Y

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	var line []Cell
	x, y := x0, y0
	for {
		line = append(line, Cell{X: x, Y: y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return line
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
