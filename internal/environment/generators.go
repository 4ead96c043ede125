package environment

import (
	"math/rand"

	"github.com/banshee-data/vacuumsim/internal/grid"
)

// Dimensions returns the width and height a Generate call will produce for
// rt, before any randomness is applied, without generating a throwaway
// grid.
func Dimensions(rt RoomType) (width, height int) {
	switch rt {
	case Empty, Furnished, StairsTest:
		return 50, 50
	case MultiRoom:
		return 80, 60
	case Corridor:
		return 60, 8
	case ObstacleCourse:
		return 60, 60
	default:
		return 50, 50
	}
}

// Generate builds the static grid for rt, seeded by rng for every layout
// that contains randomized placement (furniture, doorway jitter, scattered
// obstacles). rng must be non-nil even for deterministic layouts, since
// AddDock below may still need it for dock placement.
func Generate(rt RoomType, rng *rand.Rand) *grid.Grid {
	switch rt {
	case Empty:
		return createEmptyRoom(50, 50)
	case Furnished:
		return createRoomWithFurniture(50, 50, 5, rng)
	case MultiRoom:
		return createMultiRoom(80, 60, rng)
	case Corridor:
		return createNarrowCorridor(60, 8, rng)
	case ObstacleCourse:
		return createObstacleCourse(60, 60)
	case StairsTest:
		return createStairsTest(50, 50)
	default:
		return createEmptyRoom(50, 50)
	}
}

func createEmptyRoom(width, height int) *grid.Grid {
	g := grid.New(width, height)
	for x := 0; x < width; x++ {
		g.Set(grid.Cell{X: x, Y: 0}, grid.Obstacle)
		g.Set(grid.Cell{X: x, Y: height - 1}, grid.Obstacle)
	}
	for y := 0; y < height; y++ {
		g.Set(grid.Cell{X: 0, Y: y}, grid.Obstacle)
		g.Set(grid.Cell{X: width - 1, Y: y}, grid.Obstacle)
	}
	return g
}

func fillRect(g *grid.Grid, x0, y0, x1, y1 int, t grid.CellType) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.Set(grid.Cell{X: x, Y: y}, t)
		}
	}
}

func createRoomWithFurniture(width, height, numObstacles int, rng *rand.Rand) *grid.Grid {
	g := createEmptyRoom(width, height)

	for i := 0; i < numObstacles; i++ {
		furnWidth := rng.Intn(4) + 2  // 2..5
		furnHeight := rng.Intn(4) + 2 // 2..5

		x := rng.Intn(width-furnWidth-10) + 5
		y := rng.Intn(height-furnHeight-10) + 5

		fillRect(g, x, y, x+furnWidth, y+furnHeight, grid.Obstacle)
	}
	return g
}

func createMultiRoom(width, height int, rng *rand.Rand) *grid.Grid {
	g := createEmptyRoom(width, height)

	midX := width / 2
	midY := height / 2

	fillRect(g, 5, midY, width-5, midY+1, grid.Obstacle)
	doorwayX := midX + (rng.Intn(11) - 5)
	fillRect(g, doorwayX-2, midY, doorwayX+2, midY+1, grid.Free)

	fillRect(g, midX, 5, midX+1, height-5, grid.Obstacle)
	doorwayY := midY + (rng.Intn(11) - 5)
	fillRect(g, midX, doorwayY-2, midX+1, doorwayY+2, grid.Free)

	roomCenters := [][2]int{
		{midX / 2, midY / 2},
		{midX + midX/2, midY / 2},
		{midX / 2, midY + midY/2},
		{midX + midX/2, midY + midY/2},
	}
	for _, c := range roomCenters {
		roomX, roomY := c[0], c[1]
		fillRect(g, roomX-1, roomY-1, roomX+2, roomY+2, grid.Obstacle)
	}
	return g
}

func createNarrowCorridor(length, width int, rng *rand.Rand) *grid.Grid {
	// The original models this as a (width x length) array — width rows,
	// length columns — so our grid is Width=length, Height=width.
	g := grid.New(length, width)
	fillRect(g, 0, 0, length, width, grid.Obstacle)

	corridorStart := 1
	corridorEnd := width - 1
	fillRect(g, 1, corridorStart, length-1, corridorEnd, grid.Free)

	for i := 0; i < 5; i++ {
		x := rng.Intn(length-10) + 5
		y := corridorStart + rng.Intn(corridorEnd-corridorStart)
		g.Set(grid.Cell{X: x, Y: y}, grid.Obstacle)
	}
	return g
}

func createObstacleCourse(width, height int) *grid.Grid {
	g := createEmptyRoom(width, height)

	// L-shaped obstacle.
	fillRect(g, 10, 10, 15, 20, grid.Obstacle)
	fillRect(g, 10, 15, 20, 20, grid.Obstacle)

	// U-shaped obstacle.
	fillRect(g, 25, 25, 28, 35, grid.Obstacle)
	fillRect(g, 35, 25, 38, 35, grid.Obstacle)
	fillRect(g, 25, 32, 38, 35, grid.Obstacle)

	// Scattered obstacles.
	scattered := [][2]int{{15, 30}, {30, 15}, {40, 40}, {20, 45}, {45, 20}}
	for _, c := range scattered {
		x, y := c[0], c[1]
		fillRect(g, x-2, y-2, x+2, y+2, grid.Obstacle)
	}

	// Three-row dividing wall with a 4-cell gap cut into its middle row
	// only; the rows above and below the gap stay solid.
	fillRect(g, 5, height/2-1, width-10, height/2+2, grid.Obstacle)
	fillRect(g, width/2-2, height/2, width/2+2, height/2+1, grid.Free)

	return g
}

func createStairsTest(width, height int) *grid.Grid {
	g := createEmptyRoom(width, height)

	fillRect(g, 10, height/3, width-10, height/3+5, grid.Cliff)
	fillRect(g, 10, 2*height/3, width-10, 2*height/3+5, grid.Cliff)

	return g
}

// AddDock places a dock cell into g. If pos is nil, it searches for a free
// cell adjacent to an obstacle (hugging a wall, matching a real vacuum
// dock's placement), falling back to any free cell, and finally to the
// grid's center if no free cell exists at all.
func AddDock(g *grid.Grid, pos *grid.Cell, rng *rand.Rand) grid.Cell {
	if pos != nil {
		g.Set(*pos, grid.Dock)
		return *pos
	}

	var nearWall []grid.Cell
	var anyFree []grid.Cell
	for y := 2; y < g.Height-2; y++ {
		for x := 2; x < g.Width-2; x++ {
			c := grid.Cell{X: x, Y: y}
			if g.At(c) != grid.Free {
				continue
			}
			anyFree = append(anyFree, c)
			if g.At(grid.Cell{X: x, Y: y - 1}) == grid.Obstacle ||
				g.At(grid.Cell{X: x, Y: y + 1}) == grid.Obstacle ||
				g.At(grid.Cell{X: x - 1, Y: y}) == grid.Obstacle ||
				g.At(grid.Cell{X: x + 1, Y: y}) == grid.Obstacle {
				nearWall = append(nearWall, c)
			}
		}
	}

	var chosen grid.Cell
	switch {
	case len(nearWall) > 0:
		chosen = nearWall[rng.Intn(len(nearWall))]
	case len(anyFree) > 0:
		chosen = anyFree[rng.Intn(len(anyFree))]
	default:
		chosen = grid.Cell{X: g.Width / 2, Y: g.Height / 2}
	}

	g.Set(chosen, grid.Dock)
	return chosen
}
