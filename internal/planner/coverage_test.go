package planner

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/vacuumsim/internal/grid"
)

func TestSpiralPlannerStaysWithinWalkableCells(t *testing.T) {
	t.Parallel()

	g := openRoom(20, 20)
	start := grid.Cell{X: 10, Y: 10}
	path := SpiralPlanner{}.Generate(g, start)

	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	for _, c := range path {
		assert.True(t, g.IsWalkable(c))
	}
}

func TestZigzagPlannerHorizontalAlternatesDirection(t *testing.T) {
	t.Parallel()

	g := openRoom(10, 6)
	path := ZigzagPlanner{Horizontal: true}.Generate(g, grid.Cell{})

	require.NotEmpty(t, path)
	// Row 1 (first interior row) is odd, so it sweeps right to left.
	var row1 []grid.Cell
	for _, c := range path {
		if c.Y == 1 {
			row1 = append(row1, c)
		}
	}
	require.NotEmpty(t, row1)
	assert.Greater(t, row1[0].X, row1[len(row1)-1].X)
}

func TestZigzagPlannerVerticalSweep(t *testing.T) {
	t.Parallel()

	g := openRoom(6, 10)
	path := ZigzagPlanner{Horizontal: false}.Generate(g, grid.Cell{})
	require.NotEmpty(t, path)
	for _, c := range path {
		assert.True(t, g.IsWalkable(c))
	}
}

func TestWallFollowPlannerReturnsToStartOrStops(t *testing.T) {
	t.Parallel()

	g := openRoom(15, 15)
	start := grid.Cell{X: 1, Y: 1}
	path := WallFollowPlanner{}.Generate(g, start)

	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	for _, c := range path {
		assert.True(t, g.IsWalkable(c))
	}
}

func TestRandomCoveragePlannerIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	g := openRoom(15, 15)
	start := grid.Cell{X: 1, Y: 1}

	p1 := RandomCoveragePlanner{Rng: rand.New(rand.NewSource(42)), TargetCoverage: 0.3}
	p2 := RandomCoveragePlanner{Rng: rand.New(rand.NewSource(42)), TargetCoverage: 0.3}

	path1 := p1.Generate(g, start)
	path2 := p2.Generate(g, start)

	assert.Equal(t, path1, path2)
	assert.Equal(t, start, path1[0])
}

func TestRandomCoveragePlannerStopsAtTargetCoverage(t *testing.T) {
	t.Parallel()

	g := openRoom(15, 15)
	start := grid.Cell{X: 1, Y: 1}
	p := RandomCoveragePlanner{Rng: rand.New(rand.NewSource(1)), TargetCoverage: 0.2, MaxSteps: 100000}

	path := p.Generate(g, start)
	assert.LessOrEqual(t, len(path), 100001)
}

func TestRemoveRedundantMovesCollapsesDuplicates(t *testing.T) {
	t.Parallel()

	path := []grid.Cell{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	got := RemoveRedundantMoves(path)
	want := []grid.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RemoveRedundantMoves() mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveRedundantMovesShortPathUnchanged(t *testing.T) {
	t.Parallel()

	path := []grid.Cell{{X: 0, Y: 0}}
	if diff := cmp.Diff(path, RemoveRedundantMoves(path)); diff != "" {
		t.Errorf("RemoveRedundantMoves() mismatch (-want +got):\n%s", diff)
	}
}

func TestSmoothIsNoop(t *testing.T) {
	t.Parallel()

	path := []grid.Cell{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 9, Y: 1}}
	assert.Equal(t, path, Smooth(path))
}
