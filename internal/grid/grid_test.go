package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridAllFree(t *testing.T) {
	t.Parallel()

	g := New(4, 3)
	require.Equal(t, 4, g.Width)
	require.Equal(t, 3, g.Height)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			assert.Equal(t, Free, g.At(Cell{X: x, Y: y}))
		}
	}
}

func TestGridSetAndAt(t *testing.T) {
	t.Parallel()

	g := New(5, 5)
	g.Set(Cell{X: 2, Y: 2}, Obstacle)

	assert.Equal(t, Obstacle, g.At(Cell{X: 2, Y: 2}))
	assert.Equal(t, Free, g.At(Cell{X: 1, Y: 2}))
}

func TestGridOutOfBoundsReadsAsObstacle(t *testing.T) {
	t.Parallel()

	g := New(3, 3)
	cases := []Cell{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 3, Y: 0},
		{X: 0, Y: 3},
	}
	for _, c := range cases {
		assert.Equal(t, Obstacle, g.At(c))
		assert.False(t, g.InBounds(c))
	}
}

func TestGridSetOutOfBoundsIsNoop(t *testing.T) {
	t.Parallel()

	g := New(2, 2)
	g.Set(Cell{X: 10, Y: 10}, Obstacle)
	// Nothing to assert beyond "did not panic"; dimensions unchanged.
	assert.Equal(t, 2, g.Width)
}

func TestIsWalkable(t *testing.T) {
	t.Parallel()

	g := New(3, 3)
	g.Set(Cell{X: 1, Y: 1}, Obstacle)
	g.Set(Cell{X: 2, Y: 1}, Cliff)
	g.Set(Cell{X: 0, Y: 0}, Dock)

	tests := []struct {
		name string
		c    Cell
		want bool
	}{
		{"free cell", Cell{X: 0, Y: 1}, true},
		{"dock cell walkable", Cell{X: 0, Y: 0}, true},
		{"obstacle cell", Cell{X: 1, Y: 1}, false},
		{"cliff cell", Cell{X: 2, Y: 1}, false},
		{"out of bounds", Cell{X: -1, Y: 0}, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, g.IsWalkable(tt.c))
		})
	}
}

func TestBresenhamLineEndpointsIncluded(t *testing.T) {
	t.Parallel()

	line := BresenhamLine(Cell{X: 0, Y: 0}, Cell{X: 3, Y: 0})
	require.NotEmpty(t, line)
	assert.Equal(t, Cell{X: 0, Y: 0}, line[0])
	assert.Equal(t, Cell{X: 3, Y: 0}, line[len(line)-1])
	assert.Len(t, line, 4)
}

func TestBresenhamLineDiagonal(t *testing.T) {
	t.Parallel()

	line := BresenhamLine(Cell{X: 0, Y: 0}, Cell{X: 3, Y: 3})
	assert.Equal(t, []Cell{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3},
	}, line)
}

func TestBresenhamLineSinglePoint(t *testing.T) {
	t.Parallel()

	line := BresenhamLine(Cell{X: 2, Y: 2}, Cell{X: 2, Y: 2})
	assert.Equal(t, []Cell{{X: 2, Y: 2}}, line)
}

func TestBresenhamLineSteepSlope(t *testing.T) {
	t.Parallel()

	// A steep line (dy dominates dx) exercises the y-stepping branch.
	line := BresenhamLine(Cell{X: 0, Y: 0}, Cell{X: 1, Y: 4})
	require.Equal(t, Cell{X: 0, Y: 0}, line[0])
	require.Equal(t, Cell{X: 1, Y: 4}, line[len(line)-1])
	assert.Len(t, line, 5)
}
