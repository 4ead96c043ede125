package agent

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/vacuumsim/internal/environment"
	"github.com/banshee-data/vacuumsim/internal/grid"
)

func TestUpdateSensorsDetectsAdjacentObstacle(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	env := environment.New(environment.Empty, rng, nil, 0.1)

	// (1,1) is free, immediately inside the border wall on every side.
	a := New(Position{X: 1, Y: 1}, 100, 0.3, 0.2, 2.0)
	snap := a.UpdateSensors(env)

	assert.True(t, snap.ObstacleFront)
	assert.InDelta(t, 1.0, snap.DistanceFront, 1e-9)
	assert.True(t, snap.ObstacleLeft)
	assert.InDelta(t, 1.0, snap.DistanceLeft, 1e-9)
}

func TestUpdateSensorsOpenDirectionMeasuresDistance(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	env := environment.New(environment.Empty, rng, nil, 0.1)

	center := grid.Cell{X: env.Grid().Width / 2, Y: env.Grid().Height / 2}
	a := New(Position{X: float64(center.X), Y: float64(center.Y)}, 100, 0.3, 0.2, 2.0)
	snap := a.UpdateSensors(env)

	assert.False(t, snap.ObstacleFront)
	assert.InDelta(t, a.SensorRange, snap.DistanceFront, 1e-9)
}

func TestUpdateSensorsEdgeOfMapReportsObstacleAtZero(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	env := environment.New(environment.Empty, rng, nil, 0.1)

	a := New(Position{X: 0, Y: 0}, 100, 0.3, 0.2, 2.0)
	snap := a.UpdateSensors(env)

	// front = (0,-1) from (0,0) is off-grid.
	assert.True(t, snap.ObstacleFront)
	assert.Equal(t, 0.0, snap.DistanceFront)
}

func TestUpdateSensorsCliffSetsFlagWithoutDistance(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	env := environment.New(environment.StairsTest, rng, nil, 0.1)

	width, height := env.Grid().Width, env.Grid().Height
	bandStart := height / 3
	agentY := bandStart - 1
	require.Equal(t, grid.Cliff, env.Grid().At(grid.Cell{X: width / 2, Y: bandStart}))
	require.Equal(t, grid.Free, env.Grid().At(grid.Cell{X: width / 2, Y: agentY}))

	a := New(Position{X: float64(width / 2), Y: float64(agentY)}, 100, 0.3, 0.2, 2.0)
	snap := a.UpdateSensors(env)

	assert.True(t, snap.Cliff)
	assert.True(t, math.IsInf(snap.DistanceBack, 1))
}
