package agent

import (
	"math"

	"github.com/banshee-data/vacuumsim/internal/environment"
	"github.com/banshee-data/vacuumsim/internal/grid"
)

// SensorSnapshot is the fixed set of readings an agent reports each tick.
// It is a plain struct, not a map, so it is updated positionally per
// direction rather than through reflection over field names.
type SensorSnapshot struct {
	ObstacleFront, ObstacleBack, ObstacleLeft, ObstacleRight bool
	DistanceFront, DistanceBack, DistanceLeft, DistanceRight float64
	Cliff                                                    bool
	Bumper                                                    bool
}

func newSensorSnapshot() SensorSnapshot {
	return SensorSnapshot{
		DistanceFront: math.Inf(1),
		DistanceBack:  math.Inf(1),
		DistanceLeft:  math.Inf(1),
		DistanceRight: math.Inf(1),
	}
}

// UpdateSensors recomputes the agent's sensor snapshot from env at the
// agent's current grid position, using four cardinal ray casts out to
// SensorRange. An obstacle one cell away reports a fixed distance of 1.0; a
// cliff sets Cliff but, matching the original sensor model, does not also
// populate a distance reading for that direction. Off-grid neighbors report
// an obstacle at distance 0.
func (a *Agent) UpdateSensors(env *environment.Environment) SensorSnapshot {
	pos := a.Position.ToGrid()
	s := newSensorSnapshot()

	type probe struct {
		dx, dy      int
		obstacle    *bool
		distance    *float64
	}
	probes := []probe{
		{0, -1, &s.ObstacleFront, &s.DistanceFront},
		{0, 1, &s.ObstacleBack, &s.DistanceBack},
		{-1, 0, &s.ObstacleLeft, &s.DistanceLeft},
		{1, 0, &s.ObstacleRight, &s.DistanceRight},
	}

	for _, p := range probes {
		check := grid.Cell{X: pos.X + p.dx, Y: pos.Y + p.dy}
		if !env.Grid().InBounds(check) {
			*p.obstacle = true
			*p.distance = 0.0
			continue
		}
		switch env.CellType(check) {
		case grid.Obstacle:
			*p.obstacle = true
			*p.distance = 1.0
		case grid.Cliff:
			s.Cliff = true
		default:
			*p.distance = a.distanceToObstacle(env, pos, p.dx, p.dy)
		}
	}

	a.Sensors = s
	return s
}

func (a *Agent) distanceToObstacle(env *environment.Environment, from grid.Cell, dx, dy int) float64 {
	x, y := from.X, from.Y
	distance := 0.0

	for distance < a.SensorRange {
		x += dx
		y += dy
		distance += 1.0

		c := grid.Cell{X: x, Y: y}
		if !env.Grid().InBounds(c) {
			return distance
		}
		switch env.CellType(c) {
		case grid.Obstacle, grid.Cliff:
			return distance
		}
	}
	return a.SensorRange
}
