package controller

import (
	"github.com/banshee-data/vacuumsim/internal/grid"
	"github.com/banshee-data/vacuumsim/internal/planner"
)

// Step advances the simulation by one tick and reports whether it should
// continue. It returns false on a terminal condition: a cliff detection
// (State becomes ErrorState), a failed cleaning move on a dead battery
// (State becomes ErrorState), an empty coverage path with nothing left to
// clean, or the configured step budget being exhausted.
func (c *Controller) Step() bool {
	c.Steps++
	c.Environment.Step(0)

	snapshot := c.Agent.UpdateSensors(c.Environment)
	if snapshot.Cliff {
		c.State = ErrorState
		c.Agent.Stats.ErrorsEncountered++
		return false
	}

	if c.Steps >= c.MaxSteps {
		return false
	}

	if c.Agent.ShouldReturnToDock() && c.State != ReturningToDock {
		c.State = ReturningToDock
		c.planPathToDock()
	}

	switch c.State {
	case Charging:
		return c.stepCharging()
	case ReturningToDock:
		return c.stepReturningToDock()
	case Cleaning:
		return c.stepCleaning()
	case Idle:
		c.State = Cleaning
		return true
	case Stuck:
		c.State = Cleaning
		return true
	case ErrorState:
		return false
	}

	return true
}

func (c *Controller) planPathToDock() {
	if c.Agent.DockPosition == nil {
		c.CurrentPath = nil
		c.PathIndex = 0
		return
	}
	dockCell := c.Agent.DockPosition.ToGrid()
	path, ok := planner.FindPath(c.Environment.Grid(), c.Agent.Position.ToGrid(), dockCell, true)
	if !ok {
		path = nil
	}
	c.CurrentPath = path
	c.PathIndex = 0
}

func (c *Controller) stepCharging() bool {
	if c.Agent.Charge(c.ChargeRate) {
		c.State = Cleaning
		c.CurrentPath = nil
		c.PathIndex = 0
	}
	return true
}

func (c *Controller) stepReturningToDock() bool {
	if len(c.CurrentPath) == 0 || c.PathIndex >= len(c.CurrentPath) {
		c.State = Charging
		return true
	}

	next := c.CurrentPath[c.PathIndex]
	current := c.Agent.Position.ToGrid()
	dx := float64(next.X - current.X)
	dy := float64(next.Y - current.Y)

	if c.Agent.Move(dx, dy) {
		c.PathIndex++
		c.Environment.Clean(next)
		c.updateSLAM(dx, dy)
	}
	return true
}

func (c *Controller) stepCleaning() bool {
	if len(c.CurrentPath) == 0 || c.PathIndex >= len(c.CurrentPath) {
		c.CurrentPath = c.generateCoveragePath()
		c.PathIndex = 0
		if len(c.CurrentPath) == 0 {
			return false
		}
	}

	if c.PathIndex >= len(c.CurrentPath) {
		return true
	}

	next := c.CurrentPath[c.PathIndex]
	current := c.Agent.Position.ToGrid()
	dx := float64(next.X - current.X)
	dy := float64(next.Y - current.Y)

	if c.Environment.IsValidPosition(next) {
		if c.Agent.Move(dx, dy) {
			c.PathIndex++
			c.StuckCounter = 0
			c.Environment.Clean(next)
			c.updateSLAM(dx, dy)
			c.Agent.Stats.CleaningTime += c.Config.GetTickRate()
		} else if c.Agent.BatteryLevel <= 0 {
			c.State = ErrorState
			c.Agent.Stats.ErrorsEncountered++
			return false
		}
	} else {
		c.PathIndex++
		c.StuckCounter++
		if c.StuckCounter >= c.MaxStuckAttempts {
			c.State = Stuck
			c.Agent.Stats.StuckCount++
			c.CurrentPath = nil
			c.StuckCounter = 0
		}
	}
	return true
}

func (c *Controller) updateSLAM(dx, dy float64) {
	if c.SLAM == nil {
		return
	}
	c.SLAM.Update(dx, dy, 0, c.sensorPoints())
}

// sensorPoints scans a 5x5 window centered on the agent's grid position for
// obstacle cells, approximating a local ranging scan for SLAM's map update.
func (c *Controller) sensorPoints() []grid.Cell {
	pos := c.Agent.Position.ToGrid()
	var points []grid.Cell

	for dx := -2; dx <= 2; dx++ {
		for dy := -2; dy <= 2; dy++ {
			check := grid.Cell{X: pos.X + dx, Y: pos.Y + dy}
			if c.Environment.Grid().InBounds(check) && c.Environment.CellType(check) == grid.Obstacle {
				points = append(points, check)
			}
		}
	}
	return points
}

func (c *Controller) generateCoveragePath() []grid.Cell {
	start := c.Agent.Position.ToGrid()
	g := c.Environment.Grid()

	var path []grid.Cell
	switch c.Mode {
	case Spiral, WallFollow, RandomWalk:
		path = c.planners[c.Mode].Generate(g, start)
	default:
		// AUTO, SPOT, and EDGE all fall back to a horizontal zigzag sweep.
		path = c.planners[Zigzag].Generate(g, start)
	}

	return planner.RemoveRedundantMoves(path)
}
