package agent

import (
	"math"

	"github.com/banshee-data/vacuumsim/internal/grid"
)

// Stats accumulates operational counters over the lifetime of a run. The
// controller increments ErrorsEncountered, StuckCount and CleaningTime
// directly; every other field is maintained by Agent methods.
type Stats struct {
	TotalDistance     float64
	AreaCleaned       int
	CleaningTime      float64
	BatteryCycles     int
	ErrorsEncountered int
	StuckCount        int
}

// Agent is the physical unit being simulated: its pose, battery, sensors,
// and cumulative statistics. It holds no operational state machine — that
// is the controller's responsibility (internal/controller) — so an Agent
// can be driven by any caller that wants a pose/battery/sensor model
// without pulling in state-machine semantics.
type Agent struct {
	Position         Position
	BatteryCapacity  float64
	BatteryLevel     float64
	CleaningWidth    float64
	Speed            float64
	SensorRange      float64
	Heading          float64
	DockPosition     *Position
	Sensors          SensorSnapshot
	Stats            Stats
	CleanedCells     map[grid.Cell]bool
	VisitedCells     map[grid.Cell]bool
	PathHistory      []Position
}

// New constructs an Agent at pos with the given battery capacity, cleaning
// width, speed, and sensor range, fully charged and with empty history.
func New(pos Position, batteryCapacity, cleaningWidth, speed, sensorRange float64) *Agent {
	return &Agent{
		Position:        pos,
		BatteryCapacity: batteryCapacity,
		BatteryLevel:    batteryCapacity,
		CleaningWidth:   cleaningWidth,
		Speed:           speed,
		SensorRange:     sensorRange,
		Sensors:         newSensorSnapshot(),
		CleanedCells:    make(map[grid.Cell]bool),
		VisitedCells:    make(map[grid.Cell]bool),
		PathHistory:     []Position{pos},
	}
}

// Move displaces the agent by (dx, dy), updating distance and battery
// statistics and marking the destination cell visited and cleaned. It
// returns false without moving if the battery is already depleted, leaving
// the caller (the controller) to decide what state transition follows.
func (a *Agent) Move(dx, dy float64) bool {
	if a.BatteryLevel <= 0 {
		return false
	}

	next := Position{X: a.Position.X + dx, Y: a.Position.Y + dy}
	a.Position = next
	a.PathHistory = append(a.PathHistory, next)

	distance := math.Sqrt(dx*dx + dy*dy)
	a.Stats.TotalDistance += distance

	consumption := distance * 0.1
	a.BatteryLevel -= consumption
	if a.BatteryLevel < 0 {
		a.BatteryLevel = 0
	}

	gridPos := a.Position.ToGrid()
	a.VisitedCells[gridPos] = true
	a.CleanedCells[gridPos] = true
	a.Stats.AreaCleaned = len(a.CleanedCells)

	return true
}

// ShouldReturnToDock reports whether the agent's battery is low enough that
// it should head back to its dock: either below an absolute floor of 20, or
// below the charge needed to reach the dock (0.1 per unit of distance) times
// a 1.5 safety factor, plus 10.
func (a *Agent) ShouldReturnToDock() bool {
	if a.BatteryLevel < 20.0 {
		return true
	}

	if a.DockPosition != nil {
		distanceToDock := a.Position.DistanceTo(*a.DockPosition)
		estimatedNeeded := distanceToDock*0.1*1.5 + 10
		if a.BatteryLevel < estimatedNeeded {
			return true
		}
	}

	return false
}

// Charge adds chargeRate to the battery level, capped at capacity. It
// returns true once the battery reaches full capacity, incrementing
// BatteryCycles exactly once per full charge.
func (a *Agent) Charge(chargeRate float64) bool {
	a.BatteryLevel += chargeRate
	if a.BatteryLevel > a.BatteryCapacity {
		a.BatteryLevel = a.BatteryCapacity
	}

	if a.BatteryLevel >= a.BatteryCapacity {
		a.Stats.BatteryCycles++
		return true
	}
	return false
}

// SetDockPosition records where the agent's charging dock is.
func (a *Agent) SetDockPosition(pos Position) {
	a.DockPosition = &pos
}

// ResetStats zeroes operational statistics and visit/clean history without
// otherwise disturbing the agent's pose or battery.
func (a *Agent) ResetStats() {
	a.Stats = Stats{}
	a.CleanedCells = make(map[grid.Cell]bool)
	a.VisitedCells = make(map[grid.Cell]bool)
	a.PathHistory = []Position{a.Position}
}
