package api

import (
	"github.com/banshee-data/vacuumsim/internal/controller"
	"github.com/banshee-data/vacuumsim/internal/environment"
	"github.com/banshee-data/vacuumsim/internal/grid"
	"github.com/banshee-data/vacuumsim/internal/units"
)

// PointJSON is the wire form of a pose or grid cell.
type PointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RobotStatus answers the robot_status query verb.
type RobotStatus struct {
	Position        PointJSON `json:"position"`
	Heading         float64   `json:"heading"`
	BatteryLevel    float64   `json:"battery_level"`
	BatteryCapacity float64   `json:"battery_capacity"`
	Speed           float64   `json:"speed"`
	SpeedUnits      string    `json:"speed_units"`
	State           string    `json:"state"`
	Mode            string    `json:"mode"`
}

// robotStatus reports the agent's configured speed in speedUnits (the
// simulation core always stores speed in meters per second internally).
// An unrecognized unit falls back to m/s, matching units.ConvertSpeed.
func robotStatus(c *controller.Controller, speedUnits string) RobotStatus {
	if !units.IsValid(speedUnits) {
		speedUnits = units.MPS
	}
	return RobotStatus{
		Position:        PointJSON{X: c.Agent.Position.X, Y: c.Agent.Position.Y},
		Heading:         c.Agent.Heading,
		BatteryLevel:    c.Agent.BatteryLevel,
		BatteryCapacity: c.Agent.BatteryCapacity,
		Speed:           units.ConvertSpeed(c.Agent.Speed, speedUnits),
		SpeedUnits:      speedUnits,
		State:           c.State.String(),
		Mode:            c.Mode.String(),
	}
}

// StatisticsResponse answers the statistics query verb.
type StatisticsResponse struct {
	TotalDistance      float64 `json:"total_distance"`
	AreaCleaned        int     `json:"area_cleaned"`
	CleaningTime       float64 `json:"cleaning_time"`
	BatteryCycles      int     `json:"battery_cycles"`
	ErrorsEncountered  int     `json:"errors_encountered"`
	StuckCount         int     `json:"stuck_count"`
	CleaningPercentage float64 `json:"cleaning_percentage"`
	Steps              int     `json:"steps"`
}

func statisticsResponse(c *controller.Controller) StatisticsResponse {
	stats := c.Agent.Stats
	return StatisticsResponse{
		TotalDistance:      stats.TotalDistance,
		AreaCleaned:        stats.AreaCleaned,
		CleaningTime:       stats.CleaningTime,
		BatteryCycles:      stats.BatteryCycles,
		ErrorsEncountered:  stats.ErrorsEncountered,
		StuckCount:         stats.StuckCount,
		CleaningPercentage: c.Environment.CleaningPercentage(),
		Steps:              c.Steps,
	}
}

// SLAMResponse answers the slam_data query verb. A nil pointer means SLAM
// is disabled; handlers serialize that as JSON null rather than an error.
type SLAMResponse struct {
	Map           [][]int   `json:"map"`
	Pose          PointJSON `json:"pose"`
	Theta         float64   `json:"theta"`
	ParticleCount int       `json:"particle_count"`
}

func slamResponse(c *controller.Controller) *SLAMResponse {
	if c.SLAM == nil {
		return nil
	}
	x, y, theta := c.SLAM.Pose()
	return &SLAMResponse{
		Map:           c.SLAM.Map(),
		Pose:          PointJSON{X: x, Y: y},
		Theta:         theta,
		ParticleCount: len(c.SLAM.Particles()),
	}
}

// PathResponse answers the path_info query verb. A nil pointer means there
// is no active path.
type PathResponse struct {
	Path  []PointJSON `json:"path"`
	Index int         `json:"index"`
}

func pathResponse(c *controller.Controller) *PathResponse {
	if len(c.CurrentPath) == 0 {
		return nil
	}
	path := make([]PointJSON, len(c.CurrentPath))
	for i, cell := range c.CurrentPath {
		path[i] = PointJSON{X: float64(cell.X), Y: float64(cell.Y)}
	}
	return &PathResponse{Path: path, Index: c.PathIndex}
}

func environmentInfo(c *controller.Controller) environment.Statistics {
	return c.Environment.Statistics()
}

// CoverageMapResponse answers the coverage_map query verb: the static cell
// types plus a same-shaped dirt overlay.
type CoverageMapResponse struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cells  [][]int  `json:"cells"`
	Dirty  [][]bool `json:"dirty"`
}

func coverageMap(c *controller.Controller) CoverageMapResponse {
	g := c.Environment.Grid()
	cells := make([][]int, g.Height)
	dirty := make([][]bool, g.Height)
	for y := 0; y < g.Height; y++ {
		cells[y] = make([]int, g.Width)
		dirty[y] = make([]bool, g.Width)
		for x := 0; x < g.Width; x++ {
			cell := grid.Cell{X: x, Y: y}
			cells[y][x] = int(g.At(cell))
			dirty[y][x] = c.Environment.IsDirty(cell)
		}
	}
	return CoverageMapResponse{Width: g.Width, Height: g.Height, Cells: cells, Dirty: dirty}
}

// Snapshot bundles every query response, pushed wholesale over the /stream
// websocket after each step_simulation call.
type Snapshot struct {
	Status      RobotStatus            `json:"robot_status"`
	Environment environment.Statistics `json:"environment_info"`
	Statistics  StatisticsResponse     `json:"statistics"`
	SLAM        *SLAMResponse          `json:"slam_data"`
	Path        *PathResponse          `json:"path_info"`
	Continuing  bool                   `json:"continuing"`
}

func buildSnapshot(c *controller.Controller, continuing bool) Snapshot {
	return Snapshot{
		Status:      robotStatus(c, units.MPS),
		Environment: environmentInfo(c),
		Statistics:  statisticsResponse(c),
		SLAM:        slamResponse(c),
		Path:        pathResponse(c),
		Continuing:  continuing,
	}
}
