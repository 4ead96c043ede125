// Package controller drives the step-by-step simulation: it owns an
// environment, an agent, an optional SLAM system, and a set of coverage
// planners, and advances all of them together one tick at a time through
// a small state machine (idle, cleaning, returning to dock, charging,
// error, stuck).
package controller

import (
	"math/rand"
	"time"

	"github.com/banshee-data/vacuumsim/internal/agent"
	"github.com/banshee-data/vacuumsim/internal/environment"
	"github.com/banshee-data/vacuumsim/internal/grid"
	"github.com/banshee-data/vacuumsim/internal/planner"
	"github.com/banshee-data/vacuumsim/internal/slam"
)

// Controller is the simulation's single mutable owner: no package-level
// globals hold simulation state, so multiple Controllers can coexist
// (e.g. across successive runs served by the same process) without
// interfering with each other.
type Controller struct {
	Config      *Config
	Environment *environment.Environment
	Agent       *agent.Agent
	SLAM        *slam.SLAM // nil when SLAM is disabled

	State State
	Mode  CleaningMode

	CurrentPath []grid.Cell
	PathIndex   int

	Steps            int
	StuckCounter     int
	MaxStuckAttempts int
	MaxSteps         int
	ChargeRate       float64

	planners map[CleaningMode]planner.Planner
}

// New builds a Controller from cfg: it generates the environment, places
// the agent at a valid starting position, optionally initializes SLAM, and
// constructs the planner dispatch table. An unset random seed falls back
// to a time-derived one — determinism across runs requires an explicit
// seed in cfg.
func New(cfg *Config) (*Controller, error) {
	roomType, err := environment.ParseRoomType(cfg.GetRoomType())
	if err != nil {
		return nil, err
	}
	mode, err := ParseCleaningMode(cfg.GetCleaningMode())
	if err != nil {
		return nil, err
	}

	baseSeed, ok := cfg.GetRandomSeed()
	if !ok {
		baseSeed = time.Now().UnixNano()
	}
	// Each stochastic subsystem owns its own source rather than sharing
	// math/rand's package-level generator, so env generation, SLAM, and
	// the random-walk planner never perturb one another's sequences.
	envRng := rand.New(rand.NewSource(baseSeed))
	slamRng := rand.New(rand.NewSource(baseSeed + 1))
	randomPlannerRng := rand.New(rand.NewSource(baseSeed + 2))

	env := environment.New(roomType, envRng, nil, cfg.GetTickRate())

	start := findStartPosition(env, envRng)
	a := agent.New(
		agent.Position{X: float64(start.X), Y: float64(start.Y)},
		cfg.GetBatteryCapacity(),
		cfg.GetCleaningWidth(),
		cfg.GetSpeed(),
		cfg.GetSensorRange(),
	)
	dock := env.DockPosition
	a.SetDockPosition(agent.Position{X: float64(dock.X), Y: float64(dock.Y)})

	var sl *slam.SLAM
	if cfg.GetEnableSLAM() {
		sl = slam.New(env.Grid().Width, env.Grid().Height, cfg.GetSLAMResolution(), cfg.GetSLAMNumParticles(), slamRng)
	}

	planners := map[CleaningMode]planner.Planner{
		Spiral:     planner.SpiralPlanner{},
		Zigzag:     planner.ZigzagPlanner{Horizontal: true},
		WallFollow: planner.WallFollowPlanner{},
		RandomWalk: planner.RandomCoveragePlanner{Rng: randomPlannerRng, TargetCoverage: 0.95},
	}

	return &Controller{
		Config:           cfg,
		Environment:      env,
		Agent:            a,
		SLAM:             sl,
		State:            Idle,
		Mode:             mode,
		MaxStuckAttempts: cfg.GetMaxStuckAttempts(),
		MaxSteps:         cfg.GetMaxSteps(),
		ChargeRate:       cfg.GetChargeRate(),
		planners:         planners,
	}, nil
}

// findStartPosition mirrors the original placement rule: prefer a free
// cell adjacent to the dock, then any free cell at random, then the grid
// center as a last resort.
func findStartPosition(env *environment.Environment, rng *rand.Rand) grid.Cell {
	dock := env.DockPosition
	adjacents := []grid.Cell{
		{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
		{X: 1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1},
	}
	for _, d := range adjacents {
		c := grid.Cell{X: dock.X + d.X, Y: dock.Y + d.Y}
		if env.IsValidPosition(c) {
			return c
		}
	}

	var free []grid.Cell
	g := env.Grid()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := grid.Cell{X: x, Y: y}
			if g.At(c) == grid.Free {
				free = append(free, c)
			}
		}
	}
	if len(free) > 0 {
		return free[rng.Intn(len(free))]
	}

	return grid.Cell{X: g.Width / 2, Y: g.Height / 2}
}
