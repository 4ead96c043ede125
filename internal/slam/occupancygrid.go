// Package slam implements grid-based simultaneous localization and
// mapping: a log-odds occupancy grid built from ray-traced sensor scans,
// and a particle filter that estimates the agent's pose from those same
// scans.
package slam

import (
	"math"

	"github.com/banshee-data/vacuumsim/internal/grid"
)

const (
	logOddsMax = 3.5
	logOddsMin = -3.5
)

var (
	logOddsOccupied = math.Log(0.7 / 0.3)
	logOddsFree     = math.Log(0.3 / 0.7)
)

// OccupancyGrid is a probabilistic map in log-odds form: each cell
// accumulates evidence from repeated observations rather than flipping
// between a binary free/occupied state on a single reading.
type OccupancyGrid struct {
	Width, Height int
	Resolution    float64

	logOdds  []float32
	observed []bool
}

// NewOccupancyGrid allocates an unobserved width×height map.
func NewOccupancyGrid(width, height int, resolution float64) *OccupancyGrid {
	return &OccupancyGrid{
		Width:      width,
		Height:     height,
		Resolution: resolution,
		logOdds:    make([]float32, width*height),
		observed:   make([]bool, width*height),
	}
}

func (o *OccupancyGrid) inBounds(x, y int) bool {
	return x >= 0 && x < o.Width && y >= 0 && y < o.Height
}

func (o *OccupancyGrid) index(x, y int) int {
	return y*o.Width + x
}

// UpdateCell applies one occupied or free observation to the cell at
// (x, y), clamping the accumulated log-odds to [logOddsMin, logOddsMax].
// Out-of-bounds coordinates are ignored.
func (o *OccupancyGrid) UpdateCell(x, y int, isOccupied bool) {
	if !o.inBounds(x, y) {
		return
	}
	idx := o.index(x, y)

	if isOccupied {
		o.logOdds[idx] += float32(logOddsOccupied)
		if o.logOdds[idx] > logOddsMax {
			o.logOdds[idx] = logOddsMax
		}
	} else {
		o.logOdds[idx] += float32(logOddsFree)
		if o.logOdds[idx] < logOddsMin {
			o.logOdds[idx] = logOddsMin
		}
	}
	o.observed[idx] = true
}

// GetProbability converts a cell's accumulated log-odds to an occupancy
// probability. Unobserved or out-of-bounds cells report 0.5 (unknown).
func (o *OccupancyGrid) GetProbability(x, y int) float64 {
	if !o.inBounds(x, y) {
		return 0.5
	}
	idx := o.index(x, y)
	if !o.observed[idx] {
		return 0.5
	}

	odds := math.Exp(float64(o.logOdds[idx]))
	return odds / (1 + odds)
}

// IsOccupied reports whether a cell's occupancy probability exceeds
// threshold.
func (o *OccupancyGrid) IsOccupied(x, y int, threshold float64) bool {
	return o.GetProbability(x, y) > threshold
}

// UpdateFromScan marks every cell along the ray from (robotX, robotY) to
// each scan point as free, and the scan point itself as occupied — a
// standard inverse sensor model for a ranging beam.
func (o *OccupancyGrid) UpdateFromScan(robotX, robotY int, scanPoints []grid.Cell) {
	for _, p := range scanPoints {
		ray := grid.BresenhamLine(grid.Cell{X: robotX, Y: robotY}, p)

		for _, c := range ray[:len(ray)-1] {
			o.UpdateCell(c.X, c.Y, false)
		}
		o.UpdateCell(p.X, p.Y, true)
	}
}

// MapArray renders the grid as a discrete array: 0 free, 1 occupied, and
// unknownValue for any cell never observed.
func (o *OccupancyGrid) MapArray(unknownValue int) [][]int {
	result := make([][]int, o.Height)
	for y := 0; y < o.Height; y++ {
		row := make([]int, o.Width)
		for x := 0; x < o.Width; x++ {
			idx := o.index(x, y)
			if !o.observed[idx] {
				row[x] = unknownValue
				continue
			}
			if o.IsOccupied(x, y, 0.6) {
				row[x] = 1
			} else {
				row[x] = 0
			}
		}
		result[y] = row
	}
	return result
}
