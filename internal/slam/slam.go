package slam

import (
	"math/rand"

	"github.com/banshee-data/vacuumsim/internal/grid"
)

// SLAM composes an OccupancyGrid and a ParticleFilter into the update cycle
// a controller drives once per tick: predict particle motion, fold the
// latest scan into the map at the current pose estimate, reweight and
// resample particles against that map, then recompute the pose estimate.
type SLAM struct {
	OccupancyGrid  *OccupancyGrid
	ParticleFilter *ParticleFilter

	PoseX, PoseY, PoseTheta float64
}

// New builds a SLAM system over a width×height map with the given cell
// resolution and particle count, seeded by rng.
func New(width, height int, resolution float64, numParticles int, rng *rand.Rand) *SLAM {
	return &SLAM{
		OccupancyGrid:  NewOccupancyGrid(width, height, resolution),
		ParticleFilter: NewParticleFilter(numParticles, width, height, rng),
		PoseX:          float64(width) / 2,
		PoseY:          float64(height) / 2,
		PoseTheta:      0,
	}
}

// Update runs one full SLAM cycle: predict, map from the current pose
// estimate, reweight, resample, and re-estimate pose.
func (s *SLAM) Update(deltaX, deltaY, deltaTheta float64, sensorData []grid.Cell) {
	s.ParticleFilter.Predict(deltaX, deltaY, deltaTheta, 0.1)

	s.OccupancyGrid.UpdateFromScan(int(s.PoseX), int(s.PoseY), sensorData)

	s.ParticleFilter.Update(sensorData, s.OccupancyGrid)
	s.ParticleFilter.Resample()

	s.PoseX, s.PoseY, s.PoseTheta = s.ParticleFilter.EstimatedPose()
}

// Map returns the current occupancy estimate as a discrete 0/1/unknown
// array.
func (s *SLAM) Map() [][]int {
	return s.OccupancyGrid.MapArray(-1)
}

// Pose returns the current estimated (x, y, theta).
func (s *SLAM) Pose() (x, y, theta float64) {
	return s.PoseX, s.PoseY, s.PoseTheta
}

// Particles returns a copy of the current particle set.
func (s *SLAM) Particles() []Particle {
	return s.ParticleFilter.Particles()
}
