package slam

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/banshee-data/vacuumsim/internal/grid"
)

// Particle is one hypothesis of the agent's pose, carried with a weight
// proportional to how well it explains the most recent sensor scan.
type Particle struct {
	X, Y, Theta float64
	Weight      float64
}

// ParticleFilter implements Monte Carlo localization over a fixed particle
// count. All randomness — initial scatter, motion noise, resampling jitter
// — is drawn from the filter's own *rand.Rand, never the math/rand package
// source, so a seeded controller reproduces the same particle trajectory
// run to run.
type ParticleFilter struct {
	NumParticles int
	Width        int
	Height       int

	rng       *rand.Rand
	particles []Particle
}

// NewParticleFilter scatters numParticles uniformly across the map with
// random headings and equal weight.
func NewParticleFilter(numParticles, width, height int, rng *rand.Rand) *ParticleFilter {
	pf := &ParticleFilter{
		NumParticles: numParticles,
		Width:        width,
		Height:       height,
		rng:          rng,
		particles:    make([]Particle, numParticles),
	}

	weight := 1.0 / float64(numParticles)
	for i := range pf.particles {
		pf.particles[i] = Particle{
			X:      rng.Float64() * float64(width),
			Y:      rng.Float64() * float64(height),
			Theta:  rng.Float64() * 2 * math.Pi,
			Weight: weight,
		}
	}
	return pf
}

// Particles returns a copy of the current particle set; callers never get a
// handle to the filter's own backing slice.
func (pf *ParticleFilter) Particles() []Particle {
	out := make([]Particle, len(pf.particles))
	copy(out, pf.particles)
	return out
}

func gaussian(rng *rand.Rand, sigma float64) float64 {
	if sigma == 0 {
		return 0
	}
	return distuv.Normal{Mu: 0, Sigma: sigma, Src: rng}.Rand()
}

func pymod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Predict advances every particle by (deltaX, deltaY, deltaTheta) plus
// independent Gaussian noise (noise for position, noise*0.1 for heading),
// wraps heading into [0, 2π), and clips position to the map bounds.
func (pf *ParticleFilter) Predict(deltaX, deltaY, deltaTheta, noise float64) {
	for i := range pf.particles {
		p := &pf.particles[i]
		p.X += deltaX + gaussian(pf.rng, noise)
		p.Y += deltaY + gaussian(pf.rng, noise)
		p.Theta += deltaTheta + gaussian(pf.rng, noise*0.1)

		p.Theta = pymod(p.Theta, 2*math.Pi)
		p.X = clip(p.X, 0, float64(pf.Width-1))
		p.Y = clip(p.Y, 0, float64(pf.Height-1))
	}
}

// Update reweights every particle by how well occ's occupancy estimate at
// the scan points agrees with the measurement.
//
// The original localization model this is based on computes the map
// coordinate of each observation as the particle's position plus the
// observation's offset from that same particle's position — which reduces
// algebraically to just the observation's raw coordinate. That
// simplification (every particle reads the same map cell for a given
// observation, regardless of the particle's own pose) is preserved here
// rather than corrected, matching the original's documented behavior.
func (pf *ParticleFilter) Update(measurement []grid.Cell, occ *OccupancyGrid) {
	if len(measurement) == 0 {
		return
	}

	for i := range pf.particles {
		p := &pf.particles[i]
		likelihood := 0.0

		for _, obs := range measurement {
			mapX, mapY := obs.X, obs.Y
			if mapX >= 0 && mapX < pf.Width && mapY >= 0 && mapY < pf.Height {
				likelihood += occ.GetProbability(mapX, mapY)
			}
		}

		p.Weight = likelihood + 1e-10
	}

	total := 0.0
	for _, p := range pf.particles {
		total += p.Weight
	}
	if total > 0 {
		for i := range pf.particles {
			pf.particles[i].Weight /= total
		}
	}
}

// Resample performs low-variance (stochastic universal) resampling: each
// surviving particle is perturbed with a small amount of jitter to avoid
// particle depletion, and reset to uniform weight.
func (pf *ParticleFilter) Resample() {
	n := pf.NumParticles
	newParticles := make([]Particle, n)

	step := 1.0 / float64(n)
	r := pf.rng.Float64() * step
	c := pf.particles[0].Weight
	i := 0

	for m := 0; m < n; m++ {
		u := r + float64(m)*step

		for u > c {
			i++
			if i >= len(pf.particles) {
				i = 0
			}
			c += pf.particles[i].Weight
		}

		src := pf.particles[i]
		newParticles[m] = Particle{
			X:      src.X + gaussian(pf.rng, 0.1),
			Y:      src.Y + gaussian(pf.rng, 0.1),
			Theta:  src.Theta + gaussian(pf.rng, 0.01),
			Weight: step,
		}
	}

	pf.particles = newParticles
}

// EstimatedPose returns the weighted-mean particle pose: arithmetic mean
// for x and y, circular mean (via atan2 of weighted sin/cos sums) for
// heading.
func (pf *ParticleFilter) EstimatedPose() (x, y, theta float64) {
	var sinSum, cosSum float64
	for _, p := range pf.particles {
		x += p.X * p.Weight
		y += p.Y * p.Weight
		sinSum += math.Sin(p.Theta) * p.Weight
		cosSum += math.Cos(p.Theta) * p.Weight
	}
	theta = math.Atan2(sinSum, cosSum)
	return x, y, theta
}
