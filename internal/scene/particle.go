package scene

import (
	"math"

	"github.com/iburimskiy/plexus/internal/config"
)

// A Particle is one moving point of the mesh. Depth is a synthetic scalar in
// [0,1] that biases speed, size and opacity; 0 is near (fast, large), 1 is
// far (slow, small). It is not a real z coordinate.
type Particle struct {
	X, Y   float64 // layout px
	VX, VY float64 // px/s
	Depth  float64

	// Neighbor cache, refreshed every NeighborInterval frames. Links holds
	// indices of the nearest other particles ordered by distance, LinkDist
	// the matching squared distances. Never includes the particle itself.
	Links    [config.NeighborCount]int
	LinkDist [config.NeighborCount]float64
	LinkN    int
}

func (s *Scene) seed(n int) {
	s.Particles = make([]Particle, n)
	for i := range s.Particles {
		p := &s.Particles[i]
		p.X = s.rng.Float64() * s.W
		p.Y = s.rng.Float64() * s.H
		p.Depth = s.rng.Float64()

		// Farther particles drift slower.
		speed := lerp(config.SpeedNear, config.SpeedFar, p.Depth)
		sin, cos := math.Sincos(s.rng.Float64() * 2 * math.Pi)
		p.VX = speed * cos
		p.VY = speed * sin
	}
}

func lerp(near, far, t float64) float64 {
	return near + (far-near)*t
}
