// Package scene owns the state of the particle mesh: seeding, per-frame
// motion with edge wraparound, periodic nearest-neighbor recomputation and
// triangle candidate selection. It knows nothing about how frames are drawn.
package scene

import (
	"math/rand"
	"time"

	"github.com/iburimskiy/plexus/internal/config"
)

// Scene is the full mutable state of one mesh instance. It is owned by a
// single Controller and never shared.
type Scene struct {
	W, H  float64 // viewport size in layout px
	Scale float64 // device scale factor, capped at MaxDeviceScale

	Particles []Particle

	frame uint64
	rng   *rand.Rand
}

// New seeds a scene for the given viewport.
func New(w, h, scale float64) *Scene {
	s := &Scene{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	s.Resize(w, h, scale)
	return s
}

// ParticleCount returns how many particles a viewport of the given width
// gets: fewer under the mobile breakpoint.
func ParticleCount(width float64) int {
	if width < config.MobileBreakpoint {
		return config.ParticleCountMobile
	}
	return config.ParticleCountDesktop
}

// Resize adopts a new viewport and reseeds the whole mesh. Reseeding rather
// than adjusting existing particles keeps density even after the change.
func (s *Scene) Resize(w, h, scale float64) {
	if scale > config.MaxDeviceScale {
		scale = config.MaxDeviceScale
	}
	s.W, s.H = w, h
	s.Scale = scale
	s.frame = 0
	s.seed(ParticleCount(w))
	s.RefreshNeighbors()
}

// Step advances every particle by dt seconds and wraps strays back across
// the opposite edge. Neighbor lists are only refreshed every second call;
// the mesh tolerates slightly stale links and the exhaustive scan is the
// expensive part of the frame.
func (s *Scene) Step(dt float64) {
	for i := range s.Particles {
		p := &s.Particles[i]
		p.X = wrap(p.X+p.VX*dt, s.W)
		p.Y = wrap(p.Y+p.VY*dt, s.H)
	}
	s.frame++
	if s.frame%config.NeighborInterval == 0 {
		s.RefreshNeighbors()
	}
}

// wrap sends a coordinate that drifted past [-WrapMargin, size+WrapMargin]
// to the opposite edge.
func wrap(v, size float64) float64 {
	switch {
	case v < -config.WrapMargin:
		return size + config.WrapMargin
	case v > size+config.WrapMargin:
		return -config.WrapMargin
	}
	return v
}
