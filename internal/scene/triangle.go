package scene

import (
	"math"

	"github.com/iburimskiy/plexus/internal/config"
)

// A Triangle is one draw candidate: three particle indices plus the mean
// vertex depth and the alphas interpolated from it.
type Triangle struct {
	A, B, C   int
	Depth     float64
	FillAlpha float64
	EdgeAlpha float64
}

// Triangles selects up to two triangles per particle, (self, nearest, 2nd)
// and (self, nearest, 3rd). A candidate survives only when all three
// pairwise distances fit under MaxLinkDist and its area clears
// MinTriangleArea, which suppresses slivers from near-collinear points.
// Results are appended to dst to let callers reuse the backing array.
func (s *Scene) Triangles(dst []Triangle) []Triangle {
	dst = dst[:0]
	const maxD2 = config.MaxLinkDist * config.MaxLinkDist
	for i := range s.Particles {
		p := &s.Particles[i]
		if p.LinkN < 2 || p.LinkDist[0] > maxD2 {
			continue
		}
		for k := 1; k < p.LinkN && k <= 2; k++ {
			if p.LinkDist[k] > maxD2 {
				break // sorted, the rest are farther
			}
			b := &s.Particles[p.Links[0]]
			c := &s.Particles[p.Links[k]]
			dx := c.X - b.X
			dy := c.Y - b.Y
			if dx*dx+dy*dy > maxD2 {
				continue
			}
			if area(p, b, c) < config.MinTriangleArea {
				continue
			}
			depth := (p.Depth + b.Depth + c.Depth) / 3
			dst = append(dst, Triangle{
				A:         i,
				B:         p.Links[0],
				C:         p.Links[k],
				Depth:     depth,
				FillAlpha: lerp(config.FillAlphaNear, config.FillAlphaFar, depth),
				EdgeAlpha: lerp(config.EdgeAlphaNear, config.EdgeAlphaFar, depth),
			})
		}
	}
	return dst
}

func area(a, b, c *Particle) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
}
