// Package render paints a scene onto an ebiten image.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/plexus/internal/config"
	"github.com/iburimskiy/plexus/internal/palette"
	"github.com/iburimskiy/plexus/internal/scene"
)

// 3x3 white source with a 1x1 center sub-image so triangle fills don't bleed
// at the texture edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Mesh draws the triangle mesh and its points. It keeps reusable vertex and
// triangle buffers between frames.
type Mesh struct {
	tris []scene.Triangle
	vs   []ebiten.Vertex
	is   []uint16
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// Draw paints one frame: triangle fills in a single batched DrawTriangles
// call, then edges, then the particle points on top. Scene coordinates are
// layout px; everything is multiplied by the scene's device scale.
func (m *Mesh) Draw(dst *ebiten.Image, s *scene.Scene) {
	m.tris = s.Triangles(m.tris)
	m.vs = m.vs[:0]
	m.is = m.is[:0]

	sc := float32(s.Scale)
	for _, t := range m.tris {
		col := palette.Mesh(t.Depth)
		base := uint16(len(m.vs))
		for _, i := range [3]int{t.A, t.B, t.C} {
			p := &s.Particles[i]
			m.vs = append(m.vs, ebiten.Vertex{
				DstX:   float32(p.X) * sc,
				DstY:   float32(p.Y) * sc,
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(col.R),
				ColorG: float32(col.G),
				ColorB: float32(col.B),
				ColorA: float32(t.FillAlpha),
			})
		}
		m.is = append(m.is, base, base+1, base+2)
	}
	if len(m.is) > 0 {
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		dst.DrawTriangles(m.vs, m.is, whiteSubImage, op)
	}

	for _, t := range m.tris {
		edge := palette.RGBA(palette.Mesh(t.Depth), t.EdgeAlpha)
		a := &s.Particles[t.A]
		b := &s.Particles[t.B]
		c := &s.Particles[t.C]
		strokeEdge(dst, a, b, sc, edge)
		strokeEdge(dst, b, c, sc, edge)
		strokeEdge(dst, c, a, sc, edge)
	}

	for i := range s.Particles {
		p := &s.Particles[i]
		r := lerp(config.PointNear, config.PointFar, p.Depth) * s.Scale
		alpha := lerp(config.PointAlphaNear, config.PointAlphaFar, p.Depth)
		col := palette.RGBA(palette.Mesh(p.Depth), alpha)
		vector.DrawFilledCircle(dst, float32(p.X)*sc, float32(p.Y)*sc, float32(r), col, true)
	}
}

func strokeEdge(dst *ebiten.Image, a, b *scene.Particle, sc float32, col color.RGBA) {
	vector.StrokeLine(dst,
		float32(a.X)*sc, float32(a.Y)*sc,
		float32(b.X)*sc, float32(b.Y)*sc,
		sc, col, true)
}

func lerp(near, far, t float64) float64 {
	return near + (far-near)*t
}
