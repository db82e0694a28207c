// Package snapshot renders a still frame of the mesh offscreen, for
// exporting the background as a PNG.
package snapshot

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/plexus/internal/config"
	"github.com/iburimskiy/plexus/internal/palette"
	"github.com/iburimskiy/plexus/internal/scene"
)

// Image draws the scene's current frame onto a transparent image sized to
// the scene's backing store (layout size times device scale).
func Image(s *scene.Scene) image.Image {
	ctx := gg.NewContext(int(s.W*s.Scale), int(s.H*s.Scale))
	ctx.Scale(s.Scale, s.Scale)

	for _, t := range s.Triangles(nil) {
		a := &s.Particles[t.A]
		b := &s.Particles[t.B]
		c := &s.Particles[t.C]
		col := palette.Mesh(t.Depth)

		ctx.MoveTo(a.X, a.Y)
		ctx.LineTo(b.X, b.Y)
		ctx.LineTo(c.X, c.Y)
		ctx.ClosePath()
		ctx.SetRGBA(col.R, col.G, col.B, t.FillAlpha)
		ctx.FillPreserve()
		ctx.SetRGBA(col.R, col.G, col.B, t.EdgeAlpha)
		ctx.SetLineWidth(1)
		ctx.Stroke()
	}

	for i := range s.Particles {
		p := &s.Particles[i]
		col := palette.Mesh(p.Depth)
		alpha := config.PointAlphaNear + (config.PointAlphaFar-config.PointAlphaNear)*p.Depth
		r := config.PointNear + (config.PointFar-config.PointNear)*p.Depth
		ctx.SetRGBA(col.R, col.G, col.B, alpha)
		ctx.DrawCircle(p.X, p.Y, r)
		ctx.Fill()
	}

	return ctx.Image()
}

// Save writes the scene's current frame to path as a PNG.
func Save(path string, s *scene.Scene) error {
	return gg.SavePNG(path, Image(s))
}
