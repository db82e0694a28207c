// Package palette holds the mesh colors and the depth blend shared by the
// live renderer and the snapshot exporter.
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// Near is the color of particles at depth 0, Far at depth 1.
	Near = colorful.Color{R: 0.63, G: 0.77, B: 0.96}
	Far  = colorful.Color{R: 0.24, G: 0.33, B: 0.49}
)

// Mesh blends Near towards Far in Lab space by depth, which keeps the
// perceived brightness ramp even.
func Mesh(depth float64) colorful.Color {
	if depth < 0 {
		depth = 0
	}
	if depth > 1 {
		depth = 1
	}
	return Near.BlendLab(Far, depth).Clamped()
}

// RGBA converts a blend result plus a straight alpha into the premultiplied
// color.RGBA the drawing APIs expect.
func RGBA(c colorful.Color, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(c.R * alpha * 255),
		G: uint8(c.G * alpha * 255),
		B: uint8(c.B * alpha * 255),
		A: uint8(alpha * 255),
	}
}
