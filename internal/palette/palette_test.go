package palette

import (
	"math"
	"testing"
)

func TestMeshEndpoints(t *testing.T) {
	near := Mesh(0)
	far := Mesh(1)

	if d := near.DistanceRgb(Near); d > 0.01 {
		t.Errorf("Expected Mesh(0) to be the near color, distance %v", d)
	}
	if d := far.DistanceRgb(Far); d > 0.01 {
		t.Errorf("Expected Mesh(1) to be the far color, distance %v", d)
	}

	// Out-of-range depths clamp instead of extrapolating.
	if d := Mesh(-0.5).DistanceRgb(near); d > 0.01 {
		t.Errorf("Expected negative depth to clamp to near, distance %v", d)
	}
	if d := Mesh(1.5).DistanceRgb(far); d > 0.01 {
		t.Errorf("Expected oversized depth to clamp to far, distance %v", d)
	}
}

func TestRGBAPremultiplies(t *testing.T) {
	c := Mesh(0)
	alpha := 0.5
	got := RGBA(c, alpha)

	if got.A != uint8(alpha*255) {
		t.Errorf("Expected alpha %d, got %d", uint8(alpha*255), got.A)
	}
	wantR := uint8(c.R * alpha * 255)
	if math.Abs(float64(got.R)-float64(wantR)) > 1 {
		t.Errorf("Expected premultiplied red near %d, got %d", wantR, got.R)
	}
}
