package snapshot

import (
	"testing"

	"github.com/iburimskiy/plexus/internal/scene"
)

func TestImageMatchesBackingStore(t *testing.T) {
	tests := []struct {
		name         string
		w, h, scale  float64
		wantW, wantH int
	}{
		{"Plain", 400, 300, 1, 400, 300},
		{"Retina", 400, 300, 2, 800, 600},
		{"Capped scale", 400, 300, 4, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scene.New(tt.w, tt.h, tt.scale)
			img := Image(s)
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("Expected %dx%d image, got %dx%d", tt.wantW, tt.wantH, b.Dx(), b.Dy())
			}
		})
	}
}
