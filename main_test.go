package main

import (
	"math"
	"testing"
)

func TestVisibleFraction(t *testing.T) {
	tests := []struct {
		name  string
		top   float64
		h     float64
		viewH float64
		want  float64
	}{
		{"Fully above", -100, 20, 600, 0},
		{"Fully below", 700, 20, 600, 0},
		{"Fully inside", 300, 20, 600, 1},
		{"Half off the top", -10, 20, 600, 0.5},
		{"Half off the bottom", 590, 20, 600, 0.5},
		{"Touching the edge", 600, 20, 600, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visibleFraction(tt.top, tt.h, tt.viewH); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected fraction %v, got %v", tt.want, got)
			}
		})
	}
}
