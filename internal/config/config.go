package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Particle counts per viewport width. The mesh stays cheap enough for the
	// O(n^2) neighbor pass as long as the desktop count stays well under ~150.
	ParticleCountDesktop = 120
	ParticleCountMobile  = 60
	MobileBreakpoint     = 768.0

	// Mesh parameters
	NeighborCount    = 3
	NeighborInterval = 2 // recompute neighbors every Nth frame
	MaxLinkDist      = 180.0
	MinTriangleArea  = 150.0
	WrapMargin       = 24.0

	// Depth-interpolated speeds (px/s) and point sizes (px). Depth 0 is near.
	SpeedNear = 42.0
	SpeedFar  = 12.0
	PointNear = 2.6
	PointFar  = 1.1

	// Depth-interpolated alphas
	FillAlphaNear  = 0.26
	FillAlphaFar   = 0.05
	EdgeAlphaNear  = 0.45
	EdgeAlphaFar   = 0.08
	PointAlphaNear = 0.90
	PointAlphaFar  = 0.30

	// Device scale factor is capped so high-density displays don't blow up the
	// backing store.
	MaxDeviceScale = 2.0

	// Frame gaps above this (tab hidden, window dragged) are clamped so
	// particles don't teleport.
	MaxFrameDelta = 100 * time.Millisecond

	// Reveal tween parameters
	RevealDuration  = 700 * time.Millisecond
	RevealThreshold = 0.2

	// Ambient drone
	AmbientFreq = 110
)
