// Package reveal tweens a per-target progress value the first time the
// target becomes sufficiently visible. Each target is animated exactly once:
// pending until it crosses the visibility threshold, animating for a fixed
// duration, then done forever.
package reveal

import (
	"time"

	"github.com/iburimskiy/plexus/internal/config"
)

// State is the lifecycle of one target.
type State int

const (
	Pending State = iota
	Animating
	Done
)

// A Target is one element whose Value is tweened from 0 to Goal.
type Target struct {
	Name  string
	Goal  float64
	Value float64

	state   State
	started time.Time
}

// State reports where the target is in its lifecycle.
func (t *Target) State() State { return t.state }

// Animator drives the one-shot reveal tweens. All targets share the
// animator's clock; tests inject their own.
type Animator struct {
	targets []*Target
	now     func() time.Time
}

func NewAnimator() *Animator {
	return &Animator{now: time.Now}
}

// NewAnimatorWithClock is NewAnimator with an injected clock.
func NewAnimatorWithClock(now func() time.Time) *Animator {
	return &Animator{now: now}
}

// Add registers a target with the given goal value and returns it.
func (a *Animator) Add(name string, goal float64) *Target {
	t := &Target{Name: name, Goal: goal}
	a.targets = append(a.targets, t)
	return t
}

// Targets returns the registered targets in registration order.
func (a *Animator) Targets() []*Target { return a.targets }

// Observe reports the fraction of the target currently visible. Crossing
// the threshold starts the tween once; every later report is ignored, so
// repeated intersection events cannot restart a reveal.
func (a *Animator) Observe(t *Target, visible float64) {
	if t.state != Pending || visible < config.RevealThreshold {
		return
	}
	t.state = Animating
	t.started = a.now()
}

// Tick advances every animating tween to the current time. Elapsed fraction
// is clamped to [0,1] before easing, so a late tick lands exactly on Goal.
func (a *Animator) Tick() {
	now := a.now()
	for _, t := range a.targets {
		if t.state != Animating {
			continue
		}
		f := clamp01(float64(now.Sub(t.started)) / float64(config.RevealDuration))
		t.Value = t.Goal * easeInOutQuad(f)
		if f >= 1 {
			t.Value = t.Goal
			t.state = Done
		}
	}
}

// easeInOutQuad accelerates through the first half of the tween and
// decelerates through the second.
func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
