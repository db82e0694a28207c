package reveal

import (
	"math"
	"testing"
	"time"
)

// fakeClock drives the animator deterministically.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestTweenEndpoints(t *testing.T) {
	clock := &fakeClock{now: time.Unix(10, 0)}
	a := NewAnimatorWithClock(clock.Now)
	target := a.Add("go", 80)

	a.Observe(target, 1.0)
	a.Tick()
	if target.Value != 0 {
		t.Errorf("Expected value 0 at t=0, got %v", target.Value)
	}
	if target.State() != Animating {
		t.Errorf("Expected Animating at t=0, got %v", target.State())
	}

	clock.advance(700 * time.Millisecond)
	a.Tick()
	if target.Value != 80 {
		t.Errorf("Expected value 80 at t=700ms, got %v", target.Value)
	}
	if target.State() != Done {
		t.Errorf("Expected Done at t=700ms, got %v", target.State())
	}
}

func TestTweenMidpointAndMonotonicity(t *testing.T) {
	clock := &fakeClock{now: time.Unix(10, 0)}
	a := NewAnimatorWithClock(clock.Now)
	target := a.Add("go", 80)
	a.Observe(target, 1.0)

	prev := -1.0
	for elapsed := time.Duration(0); elapsed <= 800*time.Millisecond; elapsed += 25 * time.Millisecond {
		a.Tick()
		if target.Value < prev {
			t.Fatalf("Value decreased from %v to %v at %v", prev, target.Value, elapsed)
		}
		if elapsed == 350*time.Millisecond && math.Abs(target.Value-40) > 1e-9 {
			t.Errorf("Expected value 40 at the half-way point, got %v", target.Value)
		}
		prev = target.Value
		clock.advance(25 * time.Millisecond)
	}
	if target.Value != 80 {
		t.Errorf("Expected final value 80, got %v", target.Value)
	}
}

func TestVisibilityThreshold(t *testing.T) {
	tests := []struct {
		name    string
		visible float64
		want    State
	}{
		{"Hidden", 0, Pending},
		{"Just under threshold", 0.19, Pending},
		{"At threshold", 0.2, Animating},
		{"Fully visible", 1.0, Animating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{now: time.Unix(10, 0)}
			a := NewAnimatorWithClock(clock.Now)
			target := a.Add("go", 80)
			a.Observe(target, tt.visible)
			if target.State() != tt.want {
				t.Errorf("Expected state %v for visibility %v, got %v", tt.want, tt.visible, target.State())
			}
		})
	}
}

func TestTweenIsOneShot(t *testing.T) {
	clock := &fakeClock{now: time.Unix(10, 0)}
	a := NewAnimatorWithClock(clock.Now)
	target := a.Add("go", 80)
	a.Observe(target, 1.0)

	// A repeated intersection mid-flight must not restart the tween.
	clock.advance(350 * time.Millisecond)
	a.Tick()
	mid := target.Value
	a.Observe(target, 1.0)
	clock.advance(25 * time.Millisecond)
	a.Tick()
	if target.Value < mid {
		t.Errorf("Observe during animation reset the tween: %v -> %v", mid, target.Value)
	}

	// Nor after completion.
	clock.advance(time.Second)
	a.Tick()
	a.Observe(target, 1.0)
	a.Tick()
	if target.State() != Done || target.Value != 80 {
		t.Errorf("Expected completed target to stay at 80/Done, got %v/%v", target.Value, target.State())
	}
}

func TestEaseInOutQuad(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.125},
		{0.5, 0.5},
		{0.75, 0.875},
		{1, 1},
	}

	for _, tt := range tests {
		if got := easeInOutQuad(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("easeInOutQuad(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestEmptyAnimatorTickIsNoop(t *testing.T) {
	a := NewAnimator()
	a.Tick() // no targets registered, nothing to do
	if len(a.Targets()) != 0 {
		t.Errorf("Expected no targets, got %d", len(a.Targets()))
	}
}
