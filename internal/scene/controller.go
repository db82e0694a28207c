package scene

import (
	"time"

	"github.com/iburimskiy/plexus/internal/config"
)

// Controller drives one Scene from the outer frame loop. It owns the frame
// timestamp bookkeeping and a stop flag so a mesh can be cancelled cleanly
// when the viewport changes.
type Controller struct {
	Scene *Scene

	last    time.Time
	stopped bool
}

// Mount builds a controller for the given viewport. A previous instance, if
// any, is stopped first so two meshes never animate at once.
func Mount(prev *Controller, w, h, scale float64) *Controller {
	if prev != nil {
		prev.Stop()
	}
	return &Controller{Scene: New(w, h, scale)}
}

// Advance steps the scene by the wall-clock time since the previous call,
// clamped to MaxFrameDelta. The first call only records the timestamp; calls
// after Stop are no-ops.
func (c *Controller) Advance(now time.Time) {
	if c.stopped {
		return
	}
	if !c.last.IsZero() {
		dt := now.Sub(c.last)
		if dt > config.MaxFrameDelta {
			dt = config.MaxFrameDelta
		}
		if dt > 0 {
			c.Scene.Step(dt.Seconds())
		}
	}
	c.last = now
}

// Stop marks the controller dead. Idempotent.
func (c *Controller) Stop() { c.stopped = true }

// Stopped reports whether Stop has been called.
func (c *Controller) Stopped() bool { return c.stopped }
