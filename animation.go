package panzoom

import (
	"math"
	"time"
)

const (
	// zoomThreshold and panThreshold are the convergence distances below
	// which a value snaps exactly to its target.
	zoomThreshold = 0.0001
	panThreshold  = 0.01

	// maxFrameElapsed caps the time step after a stall (e.g. a suspended
	// window) so momentum and flights do not jump.
	maxFrameElapsed = 100 * time.Millisecond
	// firstFrameElapsed is assumed for the first frame after a start.
	firstFrameElapsed = time.Second / 60
)

// startAnimation schedules the animation loop. It is a no-op while the loop
// is already running or after Close.
func (c *Controller) startAnimation() {
	if c.animating {
		return
	}
	if c.closed {
		c.debugCheckOpen("startAnimation")
		return
	}
	c.animating = true
	c.hasLastFrame = false
	c.frames = 0
	c.frameID = c.sched.RequestFrame(c.frame)
	c.debugf("animation start: zoom %.4f -> %.4f, pan (%.3f,%.3f) -> (%.3f,%.3f)",
		c.zoom.Current, c.zoom.Target, c.pan.Current.X, c.pan.Current.Y, c.pan.Target.X, c.pan.Target.Y)
}

// frame is one step of the animation loop.
func (c *Controller) frame(now time.Duration) {
	if !c.animating {
		return
	}
	c.frameID = 0

	elapsed := firstFrameElapsed
	if c.hasLastFrame {
		elapsed = now - c.lastFrame
	}
	if elapsed > maxFrameElapsed {
		elapsed = maxFrameElapsed
	}
	if elapsed < 0 {
		elapsed = 0
	}
	c.lastFrame = now
	c.hasLastFrame = true
	c.frames++
	dt := elapsed.Seconds()

	var zoomDone, panDone bool
	if c.flight != nil {
		zoomDone, panDone = c.stepFlight(float32(dt))
	} else {
		c.applyMomentum(dt)
		zoomDone = c.stepZoom()
		panDone = c.stepPan()
	}

	c.pushZoom(c.zoom.Current)
	c.pushPan(c.pan.Current)

	// A setter may have stopped the loop or restarted it with its own frame.
	if !c.animating || c.frameID != 0 {
		return
	}
	// It may also have moved a target this frame had already reached.
	if c.zoom.Current != c.zoom.Target || c.zoom.Velocity != 0 {
		zoomDone = false
	}
	if c.pan.Current != c.pan.Target || c.pan.Velocity != (Vec2{}) {
		panDone = false
	}

	if zoomDone && c.snapZoom() {
		zoomDone = false
	}

	if zoomDone && panDone {
		c.animating = false
		c.debugf("animation converged after %d frames: zoom %.4f pan (%.3f,%.3f)",
			c.frames, c.zoom.Current, c.pan.Current.X, c.pan.Current.Y)
		return
	}
	c.frameID = c.sched.RequestFrame(c.frame)
}

// stepZoom blends current zoom toward target. It reports convergence.
func (c *Controller) stepZoom() bool {
	z := &c.zoom
	diff := z.Target - z.Current
	if math.Abs(diff) < zoomThreshold {
		z.Current = z.Target
		z.Velocity = 0
		return true
	}
	z.Current = c.cfg.clampZoom(z.Current + diff*c.cfg.SmoothingFactor)
	return false
}

// stepPan blends each pan axis toward its target. It reports convergence of
// both axes.
func (c *Controller) stepPan() bool {
	p := &c.pan
	doneX := stepAxis(&p.Current.X, p.Target.X, &p.Velocity.X, c.cfg.SmoothingFactor)
	doneY := stepAxis(&p.Current.Y, p.Target.Y, &p.Velocity.Y, c.cfg.SmoothingFactor)
	return doneX && doneY
}

func stepAxis(cur *float64, target float64, vel *float64, factor float64) bool {
	diff := target - *cur
	if math.Abs(diff) < panThreshold {
		*cur = target
		*vel = 0
		return true
	}
	*cur += diff * factor
	return false
}

// applyMomentum integrates velocities into targets and decays them by
// MomentumFriction per 60 Hz frame.
func (c *Controller) applyMomentum(dt float64) {
	if dt <= 0 {
		return
	}
	decay := math.Pow(c.cfg.MomentumFriction, dt*60)

	if v := c.pan.Velocity; v != (Vec2{}) {
		c.pan.Target = c.boundPan(c.pan.Target.Add(v.Scale(dt)), c.zoom.Target)
		v = v.Scale(decay)
		if math.Abs(v.X) < panThreshold {
			v.X = 0
		}
		if math.Abs(v.Y) < panThreshold {
			v.Y = 0
		}
		c.pan.Velocity = v
	}

	if v := c.zoom.Velocity; v != 0 {
		c.zoom.Target = c.cfg.clampZoom(c.zoom.Target + v*dt)
		v *= decay
		if math.Abs(v) < zoomThreshold {
			v = 0
		}
		c.zoom.Velocity = v
	}
}

// snapZoom retargets zoom to the nearest snap level once zoom has converged.
// The viewport center stays fixed. It reports whether a new target was set.
func (c *Controller) snapZoom() bool {
	if c.zoom.IsGesturing {
		return false
	}
	level, ok := c.cfg.nearestSnapLevel(c.zoom.Current)
	if !ok || math.Abs(level-c.zoom.Current) < zoomThreshold {
		return false
	}
	c.pan.Target = c.boundPan(
		AdjustPanForZoom(c.zoom.Current, level, c.viewportCenter(), c.viewport, c.pan.Target),
		level,
	)
	c.zoom.Target = level
	c.debugf("snap zoom %.4f -> %.4f", c.zoom.Current, level)
	return true
}
