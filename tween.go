package panzoom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flight holds the tweens of an active FlyTo transition.
type flight struct {
	zoom  *gween.Tween
	panX  *gween.Tween
	panY  *gween.Tween
	doneZ bool
	doneX bool
	doneY bool
}

// FlyTo animates zoom and pan to the given values over duration seconds
// using easeFn (ease.InOutCubic when nil). Unlike the exponential smoothing
// of the other handlers, a flight takes a fixed time. Any gesture cancels a
// flight in progress. A non-positive duration applies the values at once.
func (c *Controller) FlyTo(zoom float64, pan Vec2, duration float32, easeFn ease.TweenFunc) {
	if !finite(zoom) || !finiteVec(pan) {
		return
	}
	zoom = c.cfg.clampZoom(zoom)
	pan = c.boundPan(pan, zoom)

	c.zoom.Velocity = 0
	c.pan.Velocity = Vec2{}
	c.zoom.Target = zoom
	c.pan.Target = pan

	if duration <= 0 {
		c.flight = nil
		c.pushZoom(zoom)
		c.pushPan(pan)
		return
	}
	if easeFn == nil {
		easeFn = ease.InOutCubic
	}
	c.flight = &flight{
		zoom: gween.New(float32(c.zoom.Current), float32(zoom), duration, easeFn),
		panX: gween.New(float32(c.pan.Current.X), float32(pan.X), duration, easeFn),
		panY: gween.New(float32(c.pan.Current.Y), float32(pan.Y), duration, easeFn),
	}
	c.startAnimation()
}

// FlyToRect flies to the zoom and pan that fit the world rectangle r in the
// current viewport, letterboxing the shorter axis.
func (c *Controller) FlyToRect(r Rect, duration float32, easeFn ease.TweenFunc) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	zoom, pan := fitRect(r, c.viewport)
	c.FlyTo(zoom, pan, duration, easeFn)
}

// IsFlying reports whether a FlyTo transition is in progress.
func (c *Controller) IsFlying() bool {
	return c.flight != nil
}

// stepFlight advances the active flight by dt seconds and writes the tween
// values to the current state. It reports zoom and pan completion; both
// values land exactly on their targets when done.
func (c *Controller) stepFlight(dt float32) (zoomDone, panDone bool) {
	f := c.flight
	if !f.doneZ {
		v, done := f.zoom.Update(dt)
		c.zoom.Current = c.cfg.clampZoom(float64(v))
		f.doneZ = done
	}
	if !f.doneX {
		v, done := f.panX.Update(dt)
		c.pan.Current.X = float64(v)
		f.doneX = done
	}
	if !f.doneY {
		v, done := f.panY.Update(dt)
		c.pan.Current.Y = float64(v)
		f.doneY = done
	}
	if f.doneZ && f.doneX && f.doneY {
		c.flight = nil
		c.zoom.Current = c.zoom.Target
		c.pan.Current = c.pan.Target
		c.zoom.Velocity = 0
		c.pan.Velocity = Vec2{}
		return true, true
	}
	return false, false
}

// fitRect returns the zoom and pan that show r centered in the viewport.
func fitRect(r Rect, viewport Size) (zoom float64, pan Vec2) {
	aspect := viewport.Aspect()
	zoomW := BaseViewBoxWidth / r.Width
	zoomH := BaseViewBoxWidth / aspect / r.Height
	zoom = zoomW
	if zoomH < zoom {
		zoom = zoomH
	}
	w, h := viewBoxSize(zoom, viewport)
	pan = Vec2{
		X: r.X - (w-r.Width)/2,
		Y: r.Y - (h-r.Height)/2,
	}
	return zoom, pan
}
