package panzoom

import "math"

// instantZoomDelta is the zoom change below which wheel zoom is applied
// without animation.
const instantZoomDelta = 0.05

// WheelZoom zooms by a wheel delta around center. The new zoom is
// current * (1 + delta*ZoomSpeed), clamped. Small changes apply at once;
// larger ones animate.
func (c *Controller) WheelZoom(delta float64, center Vec2, viewport Size) {
	if !finite(delta) || !finiteVec(center) {
		return
	}
	c.setViewportFrom(viewport)
	c.flight = nil

	old := c.zoom.Current
	newZoom := c.cfg.clampZoom(old * (1 + delta*c.cfg.ZoomSpeed))
	newPan := c.boundPan(AdjustPanForZoom(old, newZoom, center, c.viewport, c.pan.Current), newZoom)

	c.zoom.Target = newZoom
	c.pan.Target = newPan

	if math.Abs(newZoom-old) < instantZoomDelta {
		c.pushZoom(newZoom)
		c.pushPan(newPan)
		// Let the loop settle the zoom on a snap level.
		if len(c.cfg.SnapLevels) > 0 {
			c.startAnimation()
		}
		return
	}
	c.startAnimation()
}

// PinchZoom applies a pinch gesture instantly. scale is relative to the zoom
// at the moment the gesture started; active reports whether fingers are
// still down. Ending a gesture starts the animation loop when snap levels are
// configured so the zoom can settle on one.
func (c *Controller) PinchZoom(scale float64, center Vec2, viewport Size, active bool) {
	if !finite(scale) || scale <= 0 || !finiteVec(center) {
		if !active {
			c.zoom.IsGesturing = false
		}
		return
	}
	c.setViewportFrom(viewport)
	c.flight = nil

	if !c.zoom.IsGesturing {
		c.pinchBase = c.zoom.Current
	}
	old := c.zoom.Current
	newZoom := c.cfg.clampZoom(c.pinchBase * scale)
	newPan := c.boundPan(AdjustPanForZoom(old, newZoom, center, c.viewport, c.pan.Current), newZoom)

	c.zoom.LastScale = scale
	c.zoom.IsGesturing = active
	c.zoom.Target = newZoom
	c.zoom.Velocity = 0
	c.pan.Target = newPan
	c.pushZoom(newZoom)
	c.pushPan(newPan)

	if !active && len(c.cfg.SnapLevels) > 0 {
		c.startAnimation()
	}
}

// ZoomOption modifies a SetZoomLevel call.
type ZoomOption func(*zoomRequest)

type zoomRequest struct {
	anchored bool
	center   Vec2
	viewport Size
}

// AtPoint anchors a SetZoomLevel call at a screen point: the world point
// under center stays fixed.
func AtPoint(center Vec2, viewport Size) ZoomOption {
	return func(r *zoomRequest) {
		r.anchored = true
		r.center = center
		r.viewport = viewport
	}
}

// SetZoomLevel animates to an explicit zoom, typically from a button or
// keyboard shortcut.
func (c *Controller) SetZoomLevel(zoom float64, opts ...ZoomOption) {
	if !finite(zoom) {
		return
	}
	var req zoomRequest
	for _, o := range opts {
		o(&req)
	}
	c.flight = nil

	target := c.cfg.clampZoom(zoom)
	c.zoom.Target = target
	c.zoom.Velocity = 0
	if req.anchored && finiteVec(req.center) {
		c.setViewportFrom(req.viewport)
		c.pan.Target = c.boundPan(
			AdjustPanForZoom(c.zoom.Current, target, req.center, c.viewport, c.pan.Current),
			target,
		)
	} else if c.cfg.Bounds != nil {
		c.pan.Target = c.boundPan(c.pan.Target, target)
	}
	c.startAnimation()
}

// AnimatedPan animates the pan offset to pan.
func (c *Controller) AnimatedPan(pan Vec2) {
	if !finiteVec(pan) {
		return
	}
	c.flight = nil
	c.pan.Target = c.boundPan(pan, c.zoom.Target)
	c.startAnimation()
}

// InstantPan sets the pan offset at once and clears pan momentum. Nothing is
// scheduled.
func (c *Controller) InstantPan(pan Vec2) {
	if !finiteVec(pan) {
		return
	}
	c.flight = nil
	pan = c.boundPan(pan, c.zoom.Current)
	c.pan.Target = pan
	c.pan.Velocity = Vec2{}
	c.pushPan(pan)
}

// PanBy shifts the pan offset instantly by a screen-space delta, converted
// to world units at the current zoom. Dragging right moves the view left.
func (c *Controller) PanBy(screenDelta Vec2) {
	c.InstantPan(c.pan.Current.Sub(c.screenToWorldDelta(screenDelta)))
}

// AddPanMomentum adds a world-space velocity (units per second) to pan.
func (c *Controller) AddPanMomentum(velocity Vec2) {
	if !finiteVec(velocity) {
		return
	}
	c.flight = nil
	c.pan.Velocity = c.pan.Velocity.Add(velocity)
	c.startAnimation()
}

// AddZoomMomentum adds a zoom velocity (zoom units per second).
func (c *Controller) AddZoomMomentum(velocity float64) {
	if !finite(velocity) {
		return
	}
	c.flight = nil
	c.zoom.Velocity += velocity
	c.startAnimation()
}

// screenToWorldDelta converts a screen-space offset to world units at the
// current zoom.
func (c *Controller) screenToWorldDelta(d Vec2) Vec2 {
	w, h := viewBoxSize(c.zoom.Current, c.viewport)
	vp := c.viewport.sanitize()
	return Vec2{X: d.X * w / vp.Width, Y: d.Y * h / vp.Height}
}
