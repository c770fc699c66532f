package panzoom

import "time"

// ZoomState holds current and target zoom. Velocity is in zoom units per
// second and is consumed by the animation loop as zoom momentum.
type ZoomState struct {
	Current     float64
	Target      float64
	Velocity    float64
	LastScale   float64
	IsGesturing bool
}

// PanState holds current and target pan offsets in world units. Velocity is
// in world units per second and is consumed by the animation loop as pan
// momentum.
type PanState struct {
	Current  Vec2
	Target   Vec2
	Velocity Vec2
}

// Options configures a new Controller.
type Options struct {
	// Zoom and Pan are the initial values. A zero Zoom means 1.
	Zoom float64
	Pan  Vec2
	// SetZoom and SetPan receive every change of the current values. Either
	// may be nil.
	SetZoom func(zoom float64)
	SetPan  func(pan Vec2)
	// Config overrides the defaults. Zero fields keep their defaults.
	Config *Config
	// Scheduler paces the animation loop. When nil the controller creates a
	// private Ticker, reachable through Controller.Ticker.
	Scheduler FrameScheduler
	// Viewport is the initial viewport size used for snapping and bounds
	// clamping. Gesture calls update it.
	Viewport Size
}

var defaultViewport = Size{Width: 800, Height: 600}

// Controller smoothly animates zoom and pan toward targets set by gesture
// handlers, pushing every change to the host through SetZoom and SetPan.
//
// All methods must be called from the goroutine that drives the scheduler.
type Controller struct {
	cfg      Config
	zoom     ZoomState
	pan      PanState
	viewport Size

	setZoom func(float64)
	setPan  func(Vec2)

	sched  FrameScheduler
	ticker *Ticker

	animating    bool
	closed       bool
	frameID      FrameID
	lastFrame    time.Duration
	hasLastFrame bool
	frames       int

	pinchBase float64
	flight    *flight

	debug bool
}

// New creates a Controller from opts. Initial values are clamped to the
// configured zoom range and bounds.
func New(opts Options) *Controller {
	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	cfg = cfg.withDefaults()

	c := &Controller{
		cfg:      cfg,
		setZoom:  opts.SetZoom,
		setPan:   opts.SetPan,
		sched:    opts.Scheduler,
		viewport: defaultViewport,
	}
	if opts.Viewport.Width > 0 && opts.Viewport.Height > 0 {
		c.viewport = opts.Viewport.sanitize()
	}
	if c.sched == nil {
		c.ticker = NewTicker()
		c.sched = c.ticker
	}

	z := opts.Zoom
	if z == 0 || !finite(z) {
		z = 1
	}
	z = cfg.clampZoom(z)
	p := opts.Pan
	if !finiteVec(p) {
		p = Vec2{}
	}
	p = c.boundPan(p, z)

	c.zoom = ZoomState{Current: z, Target: z, LastScale: 1}
	c.pan = PanState{Current: p, Target: p}
	c.pinchBase = z
	return c
}

// Config returns the normalized configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Ticker returns the private ticker created when Options.Scheduler was nil,
// or nil when the caller supplied a scheduler.
func (c *Controller) Ticker() *Ticker {
	return c.ticker
}

// Zoom returns the current zoom.
func (c *Controller) Zoom() float64 {
	return c.zoom.Current
}

// Pan returns the current pan offset.
func (c *Controller) Pan() Vec2 {
	return c.pan.Current
}

// ZoomState returns a copy of the zoom state.
func (c *Controller) ZoomState() ZoomState {
	return c.zoom
}

// PanState returns a copy of the pan state.
func (c *Controller) PanState() PanState {
	return c.pan
}

// Viewport returns the last known viewport size.
func (c *Controller) Viewport() Size {
	return c.viewport
}

// SetViewport records the viewport size used for snapping and bounds. The
// size is raised to MinViewportSize if needed.
func (c *Controller) SetViewport(viewport Size) {
	c.viewport = viewport.sanitize()
}

// IsAnimating reports whether a frame is scheduled.
func (c *Controller) IsAnimating() bool {
	return c.animating
}

// IsGesturing reports whether a pinch gesture is in progress.
func (c *Controller) IsGesturing() bool {
	return c.zoom.IsGesturing
}

// SetDebugMode enables or disables stderr logging of animation loop
// transitions.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// Sync overrides current and target values from an external source of
// truth. It is ignored (and returns false) while animating or gesturing, so
// that the host echoing back values pushed by the controller cannot fight
// the animation.
func (c *Controller) Sync(zoom float64, pan Vec2) bool {
	if c.animating || c.zoom.IsGesturing {
		return false
	}
	if !finite(zoom) || !finiteVec(pan) {
		return false
	}
	z := c.cfg.clampZoom(zoom)
	p := c.boundPan(pan, z)
	c.zoom.Current, c.zoom.Target = z, z
	c.pan.Current, c.pan.Target = p, p
	return true
}

// Stop halts any animation, momentum, or flight, leaving current values in
// place.
func (c *Controller) Stop() {
	c.cancelFrame()
	c.flight = nil
	c.zoom.Target = c.zoom.Current
	c.zoom.Velocity = 0
	c.pan.Target = c.pan.Current
	c.pan.Velocity = Vec2{}
}

// Close cancels any pending frame. After Close the controller no longer
// schedules frames; instant operations still update its state.
func (c *Controller) Close() {
	c.cancelFrame()
	c.flight = nil
	c.closed = true
}

func (c *Controller) cancelFrame() {
	if c.animating {
		c.sched.CancelFrame(c.frameID)
		c.debugf("animation cancelled after %d frames", c.frames)
	}
	c.animating = false
	c.frameID = 0
}

// pushZoom writes the current zoom and notifies the host.
func (c *Controller) pushZoom(z float64) {
	c.zoom.Current = z
	if c.setZoom != nil {
		c.setZoom(z)
	}
}

// pushPan writes the current pan and notifies the host.
func (c *Controller) pushPan(p Vec2) {
	c.pan.Current = p
	if c.setPan != nil {
		c.setPan(p)
	}
}

// boundPan clamps p to Config.Bounds for the given zoom. No-op without bounds.
func (c *Controller) boundPan(p Vec2, zoom float64) Vec2 {
	if c.cfg.Bounds == nil {
		return p
	}
	return clampPanToBounds(p, zoom, c.viewport, *c.cfg.Bounds)
}

func (c *Controller) setViewportFrom(viewport Size) {
	if viewport.Width > 0 && viewport.Height > 0 {
		c.viewport = viewport.sanitize()
	}
}

// viewportCenter returns the screen-space center of the viewport.
func (c *Controller) viewportCenter() Vec2 {
	return Vec2{X: c.viewport.Width / 2, Y: c.viewport.Height / 2}
}
